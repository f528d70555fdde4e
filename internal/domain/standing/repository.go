package standing

import "context"

type Repository interface {
	CountBySeason(ctx context.Context, seasonID int64) (int, error)
	// ListBySeason returns rows ordered by position ascending.
	ListBySeason(ctx context.Context, seasonID int64) ([]Standing, error)
	// ReplaceBySeason deletes every row of the season and inserts items in one
	// unit of work. Duplicate teams in items keep their first occurrence.
	ReplaceBySeason(ctx context.Context, seasonID int64, items []Standing) error
}
