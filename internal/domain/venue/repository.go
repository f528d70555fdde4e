package venue

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Venue, bool, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Venue, error)
	Create(ctx context.Context, item Venue) (Venue, error)
}
