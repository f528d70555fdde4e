package teamseason

import "context"

type Repository interface {
	Exists(ctx context.Context, teamID, seasonID int64) (bool, error)
	Create(ctx context.Context, item Association) (Association, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Association, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Association, error)
}
