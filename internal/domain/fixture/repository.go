package fixture

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Fixture, bool, error)
	Create(ctx context.Context, item Fixture) (Fixture, error)
	// ListBySeason returns fixtures ordered by date then id.
	ListBySeason(ctx context.Context, seasonID int64) ([]Fixture, error)
	ListBySeasonAndTeam(ctx context.Context, seasonID, teamID int64) ([]Fixture, error)
}
