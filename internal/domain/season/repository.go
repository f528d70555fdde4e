package season

import "context"

type Repository interface {
	Get(ctx context.Context, leagueID int64, year int) (Season, bool, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	List(ctx context.Context, filter Filter) ([]Season, error)
	Create(ctx context.Context, item Season) (Season, error)
	IncrementTotalTeams(ctx context.Context, id int64, delta int) (Season, error)
}
