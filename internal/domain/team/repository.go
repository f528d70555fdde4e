package team

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Team, error)
	Create(ctx context.Context, item Team) (Team, error)
}
