package competition

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Competition, bool, error)
	// ListByName returns every competition sharing the name, ordered by id.
	ListByName(ctx context.Context, name string) ([]Competition, error)
	List(ctx context.Context, filter Filter) ([]Competition, error)
	Create(ctx context.Context, item Competition) (Competition, error)
}
