package country

import "context"

// Repository describes country persistence needs from use cases.
type Repository interface {
	GetByName(ctx context.Context, name string) (Country, bool, error)
	Create(ctx context.Context, item Country) (Country, error)
	List(ctx context.Context) ([]Country, error)
}
