package fixturestats

import "context"

type Repository interface {
	ExistsForFixture(ctx context.Context, fixtureID int64) (bool, error)
	ListByFixtureIDs(ctx context.Context, fixtureIDs []int64) ([]FixtureStats, error)
	Create(ctx context.Context, item FixtureStats) (FixtureStats, error)
}
