package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/fixture"
)

type FixtureRepository struct {
	mu    sync.RWMutex
	items map[int64]fixture.Fixture
}

func NewFixtureRepository(seed ...fixture.Fixture) *FixtureRepository {
	items := make(map[int64]fixture.Fixture, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &FixtureRepository{items: items}
}

func (r *FixtureRepository) GetByID(_ context.Context, id int64) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *FixtureRepository) Create(_ context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("create fixture: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ID]; ok {
		return existing, nil
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *FixtureRepository) ListBySeason(_ context.Context, seasonID int64) ([]fixture.Fixture, error) {
	return r.collect(func(item fixture.Fixture) bool { return item.SeasonID == seasonID }), nil
}

func (r *FixtureRepository) ListBySeasonAndTeam(_ context.Context, seasonID, teamID int64) ([]fixture.Fixture, error) {
	return r.collect(func(item fixture.Fixture) bool {
		return item.SeasonID == seasonID && item.Involves(teamID)
	}), nil
}

func (r *FixtureRepository) collect(match func(fixture.Fixture) bool) []fixture.Fixture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, item := range r.items {
		if match(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
