package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
)

type fixtureStatsKey struct {
	fixtureID  int64
	homeTeamID int64
	awayTeamID int64
}

type FixtureStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[fixtureStatsKey]fixturestats.FixtureStats
}

func NewFixtureStatsRepository(seed ...fixturestats.FixtureStats) *FixtureStatsRepository {
	r := &FixtureStatsRepository{items: make(map[fixtureStatsKey]fixturestats.FixtureStats, len(seed))}
	for _, item := range seed {
		r.store(item)
	}
	return r
}

func (r *FixtureStatsRepository) ExistsForFixture(_ context.Context, fixtureID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key := range r.items {
		if key.fixtureID == fixtureID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FixtureStatsRepository) ListByFixtureIDs(_ context.Context, fixtureIDs []int64) ([]fixturestats.FixtureStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(fixtureIDs))
	for _, id := range fixtureIDs {
		wanted[id] = struct{}{}
	}

	out := make([]fixturestats.FixtureStats, 0, len(fixtureIDs))
	for key, item := range r.items {
		if _, ok := wanted[key.fixtureID]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FixtureStatsRepository) Create(_ context.Context, item fixturestats.FixtureStats) (fixturestats.FixtureStats, error) {
	if err := item.Validate(); err != nil {
		return fixturestats.FixtureStats{}, fmt.Errorf("create fixture stats: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[keyOf(item)]; ok {
		return existing, nil
	}
	return r.store(item), nil
}

func (r *FixtureStatsRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *FixtureStatsRepository) store(item fixturestats.FixtureStats) fixturestats.FixtureStats {
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	} else if item.ID > r.nextID {
		r.nextID = item.ID
	}
	r.items[keyOf(item)] = item
	return item
}

func keyOf(item fixturestats.FixtureStats) fixtureStatsKey {
	return fixtureStatsKey{
		fixtureID:  item.FixtureID,
		homeTeamID: item.Home.TeamID,
		awayTeamID: item.Away.TeamID,
	}
}
