package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
)

type CompetitionRepository struct {
	mu    sync.RWMutex
	items map[int64]competition.Competition
}

func NewCompetitionRepository(seed ...competition.Competition) *CompetitionRepository {
	items := make(map[int64]competition.Competition, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &CompetitionRepository{items: items}
}

func (r *CompetitionRepository) GetByID(_ context.Context, id int64) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *CompetitionRepository) ListByName(_ context.Context, name string) ([]competition.Competition, error) {
	name = strings.TrimSpace(name)
	return r.collect(func(item competition.Competition) bool { return item.Name == name }), nil
}

func (r *CompetitionRepository) List(_ context.Context, filter competition.Filter) ([]competition.Competition, error) {
	return r.collect(func(item competition.Competition) bool {
		if filter.CountryID > 0 && item.CountryID != filter.CountryID {
			return false
		}
		if filter.Type != "" && !strings.EqualFold(item.Type, filter.Type) {
			return false
		}
		return true
	}), nil
}

func (r *CompetitionRepository) Create(_ context.Context, item competition.Competition) (competition.Competition, error) {
	if err := item.Validate(); err != nil {
		return competition.Competition{}, fmt.Errorf("create competition: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ID]; ok {
		return existing, nil
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *CompetitionRepository) collect(match func(competition.Competition) bool) []competition.Competition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0)
	for _, item := range r.items {
		if match(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
