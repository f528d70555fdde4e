package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[int64]team.Team
}

func NewTeamRepository(seed ...team.Team) *TeamRepository {
	items := make(map[int64]team.Team, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &TeamRepository{items: items}
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

// GetByName returns the lowest id among teams sharing the name.
func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	var (
		found team.Team
		ok    bool
	)
	for _, item := range r.items {
		if item.Name != name {
			continue
		}
		if !ok || item.ID < found.ID {
			found, ok = item, true
		}
	}
	return found, ok, nil
}

func (r *TeamRepository) ListByIDs(_ context.Context, ids []int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ID]; ok {
		return existing, nil
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *TeamRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
