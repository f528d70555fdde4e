package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/standing"
)

type StandingRepository struct {
	mu       sync.RWMutex
	nextID   int64
	bySeason map[int64][]standing.Standing
}

func NewStandingRepository(seed ...standing.Standing) *StandingRepository {
	r := &StandingRepository{bySeason: make(map[int64][]standing.Standing)}
	for _, item := range seed {
		if item.ID == 0 {
			r.nextID++
			item.ID = r.nextID
		} else if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.bySeason[item.SeasonID] = append(r.bySeason[item.SeasonID], item)
	}
	return r
}

func (r *StandingRepository) CountBySeason(_ context.Context, seasonID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySeason[seasonID]), nil
}

func (r *StandingRepository) ListBySeason(_ context.Context, seasonID int64) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]standing.Standing(nil), r.bySeason[seasonID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *StandingRepository) ReplaceBySeason(_ context.Context, seasonID int64, items []standing.Standing) error {
	fresh := make([]standing.Standing, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.TeamID]; dup {
			continue
		}
		seen[item.TeamID] = struct{}{}
		item.SeasonID = seasonID
		if err := item.Validate(); err != nil {
			return fmt.Errorf("replace standings: %w", err)
		}
		fresh = append(fresh, item)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range fresh {
		r.nextID++
		fresh[i].ID = r.nextID
	}
	r.bySeason[seasonID] = fresh
	return nil
}
