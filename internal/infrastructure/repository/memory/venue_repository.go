package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/venue"
)

type VenueRepository struct {
	mu    sync.RWMutex
	items map[int64]venue.Venue
}

func NewVenueRepository(seed ...venue.Venue) *VenueRepository {
	items := make(map[int64]venue.Venue, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &VenueRepository{items: items}
}

func (r *VenueRepository) GetByID(_ context.Context, id int64) (venue.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *VenueRepository) ListByIDs(_ context.Context, ids []int64) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]venue.Venue, 0, len(ids))
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
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *VenueRepository) Create(_ context.Context, item venue.Venue) (venue.Venue, error) {
	if err := item.Validate(); err != nil {
		return venue.Venue{}, fmt.Errorf("create venue: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ID]; ok {
		return existing, nil
	}
	r.items[item.ID] = item
	return item, nil
}

// Len is used by tests asserting that no duplicate venues were written.
func (r *VenueRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
