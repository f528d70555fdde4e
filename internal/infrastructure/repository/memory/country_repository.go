package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/country"
)

type CountryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[string]country.Country
}

func NewCountryRepository(seed ...country.Country) *CountryRepository {
	r := &CountryRepository{items: make(map[string]country.Country, len(seed))}
	for _, item := range seed {
		r.store(item)
	}
	return r
}

func (r *CountryRepository) GetByName(_ context.Context, name string) (country.Country, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[strings.TrimSpace(name)]
	return item, ok, nil
}

// Create inserts item unless a country with the same name exists, in which
// case the stored row is returned unchanged.
func (r *CountryRepository) Create(_ context.Context, item country.Country) (country.Country, error) {
	if err := item.Validate(); err != nil {
		return country.Country{}, fmt.Errorf("create country: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[strings.TrimSpace(item.Name)]; ok {
		return existing, nil
	}
	return r.store(item), nil
}

func (r *CountryRepository) List(_ context.Context) ([]country.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]country.Country, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CountryRepository) store(item country.Country) country.Country {
	item.Name = strings.TrimSpace(item.Name)
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	} else if item.ID > r.nextID {
		r.nextID = item.ID
	}
	r.items[item.Name] = item
	return item
}
