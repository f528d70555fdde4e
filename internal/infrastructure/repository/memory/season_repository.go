package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/season"
)

type seasonKey struct {
	leagueID int64
	year     int
}

type SeasonRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]season.Season
	byKey  map[seasonKey]int64
}

func NewSeasonRepository(seed ...season.Season) *SeasonRepository {
	r := &SeasonRepository{
		items: make(map[int64]season.Season, len(seed)),
		byKey: make(map[seasonKey]int64, len(seed)),
	}
	for _, item := range seed {
		r.store(item)
	}
	return r
}

func (r *SeasonRepository) Get(_ context.Context, leagueID int64, year int) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[seasonKey{leagueID: leagueID, year: year}]
	if !ok {
		return season.Season{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *SeasonRepository) List(_ context.Context, filter season.Filter) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leagues := make(map[int64]struct{}, len(filter.LeagueIDs))
	for _, id := range filter.LeagueIDs {
		leagues[id] = struct{}{}
	}
	restrict := filter.RestrictLeagues || len(filter.LeagueIDs) > 0

	out := make([]season.Season, 0, len(r.items))
	for _, item := range r.items {
		if restrict {
			if _, ok := leagues[item.LeagueID]; !ok {
				continue
			}
		}
		if filter.Year > 0 && item.Year != filter.Year {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LeagueID != out[j].LeagueID {
			return out[i].LeagueID < out[j].LeagueID
		}
		return out[i].Year < out[j].Year
	})
	return out, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byKey[seasonKey{leagueID: item.LeagueID, year: item.Year}]; ok {
		return r.items[id], nil
	}
	return r.store(item), nil
}

func (r *SeasonRepository) IncrementTotalTeams(_ context.Context, id int64, delta int) (season.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return season.Season{}, fmt.Errorf("increment total teams: season %d not found", id)
	}
	item.TotalTeams += delta
	r.items[id] = item
	return item, nil
}

func (r *SeasonRepository) store(item season.Season) season.Season {
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	} else if item.ID > r.nextID {
		r.nextID = item.ID
	}
	r.items[item.ID] = item
	r.byKey[seasonKey{leagueID: item.LeagueID, year: item.Year}] = item.ID
	return item
}
