package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
)

type teamSeasonKey struct {
	teamID   int64
	seasonID int64
}

type TeamSeasonRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[teamSeasonKey]teamseason.Association
}

func NewTeamSeasonRepository(seed ...teamseason.Association) *TeamSeasonRepository {
	r := &TeamSeasonRepository{items: make(map[teamSeasonKey]teamseason.Association, len(seed))}
	for _, item := range seed {
		r.store(item)
	}
	return r
}

func (r *TeamSeasonRepository) Exists(_ context.Context, teamID, seasonID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[teamSeasonKey{teamID: teamID, seasonID: seasonID}]
	return ok, nil
}

func (r *TeamSeasonRepository) Create(_ context.Context, item teamseason.Association) (teamseason.Association, error) {
	if err := item.Validate(); err != nil {
		return teamseason.Association{}, fmt.Errorf("create team season: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[teamSeasonKey{teamID: item.TeamID, seasonID: item.SeasonID}]; ok {
		return existing, nil
	}
	return r.store(item), nil
}

func (r *TeamSeasonRepository) ListByTeam(_ context.Context, teamID int64) ([]teamseason.Association, error) {
	return r.collect(func(item teamseason.Association) bool { return item.TeamID == teamID }), nil
}

func (r *TeamSeasonRepository) ListBySeason(_ context.Context, seasonID int64) ([]teamseason.Association, error) {
	return r.collect(func(item teamseason.Association) bool { return item.SeasonID == seasonID }), nil
}

func (r *TeamSeasonRepository) collect(match func(teamseason.Association) bool) []teamseason.Association {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamseason.Association, 0)
	for _, item := range r.items {
		if match(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *TeamSeasonRepository) store(item teamseason.Association) teamseason.Association {
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	} else if item.ID > r.nextID {
		r.nextID = item.ID
	}
	r.items[teamSeasonKey{teamID: item.TeamID, seasonID: item.SeasonID}] = item
	return item
}
