// Package cache decorates repositories with read-through lookups. Rows the
// workflow writes are immutable once created, so entries are only replaced
// by the decorator's own Create.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
	basecache "github.com/riskibarqy/football-stats/internal/platform/cache"
)

// lookup remembers misses too, so report rows naming an unknown id do not
// query again.
type lookup[T any] struct {
	value  T
	exists bool
}

type byID[T any] struct {
	prefix string
	store  *basecache.Store[lookup[T]]
}

func newByID[T any](prefix string, ttl time.Duration) byID[T] {
	return byID[T]{prefix: prefix, store: basecache.NewStore[lookup[T]](ttl)}
}

func (c byID[T]) key(id int64) string {
	return c.prefix + ":" + strconv.FormatInt(id, 10)
}

func (c byID[T]) get(ctx context.Context, id int64, load func(context.Context, int64) (T, bool, error)) (T, bool, error) {
	got, err := c.store.Lookup(ctx, c.key(id), func(ctx context.Context) (lookup[T], error) {
		item, exists, err := load(ctx, id)
		if err != nil {
			return lookup[T]{}, err
		}
		return lookup[T]{value: item, exists: exists}, nil
	})
	return got.value, got.exists, err
}

func (c byID[T]) remember(id int64, item T) {
	c.store.Put(c.key(id), lookup[T]{value: item, exists: true})
}

func (c byID[T]) Stats() basecache.Stats {
	return c.store.Stats()
}

type TeamRepository struct {
	team.Repository
	byID[team.Team]
}

func NewTeamRepository(next team.Repository, ttl time.Duration) *TeamRepository {
	return &TeamRepository{Repository: next, byID: newByID[team.Team]("team", ttl)}
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.get(ctx, id, r.Repository.GetByID)
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.Repository.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}
	r.remember(created.ID, created)
	return created, nil
}

type VenueRepository struct {
	venue.Repository
	byID[venue.Venue]
}

func NewVenueRepository(next venue.Repository, ttl time.Duration) *VenueRepository {
	return &VenueRepository{Repository: next, byID: newByID[venue.Venue]("venue", ttl)}
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (venue.Venue, bool, error) {
	return r.get(ctx, id, r.Repository.GetByID)
}

func (r *VenueRepository) Create(ctx context.Context, item venue.Venue) (venue.Venue, error) {
	created, err := r.Repository.Create(ctx, item)
	if err != nil {
		return venue.Venue{}, err
	}
	r.remember(created.ID, created)
	return created, nil
}

type CompetitionRepository struct {
	competition.Repository
	byID[competition.Competition]
}

func NewCompetitionRepository(next competition.Repository, ttl time.Duration) *CompetitionRepository {
	return &CompetitionRepository{Repository: next, byID: newByID[competition.Competition]("competition", ttl)}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (competition.Competition, bool, error) {
	return r.get(ctx, id, r.Repository.GetByID)
}

func (r *CompetitionRepository) Create(ctx context.Context, item competition.Competition) (competition.Competition, error) {
	created, err := r.Repository.Create(ctx, item)
	if err != nil {
		return competition.Competition{}, err
	}
	r.remember(created.ID, created)
	return created, nil
}
