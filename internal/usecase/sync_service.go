package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/country"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// DefaultExpectedStandings is the table size assumed for a season whose team
// count is still unknown.
const DefaultExpectedStandings = 20

// Repositories bundles the persistence ports the use cases depend on.
type Repositories struct {
	Countries    country.Repository
	Competitions competition.Repository
	Venues       venue.Repository
	Teams        team.Repository
	Seasons      season.Repository
	Standings    standing.Repository
	Fixtures     fixture.Repository
	FixtureStats fixturestats.Repository
	TeamSeasons  teamseason.Repository
}

func (r Repositories) validate() error {
	switch {
	case r.Countries == nil:
		return fmt.Errorf("%w: country repository is not configured", ErrDependencyUnavailable)
	case r.Competitions == nil:
		return fmt.Errorf("%w: competition repository is not configured", ErrDependencyUnavailable)
	case r.Venues == nil:
		return fmt.Errorf("%w: venue repository is not configured", ErrDependencyUnavailable)
	case r.Teams == nil:
		return fmt.Errorf("%w: team repository is not configured", ErrDependencyUnavailable)
	case r.Seasons == nil:
		return fmt.Errorf("%w: season repository is not configured", ErrDependencyUnavailable)
	case r.Standings == nil:
		return fmt.Errorf("%w: standing repository is not configured", ErrDependencyUnavailable)
	case r.Fixtures == nil:
		return fmt.Errorf("%w: fixture repository is not configured", ErrDependencyUnavailable)
	case r.FixtureStats == nil:
		return fmt.Errorf("%w: fixture stats repository is not configured", ErrDependencyUnavailable)
	case r.TeamSeasons == nil:
		return fmt.Errorf("%w: team season repository is not configured", ErrDependencyUnavailable)
	}
	return nil
}

type SyncConfig struct {
	// ExpectedStandings is used when a season has no ingested teams yet.
	ExpectedStandings int
}

// SyncService runs the ingestion workflow: every step looks entities up
// before inserting them, so re-running a step resumes where it stopped.
type SyncService struct {
	repos    Repositories
	provider FootballProvider
	pacer    Pacer
	logger   *logging.Logger
	ids      id.Generator
	validate *validator.Validate
	cfg      SyncConfig
}

func NewSyncService(
	repos Repositories,
	provider FootballProvider,
	pacer Pacer,
	logger *logging.Logger,
	ids id.Generator,
	cfg SyncConfig,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if pacer == nil {
		pacer = noopPacer{}
	}
	if ids == nil {
		ids = id.NewRunIDGenerator()
	}
	if cfg.ExpectedStandings <= 0 {
		cfg.ExpectedStandings = DefaultExpectedStandings
	}

	return &SyncService{
		repos:    repos,
		provider: provider,
		pacer:    pacer,
		logger:   logger,
		ids:      ids,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (s *SyncService) ready() error {
	if s.provider == nil {
		return fmt.Errorf("%w: football provider is not configured", ErrDependencyUnavailable)
	}
	return s.repos.validate()
}

// runLogger tags every line of one command invocation with a shared run id.
func (s *SyncService) runLogger(operation string) *logging.Logger {
	runID, err := s.ids.NewID()
	if err != nil {
		s.logger.Warn("generate run id failed", "operation", operation, "error", err)
		runID = "unknown"
	}
	return s.logger.With("run_id", runID, "operation", operation)
}

func (s *SyncService) resolveCompetition(ctx context.Context, log *logging.Logger, name, countryName string) (competition.Competition, error) {
	return resolveCompetition(ctx, s.repos, log, name, countryName)
}
