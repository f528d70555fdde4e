// Package app wires configuration, storage, the provider client and the use
// cases into one runnable unit for the CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-stats/external/apifootball"
	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/infrastructure/migration"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-stats/internal/observability"
	"github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/resilience"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type App struct {
	Config  config.Config
	Logger  *logging.Logger
	DB      *sqlx.DB
	Sync    *usecase.SyncService
	Reports *usecase.ReportService

	closers []func(context.Context) error
}

// New opens the database and builds the services. Close must be called to
// flush telemetry and release the pool.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{Config: cfg, Logger: logger}

	shutdownTelemetry, err := observability.Start(cfg, logger)
	a.closers = append(a.closers, shutdownTelemetry)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("start telemetry: %w", err)
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.DB = db
	a.closers = append(a.closers, func(context.Context) error { return db.Close() })

	repos := NewRepositories(db, cfg)
	provider := NewProvider(cfg, logger)

	a.Sync = usecase.NewSyncService(
		repos,
		provider,
		usecase.NewFixedDelayPacer(cfg.FixtureStatsDelay),
		logger,
		id.NewRunIDGenerator(),
		usecase.SyncConfig{ExpectedStandings: cfg.StandingsExpectedTeams},
	)
	a.Reports = usecase.NewReportService(repos, logger)

	return a, nil
}

// NewRepositories builds the postgres repositories. Lookups repeated for
// every report row go through read-through caches.
func NewRepositories(db *sqlx.DB, cfg config.Config) usecase.Repositories {
	return usecase.Repositories{
		Countries:    postgres.NewCountryRepository(db),
		Competitions: cache.NewCompetitionRepository(postgres.NewCompetitionRepository(db), cfg.ReportCacheTTL),
		Venues:       cache.NewVenueRepository(postgres.NewVenueRepository(db), cfg.ReportCacheTTL),
		Teams:        cache.NewTeamRepository(postgres.NewTeamRepository(db), cfg.ReportCacheTTL),
		Seasons:      postgres.NewSeasonRepository(db),
		Standings:    postgres.NewStandingRepository(db),
		Fixtures:     postgres.NewFixtureRepository(db),
		FixtureStats: postgres.NewFixtureStatsRepository(db),
		TeamSeasons:  postgres.NewTeamSeasonRepository(db),
	}
}

func NewProvider(cfg config.Config, logger *logging.Logger) *apifootball.Client {
	return apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:           cfg.APIFootballBaseURL,
		Host:              cfg.APIFootballHost,
		Key:               cfg.APIFootballKey,
		Timeout:           cfg.APIFootballTimeout,
		RequestsPerMinute: cfg.APIFootballRequestsPerMinute,
		Logger:            logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailures,
			Cooldown:         cfg.APIFootballCircuitOpenFor,
			Probes:           cfg.APIFootballCircuitHalfOpen,
		},
	})
}

// Migrate applies pending schema migrations and reports whether any ran.
func Migrate(cfg config.Config, logger *logging.Logger) (bool, error) {
	m, err := migration.New(cfg.DBURL, cfg.MigrationsDir, logger)
	if err != nil {
		return false, err
	}
	defer m.Close()

	changed, err := m.Up()
	if err != nil {
		return false, fmt.Errorf("apply migrations: %w", err)
	}
	return changed, nil
}

// Close runs the registered closers in reverse order.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
