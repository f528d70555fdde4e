package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/riskibarqy/football-stats/internal/app"
	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

type services struct {
	sync    *usecase.SyncService
	reports *usecase.ReportService
}

// backend opens what a command needs. Tests swap it for in-memory storage.
type backend struct {
	// open builds the services. needProvider is set by commands that call
	// the remote API.
	open    func(ctx context.Context, needProvider bool) (services, func(), error)
	migrate func(ctx context.Context) (bool, error)
}

func defaultBackend() backend {
	return backend{open: openServices, migrate: migrateSchema}
}

func loadConfig() (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	return cfg, logger, nil
}

func openServices(ctx context.Context, needProvider bool) (services, func(), error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return services{}, nil, err
	}
	if needProvider {
		if err := cfg.RequireAPIKey(); err != nil {
			return services{}, nil, err
		}
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return services{}, nil, fmt.Errorf("build app: %w", err)
	}

	closeFn := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Close(shutdownCtx); err != nil {
			logger.Warn("shutdown incomplete", "error", err)
		}
		_ = logger.Sync()
	}
	return services{sync: a.Sync, reports: a.Reports}, closeFn, nil
}

func migrateSchema(context.Context) (bool, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return false, err
	}
	defer func() { _ = logger.Sync() }()

	return app.Migrate(cfg, logger)
}
