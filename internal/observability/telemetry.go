// Package observability starts the optional telemetry backends: Uptrace for
// traces of the use cases, the SQL driver and the provider transport, and
// Pyroscope for continuous profiling of long statistics runs.
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/grafana/pyroscope-go"
	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// Shutdown flushes and stops whatever Start enabled.
type Shutdown func(context.Context) error

// Start enables the backends switched on in cfg. The returned Shutdown is
// never nil, even on error.
func Start(cfg config.Config, logger *logging.Logger) (Shutdown, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var stops []Shutdown
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i](ctx))
		}
		return errors.Join(errs...)
	}

	if tracingEnabled(cfg, logger) {
		uptrace.ConfigureOpentelemetry(
			uptrace.WithDSN(cfg.UptraceDSN),
			uptrace.WithServiceName(cfg.ServiceName),
			uptrace.WithServiceVersion(cfg.ServiceVersion),
			uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		)
		stops = append(stops, uptrace.Shutdown)
		logger.Info("uptrace enabled", "service_name", cfg.ServiceName, "environment", cfg.AppEnv)
	}

	if cfg.PyroscopeEnabled {
		profiler, err := pyroscope.Start(profilerConfig(cfg))
		if err != nil {
			return shutdown, fmt.Errorf("start pyroscope: %w", err)
		}
		stops = append(stops, func(context.Context) error { return profiler.Stop() })
		logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	}

	return shutdown, nil
}

func tracingEnabled(cfg config.Config, logger *logging.Logger) bool {
	switch {
	case !cfg.UptraceEnabled:
		return false
	case cfg.UptraceDSN == "":
		logger.Warn("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return false
	default:
		return true
	}
}

// profilerConfig samples CPU, heap and goroutines. Mutex and block
// profiles are left out because the workflow runs on one goroutine.
func profilerConfig(cfg config.Config) pyroscope.Config {
	return pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              map[string]string{"env": cfg.AppEnv, "service": cfg.ServiceName},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	}
}
