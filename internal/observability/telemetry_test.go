package observability

import (
	"context"
	"testing"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	t.Parallel()

	shutdown, err := Start(config.Config{ServiceName: "footstats", AppEnv: config.EnvDev}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestStart_TracingWithoutDSNStaysOff(t *testing.T) {
	t.Parallel()

	require.False(t, tracingEnabled(config.Config{UptraceEnabled: true}, logging.NewNop()))
	require.True(t, tracingEnabled(config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev/1"}, logging.NewNop()))

	shutdown, err := Start(config.Config{UptraceEnabled: true}, nil)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestProfilerConfig(t *testing.T) {
	t.Parallel()

	got := profilerConfig(config.Config{
		AppEnv:                 config.EnvProd,
		ServiceName:            "footstats",
		PyroscopeAppName:       "footstats-cli",
		PyroscopeServerAddress: "http://pyroscope:4040",
		PyroscopeUploadRate:    15 * time.Second,
	})
	require.Equal(t, "footstats-cli", got.ApplicationName)
	require.Equal(t, "http://pyroscope:4040", got.ServerAddress)
	require.Equal(t, map[string]string{"env": "prod", "service": "footstats"}, got.Tags)
	require.Contains(t, got.ProfileTypes, pyroscope.ProfileCPU)
}
