package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func TestNewRepositories_CachesLookupHeavyRepositories(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(nil, config.Config{ReportCacheTTL: time.Minute})

	require.IsType(t, &cache.TeamRepository{}, repos.Teams)
	require.IsType(t, &cache.VenueRepository{}, repos.Venues)
	require.IsType(t, &cache.CompetitionRepository{}, repos.Competitions)
	require.IsType(t, &postgres.StandingRepository{}, repos.Standings)
	require.NotNil(t, repos.TeamSeasons)
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	client := NewProvider(config.Config{
		APIFootballBaseURL:         "https://example.test/",
		APIFootballHost:            "example.test",
		APIFootballTimeout:         time.Second,
		APIFootballCircuitEnabled:  true,
		APIFootballCircuitFailures: 2,
	}, logging.NewNop())
	require.NotNil(t, client)
}
