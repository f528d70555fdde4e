package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

type fakeProvider struct {
	teams     int
	standings int
}

func (p fakeProvider) FetchCompetitions(_ context.Context, country string) (usecase.ExternalCompetitions, error) {
	england := usecase.ExternalCountry{Name: "England", Code: "GB"}
	return usecase.ExternalCompetitions{
		Country: country,
		Results: 2,
		Competitions: []usecase.ExternalCompetition{
			{ID: 39, Name: "Premier League", Type: "League", Country: england},
			{ID: 45, Name: "FA Cup", Type: "Cup", Country: england},
		},
	}, nil
}

func (p fakeProvider) FetchTeams(context.Context, int64, int) ([]usecase.ExternalTeamVenue, error) {
	out := make([]usecase.ExternalTeamVenue, 0, p.teams)
	for i := 1; i <= p.teams; i++ {
		out = append(out, usecase.ExternalTeamVenue{
			Team: usecase.ExternalTeam{ID: int64(i), Name: fmt.Sprintf("Club %02d", i)},
		})
	}
	return out, nil
}

func (p fakeProvider) FetchStandings(context.Context, int64, int) ([]usecase.ExternalStanding, error) {
	out := make([]usecase.ExternalStanding, 0, p.standings)
	for i := 1; i <= p.standings; i++ {
		out = append(out, usecase.ExternalStanding{
			Team:    usecase.ExternalTeam{ID: int64(i), Name: fmt.Sprintf("Club %02d", i)},
			Rank:    i,
			Points:  90 - i,
			Overall: usecase.ExternalRecord{Played: 38, Won: 20, Drawn: 10, Lost: 8, GoalsFor: 57, GoalsAgainst: 24},
		})
	}
	return out, nil
}

func (p fakeProvider) FetchFixtures(context.Context, int64, int) ([]usecase.ExternalFixture, error) {
	return nil, fmt.Errorf("%w: fixtures", usecase.ErrEmptyResult)
}

func (p fakeProvider) FetchFixtureStatistics(context.Context, int64) ([]usecase.ExternalTeamStatistics, error) {
	return nil, fmt.Errorf("%w: statistics", usecase.ErrEmptyResult)
}

// memoryBackend keeps state across run calls, like a database would.
func memoryBackend(provider usecase.FootballProvider) backend {
	repos := usecase.Repositories{
		Countries:    memory.NewCountryRepository(),
		Competitions: memory.NewCompetitionRepository(),
		Venues:       memory.NewVenueRepository(),
		Teams:        memory.NewTeamRepository(),
		Seasons:      memory.NewSeasonRepository(),
		Standings:    memory.NewStandingRepository(),
		Fixtures:     memory.NewFixtureRepository(),
		FixtureStats: memory.NewFixtureStatsRepository(),
		TeamSeasons:  memory.NewTeamSeasonRepository(),
	}
	svc := services{
		sync:    usecase.NewSyncService(repos, provider, nil, logging.NewNop(), nil, usecase.SyncConfig{}),
		reports: usecase.NewReportService(repos, logging.NewNop()),
	}
	return backend{
		open: func(context.Context, bool) (services, func(), error) {
			return svc, func() {}, nil
		},
		migrate: func(context.Context) (bool, error) { return true, nil },
	}
}

func runArgs(t *testing.T, b backend, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, b)
	return code, stdout.String(), stderr.String()
}

func TestRun_PremierLeagueStandings(t *testing.T) {
	t.Parallel()

	b := memoryBackend(fakeProvider{teams: 20, standings: 20})

	code, out, _ := runArgs(t, b, "fetch-competitions", "England")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "2 competitions fetched, 2 added")

	code, _, _ = runArgs(t, b, "fetch-teams", "Premier League", "2023")
	require.Equal(t, exitOK, code)

	code, out, _ = runArgs(t, b, "fetch-standings", "Premier League", "2023")
	require.Equal(t, exitOK, code)
	for _, header := range []string{"Position", "Team", "Played", "Won", "Drawn", "Lost", "For", "Against", "Diff", "Points"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "Club 01")
	assert.Contains(t, out, "Club 20")
	assert.Contains(t, out, "33")

	code, out, _ = runArgs(t, b, "show-standings", "39", "2023")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Premier League 2023 standings")
}

func TestRun_CupHasNoStandings(t *testing.T) {
	t.Parallel()

	b := memoryBackend(fakeProvider{teams: 4})
	require.Equal(t, exitOK, first(runArgs(t, b, "fetch-competitions", "England")))
	require.Equal(t, exitOK, first(runArgs(t, b, "fetch-teams", "FA Cup", "2023")))

	code, out, _ := runArgs(t, b, "fetch-standings", "FA Cup", "2023")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "FA Cup is a cup competition, there are no standings.")
	assert.NotContains(t, out, "Position")
}

func TestRun_ErrorExitCodes(t *testing.T) {
	t.Parallel()

	b := memoryBackend(fakeProvider{teams: 20, standings: 20})
	require.Equal(t, exitOK, first(runArgs(t, b, "fetch-competitions", "England")))
	require.Equal(t, exitOK, first(runArgs(t, b, "fetch-teams", "Premier League", "2023")))

	t.Run("empty provider result exits zero", func(t *testing.T) {
		code, out, _ := runArgs(t, b, "fetch-fixtures", "Premier League", "2023")
		assert.Equal(t, exitOK, code)
		assert.Contains(t, out, emptyResultMessage)
	})

	t.Run("missing season prints guidance", func(t *testing.T) {
		code, _, errOut := runArgs(t, b, "show-standings", "Premier League", "2022")
		assert.Equal(t, exitFailure, code)
		assert.Contains(t, errOut, missingDataHint)
	})

	t.Run("non numeric year is a usage error", func(t *testing.T) {
		code, _, errOut := runArgs(t, b, "show-standings", "Premier League", "last")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "is not a number")
	})

	t.Run("wrong argument count is a usage error", func(t *testing.T) {
		code, _, _ := runArgs(t, b, "fetch-teams", "Premier League")
		assert.Equal(t, exitUsage, code)
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		code, _, _ := runArgs(t, b, "show-countries", "--bogus")
		assert.Equal(t, exitUsage, code)
	})
}

func TestRun_InitDB(t *testing.T) {
	t.Parallel()

	code, out, _ := runArgs(t, memoryBackend(fakeProvider{}), "init-db")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Database schema created.")
}

func first(code int, _, _ string) int {
	return code
}
