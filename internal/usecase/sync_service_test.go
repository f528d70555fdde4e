package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/country"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var premierLeague2023 = SeasonSelector{Competition: "Premier League", Year: 2023}

func TestSyncService_FetchCompetitions_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	provider := newStubProvider()
	provider.competitions = englandCompetitions()
	service := newTestSyncService(repos, provider, nil)

	first, err := service.FetchCompetitions(ctx, "England")
	require.NoError(t, err)
	assert.True(t, first.CountryCreated)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, "GB", first.Country.Code)
	assert.Equal(t, 2, first.Country.NumComps)

	second, err := service.FetchCompetitions(ctx, "England")
	require.NoError(t, err)
	assert.False(t, second.CountryCreated)
	assert.Zero(t, second.Created)
	assert.Equal(t, first.Country.ID, second.Country.ID)

	comps, err := repos.competitions.List(ctx, competition.Filter{})
	require.NoError(t, err)
	assert.Len(t, comps, 2)
}

func TestSyncService_FetchCompetitions_RequiresCountry(t *testing.T) {
	t.Parallel()

	service := newTestSyncService(newMemoryRepos(), newStubProvider(), nil)
	_, err := service.FetchCompetitions(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSyncService_FetchCompetitions_PropagatesEmptyResult(t *testing.T) {
	t.Parallel()

	repos := newMemoryRepos()
	provider := newStubProvider()
	provider.err = ErrEmptyResult
	service := newTestSyncService(repos, provider, nil)

	_, err := service.FetchCompetitions(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrEmptyResult)

	items, err := repos.countries.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSyncService_FetchTeams_CreatesSeasonAndCountsTeams(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	provider := newStubProvider()
	provider.competitions = englandCompetitions()
	provider.teams = premierLeagueTeams(6)
	service := newTestSyncService(repos, provider, nil)

	_, err := service.FetchCompetitions(ctx, "England")
	require.NoError(t, err)

	result, err := service.FetchTeams(ctx, premierLeague2023)
	require.NoError(t, err)
	assert.True(t, result.SeasonCreated)
	assert.Equal(t, 6, result.TeamsCreated)
	assert.Equal(t, 6, result.VenuesCreated)
	assert.Equal(t, 6, result.Season.TotalTeams)

	placeholder, ok, err := repos.venues.GetByID(ctx, venue.PlaceholderID(3))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, placeholder.IsPlaceholder())
	assert.Nil(t, placeholder.Name)

	again, err := service.FetchTeams(ctx, premierLeague2023)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	assert.Equal(t, 1, provider.calls["teams"])
	assert.Equal(t, 6, again.Season.TotalTeams)
}

func TestSyncService_FetchTeams_InvalidYear(t *testing.T) {
	t.Parallel()

	service := newTestSyncService(newMemoryRepos(), newStubProvider(), nil)
	_, err := service.FetchTeams(context.Background(), SeasonSelector{Competition: "39", Year: 1700})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSyncService_FetchTeams_UnknownCompetition(t *testing.T) {
	t.Parallel()

	service := newTestSyncService(newMemoryRepos(), newStubProvider(), nil)
	_, err := service.FetchTeams(context.Background(), SeasonSelector{Competition: "Serie A", Year: 2023})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.FetchTeams(context.Background(), SeasonSelector{Competition: "135", Year: 2023})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncService_FetchStandings_FullReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"})
	repos.seasons = memory.NewSeasonRepository(season.Season{ID: 7, LeagueID: 39, Year: 2023, TotalTeams: 20})

	stale := make([]standing.Standing, 0, 5)
	for i := 1; i <= 5; i++ {
		stale = append(stale, standing.Standing{TeamID: int64(1000 + i), SeasonID: 7, Position: i})
	}
	repos.standings = memory.NewStandingRepository(stale...)

	provider := newStubProvider()
	provider.standings = standingsTable(20)
	service := newTestSyncService(repos, provider, nil)

	result, err := service.FetchStandings(ctx, premierLeague2023)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 20, result.Stored)
	assert.Equal(t, 20, result.TeamsCreated)

	rows, err := repos.standings.ListBySeason(ctx, 7)
	require.NoError(t, err)
	require.Len(t, rows, 20)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Position)
		assert.Less(t, row.TeamID, int64(1000), "stale row survived: %+v", row)
	}

	again, err := service.FetchStandings(ctx, premierLeague2023)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	assert.Equal(t, SkipReasonUpToDate, again.SkipReason)
	assert.Equal(t, 1, provider.calls["standings"])
}

func TestSyncService_FetchStandings_DerivesGoalDifference(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"})
	repos.seasons = memory.NewSeasonRepository(season.Season{ID: 7, LeagueID: 39, Year: 2023, TotalTeams: 20})

	provider := newStubProvider()
	provider.standings = []ExternalStanding{{
		Team:    ExternalTeam{ID: 50, Name: "Manchester City"},
		Rank:    1,
		Points:  89,
		Overall: ExternalRecord{Played: 38, Won: 28, Drawn: 5, Lost: 5, GoalsFor: 57, GoalsAgainst: 24},
	}}
	service := newTestSyncService(repos, provider, nil)

	_, err := service.FetchStandings(ctx, premierLeague2023)
	require.NoError(t, err)

	rows, err := repos.standings.ListBySeason(ctx, 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 33, rows[0].Overall.GoalDiff)
}

func TestSyncService_FetchStandings_SkipsCups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 45, CountryID: 1, Name: "FA Cup", Type: "Cup"})
	repos.seasons = memory.NewSeasonRepository(season.Season{ID: 3, LeagueID: 45, Year: 2023, TotalTeams: 64})

	provider := newStubProvider()
	provider.standings = standingsTable(20)
	service := newTestSyncService(repos, provider, nil)

	result, err := service.FetchStandings(ctx, SeasonSelector{Competition: "FA Cup", Year: 2023})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, SkipReasonCup, result.SkipReason)
	assert.Zero(t, provider.calls["standings"])

	count, err := repos.standings.CountBySeason(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSyncService_FetchStandings_RequiresSeason(t *testing.T) {
	t.Parallel()

	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"})
	service := newTestSyncService(repos, newStubProvider(), nil)

	_, err := service.FetchStandings(context.Background(), premierLeague2023)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncService_FetchFixtures_PlaceholderVenueAndAssociations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"})
	repos.seasons = memory.NewSeasonRepository(season.Season{ID: 7, LeagueID: 39, Year: 2023})

	kickoff := time.Date(2023, 8, 11, 19, 0, 0, 0, time.UTC)
	provider := newStubProvider()
	provider.fixtures = []ExternalFixture{
		// listed out of date order on purpose
		playedFixture(1003, 33, 40, kickoff.Add(14*24*time.Hour), ptr(int64(556))),
		playedFixture(1001, 33, 50, kickoff, nil),
		playedFixture(1002, 50, 33, kickoff.Add(7*24*time.Hour), ptr(int64(555))),
	}
	service := newTestSyncService(repos, provider, nil)

	result, err := service.FetchFixtures(ctx, premierLeague2023)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 3, result.TeamsCreated)
	assert.Equal(t, 3, result.VenuesCreated)
	assert.Equal(t, 2, result.AssociationsAdded)

	assocs, err := repos.teamSeasons.ListBySeason(ctx, 7)
	require.NoError(t, err)
	require.Len(t, assocs, 2)
	byTeam := map[int64]int64{}
	for _, a := range assocs {
		byTeam[a.TeamID] = a.VenueID
		assert.Equal(t, int64(39), a.CompetitionID)
	}
	assert.Equal(t, venue.PlaceholderID(33), byTeam[33], "earliest home fixture decides the venue")
	assert.Equal(t, int64(555), byTeam[50])

	again, err := service.FetchFixtures(ctx, premierLeague2023)
	require.NoError(t, err)
	assert.Zero(t, again.Created)
	assert.Zero(t, again.VenuesCreated)
	assert.Zero(t, again.AssociationsAdded)
	assert.Equal(t, 3, repos.venues.Len())

	stored, ok, err := repos.fixtures.GetByID(ctx, 1001)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(7), stored.SeasonID)
	assert.Equal(t, int64(39), stored.CompetitionID)
	assert.Equal(t, 2, *stored.Goals.Home)
	assert.Nil(t, stored.Penalty.Home)
}

func TestSyncService_FetchFixtureStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kickoff := time.Date(2023, 8, 11, 19, 0, 0, 0, time.UTC)
	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"})
	repos.seasons = memory.NewSeasonRepository(season.Season{ID: 7, LeagueID: 39, Year: 2023, TotalTeams: 20})
	repos.teams = memory.NewTeamRepository(
		teamNamed(33, "Manchester United"),
		teamNamed(40, "Liverpool"),
		teamNamed(50, "Manchester City"),
	)
	repos.fixtures = memory.NewFixtureRepository(
		fixture.Fixture{ID: 1, SeasonID: 7, CompetitionID: 39, HomeTeamID: 33, AwayTeamID: 40, VenueID: 556, Date: kickoff, ShortStatus: "FT"},
		fixture.Fixture{ID: 2, SeasonID: 7, CompetitionID: 39, HomeTeamID: 50, AwayTeamID: 33, VenueID: 555, Date: kickoff.Add(24 * time.Hour), ShortStatus: "FT"},
		fixture.Fixture{ID: 3, SeasonID: 7, CompetitionID: 39, HomeTeamID: 33, AwayTeamID: 50, VenueID: 556, Date: kickoff.Add(48 * time.Hour), ShortStatus: "NS"},
		fixture.Fixture{ID: 4, SeasonID: 7, CompetitionID: 39, HomeTeamID: 40, AwayTeamID: 50, VenueID: 550, Date: kickoff, ShortStatus: "FT"},
	)

	provider := newStubProvider()
	provider.statistics[1] = statisticsFor(33, 40)
	provider.statistics[2] = statisticsFor(50, 33)
	pacer := &countingPacer{}
	service := newTestSyncService(repos, provider, pacer)

	result, err := service.FetchFixtureStats(ctx, premierLeague2023, "Manchester United")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Fixtures)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Unplayed)
	assert.Equal(t, 2, pacer.waits)
	assert.Equal(t, 2, repos.fixtureStats.Len())

	stats, err := repos.fixtureStats.ListByFixtureIDs(ctx, []int64{2})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(50), stats[0].Home.TeamID)
	assert.Equal(t, 6, *stats[0].Home.ShotsOnGoal)
	assert.Nil(t, stats[0].Home.TotalShots)

	again, err := service.FetchFixtureStats(ctx, premierLeague2023, "33")
	require.NoError(t, err)
	assert.Zero(t, again.Created)
	assert.Equal(t, 2, again.Existing)
	assert.Equal(t, 2, provider.calls["statistics"])
}

func TestSyncService_FetchFixtureStats_IncompletePayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"})
	repos.seasons = memory.NewSeasonRepository(season.Season{ID: 7, LeagueID: 39, Year: 2023})
	repos.teams = memory.NewTeamRepository(teamNamed(33, "Manchester United"), teamNamed(40, "Liverpool"))
	repos.fixtures = memory.NewFixtureRepository(
		fixture.Fixture{ID: 1, SeasonID: 7, CompetitionID: 39, HomeTeamID: 33, AwayTeamID: 40, VenueID: 556, Date: time.Now(), ShortStatus: "FT"},
	)

	provider := newStubProvider()
	provider.statistics[1] = statisticsFor(33, 40)[:1]
	service := newTestSyncService(repos, provider, nil)

	_, err := service.FetchFixtureStats(ctx, premierLeague2023, "Manchester United")
	assert.ErrorIs(t, err, ErrIncompleteData)
	assert.Zero(t, repos.fixtureStats.Len())
}

func TestSyncService_FetchFixtureStats_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repos := newMemoryRepos()
	repos.competitions = memory.NewCompetitionRepository(competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"})
	repos.seasons = memory.NewSeasonRepository(season.Season{ID: 7, LeagueID: 39, Year: 2023})
	repos.teams = memory.NewTeamRepository(teamNamed(33, "Manchester United"), teamNamed(40, "Liverpool"))
	repos.fixtures = memory.NewFixtureRepository(
		fixture.Fixture{ID: 1, SeasonID: 7, CompetitionID: 39, HomeTeamID: 33, AwayTeamID: 40, VenueID: 556, Date: time.Now(), ShortStatus: "FT"},
	)
	provider := newStubProvider()
	service := newTestSyncService(repos, provider, NewFixedDelayPacer(time.Hour))

	_, err := service.FetchFixtureStats(ctx, premierLeague2023, "33")
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, provider.calls["statistics"])
}

func TestSyncService_FetchTeamStats_UsesAssociationsOfYear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kickoff := time.Date(2023, 8, 11, 19, 0, 0, 0, time.UTC)
	repos := newMemoryRepos()
	repos.seasons = memory.NewSeasonRepository(
		season.Season{ID: 7, LeagueID: 39, Year: 2023},
		season.Season{ID: 8, LeagueID: 45, Year: 2023},
		season.Season{ID: 9, LeagueID: 39, Year: 2022},
	)
	repos.teams = memory.NewTeamRepository(teamNamed(33, "Manchester United"), teamNamed(40, "Liverpool"))
	repos.fixtures = memory.NewFixtureRepository(
		fixture.Fixture{ID: 1, SeasonID: 7, CompetitionID: 39, HomeTeamID: 33, AwayTeamID: 40, VenueID: 556, Date: kickoff, ShortStatus: "FT"},
		fixture.Fixture{ID: 2, SeasonID: 8, CompetitionID: 45, HomeTeamID: 33, AwayTeamID: 40, VenueID: 556, Date: kickoff, ShortStatus: "AET"},
		fixture.Fixture{ID: 3, SeasonID: 9, CompetitionID: 39, HomeTeamID: 33, AwayTeamID: 40, VenueID: 556, Date: kickoff, ShortStatus: "FT"},
	)
	for _, seasonID := range []int64{7, 8, 9} {
		ssn, _, err := repos.seasons.GetByID(ctx, seasonID)
		require.NoError(t, err)
		_, err = repos.teamSeasons.Create(ctx, associationFor(33, ssn))
		require.NoError(t, err)
	}

	provider := newStubProvider()
	provider.statistics[1] = statisticsFor(33, 40)
	provider.statistics[2] = statisticsFor(33, 40)
	service := newTestSyncService(repos, provider, nil)

	result, err := service.FetchTeamStats(ctx, 2023, "Manchester United")
	require.NoError(t, err)
	assert.Len(t, result.Seasons, 2)
	assert.Equal(t, 2, result.Created)

	_, err = service.FetchTeamStats(ctx, 2019, "Manchester United")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncService_FetchSeason_PremierLeagueEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	provider := newStubProvider()
	provider.competitions = englandCompetitions()
	provider.teams = premierLeagueTeams(20)
	provider.standings = standingsTable(20)
	kickoff := time.Date(2023, 8, 11, 19, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 10; i++ {
		provider.fixtures = append(provider.fixtures, playedFixture(2000+i, i, 21-i, kickoff.Add(time.Duration(i)*time.Hour), nil))
		provider.statistics[2000+i] = statisticsFor(i, 21-i)
	}
	service := newTestSyncService(repos, provider, nil)

	result, err := service.FetchSeason(ctx, "England", SeasonSelector{Competition: "39", Year: 2023}, true)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Teams.Season.TotalTeams)
	assert.Equal(t, 20, result.Standings.Stored)
	assert.Equal(t, 10, result.Fixtures.Created)
	assert.Equal(t, 10, result.Fixtures.AssociationsAdded)
	require.NotNil(t, result.Stats)
	assert.Equal(t, 10, result.Stats.Created)

	report, err := NewReportService(repos.repositories(), nil).Standings(ctx, premierLeague2023)
	require.NoError(t, err)
	require.Len(t, report.Rows, 20)
	for i, row := range report.Rows {
		assert.Equal(t, i+1, row.Standing.Position)
		assert.NotEmpty(t, row.TeamName)
	}

	teamsBefore, venuesBefore := repos.teams.Len(), repos.venues.Len()
	again, err := service.FetchSeason(ctx, "England", SeasonSelector{Competition: "39", Year: 2023}, true)
	require.NoError(t, err)
	assert.Zero(t, again.Competitions.Created)
	assert.True(t, again.Teams.Skipped)
	assert.True(t, again.Standings.Skipped)
	assert.Zero(t, again.Fixtures.Created)
	assert.Zero(t, again.Fixtures.AssociationsAdded)
	assert.Zero(t, again.Stats.Created)
	assert.Equal(t, teamsBefore, repos.teams.Len())
	assert.Equal(t, venuesBefore, repos.venues.Len())

	ssn, ok, err := repos.seasons.Get(ctx, 39, 2023)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 20, ssn.TotalTeams)
}

func TestSyncService_ResolveCompetition_AmbiguousName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepos()
	repos.countries = memory.NewCountryRepository(
		country.Country{ID: 1, Name: "England"},
		country.Country{ID: 2, Name: "Ukraine"},
	)
	repos.competitions = memory.NewCompetitionRepository(
		competition.Competition{ID: 333, CountryID: 2, Name: "Premier League", Type: "League"},
		competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"},
	)
	service := newTestSyncService(repos, newStubProvider(), nil)
	log := service.runLogger("test")

	got, err := service.resolveCompetition(ctx, log, "Premier League", "")
	require.NoError(t, err)
	assert.Equal(t, int64(39), got.ID)

	got, err = service.resolveCompetition(ctx, log, "Premier League", "Ukraine")
	require.NoError(t, err)
	assert.Equal(t, int64(333), got.ID)

	_, err = service.resolveCompetition(ctx, log, "Premier League", "Narnia")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncService_MissingProvider(t *testing.T) {
	t.Parallel()

	service := NewSyncService(newMemoryRepos().repositories(), nil, nil, nil, nil, SyncConfig{})
	_, err := service.FetchCompetitions(context.Background(), "England")
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
}
