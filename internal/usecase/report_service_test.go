package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/country"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportFixture() *memoryRepos {
	kickoff := time.Date(2023, 8, 11, 19, 0, 0, 0, time.UTC)
	repos := newMemoryRepos()
	repos.countries = memory.NewCountryRepository(
		country.Country{ID: 1, Name: "England", Code: "GB"},
		country.Country{ID: 2, Name: "Spain", Code: "ES"},
	)
	repos.competitions = memory.NewCompetitionRepository(
		competition.Competition{ID: 39, CountryID: 1, Name: "Premier League", Type: "League"},
		competition.Competition{ID: 45, CountryID: 1, Name: "FA Cup", Type: "Cup"},
		competition.Competition{ID: 140, CountryID: 2, Name: "La Liga", Type: "League"},
	)
	repos.seasons = memory.NewSeasonRepository(
		season.Season{ID: 7, LeagueID: 39, Year: 2023, TotalTeams: 3},
		season.Season{ID: 8, LeagueID: 45, Year: 2023},
		season.Season{ID: 9, LeagueID: 140, Year: 2023},
	)
	repos.teams = memory.NewTeamRepository(
		teamNamed(33, "Manchester United"),
		teamNamed(40, "Liverpool"),
		teamNamed(50, "Manchester City"),
	)
	repos.venues = memory.NewVenueRepository(
		venue.Venue{ID: 556, Name: ptr("Old Trafford")},
		venue.Placeholder(50),
	)
	repos.standings = memory.NewStandingRepository(
		standing.Standing{TeamID: 40, SeasonID: 7, Position: 2, Points: 70},
		standing.Standing{TeamID: 50, SeasonID: 7, Position: 1, Points: 89},
	)
	repos.fixtures = memory.NewFixtureRepository(
		fixture.Fixture{ID: 2, SeasonID: 7, CompetitionID: 39, HomeTeamID: 50, AwayTeamID: 33, VenueID: venue.PlaceholderID(50), Date: kickoff.Add(24 * time.Hour), ShortStatus: "FT", Round: "Regular Season - 2"},
		fixture.Fixture{ID: 1, SeasonID: 7, CompetitionID: 39, HomeTeamID: 33, AwayTeamID: 50, VenueID: 556, Date: kickoff, ShortStatus: "FT", Round: "Regular Season - 1"},
		fixture.Fixture{ID: 3, SeasonID: 8, CompetitionID: 45, HomeTeamID: 33, AwayTeamID: 40, VenueID: 556, Date: kickoff, ShortStatus: "FT", Round: "Final"},
	)
	repos.fixtureStats = memory.NewFixtureStatsRepository(fixturestats.FixtureStats{
		FixtureID: 1,
		Home:      fixturestats.TeamStatistics{TeamID: 33, ShotsOnGoal: ptr(5)},
		Away:      fixturestats.TeamStatistics{TeamID: 50, ShotsOnGoal: ptr(2)},
	})
	repos.teamSeasons = memory.NewTeamSeasonRepository(
		teamseason.Association{TeamID: 33, SeasonID: 7, CompetitionID: 39, VenueID: 556},
	)
	return repos
}

func TestReportService_Competitions(t *testing.T) {
	t.Parallel()

	service := NewReportService(newReportFixture().repositories(), nil)

	all, err := service.Competitions(context.Background(), CompetitionQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "England", all[0].CountryName)

	cups, err := service.Competitions(context.Background(), CompetitionQuery{Country: "England", Type: "cup"})
	require.NoError(t, err)
	require.Len(t, cups, 1)
	assert.Equal(t, int64(45), cups[0].Competition.ID)

	_, err = service.Competitions(context.Background(), CompetitionQuery{Country: "Narnia"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_Seasons(t *testing.T) {
	t.Parallel()

	service := NewReportService(newReportFixture().repositories(), nil)

	byCountry, err := service.Seasons(context.Background(), SeasonQuery{Country: "Spain"})
	require.NoError(t, err)
	require.Len(t, byCountry, 1)
	assert.Equal(t, "La Liga", byCountry[0].CompetitionName)

	byCompetition, err := service.Seasons(context.Background(), SeasonQuery{Competition: "FA Cup", Year: 2023})
	require.NoError(t, err)
	require.Len(t, byCompetition, 1)
	assert.Equal(t, int64(8), byCompetition[0].Season.ID)

	all, err := service.Seasons(context.Background(), SeasonQuery{Year: 2023})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = service.Seasons(context.Background(), SeasonQuery{Year: 12})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReportService_TeamsAndVenues(t *testing.T) {
	t.Parallel()

	service := NewReportService(newReportFixture().repositories(), nil)

	teams, err := service.Teams(context.Background(), premierLeague2023)
	require.NoError(t, err)
	names := make([]string, 0, len(teams.Teams))
	for _, item := range teams.Teams {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Liverpool", "Manchester City", "Manchester United"}, names)

	venues, err := service.Venues(context.Background(), premierLeague2023)
	require.NoError(t, err)
	require.Len(t, venues.Venues, 2)
	assert.Equal(t, venue.PlaceholderID(50), venues.Venues[0].ID)
	assert.Equal(t, "Old Trafford", venues.Venues[1].DisplayName())
}

func TestReportService_Standings(t *testing.T) {
	t.Parallel()

	service := NewReportService(newReportFixture().repositories(), nil)

	report, err := service.Standings(context.Background(), premierLeague2023)
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Manchester City", report.Rows[0].TeamName)
	assert.Equal(t, 1, report.Rows[0].Standing.Position)

	_, err = service.Standings(context.Background(), SeasonSelector{Competition: "Premier League", Year: 1999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_Fixtures(t *testing.T) {
	t.Parallel()

	service := NewReportService(newReportFixture().repositories(), nil)

	report, err := service.Fixtures(context.Background(), premierLeague2023, "")
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, int64(1), report.Rows[0].Fixture.ID)
	assert.Equal(t, "1", report.Rows[0].Round)
	assert.Equal(t, "Old Trafford", report.Rows[0].Venue)
	assert.Equal(t, "-", report.Rows[1].Venue)
	assert.Equal(t, "Manchester City", report.Rows[1].HomeTeam)

	cup, err := service.Fixtures(context.Background(), SeasonSelector{Competition: "FA Cup", Year: 2023}, "Liverpool")
	require.NoError(t, err)
	require.NotNil(t, cup.Team)
	require.Len(t, cup.Rows, 1)
	assert.Equal(t, "Final", cup.Rows[0].Round)
}

func TestReportService_FixtureStats(t *testing.T) {
	t.Parallel()

	service := NewReportService(newReportFixture().repositories(), nil)

	report, err := service.FixtureStats(context.Background(), premierLeague2023, "Manchester United", "Manchester City")
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	require.NotNil(t, report.Rows[0].Stats)
	assert.Equal(t, 5, *report.Rows[0].Stats.Home.ShotsOnGoal)
	assert.Nil(t, report.Rows[1].Stats)

	_, err = service.FixtureStats(context.Background(), premierLeague2023, "33", "33")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoundLabel(t *testing.T) {
	t.Parallel()

	pl := competition.Competition{ID: PremierLeagueID}
	other := competition.Competition{ID: 140}
	f := fixture.Fixture{Round: "Regular Season - 12"}

	assert.Equal(t, "12", roundLabel(pl, f))
	assert.Equal(t, "Regular Season - 12", roundLabel(other, f))
	assert.Equal(t, "Semi-finals", roundLabel(pl, fixture.Fixture{Round: "Semi-finals"}))
}
