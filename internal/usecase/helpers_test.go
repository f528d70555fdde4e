package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type memoryRepos struct {
	countries    *memory.CountryRepository
	competitions *memory.CompetitionRepository
	venues       *memory.VenueRepository
	teams        *memory.TeamRepository
	seasons      *memory.SeasonRepository
	standings    *memory.StandingRepository
	fixtures     *memory.FixtureRepository
	fixtureStats *memory.FixtureStatsRepository
	teamSeasons  *memory.TeamSeasonRepository
}

func newMemoryRepos() *memoryRepos {
	return &memoryRepos{
		countries:    memory.NewCountryRepository(),
		competitions: memory.NewCompetitionRepository(),
		venues:       memory.NewVenueRepository(),
		teams:        memory.NewTeamRepository(),
		seasons:      memory.NewSeasonRepository(),
		standings:    memory.NewStandingRepository(),
		fixtures:     memory.NewFixtureRepository(),
		fixtureStats: memory.NewFixtureStatsRepository(),
		teamSeasons:  memory.NewTeamSeasonRepository(),
	}
}

func (m *memoryRepos) repositories() Repositories {
	return Repositories{
		Countries:    m.countries,
		Competitions: m.competitions,
		Venues:       m.venues,
		Teams:        m.teams,
		Seasons:      m.seasons,
		Standings:    m.standings,
		Fixtures:     m.fixtures,
		FixtureStats: m.fixtureStats,
		TeamSeasons:  m.teamSeasons,
	}
}

type stubProvider struct {
	competitions ExternalCompetitions
	teams        []ExternalTeamVenue
	standings    []ExternalStanding
	fixtures     []ExternalFixture
	statistics   map[int64][]ExternalTeamStatistics
	err          error
	calls        map[string]int
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		statistics: make(map[int64][]ExternalTeamStatistics),
		calls:      make(map[string]int),
	}
}

func (p *stubProvider) FetchCompetitions(_ context.Context, country string) (ExternalCompetitions, error) {
	p.calls["competitions"]++
	if p.err != nil {
		return ExternalCompetitions{}, p.err
	}
	out := p.competitions
	if out.Country == "" {
		out.Country = country
	}
	return out, nil
}

func (p *stubProvider) FetchTeams(context.Context, int64, int) ([]ExternalTeamVenue, error) {
	p.calls["teams"]++
	return p.teams, p.err
}

func (p *stubProvider) FetchStandings(context.Context, int64, int) ([]ExternalStanding, error) {
	p.calls["standings"]++
	return p.standings, p.err
}

func (p *stubProvider) FetchFixtures(context.Context, int64, int) ([]ExternalFixture, error) {
	p.calls["fixtures"]++
	return p.fixtures, p.err
}

func (p *stubProvider) FetchFixtureStatistics(_ context.Context, fixtureID int64) ([]ExternalTeamStatistics, error) {
	p.calls["statistics"]++
	if p.err != nil {
		return nil, p.err
	}
	raw, ok := p.statistics[fixtureID]
	if !ok {
		return nil, fmt.Errorf("%w: fixture=%d", ErrEmptyResult, fixtureID)
	}
	return raw, nil
}

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	return ctx.Err()
}

type fixedIDs struct{}

func (fixedIDs) NewID() (string, error) { return "run-test", nil }

func newTestSyncService(repos *memoryRepos, provider FootballProvider, pacer Pacer) *SyncService {
	return NewSyncService(repos.repositories(), provider, pacer, logging.NewNop(), fixedIDs{}, SyncConfig{})
}

func ptr[T any](v T) *T {
	return &v
}

func englandCompetitions() ExternalCompetitions {
	england := ExternalCountry{Name: "England", Code: "GB", Flag: "https://media.api-sports.io/flags/gb.svg"}
	return ExternalCompetitions{
		Country: "England",
		Results: 2,
		Competitions: []ExternalCompetition{
			{ID: 39, Name: "Premier League", Type: "League", Country: england},
			{ID: 45, Name: "FA Cup", Type: "Cup", Country: england},
		},
	}
}

// premierLeagueTeams returns n teams with ids 1..n. Every third team has no
// venue in the payload.
func premierLeagueTeams(n int) []ExternalTeamVenue {
	out := make([]ExternalTeamVenue, 0, n)
	for i := 1; i <= n; i++ {
		item := ExternalTeamVenue{
			Team: ExternalTeam{ID: int64(i), Name: fmt.Sprintf("Team %02d", i), Code: ptr(fmt.Sprintf("T%02d", i))},
		}
		if i%3 != 0 {
			item.Venue = ExternalVenue{ID: ptr(int64(500 + i)), Name: ptr(fmt.Sprintf("Ground %02d", i))}
		}
		out = append(out, item)
	}
	return out
}

func standingsTable(n int) []ExternalStanding {
	out := make([]ExternalStanding, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, ExternalStanding{
			Team:    ExternalTeam{ID: int64(i), Name: fmt.Sprintf("Team %02d", i)},
			Rank:    i,
			Points:  100 - i*3,
			Overall: ExternalRecord{Played: 38, Won: 30 - i, Drawn: 4, Lost: 4 + i, GoalsFor: 80 - i, GoalsAgainst: 20 + i},
			Home:    ExternalRecord{Played: 19, Won: 15, Drawn: 2, Lost: 2, GoalsFor: 40, GoalsAgainst: 10},
			Away:    ExternalRecord{Played: 19, Won: 10, Drawn: 2, Lost: 7, GoalsFor: 40 - i, GoalsAgainst: 10 + i},
		})
	}
	return out
}

func playedFixture(id, home, away int64, date time.Time, venueID *int64) ExternalFixture {
	return ExternalFixture{
		ID:          id,
		Date:        date,
		ShortStatus: "FT",
		Elapsed:     ptr(90),
		Round:       "Regular Season - 1",
		Venue:       ExternalVenue{ID: venueID},
		Home:        ExternalTeam{ID: home, Name: fmt.Sprintf("Team %02d", home)},
		Away:        ExternalTeam{ID: away, Name: fmt.Sprintf("Team %02d", away)},
		Goals:       ExternalScore{Home: ptr(2), Away: ptr(1)},
		FullTime:    ExternalScore{Home: ptr(2), Away: ptr(1)},
	}
}

func statisticsFor(home, away int64) []ExternalTeamStatistics {
	values := func(shots int) []ExternalStatValue {
		return []ExternalStatValue{
			{Type: "Shots on Goal", Int: ptr(shots), Text: ptr(fmt.Sprint(shots))},
			{Type: "Shots off Goal", Int: ptr(3), Text: ptr("3")},
			{Type: "Total Shots"},
		}
	}
	return []ExternalTeamStatistics{
		{Team: ExternalTeam{ID: home}, Values: values(6)},
		{Team: ExternalTeam{ID: away}, Values: values(2)},
	}
}

func teamNamed(id int64, name string) team.Team {
	return team.Team{ID: id, Name: name}
}

func associationFor(teamID int64, ssn season.Season) teamseason.Association {
	return teamseason.Association{TeamID: teamID, SeasonID: ssn.ID, CompetitionID: ssn.LeagueID, VenueID: venue.PlaceholderID(teamID)}
}
