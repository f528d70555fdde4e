package usecase

import (
	"context"
	"time"
)

// FootballProvider is the remote source of football data.
type FootballProvider interface {
	FetchCompetitions(ctx context.Context, country string) (ExternalCompetitions, error)
	FetchTeams(ctx context.Context, leagueID int64, season int) ([]ExternalTeamVenue, error)
	FetchStandings(ctx context.Context, leagueID int64, season int) ([]ExternalStanding, error)
	FetchFixtures(ctx context.Context, leagueID int64, season int) ([]ExternalFixture, error)
	FetchFixtureStatistics(ctx context.Context, fixtureID int64) ([]ExternalTeamStatistics, error)
}

// ExternalCompetitions is the leagues response for one country. Country is
// echoed from the request parameters and Results is the provider's count.
type ExternalCompetitions struct {
	Country      string
	Results      int
	Competitions []ExternalCompetition
}

type ExternalCountry struct {
	Name string
	Code string
	Flag string
}

type ExternalCompetition struct {
	ID      int64
	Name    string
	Type    string
	Logo    string
	Country ExternalCountry
}

type ExternalVenue struct {
	ID       *int64
	Name     *string
	Address  *string
	City     *string
	Capacity *int
	Surface  *string
	Image    *string
}

type ExternalTeam struct {
	ID       int64
	Name     string
	Code     *string
	Country  *string
	Founded  *int
	National bool
	Logo     *string
}

type ExternalTeamVenue struct {
	Team  ExternalTeam
	Venue ExternalVenue
}

type ExternalRecord struct {
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
}

// ExternalStanding carries no goal difference; it is derived from the goal
// totals when stored.
type ExternalStanding struct {
	Team    ExternalTeam
	Rank    int
	Points  int
	Overall ExternalRecord
	Home    ExternalRecord
	Away    ExternalRecord
}

type ExternalScore struct {
	Home *int
	Away *int
}

type ExternalFixture struct {
	ID          int64
	Referee     *string
	Date        time.Time
	ShortStatus string
	Elapsed     *int
	Venue       ExternalVenue
	Round       string
	Home        ExternalTeam
	Away        ExternalTeam
	Goals       ExternalScore
	HalfTime    ExternalScore
	FullTime    ExternalScore
	ExtraTime   ExternalScore
	Penalty     ExternalScore
}

// ExternalStatValue is one statistics entry. Int is set for integral
// values, Text for every non-null value in its printed form.
type ExternalStatValue struct {
	Type string
	Int  *int
	Text *string
}

type ExternalTeamStatistics struct {
	Team   ExternalTeam
	Values []ExternalStatValue
}
