package apifootball

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

func (c *Client) FetchCompetitions(ctx context.Context, country string) (usecase.ExternalCompetitions, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return usecase.ExternalCompetitions{}, fmt.Errorf("%w: country is required", usecase.ErrInvalidInput)
	}

	var env envelope[[]leagueItem]
	if err := doJSON(ctx, c, "/leagues", url.Values{"country": {country}}, &env); err != nil {
		return usecase.ExternalCompetitions{}, fmt.Errorf("fetch competitions country=%s: %w", country, err)
	}

	out := usecase.ExternalCompetitions{
		Country:      env.parameter("country"),
		Results:      env.Results,
		Competitions: make([]usecase.ExternalCompetition, 0, len(env.Response)),
	}
	if out.Country == "" {
		out.Country = country
	}
	for _, item := range env.Response {
		if item.League.ID <= 0 {
			continue
		}
		out.Competitions = append(out.Competitions, usecase.ExternalCompetition{
			ID:   item.League.ID,
			Name: strings.TrimSpace(item.League.Name),
			Type: strings.TrimSpace(item.League.Type),
			Logo: strings.TrimSpace(item.League.Logo),
			Country: usecase.ExternalCountry{
				Name: strings.TrimSpace(item.Country.Name),
				Code: derefString(item.Country.Code),
				Flag: derefString(item.Country.Flag),
			},
		})
	}
	return out, nil
}

func (c *Client) FetchTeams(ctx context.Context, leagueID int64, season int) ([]usecase.ExternalTeamVenue, error) {
	var env envelope[[]teamItem]
	if err := doJSON(ctx, c, "/teams", seasonQuery(leagueID, season), &env); err != nil {
		return nil, fmt.Errorf("fetch teams league=%d season=%d: %w", leagueID, season, err)
	}

	out := make([]usecase.ExternalTeamVenue, 0, len(env.Response))
	for _, item := range env.Response {
		if item.Team.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalTeamVenue{
			Team:  mapTeam(item.Team),
			Venue: mapVenue(item.Venue),
		})
	}
	return out, nil
}

// FetchStandings returns the first standings group, which is the full table
// for single-table leagues.
func (c *Client) FetchStandings(ctx context.Context, leagueID int64, season int) ([]usecase.ExternalStanding, error) {
	var env envelope[[]standingsItem]
	if err := doJSON(ctx, c, "/standings", seasonQuery(leagueID, season), &env); err != nil {
		return nil, fmt.Errorf("fetch standings league=%d season=%d: %w", leagueID, season, err)
	}
	if len(env.Response) == 0 || len(env.Response[0].League.Standings) == 0 {
		return nil, fmt.Errorf("%w: standings league=%d season=%d has no table", usecase.ErrIncompleteData, leagueID, season)
	}

	group := env.Response[0].League.Standings[0]
	out := make([]usecase.ExternalStanding, 0, len(group))
	for _, entry := range group {
		if entry.Team.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalStanding{
			Team:    mapTeam(entry.Team),
			Rank:    entry.Rank,
			Points:  entry.Points,
			Overall: mapRecord(entry.All),
			Home:    mapRecord(entry.Home),
			Away:    mapRecord(entry.Away),
		})
	}
	return out, nil
}

func (c *Client) FetchFixtures(ctx context.Context, leagueID int64, season int) ([]usecase.ExternalFixture, error) {
	var env envelope[[]fixtureItem]
	if err := doJSON(ctx, c, "/fixtures", seasonQuery(leagueID, season), &env); err != nil {
		return nil, fmt.Errorf("fetch fixtures league=%d season=%d: %w", leagueID, season, err)
	}

	out := make([]usecase.ExternalFixture, 0, len(env.Response))
	for _, item := range env.Response {
		if item.Fixture.ID <= 0 {
			continue
		}
		date, err := time.Parse(time.RFC3339, strings.TrimSpace(item.Fixture.Date))
		if err != nil {
			return nil, fmt.Errorf("%w: fixture %d has invalid date %q", usecase.ErrIncompleteData, item.Fixture.ID, item.Fixture.Date)
		}
		out = append(out, usecase.ExternalFixture{
			ID:          item.Fixture.ID,
			Referee:     trimmedPtr(item.Fixture.Referee),
			Date:        date.UTC(),
			ShortStatus: strings.TrimSpace(item.Fixture.Status.Short),
			Elapsed:     item.Fixture.Status.Elapsed,
			Venue:       mapVenue(item.Fixture.Venue),
			Round:       strings.TrimSpace(item.League.Round),
			Home:        mapTeam(item.Teams.Home),
			Away:        mapTeam(item.Teams.Away),
			Goals:       mapScore(item.Goals),
			HalfTime:    mapScore(item.Score.HalfTime),
			FullTime:    mapScore(item.Score.FullTime),
			ExtraTime:   mapScore(item.Score.ExtraTime),
			Penalty:     mapScore(item.Score.Penalty),
		})
	}
	return out, nil
}

func (c *Client) FetchFixtureStatistics(ctx context.Context, fixtureID int64) ([]usecase.ExternalTeamStatistics, error) {
	var env envelope[[]statisticsItem]
	if err := doJSON(ctx, c, "/fixtures/statistics", url.Values{"fixture": {idParam(fixtureID)}}, &env); err != nil {
		return nil, fmt.Errorf("fetch fixture statistics fixture=%d: %w", fixtureID, err)
	}

	out := make([]usecase.ExternalTeamStatistics, 0, len(env.Response))
	for _, item := range env.Response {
		values := make([]usecase.ExternalStatValue, 0, len(item.Statistics))
		for _, stat := range item.Statistics {
			values = append(values, mapStatValue(stat.Type, stat.Value))
		}
		out = append(out, usecase.ExternalTeamStatistics{
			Team:   mapTeam(item.Team),
			Values: values,
		})
	}
	return out, nil
}

func seasonQuery(leagueID int64, season int) url.Values {
	return url.Values{
		"league": {idParam(leagueID)},
		"season": {strconv.Itoa(season)},
	}
}

func mapTeam(src teamPayload) usecase.ExternalTeam {
	return usecase.ExternalTeam{
		ID:       src.ID,
		Name:     strings.TrimSpace(src.Name),
		Code:     trimmedPtr(src.Code),
		Country:  trimmedPtr(src.Country),
		Founded:  src.Founded,
		National: src.National,
		Logo:     trimmedPtr(src.Logo),
	}
}

func mapVenue(src venuePayload) usecase.ExternalVenue {
	return usecase.ExternalVenue{
		ID:       src.ID,
		Name:     trimmedPtr(src.Name),
		Address:  trimmedPtr(src.Address),
		City:     trimmedPtr(src.City),
		Capacity: src.Capacity,
		Surface:  trimmedPtr(src.Surface),
		Image:    trimmedPtr(src.Image),
	}
}

func mapRecord(src standingRecord) usecase.ExternalRecord {
	return usecase.ExternalRecord{
		Played:       src.Played,
		Won:          src.Win,
		Drawn:        src.Draw,
		Lost:         src.Lose,
		GoalsFor:     src.Goals.For,
		GoalsAgainst: src.Goals.Against,
	}
}

func mapScore(src scorePayload) usecase.ExternalScore {
	return usecase.ExternalScore{Home: src.Home, Away: src.Away}
}

func mapStatValue(kind string, value any) usecase.ExternalStatValue {
	out := usecase.ExternalStatValue{Type: strings.TrimSpace(kind)}
	switch v := value.(type) {
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		out.Text = &text
		if v == math.Trunc(v) {
			n := int(v)
			out.Int = &n
		}
	case string:
		text := strings.TrimSpace(v)
		out.Text = &text
		if n, err := strconv.Atoi(text); err == nil {
			out.Int = &n
		}
	}
	return out
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	out := strings.TrimSpace(*v)
	return &out
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
