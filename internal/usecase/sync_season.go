package usecase

import (
	"context"
	"strings"
)

type SeasonResult struct {
	Competitions CompetitionsResult
	Teams        TeamsResult
	Standings    StandingsResult
	Fixtures     FixturesResult
	// Stats is only populated when statistics were requested.
	Stats *FixtureStatsResult
}

// FetchSeason runs every ingestion step for one season in order. Each step
// commits on its own, so a failed run can simply be repeated. The result only
// holds the steps that completed.
func (s *SyncService) FetchSeason(ctx context.Context, countryName string, sel SeasonSelector, withStats bool) (SeasonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.FetchSeason", selectorAttributes(sel)...)
	defer span.End()

	log := s.runLogger("fetch-season")
	if strings.TrimSpace(sel.Country) == "" {
		sel.Country = countryName
	}

	var result SeasonResult
	competitions, err := s.fetchCompetitions(ctx, log, countryName)
	if err != nil {
		return result, err
	}
	result.Competitions = competitions

	teams, err := s.fetchTeams(ctx, log, sel)
	if err != nil {
		return result, err
	}
	result.Teams = teams

	standings, err := s.fetchStandings(ctx, log, sel)
	if err != nil {
		return result, err
	}
	result.Standings = standings

	fixtures, err := s.fetchFixtures(ctx, log, sel)
	if err != nil {
		return result, err
	}
	result.Fixtures = fixtures
	if !withStats {
		return result, nil
	}

	stats, err := s.fetchSeasonStats(ctx, log, fixtures.Competition, fixtures.Season)
	result.Stats = &stats
	return result, err
}
