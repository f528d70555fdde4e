package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// Statuses of fixtures that have not been played; the provider has no
// statistics for them.
var unplayedStatuses = map[string]struct{}{
	"TBD":  {},
	"NS":   {},
	"PST":  {},
	"CANC": {},
}

func isPlayed(status string) bool {
	_, unplayed := unplayedStatuses[strings.ToUpper(strings.TrimSpace(status))]
	return !unplayed
}

type FixtureStatsResult struct {
	Team     team.Team
	Seasons  []season.Season
	Fixtures int
	Created  int
	Existing int
	Unplayed int
}

// FetchFixtureStats stores match statistics for the fixtures of one team in
// one season, pausing before every provider call.
func (s *SyncService) FetchFixtureStats(ctx context.Context, sel SeasonSelector, teamArg string) (FixtureStatsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.FetchFixtureStats", selectorAttributes(sel)...)
	defer span.End()

	log := s.runLogger("fetch-fixture-stats")
	sel = sel.normalized()
	if err := validateInput(ctx, s.validate, sel); err != nil {
		return FixtureStatsResult{}, err
	}
	if err := s.ready(); err != nil {
		return FixtureStatsResult{}, err
	}

	comp, err := s.resolveCompetition(ctx, log, sel.Competition, sel.Country)
	if err != nil {
		return FixtureStatsResult{}, err
	}
	ssn, err := s.requireSeason(ctx, comp, sel.Year)
	if err != nil {
		return FixtureStatsResult{}, err
	}
	tm, err := resolveTeam(ctx, s.repos.Teams, teamArg)
	if err != nil {
		return FixtureStatsResult{}, err
	}

	fixtures, err := s.repos.Fixtures.ListBySeasonAndTeam(ctx, ssn.ID, tm.ID)
	if err != nil {
		return FixtureStatsResult{}, fmt.Errorf("list fixtures season=%d team=%d: %w", ssn.ID, tm.ID, err)
	}

	result := FixtureStatsResult{Team: tm, Seasons: []season.Season{ssn}}
	if err := s.syncFixtureStats(ctx, log, fixtures, &result); err != nil {
		return result, err
	}
	return result, nil
}

// FetchTeamStats stores match statistics for one team across every season
// of the given year it is associated with.
func (s *SyncService) FetchTeamStats(ctx context.Context, year int, teamArg string) (FixtureStatsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.FetchTeamStats", attribute.Int("football.season_year", year))
	defer span.End()

	log := s.runLogger("fetch-team-stats")
	if err := validateYear(year); err != nil {
		return FixtureStatsResult{}, err
	}
	if err := s.ready(); err != nil {
		return FixtureStatsResult{}, err
	}

	tm, err := resolveTeam(ctx, s.repos.Teams, teamArg)
	if err != nil {
		return FixtureStatsResult{}, err
	}
	associations, err := s.repos.TeamSeasons.ListByTeam(ctx, tm.ID)
	if err != nil {
		return FixtureStatsResult{}, fmt.Errorf("list associations team=%d: %w", tm.ID, err)
	}

	result := FixtureStatsResult{Team: tm}
	var fixtures []fixture.Fixture
	for _, assoc := range associations {
		ssn, exists, err := s.repos.Seasons.GetByID(ctx, assoc.SeasonID)
		if err != nil {
			return result, fmt.Errorf("get season id=%d: %w", assoc.SeasonID, err)
		}
		if !exists || ssn.Year != year {
			continue
		}
		result.Seasons = append(result.Seasons, ssn)

		items, err := s.repos.Fixtures.ListBySeasonAndTeam(ctx, ssn.ID, tm.ID)
		if err != nil {
			return result, fmt.Errorf("list fixtures season=%d team=%d: %w", ssn.ID, tm.ID, err)
		}
		fixtures = append(fixtures, items...)
	}
	if len(result.Seasons) == 0 {
		return result, fmt.Errorf("%w: no season of %d is associated with team=%s", ErrNotFound, year, tm.Name)
	}

	if err := s.syncFixtureStats(ctx, log, fixtures, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (s *SyncService) fetchSeasonStats(ctx context.Context, log *logging.Logger, comp competition.Competition, ssn season.Season) (FixtureStatsResult, error) {
	fixtures, err := s.repos.Fixtures.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return FixtureStatsResult{}, fmt.Errorf("list fixtures season=%d: %w", ssn.ID, err)
	}

	result := FixtureStatsResult{Seasons: []season.Season{ssn}}
	if err := s.syncFixtureStats(ctx, log.With("competition_id", comp.ID), fixtures, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (s *SyncService) syncFixtureStats(ctx context.Context, log *logging.Logger, fixtures []fixture.Fixture, result *FixtureStatsResult) error {
	result.Fixtures += len(fixtures)
	for _, f := range fixtures {
		if !isPlayed(f.ShortStatus) {
			result.Unplayed++
			continue
		}
		exists, err := s.repos.FixtureStats.ExistsForFixture(ctx, f.ID)
		if err != nil {
			return fmt.Errorf("check fixture stats fixture=%d: %w", f.ID, err)
		}
		if exists {
			result.Existing++
			continue
		}

		if err := s.pacer.Wait(ctx); err != nil {
			return err
		}
		raw, err := s.provider.FetchFixtureStatistics(ctx, f.ID)
		if err != nil {
			return fmt.Errorf("fetch statistics fixture=%d: %w", f.ID, err)
		}
		stats, err := parseStatisticsPayload(f.ID, raw)
		if err != nil {
			return err
		}
		if _, err := s.repos.FixtureStats.Create(ctx, stats); err != nil {
			return fmt.Errorf("create fixture stats fixture=%d: %w", f.ID, err)
		}
		result.Created++
		log.DebugContext(ctx, "fixture statistics stored", "fixture_id", f.ID)
	}

	log.InfoContext(ctx, "fixture statistics synced",
		"fixtures", result.Fixtures,
		"created", result.Created,
		"existing", result.Existing,
		"unplayed", result.Unplayed,
	)
	return nil
}
