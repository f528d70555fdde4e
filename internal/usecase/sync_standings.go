package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

const (
	SkipReasonCup      = "competition is a cup and has no standings"
	SkipReasonUpToDate = "standings are up to date"
)

type StandingsResult struct {
	Competition  competition.Competition
	Season       season.Season
	Skipped      bool
	SkipReason   string
	Expected     int
	Stored       int
	TeamsCreated int
}

// FetchStandings rewrites the season table when the stored row count differs
// from the expected table size. Cups never get standings.
func (s *SyncService) FetchStandings(ctx context.Context, sel SeasonSelector) (StandingsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.FetchStandings", selectorAttributes(sel)...)
	defer span.End()

	return s.fetchStandings(ctx, s.runLogger("fetch-standings"), sel)
}

func (s *SyncService) fetchStandings(ctx context.Context, log *logging.Logger, sel SeasonSelector) (StandingsResult, error) {
	sel = sel.normalized()
	if err := validateInput(ctx, s.validate, sel); err != nil {
		return StandingsResult{}, err
	}
	if err := s.ready(); err != nil {
		return StandingsResult{}, err
	}

	comp, err := s.resolveCompetition(ctx, log, sel.Competition, sel.Country)
	if err != nil {
		return StandingsResult{}, err
	}
	ssn, err := s.requireSeason(ctx, comp, sel.Year)
	if err != nil {
		return StandingsResult{}, err
	}

	result := StandingsResult{Competition: comp, Season: ssn}
	if !comp.HasStandings() {
		log.InfoContext(ctx, "skip standings sync: competition is not a league",
			"competition_id", comp.ID,
			"type", comp.Type,
		)
		result.Skipped = true
		result.SkipReason = SkipReasonCup
		return result, nil
	}

	result.Expected = ssn.TotalTeams
	if result.Expected <= 0 {
		result.Expected = s.cfg.ExpectedStandings
	}
	stored, err := s.repos.Standings.CountBySeason(ctx, ssn.ID)
	if err != nil {
		return result, fmt.Errorf("count standings season=%d: %w", ssn.ID, err)
	}
	if stored == result.Expected {
		log.InfoContext(ctx, "skip standings sync: row count matches",
			"season_id", ssn.ID,
			"stored", stored,
		)
		result.Skipped = true
		result.SkipReason = SkipReasonUpToDate
		result.Stored = stored
		return result, nil
	}

	items, err := s.provider.FetchStandings(ctx, comp.ID, sel.Year)
	if err != nil {
		return result, fmt.Errorf("fetch standings competition=%d year=%d: %w", comp.ID, sel.Year, err)
	}

	rows := make([]standing.Standing, 0, len(items))
	for _, item := range items {
		_, created, err := s.findOrCreateTeam(ctx, ExternalTeam{
			ID:   item.Team.ID,
			Name: item.Team.Name,
			Logo: item.Team.Logo,
		})
		if err != nil {
			return result, err
		}
		if created {
			result.TeamsCreated++
		}
		rows = append(rows, mapStanding(ssn.ID, item))
	}

	if err := s.repos.Standings.ReplaceBySeason(ctx, ssn.ID, rows); err != nil {
		return result, fmt.Errorf("replace standings season=%d: %w", ssn.ID, err)
	}
	result.Stored, err = s.repos.Standings.CountBySeason(ctx, ssn.ID)
	if err != nil {
		return result, fmt.Errorf("count standings season=%d: %w", ssn.ID, err)
	}
	if result.Stored != result.Expected {
		log.WarnContext(ctx, "standings row count differs from expected table size",
			"season_id", ssn.ID,
			"stored", result.Stored,
			"expected", result.Expected,
		)
	}

	log.InfoContext(ctx, "standings synced",
		"competition_id", comp.ID,
		"year", ssn.Year,
		"previous", stored,
		"stored", result.Stored,
		"teams_created", result.TeamsCreated,
	)
	return result, nil
}

func mapStanding(seasonID int64, item ExternalStanding) standing.Standing {
	return standing.Standing{
		TeamID:   item.Team.ID,
		SeasonID: seasonID,
		Position: item.Rank,
		Points:   item.Points,
		Overall:  mapRecord(item.Overall),
		Home:     mapRecord(item.Home),
		Away:     mapRecord(item.Away),
	}
}

func mapRecord(r ExternalRecord) standing.Record {
	return standing.NewRecord(r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst)
}
