package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type TeamsResult struct {
	Competition   competition.Competition
	Season        season.Season
	SeasonCreated bool
	// Skipped is set when the season already has teams.
	Skipped       bool
	Fetched       int
	TeamsCreated  int
	VenuesCreated int
}

// FetchTeams creates the season when needed and ingests its teams and their
// home venues. A season with a non-zero team count is not fetched again.
func (s *SyncService) FetchTeams(ctx context.Context, sel SeasonSelector) (TeamsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.FetchTeams", selectorAttributes(sel)...)
	defer span.End()

	return s.fetchTeams(ctx, s.runLogger("fetch-teams"), sel)
}

func (s *SyncService) fetchTeams(ctx context.Context, log *logging.Logger, sel SeasonSelector) (TeamsResult, error) {
	sel = sel.normalized()
	if err := validateInput(ctx, s.validate, sel); err != nil {
		return TeamsResult{}, err
	}
	if err := s.ready(); err != nil {
		return TeamsResult{}, err
	}

	comp, err := s.resolveCompetition(ctx, log, sel.Competition, sel.Country)
	if err != nil {
		return TeamsResult{}, err
	}
	ssn, seasonCreated, err := s.findOrCreateSeason(ctx, comp.ID, sel.Year)
	if err != nil {
		return TeamsResult{}, err
	}

	result := TeamsResult{Competition: comp, Season: ssn, SeasonCreated: seasonCreated}
	if ssn.TotalTeams > 0 {
		log.InfoContext(ctx, "skip team sync: season already has teams",
			"competition_id", comp.ID,
			"year", ssn.Year,
			"total_teams", ssn.TotalTeams,
		)
		result.Skipped = true
		return result, nil
	}

	items, err := s.provider.FetchTeams(ctx, comp.ID, sel.Year)
	if err != nil {
		return result, fmt.Errorf("fetch teams competition=%d year=%d: %w", comp.ID, sel.Year, err)
	}
	result.Fetched = len(items)

	for _, item := range items {
		_, venueCreated, err := s.findOrCreateVenue(ctx, item.Team.ID, item.Venue)
		if err != nil {
			return result, err
		}
		if venueCreated {
			result.VenuesCreated++
		}

		_, teamCreated, err := s.findOrCreateTeam(ctx, item.Team)
		if err != nil {
			return result, err
		}
		if teamCreated {
			result.TeamsCreated++
		}

		updated, err := s.repos.Seasons.IncrementTotalTeams(ctx, ssn.ID, 1)
		if err != nil {
			return result, fmt.Errorf("increment season total teams season=%d: %w", ssn.ID, err)
		}
		ssn = updated
		result.Season = ssn
	}

	log.InfoContext(ctx, "teams synced",
		"competition_id", comp.ID,
		"year", ssn.Year,
		"fetched", result.Fetched,
		"teams_created", result.TeamsCreated,
		"venues_created", result.VenuesCreated,
		"total_teams", ssn.TotalTeams,
	)
	return result, nil
}
