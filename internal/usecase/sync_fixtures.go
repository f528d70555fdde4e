package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type FixturesResult struct {
	Competition       competition.Competition
	Season            season.Season
	Fetched           int
	Created           int
	TeamsCreated      int
	VenuesCreated     int
	AssociationsAdded int
}

// FetchFixtures stores the fixtures of a season that are not known yet and
// then derives team/season associations from the stored home fixtures.
func (s *SyncService) FetchFixtures(ctx context.Context, sel SeasonSelector) (FixturesResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.FetchFixtures", selectorAttributes(sel)...)
	defer span.End()

	return s.fetchFixtures(ctx, s.runLogger("fetch-fixtures"), sel)
}

func (s *SyncService) fetchFixtures(ctx context.Context, log *logging.Logger, sel SeasonSelector) (FixturesResult, error) {
	sel = sel.normalized()
	if err := validateInput(ctx, s.validate, sel); err != nil {
		return FixturesResult{}, err
	}
	if err := s.ready(); err != nil {
		return FixturesResult{}, err
	}

	comp, err := s.resolveCompetition(ctx, log, sel.Competition, sel.Country)
	if err != nil {
		return FixturesResult{}, err
	}
	ssn, err := s.requireSeason(ctx, comp, sel.Year)
	if err != nil {
		return FixturesResult{}, err
	}

	result := FixturesResult{Competition: comp, Season: ssn}
	items, err := s.provider.FetchFixtures(ctx, comp.ID, sel.Year)
	if err != nil {
		return result, fmt.Errorf("fetch fixtures competition=%d year=%d: %w", comp.ID, sel.Year, err)
	}
	result.Fetched = len(items)

	for _, item := range items {
		created, err := s.storeFixture(ctx, comp, ssn, item, &result)
		if err != nil {
			return result, err
		}
		if created {
			result.Created++
		}
	}

	result.AssociationsAdded, err = s.reconcileAssociations(ctx, ssn)
	if err != nil {
		return result, err
	}

	log.InfoContext(ctx, "fixtures synced",
		"competition_id", comp.ID,
		"year", ssn.Year,
		"fetched", result.Fetched,
		"created", result.Created,
		"teams_created", result.TeamsCreated,
		"venues_created", result.VenuesCreated,
		"associations_added", result.AssociationsAdded,
	)
	return result, nil
}

func (s *SyncService) storeFixture(ctx context.Context, comp competition.Competition, ssn season.Season, item ExternalFixture, result *FixturesResult) (bool, error) {
	if item.ID <= 0 {
		return false, fmt.Errorf("%w: fixture id is missing", ErrIncompleteData)
	}
	_, exists, err := s.repos.Fixtures.GetByID(ctx, item.ID)
	if err != nil {
		return false, fmt.Errorf("get fixture id=%d: %w", item.ID, err)
	}
	if exists {
		return false, nil
	}

	for _, side := range []ExternalTeam{item.Home, item.Away} {
		_, created, err := s.findOrCreateTeam(ctx, side)
		if err != nil {
			return false, fmt.Errorf("fixture id=%d: %w", item.ID, err)
		}
		if created {
			result.TeamsCreated++
		}
	}

	v, venueCreated, err := s.findOrCreateVenue(ctx, item.Home.ID, item.Venue)
	if err != nil {
		return false, fmt.Errorf("fixture id=%d: %w", item.ID, err)
	}
	if venueCreated {
		result.VenuesCreated++
	}

	if _, err := s.repos.Fixtures.Create(ctx, fixture.Fixture{
		ID:            item.ID,
		SeasonID:      ssn.ID,
		CompetitionID: comp.ID,
		HomeTeamID:    item.Home.ID,
		AwayTeamID:    item.Away.ID,
		VenueID:       v.ID,
		Referee:       item.Referee,
		Date:          item.Date,
		ShortStatus:   item.ShortStatus,
		Elapsed:       item.Elapsed,
		Round:         item.Round,
		Goals:         fixture.Score(item.Goals),
		HalfTime:      fixture.Score(item.HalfTime),
		FullTime:      fixture.Score(item.FullTime),
		ExtraTime:     fixture.Score(item.ExtraTime),
		Penalty:       fixture.Score(item.Penalty),
	}); err != nil {
		return false, fmt.Errorf("create fixture id=%d: %w", item.ID, err)
	}
	return true, nil
}

// reconcileAssociations links every home team of the season to the venue of
// its earliest home fixture.
func (s *SyncService) reconcileAssociations(ctx context.Context, ssn season.Season) (int, error) {
	fixtures, err := s.repos.Fixtures.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return 0, fmt.Errorf("list fixtures season=%d: %w", ssn.ID, err)
	}

	added := 0
	seen := make(map[int64]struct{}, len(fixtures))
	for _, f := range fixtures {
		if _, ok := seen[f.HomeTeamID]; ok {
			continue
		}
		seen[f.HomeTeamID] = struct{}{}

		created, err := s.findOrCreateAssociation(ctx, teamseason.Association{
			TeamID:        f.HomeTeamID,
			SeasonID:      ssn.ID,
			CompetitionID: ssn.LeagueID,
			VenueID:       f.VenueID,
		})
		if err != nil {
			return added, err
		}
		if created {
			added++
		}
	}
	return added, nil
}
