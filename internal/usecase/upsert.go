package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/country"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
)

// The findOrCreate helpers look an entity up by its natural key and insert it
// only when absent. The returned flag reports whether a row was inserted.

func (s *SyncService) findOrCreateCountry(ctx context.Context, payload ExternalCompetitions, fallbackName string) (country.Country, bool, error) {
	name := strings.TrimSpace(payload.Country)
	if name == "" {
		name = strings.TrimSpace(fallbackName)
	}

	existing, exists, err := s.repos.Countries.GetByName(ctx, name)
	if err != nil {
		return country.Country{}, false, fmt.Errorf("get country name=%s: %w", name, err)
	}
	if exists {
		return existing, false, nil
	}

	item := country.Country{Name: name, NumComps: payload.Results}
	if len(payload.Competitions) > 0 {
		item.Code = payload.Competitions[0].Country.Code
		item.Flag = payload.Competitions[0].Country.Flag
	}
	created, err := s.repos.Countries.Create(ctx, item)
	if err != nil {
		return country.Country{}, false, fmt.Errorf("create country name=%s: %w", name, err)
	}
	return created, true, nil
}

func (s *SyncService) findOrCreateCompetition(ctx context.Context, countryID int64, payload ExternalCompetition) (competition.Competition, bool, error) {
	existing, exists, err := s.repos.Competitions.GetByID(ctx, payload.ID)
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("get competition id=%d: %w", payload.ID, err)
	}
	if exists {
		return existing, false, nil
	}

	created, err := s.repos.Competitions.Create(ctx, competition.Competition{
		ID:        payload.ID,
		CountryID: countryID,
		Name:      strings.TrimSpace(payload.Name),
		Type:      strings.TrimSpace(payload.Type),
		Logo:      payload.Logo,
	})
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("create competition id=%d: %w", payload.ID, err)
	}
	return created, true, nil
}

func (s *SyncService) findOrCreateSeason(ctx context.Context, leagueID int64, year int) (season.Season, bool, error) {
	existing, exists, err := s.repos.Seasons.Get(ctx, leagueID, year)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("get season league=%d year=%d: %w", leagueID, year, err)
	}
	if exists {
		return existing, false, nil
	}

	created, err := s.repos.Seasons.Create(ctx, season.Season{LeagueID: leagueID, Year: year})
	if err != nil {
		return season.Season{}, false, fmt.Errorf("create season league=%d year=%d: %w", leagueID, year, err)
	}
	return created, true, nil
}

// requireSeason returns the stored season or ErrNotFound; steps after team
// ingestion never create seasons on their own.
func (s *SyncService) requireSeason(ctx context.Context, comp competition.Competition, year int) (season.Season, error) {
	item, exists, err := s.repos.Seasons.Get(ctx, comp.ID, year)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season league=%d year=%d: %w", comp.ID, year, err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season competition=%s year=%d", ErrNotFound, comp.Name, year)
	}
	return item, nil
}

// findOrCreateVenue stores the venue of ownerTeamID. A payload without an id
// maps to the team's placeholder venue, which is checked before insert like
// any other key.
func (s *SyncService) findOrCreateVenue(ctx context.Context, ownerTeamID int64, payload ExternalVenue) (venue.Venue, bool, error) {
	item := venue.Placeholder(ownerTeamID)
	if payload.ID != nil && *payload.ID > 0 {
		item = venue.Venue{
			ID:       *payload.ID,
			Name:     payload.Name,
			Address:  payload.Address,
			City:     payload.City,
			Capacity: payload.Capacity,
			Surface:  payload.Surface,
			Image:    payload.Image,
		}
	}

	existing, exists, err := s.repos.Venues.GetByID(ctx, item.ID)
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("get venue id=%d: %w", item.ID, err)
	}
	if exists {
		return existing, false, nil
	}

	created, err := s.repos.Venues.Create(ctx, item)
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("create venue id=%d: %w", item.ID, err)
	}
	return created, true, nil
}

func (s *SyncService) findOrCreateTeam(ctx context.Context, payload ExternalTeam) (team.Team, bool, error) {
	if payload.ID <= 0 {
		return team.Team{}, false, fmt.Errorf("%w: team id is missing", ErrIncompleteData)
	}

	existing, exists, err := s.repos.Teams.GetByID(ctx, payload.ID)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("get team id=%d: %w", payload.ID, err)
	}
	if exists {
		return existing, false, nil
	}

	created, err := s.repos.Teams.Create(ctx, team.Team{
		ID:        payload.ID,
		Name:      strings.TrimSpace(payload.Name),
		ShortName: payload.Code,
		Country:   payload.Country,
		Founded:   payload.Founded,
		National:  payload.National,
		Logo:      payload.Logo,
	})
	if err != nil {
		return team.Team{}, false, fmt.Errorf("create team id=%d: %w", payload.ID, err)
	}
	return created, true, nil
}

func (s *SyncService) findOrCreateAssociation(ctx context.Context, item teamseason.Association) (bool, error) {
	exists, err := s.repos.TeamSeasons.Exists(ctx, item.TeamID, item.SeasonID)
	if err != nil {
		return false, fmt.Errorf("check association team=%d season=%d: %w", item.TeamID, item.SeasonID, err)
	}
	if exists {
		return false, nil
	}

	if _, err := s.repos.TeamSeasons.Create(ctx, item); err != nil {
		return false, fmt.Errorf("create association team=%d season=%d: %w", item.TeamID, item.SeasonID, err)
	}
	return true, nil
}
