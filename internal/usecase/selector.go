package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// SeasonSelector names one season of one competition. Competition is either
// the provider id or the competition name; Country narrows name lookups.
type SeasonSelector struct {
	Competition string `validate:"required"`
	Country     string
	Year        int `validate:"gte=1850,lte=2200"`
}

func (s SeasonSelector) normalized() SeasonSelector {
	s.Competition = strings.TrimSpace(s.Competition)
	s.Country = strings.TrimSpace(s.Country)
	return s
}

func validateInput(ctx context.Context, v *validator.Validate, payload any) error {
	if err := v.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateYear(year int) error {
	if year < 1850 || year > 2200 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, year)
	}
	return nil
}

// resolveCompetition finds a competition by id or by name. Several
// competitions share names across countries (e.g. "Premier League"); the
// lowest id wins unless countryName narrows the match.
func resolveCompetition(ctx context.Context, repos Repositories, log *logging.Logger, name, countryName string) (competition.Competition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition is required", ErrInvalidInput)
	}

	if compID, err := strconv.ParseInt(name, 10, 64); err == nil {
		if compID <= 0 {
			return competition.Competition{}, fmt.Errorf("%w: competition id must be > 0", ErrInvalidInput)
		}
		item, exists, err := repos.Competitions.GetByID(ctx, compID)
		if err != nil {
			return competition.Competition{}, fmt.Errorf("get competition id=%d: %w", compID, err)
		}
		if !exists {
			return competition.Competition{}, fmt.Errorf("%w: competition id=%d", ErrNotFound, compID)
		}
		return item, nil
	}

	matches, err := repos.Competitions.ListByName(ctx, name)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("list competitions name=%s: %w", name, err)
	}

	if countryName = strings.TrimSpace(countryName); countryName != "" {
		ctry, exists, err := repos.Countries.GetByName(ctx, countryName)
		if err != nil {
			return competition.Competition{}, fmt.Errorf("get country name=%s: %w", countryName, err)
		}
		if !exists {
			return competition.Competition{}, fmt.Errorf("%w: country=%s", ErrNotFound, countryName)
		}
		filtered := matches[:0:0]
		for _, item := range matches {
			if item.CountryID == ctry.ID {
				filtered = append(filtered, item)
			}
		}
		matches = filtered
	}

	if len(matches) == 0 {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, name)
	}
	if len(matches) > 1 {
		ids := make([]int64, 0, len(matches))
		for _, item := range matches {
			ids = append(ids, item.ID)
		}
		log.WarnContext(ctx, "competition name is ambiguous, using lowest id",
			"competition", name,
			"country", countryName,
			"candidate_ids", ids,
			"selected_id", matches[0].ID,
		)
	}
	return matches[0], nil
}

// resolveTeam finds a team by provider id or by exact name.
func resolveTeam(ctx context.Context, teams team.Repository, arg string) (team.Team, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return team.Team{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	if teamID, err := strconv.ParseInt(arg, 10, 64); err == nil {
		item, exists, err := teams.GetByID(ctx, teamID)
		if err != nil {
			return team.Team{}, fmt.Errorf("get team id=%d: %w", teamID, err)
		}
		if !exists {
			return team.Team{}, fmt.Errorf("%w: team id=%d", ErrNotFound, teamID)
		}
		return item, nil
	}

	item, exists, err := teams.GetByName(ctx, arg)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team name=%s: %w", arg, err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, arg)
	}
	return item, nil
}
