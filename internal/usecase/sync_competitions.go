package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/domain/country"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type CompetitionsResult struct {
	Country        country.Country
	CountryCreated bool
	Fetched        int
	Created        int
}

// FetchCompetitions stores the country and every competition the provider
// lists for it. Known competitions are left untouched.
func (s *SyncService) FetchCompetitions(ctx context.Context, countryName string) (CompetitionsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.FetchCompetitions", attribute.String("football.country", countryName))
	defer span.End()

	return s.fetchCompetitions(ctx, s.runLogger("fetch-competitions"), countryName)
}

func (s *SyncService) fetchCompetitions(ctx context.Context, log *logging.Logger, countryName string) (CompetitionsResult, error) {
	countryName = strings.TrimSpace(countryName)
	if countryName == "" {
		return CompetitionsResult{}, fmt.Errorf("%w: country is required", ErrInvalidInput)
	}
	if err := s.ready(); err != nil {
		return CompetitionsResult{}, err
	}

	payload, err := s.provider.FetchCompetitions(ctx, countryName)
	if err != nil {
		return CompetitionsResult{}, fmt.Errorf("fetch competitions country=%s: %w", countryName, err)
	}

	ctry, countryCreated, err := s.findOrCreateCountry(ctx, payload, countryName)
	if err != nil {
		return CompetitionsResult{}, err
	}

	result := CompetitionsResult{
		Country:        ctry,
		CountryCreated: countryCreated,
		Fetched:        len(payload.Competitions),
	}
	for _, item := range payload.Competitions {
		_, created, err := s.findOrCreateCompetition(ctx, ctry.ID, item)
		if err != nil {
			return result, err
		}
		if created {
			result.Created++
		}
	}

	log.InfoContext(ctx, "competitions synced",
		"country", ctry.Name,
		"country_created", countryCreated,
		"fetched", result.Fetched,
		"created", result.Created,
	)
	return result, nil
}
