package report

import (
	"fmt"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

func (p *Printer) CompetitionsSynced(r usecase.CompetitionsResult) error {
	country := r.Country.Name
	if r.CountryCreated {
		country += " (new)"
	}
	return p.Notice(fmt.Sprintf("%s: %d competitions fetched, %d added.", country, r.Fetched, r.Created))
}

func (p *Printer) TeamsSynced(r usecase.TeamsResult) error {
	if r.Skipped {
		return p.Notice(fmt.Sprintf("%s %d already has %d teams, nothing fetched.",
			r.Competition.Name, r.Season.Year, r.Season.TotalTeams))
	}
	return p.Notice(fmt.Sprintf("%s %d: %d teams fetched, %d teams and %d venues added.",
		r.Competition.Name, r.Season.Year, r.Fetched, r.TeamsCreated, r.VenuesCreated))
}

func (p *Printer) StandingsSynced(r usecase.StandingsResult) error {
	switch {
	case r.Skipped && r.SkipReason == usecase.SkipReasonCup:
		return p.Notice(fmt.Sprintf("%s is a cup competition, there are no standings.", r.Competition.Name))
	case r.Skipped:
		return p.Notice(fmt.Sprintf("%s %d standings are up to date (%d rows).",
			r.Competition.Name, r.Season.Year, r.Stored))
	default:
		return p.Notice(fmt.Sprintf("%s %d: %d standing rows stored.",
			r.Competition.Name, r.Season.Year, r.Stored))
	}
}

func (p *Printer) FixturesSynced(r usecase.FixturesResult) error {
	return p.Notice(fmt.Sprintf("%s %d: %d fixtures fetched, %d added, %d team associations added.",
		r.Competition.Name, r.Season.Year, r.Fetched, r.Created, r.AssociationsAdded))
}

func (p *Printer) FixtureStatsSynced(r usecase.FixtureStatsResult) error {
	subject := "season"
	if r.Team.Name != "" {
		subject = r.Team.Name
	}
	return p.Notice(fmt.Sprintf("%s: %d fixtures checked, %d statistics added, %d already stored, %d not played yet.",
		subject, r.Fixtures, r.Created, r.Existing, r.Unplayed))
}
