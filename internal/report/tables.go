package report

import (
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/country"
	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

var standingsHeaders = []string{"Position", "Team", "Played", "Won", "Drawn", "Lost", "For", "Against", "Diff", "Points"}

func (p *Printer) Standings(r usecase.StandingsReport) error {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		s := row.Standing
		rows = append(rows, []string{
			itoa(s.Position),
			row.TeamName,
			itoa(s.Overall.Played),
			itoa(s.Overall.Won),
			itoa(s.Overall.Drawn),
			itoa(s.Overall.Lost),
			itoa(s.Overall.GoalsFor),
			itoa(s.Overall.GoalsAgainst),
			itoa(s.Overall.GoalDiff),
			itoa(s.Points),
		})
	}
	return p.write(
		p.title.Render(fmt.Sprintf("%s %d standings", r.Competition.Name, r.Season.Year)),
		p.renderTable(standingsHeaders, rows, 0, 2, 3, 4, 5, 6, 7, 8, 9),
	)
}

var fixturesHeaders = []string{"Date", "Round", "Home", "Score", "Away", "Venue", "Status"}

func (p *Printer) Fixtures(r usecase.FixturesReport) error {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		f := row.Fixture
		rows = append(rows, []string{
			formatDate(f.Date),
			row.Round,
			row.HomeTeam,
			formatScore(f.Goals.Home, f.Goals.Away),
			row.AwayTeam,
			row.Venue,
			f.ShortStatus,
		})
	}

	title := fmt.Sprintf("%s %d fixtures", r.Competition.Name, r.Season.Year)
	if r.Team != nil {
		title = fmt.Sprintf("%s %d fixtures of %s", r.Competition.Name, r.Season.Year, r.Team.Name)
	}
	return p.write(p.title.Render(title), p.renderTable(fixturesHeaders, rows))
}

// FixtureStats prints one side-by-side table per fixture.
func (p *Printer) FixtureStats(r usecase.FixtureStatsReport) error {
	if len(r.Rows) == 0 {
		return p.Notice("No fixtures between these teams in this season.")
	}

	lines := make([]string, 0, len(r.Rows)*2)
	for _, row := range r.Rows {
		f := row.Fixture
		lines = append(lines, p.title.Render(fmt.Sprintf("%s %s %s  (%s)",
			row.HomeTeam, formatScore(f.Goals.Home, f.Goals.Away), row.AwayTeam, formatDate(f.Date))))
		if row.Stats == nil {
			lines = append(lines, "No statistics stored for this fixture.")
			continue
		}
		lines = append(lines, p.renderTable(
			[]string{"Statistic", row.HomeTeam, row.AwayTeam},
			statisticsRows(row.Stats.Home, row.Stats.Away),
			1, 2,
		))
	}
	return p.write(lines...)
}

func statisticsRows(home, away fixturestats.TeamStatistics) [][]string {
	ints := func(label string, h, a *int) []string {
		return []string{label, formatInt(h), formatInt(a)}
	}
	texts := func(label string, h, a *string) []string {
		return []string{label, formatString(h), formatString(a)}
	}
	return [][]string{
		ints("Shots on Goal", home.ShotsOnGoal, away.ShotsOnGoal),
		ints("Shots off Goal", home.ShotsOffGoal, away.ShotsOffGoal),
		ints("Total Shots", home.TotalShots, away.TotalShots),
		ints("Blocked Shots", home.BlockedShots, away.BlockedShots),
		ints("Shots insidebox", home.ShotsInside, away.ShotsInside),
		ints("Shots outsidebox", home.ShotsOutside, away.ShotsOutside),
		ints("Fouls", home.Fouls, away.Fouls),
		ints("Corner Kicks", home.Corners, away.Corners),
		ints("Offsides", home.Offsides, away.Offsides),
		texts("Ball Possession", home.Possession, away.Possession),
		ints("Yellow Cards", home.Yellows, away.Yellows),
		ints("Red Cards", home.Reds, away.Reds),
		ints("Goalkeeper Saves", home.Saves, away.Saves),
		ints("Total passes", home.TotalPasses, away.TotalPasses),
		ints("Passes accurate", home.AccuratePass, away.AccuratePass),
		texts("Passes %", home.PercentPass, away.PercentPass),
		texts("Expected Goals", home.ExpectedGoals, away.ExpectedGoals),
	}
}

func (p *Printer) Countries(items []country.Country) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Name, item.Code, itoa(item.NumComps), item.Flag})
	}
	return p.write(p.renderTable([]string{"Country", "Code", "Competitions", "Flag"}, rows, 2))
}

func (p *Printer) Competitions(items []usecase.CompetitionRow) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.Competition.ID),
			item.Competition.Name,
			item.Competition.Type,
			item.CountryName,
		})
	}
	return p.write(p.renderTable([]string{"ID", "Competition", "Type", "Country"}, rows, 0))
}

func (p *Printer) Seasons(items []usecase.SeasonRow) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.CompetitionName,
			itoa(item.Season.Year),
			itoa(item.Season.TotalTeams),
		})
	}
	return p.write(p.renderTable([]string{"Competition", "Year", "Teams"}, rows, 1, 2))
}

func (p *Printer) Teams(r usecase.TeamsReport) error {
	rows := make([][]string, 0, len(r.Teams))
	for _, item := range r.Teams {
		founded := "-"
		if item.Founded != nil {
			founded = itoa(*item.Founded)
		}
		rows = append(rows, []string{
			formatID(item.ID),
			item.Name,
			formatString(item.ShortName),
			formatString(item.Country),
			founded,
			formatBool(item.National),
		})
	}
	return p.write(
		p.title.Render(fmt.Sprintf("%s %d teams", r.Competition.Name, r.Season.Year)),
		p.renderTable([]string{"ID", "Team", "Code", "Country", "Founded", "National"}, rows, 0, 4),
	)
}

func (p *Printer) Venues(r usecase.VenuesReport) error {
	rows := make([][]string, 0, len(r.Venues))
	for _, item := range r.Venues {
		rows = append(rows, []string{
			formatID(item.ID),
			item.DisplayName(),
			formatString(item.City),
			formatInt(item.Capacity),
			formatString(item.Surface),
		})
	}
	return p.write(
		p.title.Render(fmt.Sprintf("%s %d venues", r.Competition.Name, r.Season.Year)),
		p.renderTable([]string{"ID", "Venue", "City", "Capacity", "Surface"}, rows, 0, 3),
	)
}
