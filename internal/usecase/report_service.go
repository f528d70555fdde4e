package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/country"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// PremierLeagueID is the only competition whose fixtures are labelled with a
// bare matchday number instead of the round name.
const PremierLeagueID int64 = 39

type CompetitionQuery struct {
	Country string
	Type    string
}

type CompetitionRow struct {
	Competition competition.Competition
	CountryName string
}

type SeasonQuery struct {
	Competition string
	Country     string
	Year        int `validate:"omitempty,gte=1850,lte=2200"`
}

type SeasonRow struct {
	Season          season.Season
	CompetitionName string
}

type TeamsReport struct {
	Competition competition.Competition
	Season      season.Season
	Teams       []team.Team
}

type VenuesReport struct {
	Competition competition.Competition
	Season      season.Season
	Venues      []venue.Venue
}

type StandingRow struct {
	Standing standing.Standing
	TeamName string
}

type StandingsReport struct {
	Competition competition.Competition
	Season      season.Season
	Rows        []StandingRow
}

type FixtureRow struct {
	Fixture  fixture.Fixture
	Round    string
	HomeTeam string
	AwayTeam string
	Venue    string
}

type FixturesReport struct {
	Competition competition.Competition
	Season      season.Season
	// Team is set when the report is narrowed to one team.
	Team *team.Team
	Rows []FixtureRow
}

type FixtureStatsRow struct {
	Fixture  fixture.Fixture
	HomeTeam string
	AwayTeam string
	// Stats is nil while the fixture has no statistics stored.
	Stats *fixturestats.FixtureStats
}

type FixtureStatsReport struct {
	Competition competition.Competition
	Season      season.Season
	Rows        []FixtureStatsRow
}

// ReportService answers read-only queries over stored data.
type ReportService struct {
	repos    Repositories
	logger   *logging.Logger
	validate *validator.Validate
}

func NewReportService(repos Repositories, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{repos: repos, logger: logger, validate: validator.New()}
}

func (s *ReportService) Countries(ctx context.Context) ([]country.Country, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Countries")
	defer span.End()

	items, err := s.repos.Countries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return items, nil
}

func (s *ReportService) Competitions(ctx context.Context, q CompetitionQuery) ([]CompetitionRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Competitions")
	defer span.End()

	countries, err := s.repos.Countries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	names := make(map[int64]string, len(countries))
	for _, c := range countries {
		names[c.ID] = c.Name
	}

	filter := competition.Filter{Type: strings.TrimSpace(q.Type)}
	if name := strings.TrimSpace(q.Country); name != "" {
		ctry, err := s.countryByName(ctx, name)
		if err != nil {
			return nil, err
		}
		filter.CountryID = ctry.ID
	}

	items, err := s.repos.Competitions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	out := make([]CompetitionRow, 0, len(items))
	for _, item := range items {
		out = append(out, CompetitionRow{Competition: item, CountryName: names[item.CountryID]})
	}
	return out, nil
}

func (s *ReportService) Seasons(ctx context.Context, q SeasonQuery) ([]SeasonRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Seasons")
	defer span.End()

	if err := validateInput(ctx, s.validate, q); err != nil {
		return nil, err
	}

	filter := season.Filter{Year: q.Year}
	switch {
	case strings.TrimSpace(q.Competition) != "":
		comp, err := resolveCompetition(ctx, s.repos, s.logger, q.Competition, q.Country)
		if err != nil {
			return nil, err
		}
		filter.LeagueIDs = []int64{comp.ID}
		filter.RestrictLeagues = true
	case strings.TrimSpace(q.Country) != "":
		ctry, err := s.countryByName(ctx, q.Country)
		if err != nil {
			return nil, err
		}
		comps, err := s.repos.Competitions.List(ctx, competition.Filter{CountryID: ctry.ID})
		if err != nil {
			return nil, fmt.Errorf("list competitions country=%s: %w", ctry.Name, err)
		}
		for _, comp := range comps {
			filter.LeagueIDs = append(filter.LeagueIDs, comp.ID)
		}
		filter.RestrictLeagues = true
	}

	items, err := s.repos.Seasons.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	out := make([]SeasonRow, 0, len(items))
	for _, item := range items {
		name, err := s.competitionName(ctx, item.LeagueID)
		if err != nil {
			return nil, err
		}
		out = append(out, SeasonRow{Season: item, CompetitionName: name})
	}
	return out, nil
}

// Teams lists every team seen in the season's standings, fixtures or
// associations, ordered by name.
func (s *ReportService) Teams(ctx context.Context, sel SeasonSelector) (TeamsReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Teams", selectorAttributes(sel)...)
	defer span.End()

	comp, ssn, err := s.season(ctx, sel)
	if err != nil {
		return TeamsReport{}, err
	}

	ids := newIDSet()
	standings, err := s.repos.Standings.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return TeamsReport{}, fmt.Errorf("list standings season=%d: %w", ssn.ID, err)
	}
	for _, row := range standings {
		ids.add(row.TeamID)
	}
	fixtures, err := s.repos.Fixtures.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return TeamsReport{}, fmt.Errorf("list fixtures season=%d: %w", ssn.ID, err)
	}
	for _, f := range fixtures {
		ids.add(f.HomeTeamID, f.AwayTeamID)
	}
	associations, err := s.repos.TeamSeasons.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return TeamsReport{}, fmt.Errorf("list associations season=%d: %w", ssn.ID, err)
	}
	for _, a := range associations {
		ids.add(a.TeamID)
	}

	teams, err := s.repos.Teams.ListByIDs(ctx, ids.values())
	if err != nil {
		return TeamsReport{}, fmt.Errorf("list teams season=%d: %w", ssn.ID, err)
	}
	return TeamsReport{Competition: comp, Season: ssn, Teams: teams}, nil
}

// Venues lists the venues of the season's fixtures and associations.
func (s *ReportService) Venues(ctx context.Context, sel SeasonSelector) (VenuesReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Venues", selectorAttributes(sel)...)
	defer span.End()

	comp, ssn, err := s.season(ctx, sel)
	if err != nil {
		return VenuesReport{}, err
	}

	ids := newIDSet()
	fixtures, err := s.repos.Fixtures.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return VenuesReport{}, fmt.Errorf("list fixtures season=%d: %w", ssn.ID, err)
	}
	for _, f := range fixtures {
		ids.add(f.VenueID)
	}
	associations, err := s.repos.TeamSeasons.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return VenuesReport{}, fmt.Errorf("list associations season=%d: %w", ssn.ID, err)
	}
	for _, a := range associations {
		ids.add(a.VenueID)
	}

	venues, err := s.repos.Venues.ListByIDs(ctx, ids.values())
	if err != nil {
		return VenuesReport{}, fmt.Errorf("list venues season=%d: %w", ssn.ID, err)
	}
	return VenuesReport{Competition: comp, Season: ssn, Venues: venues}, nil
}

func (s *ReportService) Standings(ctx context.Context, sel SeasonSelector) (StandingsReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Standings", selectorAttributes(sel)...)
	defer span.End()

	comp, ssn, err := s.season(ctx, sel)
	if err != nil {
		return StandingsReport{}, err
	}

	items, err := s.repos.Standings.ListBySeason(ctx, ssn.ID)
	if err != nil {
		return StandingsReport{}, fmt.Errorf("list standings season=%d: %w", ssn.ID, err)
	}
	rows := make([]StandingRow, 0, len(items))
	for _, item := range items {
		name, err := s.teamName(ctx, item.TeamID)
		if err != nil {
			return StandingsReport{}, err
		}
		rows = append(rows, StandingRow{Standing: item, TeamName: name})
	}
	return StandingsReport{Competition: comp, Season: ssn, Rows: rows}, nil
}

// Fixtures lists the season's fixtures by date, optionally only those of
// teamArg.
func (s *ReportService) Fixtures(ctx context.Context, sel SeasonSelector, teamArg string) (FixturesReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Fixtures", selectorAttributes(sel)...)
	defer span.End()

	comp, ssn, err := s.season(ctx, sel)
	if err != nil {
		return FixturesReport{}, err
	}

	report := FixturesReport{Competition: comp, Season: ssn}
	var items []fixture.Fixture
	if strings.TrimSpace(teamArg) != "" {
		tm, err := resolveTeam(ctx, s.repos.Teams, teamArg)
		if err != nil {
			return FixturesReport{}, err
		}
		report.Team = &tm
		items, err = s.repos.Fixtures.ListBySeasonAndTeam(ctx, ssn.ID, tm.ID)
		if err != nil {
			return FixturesReport{}, fmt.Errorf("list fixtures season=%d team=%d: %w", ssn.ID, tm.ID, err)
		}
	} else {
		items, err = s.repos.Fixtures.ListBySeason(ctx, ssn.ID)
		if err != nil {
			return FixturesReport{}, fmt.Errorf("list fixtures season=%d: %w", ssn.ID, err)
		}
	}

	report.Rows = make([]FixtureRow, 0, len(items))
	for _, f := range items {
		row := FixtureRow{Fixture: f, Round: roundLabel(comp, f)}
		if row.HomeTeam, err = s.teamName(ctx, f.HomeTeamID); err != nil {
			return FixturesReport{}, err
		}
		if row.AwayTeam, err = s.teamName(ctx, f.AwayTeamID); err != nil {
			return FixturesReport{}, err
		}
		if row.Venue, err = s.venueName(ctx, f.VenueID); err != nil {
			return FixturesReport{}, err
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// FixtureStats lists the head-to-head fixtures of two teams in a season with
// whatever statistics are stored for them.
func (s *ReportService) FixtureStats(ctx context.Context, sel SeasonSelector, firstTeam, secondTeam string) (FixtureStatsReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.FixtureStats", selectorAttributes(sel)...)
	defer span.End()

	comp, ssn, err := s.season(ctx, sel)
	if err != nil {
		return FixtureStatsReport{}, err
	}
	first, err := resolveTeam(ctx, s.repos.Teams, firstTeam)
	if err != nil {
		return FixtureStatsReport{}, err
	}
	second, err := resolveTeam(ctx, s.repos.Teams, secondTeam)
	if err != nil {
		return FixtureStatsReport{}, err
	}
	if first.ID == second.ID {
		return FixtureStatsReport{}, fmt.Errorf("%w: teams must differ", ErrInvalidInput)
	}

	items, err := s.repos.Fixtures.ListBySeasonAndTeam(ctx, ssn.ID, first.ID)
	if err != nil {
		return FixtureStatsReport{}, fmt.Errorf("list fixtures season=%d team=%d: %w", ssn.ID, first.ID, err)
	}
	headToHead := make([]fixture.Fixture, 0, 2)
	fixtureIDs := make([]int64, 0, 2)
	for _, f := range items {
		if f.Involves(second.ID) {
			headToHead = append(headToHead, f)
			fixtureIDs = append(fixtureIDs, f.ID)
		}
	}

	stats, err := s.repos.FixtureStats.ListByFixtureIDs(ctx, fixtureIDs)
	if err != nil {
		return FixtureStatsReport{}, fmt.Errorf("list fixture stats season=%d: %w", ssn.ID, err)
	}
	byFixture := make(map[int64]fixturestats.FixtureStats, len(stats))
	for _, item := range stats {
		byFixture[item.FixtureID] = item
	}

	report := FixtureStatsReport{Competition: comp, Season: ssn, Rows: make([]FixtureStatsRow, 0, len(headToHead))}
	for _, f := range headToHead {
		row := FixtureStatsRow{Fixture: f}
		if row.HomeTeam, err = s.teamName(ctx, f.HomeTeamID); err != nil {
			return FixtureStatsReport{}, err
		}
		if row.AwayTeam, err = s.teamName(ctx, f.AwayTeamID); err != nil {
			return FixtureStatsReport{}, err
		}
		if item, ok := byFixture[f.ID]; ok {
			row.Stats = &item
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

func (s *ReportService) season(ctx context.Context, sel SeasonSelector) (competition.Competition, season.Season, error) {
	sel = sel.normalized()
	if err := validateInput(ctx, s.validate, sel); err != nil {
		return competition.Competition{}, season.Season{}, err
	}
	comp, err := resolveCompetition(ctx, s.repos, s.logger, sel.Competition, sel.Country)
	if err != nil {
		return competition.Competition{}, season.Season{}, err
	}
	ssn, exists, err := s.repos.Seasons.Get(ctx, comp.ID, sel.Year)
	if err != nil {
		return competition.Competition{}, season.Season{}, fmt.Errorf("get season league=%d year=%d: %w", comp.ID, sel.Year, err)
	}
	if !exists {
		return competition.Competition{}, season.Season{}, fmt.Errorf("%w: season competition=%s year=%d", ErrNotFound, comp.Name, sel.Year)
	}
	return comp, ssn, nil
}

func (s *ReportService) countryByName(ctx context.Context, name string) (country.Country, error) {
	name = strings.TrimSpace(name)
	ctry, exists, err := s.repos.Countries.GetByName(ctx, name)
	if err != nil {
		return country.Country{}, fmt.Errorf("get country name=%s: %w", name, err)
	}
	if !exists {
		return country.Country{}, fmt.Errorf("%w: country=%s", ErrNotFound, name)
	}
	return ctry, nil
}

func (s *ReportService) competitionName(ctx context.Context, id int64) (string, error) {
	item, exists, err := s.repos.Competitions.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get competition id=%d: %w", id, err)
	}
	if !exists {
		return strconv.FormatInt(id, 10), nil
	}
	return item.Name, nil
}

func (s *ReportService) teamName(ctx context.Context, id int64) (string, error) {
	item, exists, err := s.repos.Teams.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get team id=%d: %w", id, err)
	}
	if !exists {
		return strconv.FormatInt(id, 10), nil
	}
	return item.Name, nil
}

func (s *ReportService) venueName(ctx context.Context, id int64) (string, error) {
	item, exists, err := s.repos.Venues.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get venue id=%d: %w", id, err)
	}
	if !exists {
		return "-", nil
	}
	return item.DisplayName(), nil
}

func roundLabel(comp competition.Competition, f fixture.Fixture) string {
	if comp.ID == PremierLeagueID {
		if n, ok := f.Matchday(); ok {
			return strconv.Itoa(n)
		}
	}
	return f.Round
}

// idSet keeps first-seen order of positive and placeholder ids.
type idSet struct {
	seen  map[int64]struct{}
	order []int64
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[int64]struct{})}
}

func (s *idSet) add(ids ...int64) {
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

func (s *idSet) values() []int64 {
	return s.order
}
