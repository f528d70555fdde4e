package postgres

import (
	"strings"
	"testing"

	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

func TestNewStandingInsertModel_DerivesGoalDiff(t *testing.T) {
	item := standing.Standing{
		TeamID:   50,
		Position: 1,
		Points:   89,
		Overall:  standing.Record{Played: 38, GoalsFor: 94, GoalsAgainst: 33, GoalDiff: 999},
		Home:     standing.Record{GoalsFor: 57, GoalsAgainst: 24, GoalDiff: -1},
	}

	got := newStandingInsertModel(7, item)
	if got.SeasonID != 7 {
		t.Fatalf("expected season id 7, got %d", got.SeasonID)
	}
	if got.GoalDiff != 61 {
		t.Fatalf("expected overall goal diff 61, got %d", got.GoalDiff)
	}
	if got.HomeGoalDiff != 33 {
		t.Fatalf("expected home goal diff 33, got %d", got.HomeGoalDiff)
	}
}

func TestStandingInsertQuery_HasEveryColumn(t *testing.T) {
	query, args, err := qb.InsertModels("standings", []any{
		newStandingInsertModel(1, standing.Standing{TeamID: 1, Position: 1}),
		newStandingInsertModel(1, standing.Standing{TeamID: 2, Position: 2}),
	}, "")
	if err != nil {
		t.Fatalf("build insert standings: %v", err)
	}
	if len(args) != 50 {
		t.Fatalf("expected 50 args, got %d", len(args))
	}
	if !strings.Contains(query, "away_goal_diff") || !strings.Contains(query, "$50") {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestFixtureStatsModel_RoundTrip(t *testing.T) {
	shots, possession := 7, "61%"
	in := fixturestats.FixtureStats{
		FixtureID: 1035037,
		Home:      fixturestats.TeamStatistics{TeamID: 44, ShotsOnGoal: &shots, Possession: &possession},
		Away:      fixturestats.TeamStatistics{TeamID: 50},
	}

	model := fixtureStatsTableModel{ID: 3, fixtureStatsInsertModel: newFixtureStatsInsertModel(in)}
	out := model.toDomain()

	if out.ID != 3 || out.FixtureID != in.FixtureID {
		t.Fatalf("unexpected ids: %+v", out)
	}
	if out.Home.ShotsOnGoal == nil || *out.Home.ShotsOnGoal != 7 {
		t.Fatalf("expected home shots on goal 7, got %v", out.Home.ShotsOnGoal)
	}
	if out.Home.Possession == nil || *out.Home.Possession != "61%" {
		t.Fatalf("expected home possession 61%%, got %v", out.Home.Possession)
	}
	if out.Away.TeamID != 50 || out.Away.ShotsOnGoal != nil || out.Away.ExpectedGoals != nil {
		t.Fatalf("expected away side with null counters, got %+v", out.Away)
	}
}
