package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	"github.com/riskibarqy/football-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestPrinter_Standings(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := NewPrinter(&out).Standings(usecase.StandingsReport{
		Competition: competition.Competition{ID: 39, Name: "Premier League"},
		Season:      season.Season{Year: 2023},
		Rows: []usecase.StandingRow{
			{TeamName: "Manchester City", Standing: standing.Standing{Position: 1, Points: 91, Overall: standing.NewRecord(38, 28, 7, 3, 96, 34)}},
			{TeamName: "Arsenal", Standing: standing.Standing{Position: 2, Points: 89, Overall: standing.NewRecord(38, 28, 5, 5, 91, 29)}},
		},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Premier League 2023 standings")
	header := text[strings.Index(text, "Position"):]
	header = header[:strings.Index(header, "\n")]
	prev := -1
	for _, col := range []string{"Position", "Team", "Played", "Won", "Drawn", "Lost", "For", "Against", "Diff", "Points"} {
		idx := strings.Index(header, col)
		require.Greater(t, idx, prev, "column %s out of order", col)
		prev = idx
	}
	assert.Contains(t, text, "Manchester City")
	assert.Contains(t, text, "62")
	assert.Less(t, strings.Index(text, "Manchester City"), strings.Index(text, "Arsenal"))
}

func TestPrinter_FixturesAndStats(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2023, 8, 11, 19, 0, 0, 0, time.UTC)
	f := fixture.Fixture{ID: 1, Date: kickoff, ShortStatus: "FT", Goals: fixture.Score{Home: intPtr(0), Away: intPtr(3)}}

	var out bytes.Buffer
	p := NewPrinter(&out)
	require.NoError(t, p.Fixtures(usecase.FixturesReport{
		Competition: competition.Competition{ID: 39, Name: "Premier League"},
		Season:      season.Season{Year: 2023},
		Rows:        []usecase.FixtureRow{{Fixture: f, Round: "1", HomeTeam: "Burnley", AwayTeam: "Manchester City", Venue: "Turf Moor"}},
	}))
	require.NoError(t, p.FixtureStats(usecase.FixtureStatsReport{
		Rows: []usecase.FixtureStatsRow{
			{Fixture: f, HomeTeam: "Burnley", AwayTeam: "Manchester City", Stats: &fixturestats.FixtureStats{
				Home: fixturestats.TeamStatistics{TeamID: 44, ShotsOnGoal: intPtr(1)},
				Away: fixturestats.TeamStatistics{TeamID: 50, ShotsOnGoal: intPtr(8)},
			}},
			{Fixture: f, HomeTeam: "Manchester City", AwayTeam: "Burnley"},
		},
	}))

	text := out.String()
	assert.Contains(t, text, "2023-08-11 19:00")
	assert.Contains(t, text, "0 - 3")
	assert.Contains(t, text, "Turf Moor")
	assert.Contains(t, text, "Shots on Goal")
	assert.Contains(t, text, "Expected Goals")
	assert.Contains(t, text, "No statistics stored for this fixture.")
}

func TestPrinter_Notices(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrinter(&out)
	require.NoError(t, p.StandingsSynced(usecase.StandingsResult{
		Competition: competition.Competition{Name: "FA Cup"},
		Skipped:     true,
		SkipReason:  usecase.SkipReasonCup,
	}))
	require.NoError(t, p.Warning("No data returned from API.", "  league: unknown  "))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "FA Cup is a cup competition")
	assert.Contains(t, lines[1], "No data returned from API.")
	assert.Equal(t, "league: unknown", lines[2])
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatInt(nil))
	assert.Equal(t, "-", formatString(nil))
	assert.Equal(t, "-", formatScore(intPtr(1), nil))
	assert.Equal(t, "-", formatDate(time.Time{}))
}
