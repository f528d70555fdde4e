package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullStatValues() []ExternalStatValue {
	values := make([]ExternalStatValue, 0, 17)
	for i := 0; i < 17; i++ {
		values = append(values, ExternalStatValue{Int: ptr(i + 1)})
	}
	values[statPossession] = ExternalStatValue{Type: "Ball Possession", Text: ptr("61%")}
	values[statPassPercentage] = ExternalStatValue{Type: "Passes %", Text: ptr("88%")}
	values[statExpectedGoals] = ExternalStatValue{Type: "expected_goals", Text: ptr("2.31")}
	return values
}

func TestParseStatisticsPayload_MapsByPosition(t *testing.T) {
	t.Parallel()

	got, err := parseStatisticsPayload(99, []ExternalTeamStatistics{
		{Team: ExternalTeam{ID: 33}, Values: fullStatValues()},
		{Team: ExternalTeam{ID: 40}, Values: fullStatValues()[:5]},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(99), got.FixtureID)
	assert.Equal(t, int64(33), got.Home.TeamID)
	assert.Equal(t, int64(40), got.Away.TeamID)

	assert.Equal(t, 1, *got.Home.ShotsOnGoal)
	assert.Equal(t, 9, *got.Home.Offsides)
	assert.Equal(t, "61%", *got.Home.Possession)
	assert.Equal(t, 11, *got.Home.Yellows)
	assert.Equal(t, 15, *got.Home.AccuratePass)
	assert.Equal(t, "88%", *got.Home.PercentPass)
	assert.Equal(t, "2.31", *got.Home.ExpectedGoals)

	assert.Equal(t, 5, *got.Away.ShotsInside)
	assert.Nil(t, got.Away.ShotsOutside)
	assert.Nil(t, got.Away.Possession)
	assert.Nil(t, got.Away.ExpectedGoals)
}

func TestParseStatisticsPayload_IntFromText(t *testing.T) {
	t.Parallel()

	values := []ExternalStatValue{{Text: ptr(" 7 ")}, {Text: ptr("n/a")}, {}}
	assert.Equal(t, 7, *statInt(values, 0))
	assert.Nil(t, statInt(values, 1))
	assert.Nil(t, statInt(values, 2))
	assert.Nil(t, statInt(values, 3))
	assert.Equal(t, "12", *statText([]ExternalStatValue{{Int: ptr(12)}}, 0))
}

func TestParseStatisticsPayload_Incomplete(t *testing.T) {
	t.Parallel()

	_, err := parseStatisticsPayload(1, nil)
	assert.ErrorIs(t, err, ErrIncompleteData)

	_, err = parseStatisticsPayload(1, []ExternalTeamStatistics{{Team: ExternalTeam{ID: 33}}})
	assert.ErrorIs(t, err, ErrIncompleteData)

	_, err = parseStatisticsPayload(1, []ExternalTeamStatistics{{Team: ExternalTeam{ID: 33}}, {}})
	assert.ErrorIs(t, err, ErrIncompleteData)
}

func TestIsPlayed(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"FT", "AET", "PEN", "1H"} {
		assert.True(t, isPlayed(status), status)
	}
	for _, status := range []string{"NS", "tbd", "PST", "CANC"} {
		assert.False(t, isPlayed(status), status)
	}
}
