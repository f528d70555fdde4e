package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
)

// Positions of each counter in the provider's statistics list.
const (
	statShotsOnGoal = iota
	statShotsOffGoal
	statTotalShots
	statBlockedShots
	statShotsInside
	statShotsOutside
	statFouls
	statCorners
	statOffsides
	statPossession
	statYellows
	statReds
	statSaves
	statTotalPasses
	statAccuratePasses
	statPassPercentage
	statExpectedGoals
)

// parseStatisticsPayload maps the two team entries of a statistics response
// onto a FixtureStats. The first entry is the home side. Missing positions
// and null values stay nil.
func parseStatisticsPayload(fixtureID int64, raw []ExternalTeamStatistics) (fixturestats.FixtureStats, error) {
	if len(raw) < 2 {
		return fixturestats.FixtureStats{}, fmt.Errorf("%w: fixture=%d statistics has %d team entries, need 2", ErrIncompleteData, fixtureID, len(raw))
	}

	out := fixturestats.FixtureStats{
		FixtureID: fixtureID,
		Home:      parseTeamStatistics(raw[0]),
		Away:      parseTeamStatistics(raw[1]),
	}
	if out.Home.TeamID <= 0 || out.Away.TeamID <= 0 {
		return fixturestats.FixtureStats{}, fmt.Errorf("%w: fixture=%d statistics entry without team id", ErrIncompleteData, fixtureID)
	}
	return out, nil
}

func parseTeamStatistics(entry ExternalTeamStatistics) fixturestats.TeamStatistics {
	values := entry.Values
	return fixturestats.TeamStatistics{
		TeamID:        entry.Team.ID,
		ShotsOnGoal:   statInt(values, statShotsOnGoal),
		ShotsOffGoal:  statInt(values, statShotsOffGoal),
		TotalShots:    statInt(values, statTotalShots),
		BlockedShots:  statInt(values, statBlockedShots),
		ShotsInside:   statInt(values, statShotsInside),
		ShotsOutside:  statInt(values, statShotsOutside),
		Fouls:         statInt(values, statFouls),
		Corners:       statInt(values, statCorners),
		Offsides:      statInt(values, statOffsides),
		Possession:    statText(values, statPossession),
		Yellows:       statInt(values, statYellows),
		Reds:          statInt(values, statReds),
		Saves:         statInt(values, statSaves),
		TotalPasses:   statInt(values, statTotalPasses),
		AccuratePass:  statInt(values, statAccuratePasses),
		PercentPass:   statText(values, statPassPercentage),
		ExpectedGoals: statText(values, statExpectedGoals),
	}
}

func statInt(values []ExternalStatValue, idx int) *int {
	if idx < 0 || idx >= len(values) {
		return nil
	}
	v := values[idx]
	if v.Int != nil {
		n := *v.Int
		return &n
	}
	if v.Text == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*v.Text))
	if err != nil {
		return nil
	}
	return &n
}

func statText(values []ExternalStatValue, idx int) *string {
	if idx < 0 || idx >= len(values) {
		return nil
	}
	v := values[idx]
	if v.Text != nil {
		text := *v.Text
		return &text
	}
	if v.Int != nil {
		text := strconv.Itoa(*v.Int)
		return &text
	}
	return nil
}
