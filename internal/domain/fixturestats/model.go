package fixturestats

import "fmt"

// TeamStatistics holds one side of a fixture's statistics. Every counter is
// nullable: the provider omits values it does not track for a match.
type TeamStatistics struct {
	TeamID        int64
	ShotsOnGoal   *int
	ShotsOffGoal  *int
	TotalShots    *int
	BlockedShots  *int
	ShotsInside   *int
	ShotsOutside  *int
	Fouls         *int
	Corners       *int
	Offsides      *int
	Possession    *string
	Yellows       *int
	Reds          *int
	Saves         *int
	TotalPasses   *int
	AccuratePass  *int
	PercentPass   *string
	ExpectedGoals *string
}

// FixtureStats is unique per (fixture, home team, away team).
type FixtureStats struct {
	ID        int64
	FixtureID int64
	Home      TeamStatistics
	Away      TeamStatistics
}

func (s FixtureStats) Validate() error {
	if s.FixtureID <= 0 {
		return fmt.Errorf("fixture stats fixture id must be > 0")
	}
	if s.Home.TeamID <= 0 || s.Away.TeamID <= 0 {
		return fmt.Errorf("fixture stats team ids must be > 0")
	}
	if s.Home.TeamID == s.Away.TeamID {
		return fmt.Errorf("fixture stats home and away team must differ")
	}
	return nil
}

// Side returns the statistics of teamID and whether it played in the fixture.
func (s FixtureStats) Side(teamID int64) (TeamStatistics, bool) {
	switch teamID {
	case s.Home.TeamID:
		return s.Home, true
	case s.Away.TeamID:
		return s.Away, true
	default:
		return TeamStatistics{}, false
	}
}
