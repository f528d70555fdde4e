package standing

import "fmt"

// Record is one split (overall, home or away) of a standing row.
type Record struct {
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
}

// NewRecord derives GoalDiff from the goal totals.
func NewRecord(played, won, drawn, lost, goalsFor, goalsAgainst int) Record {
	return Record{
		Played:       played,
		Won:          won,
		Drawn:        drawn,
		Lost:         lost,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		GoalDiff:     goalsFor - goalsAgainst,
	}
}

// Standing is a team's table row within one season. Unique per (team, season).
type Standing struct {
	ID       int64
	TeamID   int64
	SeasonID int64
	Position int
	Points   int
	Overall  Record
	Home     Record
	Away     Record
}

func (s Standing) Validate() error {
	if s.TeamID <= 0 {
		return fmt.Errorf("standing team id must be > 0")
	}
	if s.SeasonID <= 0 {
		return fmt.Errorf("standing season id must be > 0")
	}
	if s.Position <= 0 {
		return fmt.Errorf("standing position must be > 0")
	}
	return nil
}
