package fixture

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Score is a home/away pair where either side may be unknown.
type Score struct {
	Home *int
	Away *int
}

// Fixture is a single match keyed by its provider id.
type Fixture struct {
	ID            int64
	SeasonID      int64
	CompetitionID int64
	HomeTeamID    int64
	AwayTeamID    int64
	VenueID       int64
	Referee       *string
	Date          time.Time
	ShortStatus   string
	Elapsed       *int
	Round         string
	Goals         Score
	HalfTime      Score
	FullTime      Score
	ExtraTime     Score
	Penalty       Score
}

func (f Fixture) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("fixture id must be > 0")
	}
	if f.SeasonID <= 0 {
		return fmt.Errorf("fixture season id must be > 0")
	}
	if f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return fmt.Errorf("fixture team ids must be > 0")
	}
	if f.VenueID == 0 {
		return fmt.Errorf("fixture venue id is required")
	}
	if f.Date.IsZero() {
		return fmt.Errorf("fixture date is required")
	}
	return nil
}

func (f Fixture) Involves(teamID int64) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

const regularSeasonPrefix = "Regular Season - "

// Matchday parses the number out of a "Regular Season - N" round label.
func (f Fixture) Matchday() (int, bool) {
	round := strings.TrimSpace(f.Round)
	if !strings.HasPrefix(round, regularSeasonPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(round, regularSeasonPrefix)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
