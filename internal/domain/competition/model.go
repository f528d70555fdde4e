package competition

import (
	"fmt"
	"strings"
)

const (
	TypeLeague = "League"
	TypeCup    = "Cup"
)

// Competition is a league or cup keyed by its provider id.
type Competition struct {
	ID        int64
	CountryID int64
	Name      string
	Type      string
	Logo      string
}

func (c Competition) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("competition id must be > 0")
	}
	if c.CountryID <= 0 {
		return fmt.Errorf("competition country id must be > 0")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition name is required")
	}
	return nil
}

// HasStandings reports whether the competition publishes a league table.
func (c Competition) HasStandings() bool {
	return strings.EqualFold(strings.TrimSpace(c.Type), TypeLeague)
}

// Filter narrows List results. Zero values mean "any".
type Filter struct {
	CountryID int64
	Type      string
}
