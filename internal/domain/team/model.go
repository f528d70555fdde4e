package team

import (
	"fmt"
	"strings"
)

// Team is a club or national side keyed by its provider id.
type Team struct {
	ID        int64
	Name      string
	ShortName *string
	Country   *string
	Founded   *int
	National  bool
	Logo      *string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be > 0")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}
