package teamseason

import "fmt"

// Association links a team to the season, competition and home venue it was
// observed with. It is derived from fixtures, never fetched directly.
type Association struct {
	ID            int64
	TeamID        int64
	SeasonID      int64
	CompetitionID int64
	VenueID       int64
}

func (a Association) Validate() error {
	if a.TeamID <= 0 || a.SeasonID <= 0 || a.CompetitionID <= 0 {
		return fmt.Errorf("association team, season and competition ids must be > 0")
	}
	if a.VenueID == 0 {
		return fmt.Errorf("association venue id is required")
	}
	return nil
}
