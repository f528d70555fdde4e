package season

import "fmt"

// Season is one year of one competition. TotalTeams counts the teams ingested
// for it and gates re-ingestion.
type Season struct {
	ID         int64
	Year       int
	LeagueID   int64
	TotalTeams int
}

func (s Season) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("season league id must be > 0")
	}
	if s.Year < 1850 || s.Year > 2200 {
		return fmt.Errorf("season year %d is out of range", s.Year)
	}
	if s.TotalTeams < 0 {
		return fmt.Errorf("season total teams must be >= 0")
	}
	return nil
}

// Filter narrows List results. Empty LeagueIDs with RestrictLeagues set
// yields no rows, which lets callers express "competitions of a country that
// has none".
type Filter struct {
	LeagueIDs       []int64
	RestrictLeagues bool
	Year            int
}
