package venue

import "fmt"

// Venue is a stadium. Every descriptive field is nullable because placeholder
// venues carry nothing but their id.
type Venue struct {
	ID       int64
	Name     *string
	Address  *string
	City     *string
	Capacity *int
	Surface  *string
	Image    *string
}

// PlaceholderID is the synthetic key used when the source has no venue for a
// team. It is negative so it never collides with provider ids.
func PlaceholderID(teamID int64) int64 {
	if teamID < 0 {
		return teamID
	}
	return -teamID
}

func Placeholder(teamID int64) Venue {
	return Venue{ID: PlaceholderID(teamID)}
}

func (v Venue) IsPlaceholder() bool {
	return v.ID < 0
}

func (v Venue) DisplayName() string {
	if v.Name == nil || *v.Name == "" {
		return "-"
	}
	return *v.Name
}

func (v Venue) Validate() error {
	if v.ID == 0 {
		return fmt.Errorf("venue id is required")
	}
	return nil
}
