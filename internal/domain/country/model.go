package country

import (
	"fmt"
	"strings"
)

// Country groups the competitions returned by the leagues endpoint.
type Country struct {
	ID       int64
	Name     string
	Code     string
	Flag     string
	NumComps int
}

func (c Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("country name is required")
	}
	if c.NumComps < 0 {
		return fmt.Errorf("country competition count must be >= 0")
	}
	return nil
}
