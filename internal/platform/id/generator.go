package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator creates opaque IDs used to correlate log lines of one run.
type Generator interface {
	NewID() (string, error)
}

// RunIDGenerator produces ids shaped like "20260301T120000-3fa9c2d1" so runs
// sort by start time in log search.
type RunIDGenerator struct {
	now func() time.Time
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{now: time.Now}
}

func (g *RunIDGenerator) NewID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return g.now().UTC().Format("20060102T150405") + "-" + hex.EncodeToString(buf), nil
}
