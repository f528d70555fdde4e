package report

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02 15:04"

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func formatString(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func formatScore(home, away *int) string {
	if home == nil || away == nil {
		return "-"
	}
	return strconv.Itoa(*home) + " - " + strconv.Itoa(*away)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
