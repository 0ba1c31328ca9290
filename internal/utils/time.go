package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD as a calendar date in UTC. Calendar-day
// comparisons must not depend on the host timezone.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// FormatDate formats a time to YYYY-MM-DD using its own calendar fields.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// DateOf truncates a time to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return FormatDate(time.Now())
}
