package entities

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used by date inputs.
const DateLayout = "2006-01-02"

// FormatDateForInput renders a stored timestamp as YYYY-MM-DD. Timestamps are
// always read in UTC so a value stored at UTC midnight never shifts a day.
func FormatDateForInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// ParseDateFromInput turns YYYY-MM-DD into the canonical UTC-midnight timestamp.
func ParseDateFromInput(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// Today returns the calendar day of now in loc as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(DateLayout)
}
