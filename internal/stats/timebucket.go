package stats

import (
	"fmt"
	"time"
)

// WeekKey returns the ISO-8601 week of t as "YYYY-Www", e.g. "2024-W09".
// The week year may differ from the calendar year around new year.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey returns "YYYY-MM".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
