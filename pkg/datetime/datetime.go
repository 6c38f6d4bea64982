// Package datetime provides date utility functions for the loan engine.
package datetime

import (
	"time"

	"github.com/kopaflow/loan-engine/pkg/constants"
)

// DateLayout is the format expected for dates in config files and portfolio
// snapshots and is also the output date format.
const DateLayout = constants.DateLayout

// ParseDate parses a date string in the engine's canonical layout.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// MustParseDate parses a date string and panics on error. This is intended
// for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// DaysBetween returns the whole number of days elapsed from one date to
// another, truncating any partial day.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// MonthsBetween returns the calendar-month difference between two dates,
// counting year and month fields only. Day-of-month is deliberately ignored
// so that 2024-01-31 to 2024-02-01 counts as one month.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*constants.MonthsPerYear + int(to.Month()) - int(from.Month())
}

// AddMonths returns the date offset by the given number of calendar months.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
