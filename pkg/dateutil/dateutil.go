// Package dateutil provides calendar-date helpers for schedule generation.
//
// All dates are timezone-naive calendar dates carried as time.Time values at
// midnight UTC. Comparisons are ordered comparisons of calendar dates, never
// locale-dependent string comparisons.
package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form. Malformed input is an
// error; there is no silent "invalid date" value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatDate renders a calendar date in YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// OnOrBefore reports whether a falls on or before b.
func OnOrBefore(a, b time.Time) bool {
	return !a.After(b)
}

// AddDays advances a date by a number of days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMonths advances a date by a number of calendar months.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// FinancialYearStart returns 1 July of the Australian financial year that
// contains the given date.
func FinancialYearStart(t time.Time) time.Time {
	year := t.Year()
	if t.Month() < time.July {
		year--
	}
	return time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC)
}

// FinancialYearLabel returns the tax-year identifier for the financial year
// containing the given date, e.g. "2024-25" for any date from 1 Jul 2024
// through 30 Jun 2025.
func FinancialYearLabel(t time.Time) string {
	start := FinancialYearStart(t)
	return fmt.Sprintf("%d-%02d", start.Year(), (start.Year()+1)%100)
}
