// Package date provides a civil calendar-day value: a date without
// time-of-day or timezone, compared by year/month/day only.
//
// Persisted and transmitted dates use a UTC-midnight wire convention
// (an RFC3339 instant at 00:00:00Z). ParseWire and Wire convert between
// that form and Date at the boundary, so the rest of the code never
// compares raw timestamps.
package date

import (
	"fmt"
	"time"
)

// Date identifies a single calendar day. The zero value is not a valid
// date; use IsZero to detect it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseWire parses a wire-format date string (RFC3339) and returns the
// UTC calendar day it names.
func ParseWire(s string) (Date, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t.UTC()), nil
}

// Wire returns the UTC-midnight instant for d, the form in which dates
// are persisted and transmitted.
func (d Date) Wire() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// WireString formats d in the RFC3339 UTC-midnight wire form.
func (d Date) WireString() string {
	return d.Wire().Format(time.RFC3339)
}

func (d Date) String() string {
	return d.Wire().Format("2006-01-02")
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Wire().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months. The day is preserved by
// time.AddDate's normalization rules, which is only used for window
// bounds where a day or two of slack does not matter.
func (d Date) AddMonths(n int) Date {
	return FromTime(d.Wire().AddDate(0, n, 0))
}

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Weekday() time.Weekday {
	return d.Wire().Weekday()
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after other.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return cmp(d.Year, other.Year)
	}
	if d.Month != other.Month {
		return cmp(int(d.Month), int(other.Month))
	}
	return cmp(d.Day, other.Day)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// DaysUntil returns the number of calendar days from d to other
// (negative when other is before d).
func (d Date) DaysUntil(other Date) int {
	return int(other.Wire().Sub(d.Wire()) / (24 * time.Hour))
}

func Min(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

func cmp(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
