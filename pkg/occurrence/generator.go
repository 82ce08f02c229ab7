package occurrence

import (
	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/pkg/entry"
)

const (
	weeklyIntervalDays   = 7
	biweeklyIntervalDays = 14
)

// Generate expands an entry's recurrence rule into the concrete dates it
// lands on inside [windowStart, windowEnd], inclusive on both ends.
//
// Recurring entries never generate occurrences before their creation
// day; once entries are placed wherever their specificDate falls,
// regardless of createdAt. An entry whose repeat-specific field is
// missing or inconsistent yields no occurrences instead of an error, so
// one bad record cannot take down a whole projection.
func Generate(e entry.Entry, windowStart, windowEnd date.Date) []date.Date {
	if windowEnd.Before(windowStart) {
		return nil
	}

	if e.RepeatType == entry.RepeatOnce {
		if e.SpecificDate == nil {
			return nil
		}
		d := *e.SpecificDate
		if d.Before(windowStart) || d.After(windowEnd) {
			return nil
		}
		return []date.Date{d}
	}

	lower := windowStart
	if created := e.CreatedDate(); created.After(lower) {
		lower = created
	}
	if lower.After(windowEnd) {
		return nil
	}

	switch e.RepeatType {
	case entry.RepeatMonthly:
		return generateMonthly(e, lower, windowEnd)
	case entry.RepeatWeekly:
		return generateInterval(e, lower, windowEnd, weeklyIntervalDays)
	case entry.RepeatBiweekly:
		return generateInterval(e, lower, windowEnd, biweeklyIntervalDays)
	}
	return nil
}

func generateMonthly(e entry.Entry, lower, upper date.Date) []date.Date {
	if e.DayOfMonth < 1 || e.DayOfMonth > 31 {
		return nil
	}

	var out []date.Date
	cursor := date.New(lower.Year, lower.Month, 1)
	for !cursor.After(upper) {
		// Short months pull the target day in: day 31 lands on
		// Feb 28/29, Apr 30, and so on.
		day := e.DayOfMonth
		if last := cursor.DaysInMonth(); day > last {
			day = last
		}
		occ := date.New(cursor.Year, cursor.Month, day)
		if !occ.Before(lower) && !occ.After(upper) {
			out = append(out, occ)
		}
		cursor = date.New(cursor.Year, cursor.Month, 1).AddMonths(1)
	}
	return out
}

func generateInterval(e entry.Entry, lower, upper date.Date, intervalDays int) []date.Date {
	if e.StartDate == nil {
		return nil
	}

	// Anchor strictly to startDate so the day-of-week phase survives any
	// window: jump to the first cycle at or after the lower bound rather
	// than stepping from the window edge.
	cursor := *e.StartDate
	if cursor.Before(lower) {
		gap := cursor.DaysUntil(lower)
		cycles := gap / intervalDays
		if gap%intervalDays != 0 {
			cycles++
		}
		cursor = cursor.AddDays(cycles * intervalDays)
	}

	var out []date.Date
	for !cursor.After(upper) {
		out = append(out, cursor)
		cursor = cursor.AddDays(intervalDays)
	}
	return out
}

// Next returns the first occurrence of e strictly after from, when one
// exists.
func Next(e entry.Entry, from date.Date) (date.Date, bool) {
	switch e.RepeatType {
	case entry.RepeatOnce:
		if e.SpecificDate == nil || !e.SpecificDate.After(from) {
			return date.Date{}, false
		}
		return *e.SpecificDate, true

	case entry.RepeatMonthly:
		if e.DayOfMonth < 1 || e.DayOfMonth > 31 {
			return date.Date{}, false
		}
		cursor := date.New(from.Year, from.Month, 1)
		for i := 0; i < 2; i++ {
			day := e.DayOfMonth
			if last := cursor.DaysInMonth(); day > last {
				day = last
			}
			occ := date.New(cursor.Year, cursor.Month, day)
			if occ.After(from) {
				return occ, true
			}
			cursor = cursor.AddMonths(1)
		}
		return date.Date{}, false

	case entry.RepeatWeekly, entry.RepeatBiweekly:
		if e.StartDate == nil {
			return date.Date{}, false
		}
		intervalDays := weeklyIntervalDays
		if e.RepeatType == entry.RepeatBiweekly {
			intervalDays = biweeklyIntervalDays
		}
		cursor := *e.StartDate
		if !cursor.After(from) {
			gap := cursor.DaysUntil(from)
			cursor = cursor.AddDays((gap/intervalDays + 1) * intervalDays)
		}
		return cursor, true
	}
	return date.Date{}, false
}
