package occurrence

import (
	"testing"
	"time"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createdAt well before every test window so the creation lower bound
// does not interfere unless a test sets it explicitly.
var longAgo = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

func monthlyEntry(dayOfMonth int) entry.Entry {
	return entry.Entry{
		ID:         "monthly-1",
		Label:      "Rent",
		Amount:     decimal.NewFromInt(1200),
		Type:       entry.TypeExpense,
		RepeatType: entry.RepeatMonthly,
		DayOfMonth: dayOfMonth,
		CreatedAt:  longAgo,
	}
}

func weeklyEntry(start date.Date) entry.Entry {
	return entry.Entry{
		ID:         "weekly-1",
		Label:      "Groceries",
		Amount:     decimal.NewFromInt(100),
		Type:       entry.TypeExpense,
		RepeatType: entry.RepeatWeekly,
		StartDate:  &start,
		CreatedAt:  longAgo,
	}
}

func onceEntry(d date.Date) entry.Entry {
	return entry.Entry{
		ID:           "once-1",
		Label:        "Concert tickets",
		Amount:       decimal.NewFromInt(80),
		Type:         entry.TypeExpense,
		RepeatType:   entry.RepeatOnce,
		SpecificDate: &d,
		CreatedAt:    longAgo,
	}
}

func TestGenerateMonthly(t *testing.T) {

	t.Run("one occurrence per month on the configured day", func(t *testing.T) {
		got := Generate(monthlyEntry(15),
			date.New(2024, time.January, 1), date.New(2024, time.March, 31))
		assert.Equal(t, []date.Date{
			date.New(2024, time.January, 15),
			date.New(2024, time.February, 15),
			date.New(2024, time.March, 15),
		}, got)
	})

	t.Run("day 31 clamps to the last day of short months", func(t *testing.T) {
		got := Generate(monthlyEntry(31),
			date.New(2024, time.January, 1), date.New(2024, time.April, 30))
		assert.Equal(t, []date.Date{
			date.New(2024, time.January, 31),
			date.New(2024, time.February, 29),
			date.New(2024, time.March, 31),
			date.New(2024, time.April, 30),
		}, got)
	})

	t.Run("day 31 clamps to Feb 28 outside leap years", func(t *testing.T) {
		got := Generate(monthlyEntry(31),
			date.New(2023, time.February, 1), date.New(2023, time.February, 28))
		assert.Equal(t, []date.Date{date.New(2023, time.February, 28)}, got)
	})

	t.Run("window starting after the month's day skips that month", func(t *testing.T) {
		got := Generate(monthlyEntry(15),
			date.New(2024, time.January, 20), date.New(2024, time.February, 29))
		assert.Equal(t, []date.Date{date.New(2024, time.February, 15)}, got)
	})

	t.Run("missing dayOfMonth yields nothing", func(t *testing.T) {
		got := Generate(monthlyEntry(0),
			date.New(2024, time.January, 1), date.New(2024, time.December, 31))
		assert.Empty(t, got)
	})
}

func TestGenerateWeekly(t *testing.T) {
	monday := date.New(2024, time.March, 4)

	t.Run("expands every seven days from the start date", func(t *testing.T) {
		got := Generate(weeklyEntry(monday), monday, date.New(2024, time.March, 25))
		assert.Equal(t, []date.Date{
			date.New(2024, time.March, 4),
			date.New(2024, time.March, 11),
			date.New(2024, time.March, 18),
			date.New(2024, time.March, 25),
		}, got)
	})

	t.Run("keeps the day-of-week phase when the window starts mid-cycle", func(t *testing.T) {
		got := Generate(weeklyEntry(monday),
			date.New(2024, time.March, 13), date.New(2024, time.March, 31))
		assert.Equal(t, []date.Date{
			date.New(2024, time.March, 18),
			date.New(2024, time.March, 25),
		}, got)
		for _, d := range got {
			assert.Equal(t, time.Monday, d.Weekday())
		}
	})

	t.Run("start date inside the window is the first occurrence", func(t *testing.T) {
		got := Generate(weeklyEntry(monday),
			date.New(2024, time.March, 1), date.New(2024, time.March, 10))
		assert.Equal(t, []date.Date{date.New(2024, time.March, 4)}, got)
	})

	t.Run("missing start date yields nothing", func(t *testing.T) {
		e := weeklyEntry(monday)
		e.StartDate = nil
		got := Generate(e, date.New(2024, time.March, 1), date.New(2024, time.March, 31))
		assert.Empty(t, got)
	})
}

func TestGenerateBiweekly(t *testing.T) {
	friday := date.New(2024, time.March, 1)

	t.Run("expands every fourteen days", func(t *testing.T) {
		e := weeklyEntry(friday)
		e.RepeatType = entry.RepeatBiweekly
		got := Generate(e, date.New(2024, time.March, 1), date.New(2024, time.April, 15))
		assert.Equal(t, []date.Date{
			date.New(2024, time.March, 1),
			date.New(2024, time.March, 15),
			date.New(2024, time.March, 29),
			date.New(2024, time.April, 12),
		}, got)
	})

	t.Run("jumps to the first cycle at or after the window start", func(t *testing.T) {
		e := weeklyEntry(friday)
		e.RepeatType = entry.RepeatBiweekly
		got := Generate(e, date.New(2024, time.March, 16), date.New(2024, time.March, 31))
		assert.Equal(t, []date.Date{date.New(2024, time.March, 29)}, got)
	})
}

func TestGenerateOnce(t *testing.T) {
	d := date.New(2024, time.June, 10)

	t.Run("inside the window", func(t *testing.T) {
		got := Generate(onceEntry(d), date.New(2024, time.June, 1), date.New(2024, time.June, 30))
		assert.Equal(t, []date.Date{d}, got)
	})

	t.Run("outside the window", func(t *testing.T) {
		got := Generate(onceEntry(d), date.New(2024, time.July, 1), date.New(2024, time.July, 31))
		assert.Empty(t, got)
	})

	t.Run("missing specificDate yields nothing", func(t *testing.T) {
		e := onceEntry(d)
		e.SpecificDate = nil
		got := Generate(e, date.New(2024, time.June, 1), date.New(2024, time.June, 30))
		assert.Empty(t, got)
	})

	t.Run("ignores the creation lower bound", func(t *testing.T) {
		e := onceEntry(d)
		e.CreatedAt = time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)
		got := Generate(e, date.New(2024, time.June, 1), date.New(2024, time.June, 30))
		assert.Equal(t, []date.Date{d}, got)
	})
}

func TestGenerateCreationLowerBound(t *testing.T) {

	t.Run("recurring entries never occur before their creation day", func(t *testing.T) {
		e := monthlyEntry(15)
		e.CreatedAt = time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)
		got := Generate(e, date.New(2024, time.January, 1), date.New(2024, time.March, 31))
		assert.Equal(t, []date.Date{
			date.New(2024, time.February, 15),
			date.New(2024, time.March, 15),
		}, got)
	})

	t.Run("creation after the window yields nothing", func(t *testing.T) {
		e := monthlyEntry(15)
		e.CreatedAt = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		got := Generate(e, date.New(2024, time.January, 1), date.New(2024, time.March, 31))
		assert.Empty(t, got)
	})
}

func TestGenerateInvertedWindow(t *testing.T) {
	got := Generate(monthlyEntry(15), date.New(2024, time.March, 1), date.New(2024, time.February, 1))
	assert.Empty(t, got)
}

func TestNext(t *testing.T) {

	t.Run("monthly returns the next month's day when this month's has passed", func(t *testing.T) {
		got, ok := Next(monthlyEntry(15), date.New(2024, time.January, 20))
		assert.True(t, ok)
		assert.Equal(t, date.New(2024, time.February, 15), got)
	})

	t.Run("monthly returns this month's day when still ahead", func(t *testing.T) {
		got, ok := Next(monthlyEntry(15), date.New(2024, time.January, 10))
		assert.True(t, ok)
		assert.Equal(t, date.New(2024, time.January, 15), got)
	})

	t.Run("weekly steps to the next cycle strictly after from", func(t *testing.T) {
		got, ok := Next(weeklyEntry(date.New(2024, time.March, 4)), date.New(2024, time.March, 4))
		assert.True(t, ok)
		assert.Equal(t, date.New(2024, time.March, 11), got)
	})

	t.Run("once in the past has no next occurrence", func(t *testing.T) {
		_, ok := Next(onceEntry(date.New(2024, time.June, 10)), date.New(2024, time.June, 10))
		assert.False(t, ok)
	})
}
