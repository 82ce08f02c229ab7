package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWire(t *testing.T) {

	t.Run("parses a UTC midnight instant to its calendar day", func(t *testing.T) {
		d, err := ParseWire("2024-03-11T00:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, New(2024, time.March, 11), d)
	})

	t.Run("resolves offset instants to the UTC calendar day", func(t *testing.T) {
		// 23:00 at -02:00 is 01:00Z the next day.
		d, err := ParseWire("2024-03-11T23:00:00-02:00")
		require.NoError(t, err)
		assert.Equal(t, New(2024, time.March, 12), d)
	})

	t.Run("rejects a bare date string", func(t *testing.T) {
		_, err := ParseWire("2024-03-11")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseWire("not-a-date")
		assert.Error(t, err)
	})
}

func TestWireRoundTrip(t *testing.T) {
	d := New(2024, time.February, 29)
	parsed, err := ParseWire(d.WireString())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
	assert.Equal(t, "2024-02-29T00:00:00Z", d.WireString())
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{"within month", New(2024, time.March, 10), 5, New(2024, time.March, 15)},
		{"across month end", New(2024, time.January, 31), 1, New(2024, time.February, 1)},
		{"into leap day", New(2024, time.February, 28), 1, New(2024, time.February, 29)},
		{"across non-leap February", New(2023, time.February, 28), 1, New(2023, time.March, 1)},
		{"across year end", New(2024, time.December, 31), 1, New(2025, time.January, 1)},
		{"backwards", New(2024, time.March, 1), -1, New(2024, time.February, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.AddDays(tt.n))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, New(2024, time.February, 1).DaysInMonth())
	assert.Equal(t, 28, New(2023, time.February, 1).DaysInMonth())
	assert.Equal(t, 30, New(2024, time.April, 15).DaysInMonth())
	assert.Equal(t, 31, New(2024, time.December, 31).DaysInMonth())
}

func TestCompare(t *testing.T) {
	a := New(2024, time.March, 11)
	b := New(2024, time.March, 12)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, New(2023, time.December, 31).Before(New(2024, time.January, 1)))
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 1, New(2024, time.February, 28).DaysUntil(New(2024, time.February, 29)))
	assert.Equal(t, 366, New(2024, time.January, 1).DaysUntil(New(2025, time.January, 1)))
	assert.Equal(t, -7, New(2024, time.March, 11).DaysUntil(New(2024, time.March, 4)))
}

func TestMin(t *testing.T) {
	a := New(2024, time.January, 1)
	b := New(2024, time.June, 1)
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, a, Min(b, a))
	assert.Equal(t, a, Min(a, a))
}

func TestFromTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	// The calendar day is taken in the time's own location.
	d := FromTime(time.Date(2024, time.March, 11, 0, 30, 0, 0, loc))
	assert.Equal(t, New(2024, time.March, 11), d)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, New(2024, time.January, 1).IsZero())
}
