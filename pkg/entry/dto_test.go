package entry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDTO() EntryDTO {
	startDate := date.New(2024, time.March, 4).WireString()
	return EntryDTO{
		ID:         "entry-1",
		Label:      "Groceries",
		Amount:     json.Number("100"),
		Type:       "expense",
		RepeatType: "weekly",
		StartDate:  &startDate,
		CreatedAt:  "2024-03-01T10:00:00Z",
	}
}

func TestDTOToEntry(t *testing.T) {

	t.Run("converts a valid weekly entry", func(t *testing.T) {
		e, err := DTOToEntry(validDTO())

		require.NoError(t, err)
		assert.Equal(t, "entry-1", e.ID)
		assert.True(t, e.Amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, RepeatWeekly, e.RepeatType)
		require.NotNil(t, e.StartDate)
		assert.Equal(t, date.New(2024, time.March, 4), *e.StartDate)
	})

	t.Run("rejects an empty label", func(t *testing.T) {
		dto := validDTO()
		dto.Label = ""
		_, err := DTOToEntry(dto)
		assert.ErrorContains(t, err, "label")
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		dto := validDTO()
		dto.Type = "transfer"
		_, err := DTOToEntry(dto)
		assert.ErrorContains(t, err, "type")
	})

	t.Run("rejects an unknown repeat type", func(t *testing.T) {
		dto := validDTO()
		dto.RepeatType = "yearly"
		_, err := DTOToEntry(dto)
		assert.ErrorContains(t, err, "repeat type")
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		dto := validDTO()
		dto.Amount = json.Number("-5")
		_, err := DTOToEntry(dto)
		assert.ErrorContains(t, err, "negative")
	})

	t.Run("rejects dayOfMonth outside 1-31", func(t *testing.T) {
		dayOfMonth := 32
		dto := validDTO()
		dto.RepeatType = "monthly"
		dto.StartDate = nil
		dto.DayOfMonth = &dayOfMonth
		_, err := DTOToEntry(dto)
		assert.ErrorContains(t, err, "dayOfMonth")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		bad := "2024-03-04"
		dto := validDTO()
		dto.StartDate = &bad
		_, err := DTOToEntry(dto)
		assert.ErrorContains(t, err, "startDate")
	})

	t.Run("tolerates a missing repeat-specific field", func(t *testing.T) {
		// Loads of old data must not fail; the generator simply yields no
		// occurrences for such an entry.
		dto := validDTO()
		dto.StartDate = nil

		e, err := DTOToEntry(dto)

		require.NoError(t, err)
		assert.Nil(t, e.StartDate)
	})
}

func TestEntryToDTO(t *testing.T) {

	t.Run("omits dayOfMonth for non-monthly entries", func(t *testing.T) {
		start := date.New(2024, time.March, 4)
		dto := EntryToDTO(Entry{
			ID:         "entry-1",
			Label:      "Groceries",
			Amount:     decimal.NewFromInt(100),
			Type:       TypeExpense,
			RepeatType: RepeatWeekly,
			StartDate:  &start,
			CreatedAt:  time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		})

		assert.Nil(t, dto.DayOfMonth)
		require.NotNil(t, dto.StartDate)
		assert.Equal(t, "2024-03-04T00:00:00Z", *dto.StartDate)
		assert.Equal(t, json.Number("100"), dto.Amount)
	})

	t.Run("marks tombstones deleted", func(t *testing.T) {
		day := date.New(2024, time.March, 11)
		dto := EntryToDTO(Entry{
			ID:            "tomb-1",
			Label:         "Groceries",
			Amount:        decimal.Zero,
			Type:          TypeExpense,
			RepeatType:    RepeatOnce,
			SpecificDate:  &day,
			ParentEntryID: "entry-1",
			Deleted:       true,
		})

		require.NotNil(t, dto.IsDeleted)
		assert.True(t, *dto.IsDeleted)
		assert.Equal(t, "entry-1", dto.ParentEntryID)
	})

	t.Run("round-trips through DTOToEntry", func(t *testing.T) {
		start := date.New(2024, time.March, 4)
		original := Entry{
			ID:         "entry-1",
			Label:      "Groceries",
			Note:       "weekly shop",
			Amount:     decimal.NewFromFloat(99.95),
			Type:       TypeExpense,
			RepeatType: RepeatWeekly,
			StartDate:  &start,
			CreatedAt:  time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		}

		back, err := DTOToEntry(EntryToDTO(original))

		require.NoError(t, err)
		assert.Equal(t, original, back)
	})
}

func TestRequireRepeatFields(t *testing.T) {
	start := date.New(2024, time.March, 4)
	tests := []struct {
		name    string
		e       Entry
		wantErr bool
	}{
		{"monthly with dayOfMonth", Entry{RepeatType: RepeatMonthly, DayOfMonth: 15}, false},
		{"monthly without dayOfMonth", Entry{RepeatType: RepeatMonthly}, true},
		{"weekly with startDate", Entry{RepeatType: RepeatWeekly, StartDate: &start}, false},
		{"biweekly without startDate", Entry{RepeatType: RepeatBiweekly}, true},
		{"once with specificDate", Entry{RepeatType: RepeatOnce, SpecificDate: &start}, false},
		{"once without specificDate", Entry{RepeatType: RepeatOnce}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRepeatFields(tt.e)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
