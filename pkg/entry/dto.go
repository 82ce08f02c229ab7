package entry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/shopspring/decimal"
)

// EntryDTO is the wire representation of an Entry, shared by the REST
// handler, the persistence layer, and export/import. Dates follow the
// UTC-midnight wire convention; amounts are JSON numbers.
type EntryDTO struct {
	ID            string      `json:"id"`
	Label         string      `json:"label"`
	Note          string      `json:"note,omitempty"`
	Amount        json.Number `json:"amount"`
	Type          string      `json:"type"`
	RepeatType    string      `json:"repeatType"`
	DayOfMonth    *int        `json:"dayOfMonth,omitempty"`
	StartDate     *string     `json:"startDate,omitempty"`
	SpecificDate  *string     `json:"specificDate,omitempty"`
	CreatedAt     string      `json:"createdAt"`
	ParentEntryID string      `json:"parentEntryId,omitempty"`
	IsDeleted     *bool       `json:"isDeleted,omitempty"`
}

func EntryToDTO(e Entry) EntryDTO {
	dto := EntryDTO{
		ID:            e.ID,
		Label:         e.Label,
		Note:          e.Note,
		Amount:        json.Number(e.Amount.String()),
		Type:          string(e.Type),
		RepeatType:    string(e.RepeatType),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		ParentEntryID: e.ParentEntryID,
	}
	if e.DayOfMonth != 0 {
		dayOfMonth := e.DayOfMonth
		dto.DayOfMonth = &dayOfMonth
	}
	if e.StartDate != nil {
		s := e.StartDate.WireString()
		dto.StartDate = &s
	}
	if e.SpecificDate != nil {
		s := e.SpecificDate.WireString()
		dto.SpecificDate = &s
	}
	if e.Deleted {
		deleted := true
		dto.IsDeleted = &deleted
	}
	return dto
}

// DTOToEntry converts and validates a wire entry. The repeat-specific
// field required by the repeat type must be present and well-formed.
func DTOToEntry(dto EntryDTO) (Entry, error) {
	if dto.Label == "" {
		return Entry{}, fmt.Errorf("entry label must not be empty")
	}
	if !ValidType(Type(dto.Type)) {
		return Entry{}, fmt.Errorf("invalid entry type %q", dto.Type)
	}
	if !ValidRepeatType(RepeatType(dto.RepeatType)) {
		return Entry{}, fmt.Errorf("invalid repeat type %q", dto.RepeatType)
	}

	amount, err := decimal.NewFromString(dto.Amount.String())
	if err != nil {
		return Entry{}, fmt.Errorf("invalid amount %q: %w", dto.Amount, err)
	}
	if amount.IsNegative() {
		return Entry{}, fmt.Errorf("amount must not be negative")
	}

	e := Entry{
		ID:            dto.ID,
		Label:         dto.Label,
		Note:          dto.Note,
		Amount:        amount,
		Type:          Type(dto.Type),
		RepeatType:    RepeatType(dto.RepeatType),
		ParentEntryID: dto.ParentEntryID,
	}
	if dto.IsDeleted != nil {
		e.Deleted = *dto.IsDeleted
	}
	if dto.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, dto.CreatedAt)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid createdAt %q: %w", dto.CreatedAt, err)
		}
		e.CreatedAt = createdAt
	}

	// Repeat-specific fields are converted when present but not required
	// here: the generator treats an entry with missing fields as yielding
	// no occurrences, so old or hand-edited data survives a load. The
	// REST create/update path adds RequireRepeatFields on top.
	if dto.DayOfMonth != nil {
		if *dto.DayOfMonth < 1 || *dto.DayOfMonth > 31 {
			return Entry{}, fmt.Errorf("dayOfMonth must be between 1 and 31, got %d", *dto.DayOfMonth)
		}
		e.DayOfMonth = *dto.DayOfMonth
	}
	if dto.StartDate != nil {
		startDate, err := date.ParseWire(*dto.StartDate)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid startDate: %w", err)
		}
		e.StartDate = &startDate
	}
	if dto.SpecificDate != nil {
		specificDate, err := date.ParseWire(*dto.SpecificDate)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid specificDate: %w", err)
		}
		e.SpecificDate = &specificDate
	}

	return e, nil
}

// RequireRepeatFields enforces that the repeat-specific field selected
// by the repeat type is populated. Used when accepting new or updated
// entries over the API.
func RequireRepeatFields(e Entry) error {
	switch e.RepeatType {
	case RepeatMonthly:
		if e.DayOfMonth == 0 {
			return fmt.Errorf("monthly entry requires dayOfMonth")
		}
	case RepeatWeekly, RepeatBiweekly:
		if e.StartDate == nil {
			return fmt.Errorf("%s entry requires startDate", e.RepeatType)
		}
	case RepeatOnce:
		if e.SpecificDate == nil {
			return fmt.Errorf("once entry requires specificDate")
		}
	}
	return nil
}
