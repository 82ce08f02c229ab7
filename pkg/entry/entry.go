package entry

import (
	"time"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type RepeatType string

const (
	RepeatMonthly  RepeatType = "monthly"
	RepeatWeekly   RepeatType = "weekly"
	RepeatBiweekly RepeatType = "biweekly"
	RepeatOnce     RepeatType = "once"
)

// Entry is a single income or expense definition. Depending on
// RepeatType exactly one of DayOfMonth, StartDate, or SpecificDate is
// populated:
//
//   - monthly: DayOfMonth (1-31, clamped to the last day of short months
//     during expansion)
//   - weekly/biweekly: StartDate, the anchor preserving day-of-week phase
//   - once: SpecificDate
//
// A once entry with ParentEntryID set overrides the parent recurring
// entry's occurrence on SpecificDate; with Deleted also set it is a
// tombstone suppressing that occurrence without adding a transaction.
// Overrides and tombstones are ordinary entries: they are only ever
// added, never produced by mutating the recurring series.
type Entry struct {
	ID     string
	Label  string
	Note   string
	Amount decimal.Decimal
	Type   Type

	RepeatType   RepeatType
	DayOfMonth   int
	StartDate    *date.Date
	SpecificDate *date.Date

	// CreatedAt is the earliest instant from which a recurring entry may
	// generate occurrences.
	CreatedAt time.Time

	ParentEntryID string
	Deleted       bool
}

func (e Entry) IsRecurring() bool {
	return e.RepeatType != RepeatOnce
}

// IsTombstone reports whether e is a deletion marker for a single
// occurrence of its parent, never a transaction itself.
func (e Entry) IsTombstone() bool {
	return e.Deleted && e.ParentEntryID != ""
}

// IsOverride reports whether e replaces one occurrence of its parent.
func (e Entry) IsOverride() bool {
	return !e.Deleted && e.RepeatType == RepeatOnce && e.ParentEntryID != ""
}

// CreatedDate is the calendar day of CreatedAt under the UTC wire
// convention, the lower bound for recurring expansion.
func (e Entry) CreatedDate() date.Date {
	return date.FromTime(e.CreatedAt.UTC())
}

func ValidType(t Type) bool {
	return t == TypeIncome || t == TypeExpense
}

func ValidRepeatType(r RepeatType) bool {
	switch r {
	case RepeatMonthly, RepeatWeekly, RepeatBiweekly, RepeatOnce:
		return true
	}
	return false
}
