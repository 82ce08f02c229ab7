// Package occurrence expands recurrence rules into concrete calendar
// dates and reconciles override and tombstone entries against their
// parent recurring series. It is pure: no state, no I/O.
package occurrence

import (
	"sort"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/pkg/entry"
)

// Occurrence is one concrete calendar-day instance of an entry. It is
// derived on every query and never persisted.
type Occurrence struct {
	Entry entry.Entry
	Date  date.Date
}

// SortForDisplay orders same-day occurrences the way the timeline shows
// them: income before expense, then descending amount. Label breaks the
// remaining ties so the order is stable.
func SortForDisplay(occs []Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		a, b := occs[i].Entry, occs[j].Entry
		if a.Type != b.Type {
			return a.Type == entry.TypeIncome
		}
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Label < b.Label
	})
}
