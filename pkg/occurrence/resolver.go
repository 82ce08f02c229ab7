package occurrence

import (
	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/pkg/entry"
)

// Index maps a recurring entry's id to its override and tombstone
// children. Parent/child linkage is by id reference only, so the index
// is rebuilt from the flat entry list once per projection pass instead
// of scanning all entries for every day.
type Index map[string][]entry.Entry

// NewIndex collects all entries that reference a parent. Orphans whose
// parent no longer exists still end up in the index; they are simply
// never looked up, and their own occurrences pass through as ordinary
// one-time entries.
func NewIndex(all []entry.Entry) Index {
	idx := make(Index)
	for _, e := range all {
		if e.ParentEntryID != "" && e.RepeatType == entry.RepeatOnce {
			idx[e.ParentEntryID] = append(idx[e.ParentEntryID], e)
		}
	}
	return idx
}

// Resolve filters the candidate occurrences for one calendar day down to
// the effective ones:
//
//  1. tombstones are never transactions, so their occurrences are dropped;
//  2. a recurring occurrence is suppressed when a tombstone child targets
//     that day;
//  3. a recurring occurrence is suppressed when a non-deleted override
//     child lands on that day — the override replaces it, the two are
//     never shown together.
//
// The result is sorted for display.
func Resolve(all []entry.Entry, candidates []Occurrence, day date.Date) []Occurrence {
	return ResolveWithIndex(NewIndex(all), candidates, day)
}

// ResolveWithIndex is Resolve with a prebuilt parent index, for callers
// resolving many days over the same entry set.
func ResolveWithIndex(idx Index, candidates []Occurrence, day date.Date) []Occurrence {
	effective := make([]Occurrence, 0, len(candidates))
	for _, occ := range candidates {
		if occ.Entry.Deleted {
			continue
		}
		if occ.Entry.IsRecurring() && hasChildOn(idx, occ.Entry.ID, day) {
			continue
		}
		effective = append(effective, occ)
	}
	SortForDisplay(effective)
	return effective
}

// hasChildOn reports whether any override or tombstone child of the
// given parent falls on the day. Tombstones and overrides suppress the
// parent alike: the tombstone leaves nothing behind, the override's own
// occurrence is already among the candidates.
func hasChildOn(idx Index, parentID string, day date.Date) bool {
	for _, child := range idx[parentID] {
		if child.SpecificDate != nil && *child.SpecificDate == day {
			return true
		}
	}
	return false
}
