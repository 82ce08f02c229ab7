// Package projection folds entry occurrences into a per-day running
// balance anchored at the settings-defined initial balance.
package projection

import (
	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/moneystream/moneystream/pkg/occurrence"
	"github.com/moneystream/moneystream/pkg/settings"
	"github.com/shopspring/decimal"
)

// HorizonMonths bounds how far forward a single projection pass
// computes. Anything beyond it is reachable only by explicit paging
// through the timeline endpoint's window.
const HorizonMonths = 18

// Projection is the result of one pass: a balance for every calendar day
// from the balance anchor to the horizon, plus the effective occurrences
// that produced it. It is a pure function of entries + settings + today
// and is recomputed, never mutated.
type Projection struct {
	Settings    settings.Settings
	WindowStart date.Date
	WindowEnd   date.Date
	// Balances holds the balance after each day's transactions for every
	// day from the anchor to WindowEnd, including days with none.
	Balances map[date.Date]decimal.Decimal
	// Occurrences holds the resolved, display-ordered occurrences per day
	// over [WindowStart, WindowEnd].
	Occurrences map[date.Date][]occurrence.Occurrence
}

// Project computes the balance map over
// [min(balanceSetDate, today), today + HorizonMonths months].
func Project(entries []entry.Entry, s settings.Settings, today date.Date) Projection {
	windowStart := date.Min(s.BalanceSetDate, today)
	windowEnd := today.AddMonths(HorizonMonths)

	byDay := make(map[date.Date][]occurrence.Occurrence)
	for _, e := range entries {
		for _, d := range occurrence.Generate(e, windowStart, windowEnd) {
			byDay[d] = append(byDay[d], occurrence.Occurrence{Entry: e, Date: d})
		}
	}

	idx := occurrence.NewIndex(entries)
	for d, candidates := range byDay {
		byDay[d] = occurrence.ResolveWithIndex(idx, candidates, d)
	}

	balances := make(map[date.Date]decimal.Decimal)
	balance := s.InitialBalance
	for day := s.BalanceSetDate; !day.After(windowEnd); day = day.AddDays(1) {
		for _, occ := range byDay[day] {
			if occ.Entry.Type == entry.TypeIncome {
				balance = balance.Add(occ.Entry.Amount)
			} else {
				balance = balance.Sub(occ.Entry.Amount)
			}
		}
		balances[day] = balance
	}

	return Projection{
		Settings:    s,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Balances:    balances,
		Occurrences: byDay,
	}
}

// BalanceOn returns the balance after the given day's transactions.
// Days outside the computed window (notably days before the anchor)
// fall back to the initial balance.
func (p Projection) BalanceOn(d date.Date) decimal.Decimal {
	if balance, ok := p.Balances[d]; ok {
		return balance
	}
	return p.Settings.InitialBalance
}

// OccurrencesOn returns the effective occurrences for a day inside the
// window, already sorted for display.
func (p Projection) OccurrencesOn(d date.Date) []occurrence.Occurrence {
	return p.Occurrences[d]
}
