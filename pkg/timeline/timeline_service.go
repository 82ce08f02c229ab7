package timeline

import (
	"context"
	"fmt"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/internal/utils"
	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/moneystream/moneystream/pkg/occurrence"
	"github.com/moneystream/moneystream/pkg/projection"
)

type Service interface {
	// Rows renders the timeline for [from, to], both inclusive. The
	// range is the caller's page; balances come from the cached
	// projection, occurrences are expanded for exactly this window.
	Rows(ctx context.Context, from, to date.Date) ([]Row, error)
}

type ServiceImpl struct {
	store             entry.Store
	projectionService projection.Service
	clock             utils.Clock
}

func NewService(store entry.Store, projectionService projection.Service, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{store: store, projectionService: projectionService, clock: clock}
}

func (s *ServiceImpl) Rows(ctx context.Context, from, to date.Date) ([]Row, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: %s is after %s", from, to)
	}

	p, err := s.projectionService.Current(ctx)
	if err != nil {
		return nil, err
	}

	entries := s.store.List(ctx)
	byDay := make(map[date.Date][]occurrence.Occurrence)
	for _, e := range entries {
		for _, d := range occurrence.Generate(e, from, to) {
			byDay[d] = append(byDay[d], occurrence.Occurrence{Entry: e, Date: d})
		}
	}
	idx := occurrence.NewIndex(entries)

	today := date.FromTime(s.clock.Now())

	var rows []Row
	var lastKept date.Date
	var prevMonthEnd *Row
	for day := from; !day.After(to); day = day.AddDays(1) {
		effective := occurrence.ResolveWithIndex(idx, byDay[day], day)
		isToday := day == today
		isMonthEnd := day.Day == day.DaysInMonth()

		if len(effective) == 0 && !isToday && !isMonthEnd {
			continue
		}

		daysSkipped := 0
		if !lastKept.IsZero() {
			daysSkipped = lastKept.DaysUntil(day) - 1
		}

		row := Row{
			Date:          day,
			Occurrences:   effective,
			Balance:       p.BalanceOn(day),
			IsToday:       isToday,
			IsMonthStart:  day.Day == 1,
			IsMonthEnd:    isMonthEnd,
			DaysSkipped:   daysSkipped,
			MonthEndTrend: TrendNone,
		}
		if isMonthEnd && prevMonthEnd != nil {
			switch row.Balance.Cmp(prevMonthEnd.Balance) {
			case 1:
				row.MonthEndTrend = TrendUp
			case -1:
				row.MonthEndTrend = TrendDown
			}
		}

		rows = append(rows, row)
		lastKept = day
		if isMonthEnd {
			prevMonthEnd = &rows[len(rows)-1]
		}
	}

	return rows, nil
}
