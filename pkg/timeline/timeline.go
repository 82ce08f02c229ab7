package timeline

import (
	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/pkg/occurrence"
	"github.com/shopspring/decimal"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendNone Trend = "none"
)

// Row is one rendered day of the timeline. Only relevant days become
// rows: days with occurrences, today, and month ends; DaysSkipped counts
// the uneventful days collapsed since the previous row.
type Row struct {
	Date         date.Date
	Occurrences  []occurrence.Occurrence
	Balance      decimal.Decimal
	IsToday      bool
	IsMonthStart bool
	IsMonthEnd   bool
	DaysSkipped  int
	// MonthEndTrend compares a month-end balance with the previous
	// month's end within the requested range.
	MonthEndTrend Trend
}
