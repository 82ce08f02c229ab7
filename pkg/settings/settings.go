package settings

import (
	"github.com/moneystream/moneystream/internal/date"
	"github.com/shopspring/decimal"
)

// Settings anchors the balance projection: InitialBalance is defined to
// hold exactly at the start of BalanceSetDate, and entries dated before
// that day do not affect the balance. The display toggles are persisted
// for clients but not interpreted by the projection.
type Settings struct {
	InitialBalance       decimal.Decimal
	BalanceSetDate       date.Date
	ShowDaysIndicator    bool
	ShowBalanceIndicator bool
}
