package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRule sets the annual rate (in percent) effective from Date until the
// next rule by date. Date is the uniqueness key; RuleID is only a label.
type InterestRule struct {
	Date   time.Time
	RuleID string
	Rate   decimal.Decimal
}
