package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type InterestRule struct {
	EffectiveDate time.Time
	RuleID        string
	Rate          decimal.Decimal
}
