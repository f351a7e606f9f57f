package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSpan is a maximal date range, within a month, over which the EOD
// balance does not change. Start and End are inclusive.
type BalanceSpan struct {
	Start   time.Time
	End     time.Time
	Balance decimal.Decimal
}

// RateSpan is the part of a month governed by a single interest rule.
type RateSpan struct {
	Start  time.Time
	End    time.Time
	RuleID string
	Rate   decimal.Decimal
}

// InterestPeriod is the overlap of one RateSpan and one BalanceSpan.
type InterestPeriod struct {
	Start   time.Time
	End     time.Time
	RuleID  string
	Rate    decimal.Decimal
	Balance decimal.Decimal
	Days    int
	// AnnualizedInterest is balance * rate/100 * days, rounded to 2dp, before
	// division by the day count basis.
	AnnualizedInterest decimal.Decimal
}

type AccrualStatus string

const (
	AccrualOK          AccrualStatus = "ok"
	AccrualUnavailable AccrualStatus = "unavailable"
)

// Accrual is the interest accrued by an account over a month. A failed
// computation carries a zero Amount and a non-nil Err wrapping
// ErrInternalComputation.
type Accrual struct {
	AccountID string
	Month     Month
	Amount    decimal.Decimal
	Periods   []InterestPeriod
	Err       error
}

func (a Accrual) Available() bool {
	return a.Err == nil
}

func (a Accrual) Status() AccrualStatus {
	if a.Err != nil {
		return AccrualUnavailable
	}
	return AccrualOK
}

// Posted is the amount credited at month end.
func (a Accrual) Posted() decimal.Decimal {
	return a.Amount.RoundBank(2)
}

// TotalAnnualized sums the annualized interest of every period.
func (a Accrual) TotalAnnualized() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.Periods {
		total = total.Add(p.AnnualizedInterest)
	}
	return total
}
