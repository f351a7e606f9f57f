package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scales of the persisted DECIMAL columns.
const (
	MoneyScale int32 = 4
	RateScale  int32 = 4
)

// MaxMoney is the exclusive upper bound of a DECIMAL(18,4) amount or balance.
var MaxMoney = decimal.New(1, 14)

// FitsScale reports whether d has no significant digits beyond scale decimals.
func FitsScale(d decimal.Decimal, scale int32) bool {
	return d.Equal(d.Truncate(scale))
}

// ValidateAmount checks that a posted amount is positive and storable as is.
func ValidateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	case !FitsScale(amount, MoneyScale):
		return fmt.Errorf("%w: at most %d decimal places, got %s", ErrInvalidAmount, MoneyScale, amount)
	case amount.GreaterThanOrEqual(MaxMoney):
		return fmt.Errorf("%w: must be less than %s, got %s", ErrInvalidAmount, MaxMoney, amount)
	}
	return nil
}

// FormatRate renders a rate with two decimals, or with every stored digit when it has more.
func FormatRate(rate decimal.Decimal) string {
	if FitsScale(rate, 2) {
		return rate.StringFixed(2)
	}
	return rate.String()
}
