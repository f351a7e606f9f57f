package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is a single row of a monthly statement.
type StatementLine struct {
	Date          time.Time
	TransactionID string
	Type          TransactionType
	Amount        decimal.Decimal
	Balance       decimal.Decimal
}

// Statement lists an account's activity for a month, closed by the interest
// posted at month end.
type Statement struct {
	AccountID         string
	Month             Month
	OpeningBalance    decimal.Decimal
	Lines             []StatementLine
	Interest          *StatementLine
	InterestAvailable bool
	InterestError     string
	ClosingBalance    decimal.Decimal
}
