package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	AccountID string
	Balance   decimal.Decimal
}

type Transaction struct {
	TxnID      string
	AccountID  string
	TxnDate    time.Time
	Seq        int
	Type       string
	Amount     decimal.Decimal
	EODBalance decimal.Decimal
}

type TransactionFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
}
