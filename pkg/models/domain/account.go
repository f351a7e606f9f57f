package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	Deposit    TransactionType = "D"
	Withdrawal TransactionType = "W"
	// Interest only appears on statements; it is never stored in the ledger.
	Interest TransactionType = "I"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(s))) {
	case Deposit:
		return Deposit, nil
	case Withdrawal:
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
}

type Account struct {
	ID      string
	Balance decimal.Decimal
}

// Transaction is an immutable ledger entry. EODBalance is the account balance
// right after the transaction posted.
type Transaction struct {
	ID         string
	AccountID  string
	Date       time.Time
	Type       TransactionType
	Amount     decimal.Decimal
	EODBalance decimal.Decimal
}

// Signed returns the amount with the sign it contributes to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionID formats the per-account, per-day identifier, e.g. 20230615-01.
func TransactionID(date time.Time, seq int) string {
	return fmt.Sprintf("%s-%02d", FormatDate(date), seq)
}

type TransactionInput struct {
	AccountID string
	Date      time.Time
	Type      TransactionType
	Amount    decimal.Decimal
}
