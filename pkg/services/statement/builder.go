package statement

import (
	"context"
	"fmt"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/services/interest"
)

type Builder interface {
	Build(ctx context.Context, accountID string, month domain.Month) (domain.Statement, error)
}

type builder struct {
	ledger     interest.TransactionSource
	calculator interest.Calculator
}

func NewBuilder(ledger interest.TransactionSource, calculator interest.Calculator) Builder {
	return &builder{
		ledger:     ledger,
		calculator: calculator,
	}
}

// Build assembles the month's lines with running balances. Interest is posted
// as a closing line on the last day of the month when the accrual succeeded
// and rounds to a positive amount.
func (b *builder) Build(ctx context.Context, accountID string, month domain.Month) (domain.Statement, error) {
	if !month.Valid() {
		return domain.Statement{}, fmt.Errorf("%w: %s", domain.ErrInvalidMonth, month)
	}

	from, to := month.Start(), month.End()
	opening, err := b.ledger.OpeningBalance(ctx, accountID, from)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("failed to get opening balance: %w", err)
	}
	txns, err := b.ledger.ListTransactions(ctx, accountID, &from, &to)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	stmt := domain.Statement{
		AccountID:      accountID,
		Month:          month,
		OpeningBalance: opening,
		Lines:          make([]domain.StatementLine, 0, len(txns)),
		ClosingBalance: opening,
	}
	for _, txn := range txns {
		stmt.Lines = append(stmt.Lines, domain.StatementLine{
			Date:          txn.Date,
			TransactionID: txn.ID,
			Type:          txn.Type,
			Amount:        txn.Amount,
			Balance:       txn.EODBalance,
		})
		stmt.ClosingBalance = txn.EODBalance
	}

	accrual := b.calculator.ComputeMonthlyInterest(ctx, accountID, month)
	if !accrual.Available() {
		stmt.InterestError = accrual.Err.Error()
		return stmt, nil
	}

	stmt.InterestAvailable = true
	if posted := accrual.Posted(); posted.IsPositive() {
		stmt.ClosingBalance = stmt.ClosingBalance.Add(posted)
		stmt.Interest = &domain.StatementLine{
			Date:    to,
			Type:    domain.Interest,
			Amount:  posted,
			Balance: stmt.ClosingBalance,
		}
	}
	return stmt, nil
}
