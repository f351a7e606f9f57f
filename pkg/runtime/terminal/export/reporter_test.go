package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var june2023 = domain.Month{Year: 2023, Month: time.June}

func TestReporter_Transactions(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Transactions("AC001", []domain.Transaction{
		{ID: "20230601-01", Date: domain.Date(2023, time.June, 1), Type: domain.Deposit, Amount: dec("150"), EODBalance: dec("150")},
		{ID: "20230626-01", Date: domain.Date(2023, time.June, 26), Type: domain.Withdrawal, Amount: dec("20.5"), EODBalance: dec("129.5")},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Account: AC001\n")
	assert.Contains(t, out, "| Date     | Txn Id      | Type |     Amount |\n")
	assert.Contains(t, out, "| 20230601 | 20230601-01 | D    |     150.00 |\n")
	assert.Contains(t, out, "| 20230626 | 20230626-01 | W    |      20.50 |\n")
	assert.Contains(t, out, "+----------+-------------+------+------------+\n")
}

func TestReporter_Rules(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Rules([]domain.InterestRule{
		{Date: domain.Date(2023, time.January, 1), RuleID: "RULE01", Rate: dec("1.95")},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "| 20230101 | RULE01     |     1.95 |\n")

	t.Run("finer than cents", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewReporter(&buf).Rules([]domain.InterestRule{
			{Date: domain.Date(2023, time.January, 1), RuleID: "RULE01", Rate: dec("1.955")},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "| 20230101 | RULE01     |    1.955 |\n")
	})
}

func TestReporter_Interest(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewReporter(&buf)

		err := r.Interest(domain.Accrual{
			AccountID: "AC001",
			Month:     june2023,
			Amount:    dec("0.1602739726"),
			Periods: []domain.InterestPeriod{{
				Start: june2023.Start(), End: june2023.End(), RuleID: "RULE01", Rate: dec("1.95"),
				Balance: dec("100"), Days: 30, AnnualizedInterest: dec("58.5"),
			}},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Account: AC001  Month: 202306\n")
		assert.Contains(t, out, "| 20230601 | 20230630 | RULE01     |     1.95 |       100.00 |   30 |        58.50 |\n")
		assert.Contains(t, out, "Interest accrued: 0.16\n")
	})

	t.Run("unavailable", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewReporter(&buf)

		err := r.Interest(domain.Accrual{
			AccountID: "AC001",
			Month:     june2023,
			Amount:    decimal.Zero,
			Err:       errors.New("interest computation failed: db closed"),
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Interest unavailable: interest computation failed: db closed\n")
		assert.NotContains(t, buf.String(), "Interest accrued")
	})
}

func TestReporter_Statement(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Statement(domain.Statement{
		AccountID:      "AC001",
		Month:          june2023,
		OpeningBalance: dec("100"),
		Lines: []domain.StatementLine{
			{Date: domain.Date(2023, time.June, 1), TransactionID: "20230601-01", Type: domain.Deposit, Amount: dec("150"), Balance: dec("250")},
		},
		Interest:          &domain.StatementLine{Date: june2023.End(), Type: domain.Interest, Amount: dec("0.39"), Balance: dec("250.39")},
		InterestAvailable: true,
		ClosingBalance:    dec("250.39"),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Opening balance: 100.00\n")
	assert.Contains(t, out, "| 20230601 | 20230601-01 | D    |     150.00 |       250.00 |\n")
	assert.Contains(t, out, "| 20230630 |             | I    |       0.39 |       250.39 |\n")
	assert.Contains(t, out, "Closing balance: 250.39\n")
	assert.NotContains(t, out, "unavailable")
}

func TestFormatRow(t *testing.T) {
	cols := []Column{{Title: "A", Width: 3}, {Title: "B", Width: 4, Right: true}}
	assert.Equal(t, "| x   |   yy |", formatRow(cols, "x", "yy"))
	assert.Equal(t, "| x   |      |", formatRow(cols, "x"))
	assert.Equal(t, "+-----+------+", separator(cols))
}
