package ledger

import (
	"context"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) FindOrCreateAccount(ctx context.Context, accountID string) (domain.Account, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *mockLedger) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, date time.Time) (domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, date)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *mockLedger) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, date time.Time) (domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, date)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *mockLedger) Process(ctx context.Context, in domain.TransactionInput) (domain.Transaction, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *mockLedger) ListTransactions(ctx context.Context, accountID string, from, to *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, from, to)
	if v := args.Get(0); v != nil {
		return v.([]domain.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedger) OpeningBalance(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockRates struct {
	mock.Mock
}

func (m *mockRates) UpsertRule(ctx context.Context, date time.Time, ruleID string, rate decimal.Decimal) (domain.InterestRule, error) {
	args := m.Called(ctx, date, ruleID, rate)
	return args.Get(0).(domain.InterestRule), args.Error(1)
}

func (m *mockRates) ListRules(ctx context.Context) ([]domain.InterestRule, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.InterestRule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRates) ImportRules(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) ComputeMonthlyInterest(ctx context.Context, accountID string, month domain.Month) domain.Accrual {
	args := m.Called(ctx, accountID, month)
	return args.Get(0).(domain.Accrual)
}

func (m *mockCalculator) ListApplicablePeriods(ctx context.Context, accountID string, month domain.Month) ([]domain.InterestPeriod, error) {
	args := m.Called(ctx, accountID, month)
	return args.Get(0).([]domain.InterestPeriod), args.Error(1)
}

type mockStatements struct {
	mock.Mock
}

func (m *mockStatements) Build(ctx context.Context, accountID string, month domain.Month) (domain.Statement, error) {
	args := m.Called(ctx, accountID, month)
	return args.Get(0).(domain.Statement), args.Error(1)
}
