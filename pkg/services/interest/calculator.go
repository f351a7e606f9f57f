package interest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const DefaultDayCountBasis = 365

// TransactionSource supplies ledger history.
type TransactionSource interface {
	ListTransactions(ctx context.Context, accountID string, from, to *time.Time) ([]domain.Transaction, error)
	OpeningBalance(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error)
}

type RuleSource interface {
	ListRules(ctx context.Context) ([]domain.InterestRule, error)
}

type Settings struct {
	DayCountBasis       int
	CarryForwardBalance bool
}

func DefaultSettings() Settings {
	return Settings{DayCountBasis: DefaultDayCountBasis}
}

type Calculator interface {
	// ComputeMonthlyInterest never returns a bare zero on failure: the
	// returned Accrual carries Err instead.
	ComputeMonthlyInterest(ctx context.Context, accountID string, month domain.Month) domain.Accrual
	ListApplicablePeriods(ctx context.Context, accountID string, month domain.Month) ([]domain.InterestPeriod, error)
}

type calculator struct {
	txns     TransactionSource
	rules    RuleSource
	settings Settings
}

func NewCalculator(txns TransactionSource, rules RuleSource, settings Settings) Calculator {
	if settings.DayCountBasis <= 0 {
		settings.DayCountBasis = DefaultDayCountBasis
	}
	return &calculator{
		txns:     txns,
		rules:    rules,
		settings: settings,
	}
}

func (c *calculator) ListApplicablePeriods(ctx context.Context, accountID string, month domain.Month) ([]domain.InterestPeriod, error) {
	if !month.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMonth, month)
	}

	rules, err := c.rules.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interest rules: %w", err)
	}

	from, to := month.Start(), month.End()
	txns, err := c.txns.ListTransactions(ctx, accountID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var opening *decimal.Decimal
	if c.settings.CarryForwardBalance {
		balance, err := c.txns.OpeningBalance(ctx, accountID, from)
		if err != nil {
			return nil, fmt.Errorf("opening balance: %w", err)
		}
		opening = &balance
	}

	return Intersect(RateSpans(rules, month), BalanceSpans(txns, month, opening)), nil
}

func (c *calculator) ComputeMonthlyInterest(ctx context.Context, accountID string, month domain.Month) (accrual domain.Accrual) {
	accrual = domain.Accrual{
		AccountID: accountID,
		Month:     month,
		Amount:    decimal.Zero,
	}

	defer func() {
		if r := recover(); r != nil {
			accrual.Amount = decimal.Zero
			accrual.Periods = nil
			accrual.Err = fmt.Errorf("%w: %v", domain.ErrInternalComputation, r)
		}
		if accrual.Err != nil {
			zerolog.Ctx(ctx).Error().
				Err(accrual.Err).
				Str("account", accountID).
				Str("month", month.String()).
				Msg("interest computation failed")
		}
	}()

	periods, err := c.ListApplicablePeriods(ctx, accountID, month)
	if err != nil {
		if !errors.Is(err, domain.ErrInternalComputation) {
			err = fmt.Errorf("%w: %w", domain.ErrInternalComputation, err)
		}
		accrual.Err = err
		return accrual
	}

	total := decimal.Zero
	for _, p := range periods {
		total = total.Add(p.AnnualizedInterest)
	}

	accrual.Periods = periods
	accrual.Amount = total.Div(decimal.NewFromInt(int64(c.settings.DayCountBasis)))
	return accrual
}
