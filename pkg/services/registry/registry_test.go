package registry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(path string) *domain.Config {
	return &domain.Config{
		Database: domain.DatabaseConfig{Path: path},
		Interest: domain.InterestConfig{DayCountBasis: 365},
		Cache:    domain.CacheConfig{RulesTTL: time.Minute},
	}
}

func TestNew(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		r, err := New(testConfig(":memory:"))
		require.NoError(t, err)
		t.Cleanup(func() { r.Close() })

		assert.NotNil(t, r.Ledger)
		assert.NotNil(t, r.Rates)
		assert.NotNil(t, r.Calculator)
		assert.NotNil(t, r.Statements)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := New(testConfig(""))
		assert.Error(t, err)
	})
}

func TestRegistry_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	r, err := New(testConfig(path))
	require.NoError(t, err)
	_, err = r.Ledger.Deposit(ctx, "AC001", decimal.NewFromInt(100), domain.Date(2023, time.June, 1))
	require.NoError(t, err)
	_, err = r.Rates.UpsertRule(ctx, domain.Date(2023, time.January, 1), "RULE01", decimal.RequireFromString("1.95"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	r, err = New(testConfig(path))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	accrual := r.Calculator.ComputeMonthlyInterest(ctx, "AC001", domain.Month{Year: 2023, Month: time.June})
	require.NoError(t, accrual.Err)
	assert.Equal(t, "0.16", accrual.Posted().StringFixed(2))
}
