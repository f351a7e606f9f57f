package rules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/bank-ledger/pkg/models/store"
	"github.com/de-tools/bank-ledger/pkg/store/duckdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) Store {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	s, err := NewStore(db)
	require.NoError(t, err)
	return s
}

func rule(y int, m time.Month, d int, id, rate string) store.InterestRule {
	return store.InterestRule{
		EffectiveDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		RuleID:        id,
		Rate:          decimal.RequireFromString(rate),
	}
}

func TestStore_UpsertAndList(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertRule(ctx, rule(2023, 6, 15, "RULE03", "2.20")))
	require.NoError(t, s.UpsertRule(ctx, rule(2023, 1, 1, "RULE01", "1.95")))
	require.NoError(t, s.UpsertRule(ctx, rule(2023, 5, 20, "RULE02", "1.90")))

	got, err := s.ListRules(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "RULE01", got[0].RuleID)
	assert.Equal(t, "RULE02", got[1].RuleID)
	assert.Equal(t, "RULE03", got[2].RuleID)
	assert.True(t, got[2].Rate.Equal(decimal.RequireFromString("2.2")))

	t.Run("same date replaces rule", func(t *testing.T) {
		require.NoError(t, s.UpsertRule(ctx, rule(2023, 6, 15, "RULE04", "2.40")))

		got, err := s.ListRules(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "RULE04", got[2].RuleID)
		assert.True(t, got[2].Rate.Equal(decimal.RequireFromString("2.4")))
	})
}

func TestStore_RateScaleRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertRule(ctx, rule(2023, 1, 1, "LOW", "0.0001")))
	require.NoError(t, s.UpsertRule(ctx, rule(2023, 1, 2, "HIGH", "99.9999")))

	got, err := s.ListRules(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "0.0001", got[0].Rate.String())
	assert.Equal(t, "99.9999", got[1].Rate.String())
}

func TestStore_ListRules_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM interest_rules`).WillReturnError(errors.New("database is locked"))

	s, err := NewStore(db)
	require.NoError(t, err)

	_, err = s.ListRules(context.Background())
	assert.ErrorContains(t, err, "query interest rules")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListRules_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"effective_date", "rule_id", "rate"}).
		AddRow(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "RULE01", "not-a-number")
	mock.ExpectQuery(`FROM interest_rules`).WillReturnRows(rows)

	s, err := NewStore(db)
	require.NoError(t, err)

	_, err = s.ListRules(context.Background())
	assert.ErrorContains(t, err, "scan interest rule")
}
