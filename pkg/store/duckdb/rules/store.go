package rules

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/bank-ledger/pkg/models/store"
	"github.com/de-tools/bank-ledger/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

type Store interface {
	// UpsertRule replaces any rule sharing the same effective date.
	UpsertRule(ctx context.Context, rule store.InterestRule) error
	ListRules(ctx context.Context) ([]store.InterestRule, error)
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{
		db: db,
	}, nil
}

func (s *defaultStore) UpsertRule(ctx context.Context, rule store.InterestRule) error {
	_, err := duckdb.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT OR REPLACE INTO interest_rules (effective_date, rule_id, rate)
		VALUES (CAST(? AS DATE), ?, CAST(? AS DECIMAL(9,4)))`,
		rule.EffectiveDate.Format(duckdb.SQLDate),
		rule.RuleID,
		rule.Rate.String(),
	)
	if err != nil {
		return fmt.Errorf("upsert interest rule: %w", err)
	}
	return nil
}

func (s *defaultStore) ListRules(ctx context.Context) ([]store.InterestRule, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, `
		SELECT effective_date, rule_id, CAST(rate AS VARCHAR)
		FROM interest_rules
		ORDER BY effective_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("query interest rules: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close interest rule rows")
		}
	}(rows)

	rules := make([]store.InterestRule, 0)
	for rows.Next() {
		var rule store.InterestRule
		if err := rows.Scan(&rule.EffectiveDate, &rule.RuleID, &rule.Rate); err != nil {
			return nil, fmt.Errorf("scan interest rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interest rules: %w", err)
	}

	return rules, nil
}
