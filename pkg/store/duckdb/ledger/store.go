package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/store"
	"github.com/de-tools/bank-ledger/pkg/store/duckdb"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store persists accounts and their append-only transactions. Writes join the
// transaction bound to ctx, if any (see duckdb.WithTransaction).
type Store interface {
	FindOrCreateAccount(ctx context.Context, accountID string) (*store.Account, error)
	NextSequence(ctx context.Context, accountID string, date time.Time) (int, error)
	AddTransaction(ctx context.Context, txn store.Transaction) error
	ListTransactions(ctx context.Context, filter store.TransactionFilter) ([]store.Transaction, error)
	LastBalanceBefore(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error)
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

func (s *defaultStore) FindOrCreateAccount(ctx context.Context, accountID string) (*store.Account, error) {
	conn := duckdb.Conn(ctx, s.db)

	acc := store.Account{AccountID: accountID}
	err := conn.QueryRowContext(ctx,
		`SELECT CAST(balance AS VARCHAR) FROM accounts WHERE account_id = ?`,
		accountID,
	).Scan(&acc.Balance)
	if err == nil {
		return &acc, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find account %s: %w", accountID, err)
	}

	_, err = conn.ExecContext(ctx, `INSERT INTO accounts (account_id, balance) VALUES (?, 0)`, accountID)
	if err != nil {
		return nil, fmt.Errorf("create account %s: %w", accountID, err)
	}
	zerolog.Ctx(ctx).Debug().Str("account", accountID).Msg("account created")

	acc.Balance = decimal.Zero
	return &acc, nil
}

func (s *defaultStore) NextSequence(ctx context.Context, accountID string, date time.Time) (int, error) {
	var last int
	err := duckdb.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0)
		FROM transactions
		WHERE account_id = ? AND txn_date = CAST(? AS DATE)`,
		accountID, date.Format(duckdb.SQLDate),
	).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("next transaction sequence: %w", err)
	}
	return last + 1, nil
}

// AddTransaction appends txn and moves the account balance to its EOD balance.
func (s *defaultStore) AddTransaction(ctx context.Context, txn store.Transaction) error {
	conn := duckdb.Conn(ctx, s.db)

	_, err := conn.ExecContext(ctx, `
		INSERT INTO transactions (
			txn_id, account_id, txn_date, seq, type, amount, eod_balance
		) VALUES (
			?, ?, CAST(? AS DATE), ?, ?, CAST(? AS DECIMAL(18,4)), CAST(? AS DECIMAL(18,4))
		)`,
		txn.TxnID,
		txn.AccountID,
		txn.TxnDate.Format(duckdb.SQLDate),
		txn.Seq,
		txn.Type,
		txn.Amount.String(),
		txn.EODBalance.String(),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	res, err := conn.ExecContext(ctx,
		`UPDATE accounts SET balance = CAST(? AS DECIMAL(18,4)) WHERE account_id = ?`,
		txn.EODBalance.String(), txn.AccountID,
	)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update account balance: account %s not found", txn.AccountID)
	}

	return nil
}

func (s *defaultStore) ListTransactions(ctx context.Context, filter store.TransactionFilter) ([]store.Transaction, error) {
	logger := zerolog.Ctx(ctx)

	conditions := []string{"account_id = ?"}
	args := []any{filter.AccountID}
	if filter.From != nil {
		conditions = append(conditions, "txn_date >= CAST(? AS DATE)")
		args = append(args, filter.From.Format(duckdb.SQLDate))
	}
	if filter.To != nil {
		conditions = append(conditions, "txn_date <= CAST(? AS DATE)")
		args = append(args, filter.To.Format(duckdb.SQLDate))
	}

	query := `
		SELECT
			txn_id,
			account_id,
			txn_date,
			seq,
			type,
			CAST(amount AS VARCHAR),
			CAST(eod_balance AS VARCHAR)
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY txn_date ASC, seq ASC`

	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close transaction query rows")
		}
	}(rows)

	records := make([]store.Transaction, 0)
	for rows.Next() {
		var txn store.Transaction
		if err := rows.Scan(
			&txn.TxnID,
			&txn.AccountID,
			&txn.TxnDate,
			&txn.Seq,
			&txn.Type,
			&txn.Amount,
			&txn.EODBalance,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		records = append(records, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return records, nil
}

// LastBalanceBefore returns the EOD balance of the latest transaction dated
// strictly before date, or zero when there is none.
func (s *defaultStore) LastBalanceBefore(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := duckdb.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT CAST(eod_balance AS VARCHAR)
		FROM transactions
		WHERE account_id = ? AND txn_date < CAST(? AS DATE)
		ORDER BY txn_date DESC, seq DESC
		LIMIT 1`,
		accountID, date.Format(duckdb.SQLDate),
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("last balance before %s: %w", date.Format(duckdb.SQLDate), err)
	}
	return balance, nil
}
