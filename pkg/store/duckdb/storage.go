package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const AccountsSchema = `
	CREATE TABLE IF NOT EXISTS accounts (
		account_id VARCHAR PRIMARY KEY,
		balance DECIMAL(18,4) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`
const TransactionsSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		txn_id VARCHAR NOT NULL,
		account_id VARCHAR NOT NULL,
		txn_date DATE NOT NULL,
		seq INTEGER NOT NULL,
		type VARCHAR NOT NULL,
		amount DECIMAL(18,4) NOT NULL,
		eod_balance DECIMAL(18,4) NOT NULL,
		PRIMARY KEY (account_id, txn_id)
	);
`
const InterestRulesSchema = `
	CREATE TABLE IF NOT EXISTS interest_rules (
		effective_date DATE PRIMARY KEY,
		rule_id VARCHAR NOT NULL,
		rate DECIMAL(9,4) NOT NULL
	);
`

var bootQueries = []string{
	AccountsSchema,
	TransactionsSchema,
	InterestRulesSchema,
}

// SQLDate is the literal form bound to DATE parameters (CAST(? AS DATE)).
const SQLDate = "2006-01-02"

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DbPath == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
