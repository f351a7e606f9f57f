package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/de-tools/bank-ledger/pkg/adapters"
	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/models/store"
	"github.com/de-tools/bank-ledger/pkg/store/duckdb"
	ledgerstore "github.com/de-tools/bank-ledger/pkg/store/duckdb/ledger"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service records deposits and withdrawals. Validation happens before any
// write, and each posting is applied in a single database transaction.
type Service interface {
	FindOrCreateAccount(ctx context.Context, accountID string) (domain.Account, error)
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, date time.Time) (domain.Transaction, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, date time.Time) (domain.Transaction, error)
	Process(ctx context.Context, in domain.TransactionInput) (domain.Transaction, error)
	// ListTransactions returns transactions ordered by date, then by posting
	// sequence. Nil bounds are open.
	ListTransactions(ctx context.Context, accountID string, from, to *time.Time) ([]domain.Transaction, error)
	// OpeningBalance is the EOD balance carried into date.
	OpeningBalance(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error)
}

type service struct {
	db    *sql.DB
	store ledgerstore.Store

	mu sync.Mutex
}

func NewService(db *sql.DB, store ledgerstore.Store) Service {
	return &service{
		db:    db,
		store: store,
	}
}

func (s *service) FindOrCreateAccount(ctx context.Context, accountID string) (domain.Account, error) {
	accountID, err := normalizeAccountID(accountID)
	if err != nil {
		return domain.Account{}, err
	}

	acc, err := s.store.FindOrCreateAccount(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}
	return adapters.MapStoreAccountToDomain(*acc), nil
}

func (s *service) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, date time.Time) (domain.Transaction, error) {
	return s.post(ctx, domain.TransactionInput{AccountID: accountID, Date: date, Type: domain.Deposit, Amount: amount})
}

func (s *service) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, date time.Time) (domain.Transaction, error) {
	return s.post(ctx, domain.TransactionInput{AccountID: accountID, Date: date, Type: domain.Withdrawal, Amount: amount})
}

func (s *service) Process(ctx context.Context, in domain.TransactionInput) (domain.Transaction, error) {
	switch in.Type {
	case domain.Deposit, domain.Withdrawal:
		return s.post(ctx, in)
	default:
		return domain.Transaction{}, fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, in.Type)
	}
}

func (s *service) post(ctx context.Context, in domain.TransactionInput) (domain.Transaction, error) {
	logger := zerolog.Ctx(ctx)

	accountID, err := normalizeAccountID(in.AccountID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return domain.Transaction{}, err
	}
	date := domain.TruncateDay(in.Date)

	s.mu.Lock()
	defer s.mu.Unlock()

	var txn domain.Transaction
	err = duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		acc, err := s.store.FindOrCreateAccount(ctx, accountID)
		if err != nil {
			return err
		}

		balance := acc.Balance
		switch in.Type {
		case domain.Deposit:
			balance = balance.Add(in.Amount)
			if balance.GreaterThanOrEqual(domain.MaxMoney) {
				return fmt.Errorf("%w: balance would reach %s", domain.ErrInvalidAmount, balance)
			}
		case domain.Withdrawal:
			if balance.LessThan(in.Amount) {
				return fmt.Errorf("%w: balance %s, withdrawal %s",
					domain.ErrInsufficientBalance, balance.StringFixed(2), in.Amount.StringFixed(2))
			}
			balance = balance.Sub(in.Amount)
		}

		seq, err := s.store.NextSequence(ctx, accountID, date)
		if err != nil {
			return err
		}

		txn = domain.Transaction{
			ID:         domain.TransactionID(date, seq),
			AccountID:  accountID,
			Date:       date,
			Type:       in.Type,
			Amount:     in.Amount,
			EODBalance: balance,
		}
		return s.store.AddTransaction(ctx, adapters.MapDomainTransactionToStore(txn, seq))
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	logger.Info().
		Str("account", accountID).
		Str("txn_id", txn.ID).
		Str("type", string(txn.Type)).
		Str("amount", txn.Amount.StringFixed(2)).
		Msg("transaction posted")

	return txn, nil
}

func (s *service) ListTransactions(ctx context.Context, accountID string, from, to *time.Time) ([]domain.Transaction, error) {
	filter := store.TransactionFilter{AccountID: strings.TrimSpace(accountID)}
	if from != nil {
		d := domain.TruncateDay(*from)
		filter.From = &d
	}
	if to != nil {
		d := domain.TruncateDay(*to)
		filter.To = &d
	}

	records, err := s.store.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return adapters.MapStoreTransactionsToDomain(records), nil
}

func (s *service) OpeningBalance(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error) {
	return s.store.LastBalanceBefore(ctx, strings.TrimSpace(accountID), domain.TruncateDay(date))
}

func normalizeAccountID(accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", domain.ErrInvalidAccount
	}
	return accountID, nil
}
