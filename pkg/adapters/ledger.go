package adapters

import (
	"github.com/de-tools/bank-ledger/pkg/models/api"
	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/models/store"
)

func MapStoreAccountToDomain(acc store.Account) domain.Account {
	return domain.Account{
		ID:      acc.AccountID,
		Balance: acc.Balance,
	}
}

func MapStoreTransactionToDomain(txn store.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:         txn.TxnID,
		AccountID:  txn.AccountID,
		Date:       domain.TruncateDay(txn.TxnDate),
		Type:       domain.TransactionType(txn.Type),
		Amount:     txn.Amount,
		EODBalance: txn.EODBalance,
	}
}

func MapDomainTransactionToStore(txn domain.Transaction, seq int) store.Transaction {
	return store.Transaction{
		TxnID:      txn.ID,
		AccountID:  txn.AccountID,
		TxnDate:    txn.Date,
		Seq:        seq,
		Type:       string(txn.Type),
		Amount:     txn.Amount,
		EODBalance: txn.EODBalance,
	}
}

func MapStoreTransactionsToDomain(txns []store.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		out = append(out, MapStoreTransactionToDomain(txn))
	}
	return out
}

func MapTransactionDomainToApi(txn domain.Transaction) api.Transaction {
	return api.Transaction{
		ID:         txn.ID,
		AccountID:  txn.AccountID,
		Date:       domain.FormatDate(txn.Date),
		Type:       string(txn.Type),
		Amount:     txn.Amount.StringFixed(2),
		EODBalance: txn.EODBalance.StringFixed(2),
	}
}
