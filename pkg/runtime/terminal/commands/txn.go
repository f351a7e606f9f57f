package commands

import (
	"fmt"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/runtime/terminal/export"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type TxnCmd struct {
	services *Services
	reporter *export.Reporter
}

func NewTxnCmd(services *Services, reporter *export.Reporter) *cobra.Command {
	tc := &TxnCmd{services: services, reporter: reporter}
	return &cobra.Command{
		Use:     "txn <YYYYMMDD> <account> <D|W> <amount>",
		Short:   "Record a deposit or withdrawal",
		Example: "  bank txn 20230626 AC001 W 100.00",
		Args:    cobra.ExactArgs(4),
		RunE:    tc.run,
	}
}

func (tc *TxnCmd) run(cmd *cobra.Command, args []string) error {
	if err := tc.services.ready(); err != nil {
		return err
	}
	ctx := cmd.Context()

	date, err := domain.ParseDate(args[0])
	if err != nil {
		return err
	}
	typ, err := domain.ParseTransactionType(args[2])
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(args[3])
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, args[3])
	}

	txn, err := tc.services.Ledger.Process(ctx, domain.TransactionInput{
		AccountID: args[1],
		Date:      date,
		Type:      typ,
		Amount:    amount,
	})
	if err != nil {
		return err
	}

	txns, err := tc.services.Ledger.ListTransactions(ctx, txn.AccountID, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	return tc.reporter.Transactions(txn.AccountID, txns)
}
