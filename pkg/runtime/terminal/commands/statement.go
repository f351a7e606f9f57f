package commands

import (
	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type StatementCmd struct {
	services *Services
	reporter *export.Reporter
}

func NewStatementCmd(services *Services, reporter *export.Reporter) *cobra.Command {
	sc := &StatementCmd{services: services, reporter: reporter}
	return &cobra.Command{
		Use:     "statement <account> <YYYYMM>",
		Short:   "Print the monthly statement of an account",
		Example: "  bank statement AC001 202306",
		Args:    cobra.ExactArgs(2),
		RunE:    sc.run,
	}
}

func (sc *StatementCmd) run(cmd *cobra.Command, args []string) error {
	if err := sc.services.ready(); err != nil {
		return err
	}

	month, err := domain.ParseMonth(args[1])
	if err != nil {
		return err
	}

	stmt, err := sc.services.Statements.Build(cmd.Context(), args[0], month)
	if err != nil {
		return err
	}
	return sc.reporter.Statement(stmt)
}
