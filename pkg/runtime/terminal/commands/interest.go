package commands

import (
	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type InterestCmd struct {
	services *Services
	reporter *export.Reporter
}

func NewInterestCmd(services *Services, reporter *export.Reporter) *cobra.Command {
	ic := &InterestCmd{services: services, reporter: reporter}
	return &cobra.Command{
		Use:     "interest <account> <YYYYMM>",
		Short:   "Show the interest periods and accrued interest for a month",
		Example: "  bank interest AC001 202306",
		Args:    cobra.ExactArgs(2),
		RunE:    ic.run,
	}
}

func (ic *InterestCmd) run(cmd *cobra.Command, args []string) error {
	if err := ic.services.ready(); err != nil {
		return err
	}

	month, err := domain.ParseMonth(args[1])
	if err != nil {
		return err
	}

	accrual := ic.services.Calculator.ComputeMonthlyInterest(cmd.Context(), args[0], month)
	return ic.reporter.Interest(accrual)
}
