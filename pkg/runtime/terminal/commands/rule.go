package commands

import (
	"fmt"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/de-tools/bank-ledger/pkg/runtime/terminal/export"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type RuleCmd struct {
	services *Services
	reporter *export.Reporter
}

func NewRuleCmd(services *Services, reporter *export.Reporter) *cobra.Command {
	rc := &RuleCmd{services: services, reporter: reporter}
	cmd := &cobra.Command{
		Use:     "rule <YYYYMMDD> <ruleId> <rate>",
		Short:   "Define an interest rule effective from a date",
		Example: "  bank rule 20230615 RULE03 2.20",
		Args:    cobra.ExactArgs(3),
		RunE:    rc.run,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file.ini>",
		Short: "Import interest rules from an ini file",
		Args:  cobra.ExactArgs(1),
		RunE:  rc.runImport,
	})

	return cmd
}

func (rc *RuleCmd) run(cmd *cobra.Command, args []string) error {
	if err := rc.services.ready(); err != nil {
		return err
	}
	ctx := cmd.Context()

	date, err := domain.ParseDate(args[0])
	if err != nil {
		return err
	}
	rate, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRate, args[2])
	}

	if _, err := rc.services.Rates.UpsertRule(ctx, date, args[1], rate); err != nil {
		return err
	}
	return printRules(cmd, rc.services, rc.reporter)
}

func (rc *RuleCmd) runImport(cmd *cobra.Command, args []string) error {
	if err := rc.services.ready(); err != nil {
		return err
	}

	n, err := rc.services.Rates.ImportRules(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d interest rules from %s\n", n, args[0])
	return printRules(cmd, rc.services, rc.reporter)
}

func NewRulesCmd(services *Services, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List interest rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ready(); err != nil {
				return err
			}
			return printRules(cmd, services, reporter)
		},
	}
}

func printRules(cmd *cobra.Command, services *Services, reporter *export.Reporter) error {
	rules, err := services.Rates.ListRules(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list rules: %w", err)
	}
	return reporter.Rules(rules)
}
