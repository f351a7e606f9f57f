package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/bank-ledger/pkg/runtime/terminal/commands"
	"github.com/de-tools/bank-ledger/pkg/runtime/terminal/export"
	"github.com/de-tools/bank-ledger/pkg/services/config"
	"github.com/de-tools/bank-ledger/pkg/services/registry"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	services *commands.Services
	reporter *export.Reporter
	rootCmd  *cobra.Command

	logOutput io.Writer
	registry  *registry.Registry

	configPath string
	dbPath     string
	logLevel   string
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	// Services skips config loading and database setup when set.
	Services *commands.Services
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		services:  opts.Services,
		reporter:  export.NewReporter(opts.Output),
		logOutput: opts.LogOutput,
	}
	if cli.services == nil {
		cli.services = &commands.Services{}
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.LogOutput)
	return cli
}

func (cli *CLI) Execute() error {
	defer cli.close()
	return cli.rootCmd.Execute()
}

// Run executes the command line in args under ctx.
func (cli *CLI) Run(ctx context.Context, args []string) error {
	defer cli.close()
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "bank",
		Short:             "Bank ledger with monthly interest accrual",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "Path to a config file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&cli.dbPath, "db", "", "Database path, overrides database.path")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewTxnCmd(cli.services, cli.reporter))
	cmd.AddCommand(commands.NewRuleCmd(cli.services, cli.reporter))
	cmd.AddCommand(commands.NewRulesCmd(cli.services, cli.reporter))
	cmd.AddCommand(commands.NewInterestCmd(cli.services, cli.reporter))
	cmd.AddCommand(commands.NewStatementCmd(cli.services, cli.reporter))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return err
	}
	if cli.dbPath != "" {
		cfg.Database.Path = cli.dbPath
	}
	if cli.logLevel != "" {
		cfg.LogLevel = cli.logLevel
	}

	logger := config.NewLogger(cli.logOutput, cfg.LogLevel)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))

	if cli.services.Ledger != nil {
		return nil
	}

	reg, err := registry.New(cfg)
	if err != nil {
		return err
	}
	cli.registry = reg
	*cli.services = commands.Services{
		Ledger:     reg.Ledger,
		Rates:      reg.Rates,
		Calculator: reg.Calculator,
		Statements: reg.Statements,
	}
	return nil
}

func (cli *CLI) close() error {
	if cli.registry == nil {
		return nil
	}
	err := cli.registry.Close()
	cli.registry = nil
	return err
}
