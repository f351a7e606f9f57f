package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/bank-ledger/pkg/server"
	"github.com/de-tools/bank-ledger/pkg/services/config"
	"github.com/de-tools/bank-ledger/pkg/services/registry"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	seedPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:          "web",
		Short:        "Start the bank ledger HTTP API",
		SilenceUsage: true,
		RunE:         runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a config file (yaml, json or toml)")
	rootCmd.Flags().StringVar(&seedPath, "rules", "", "Path to an ini file of interest rules to import on startup")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	logger := config.NewLogger(os.Stdout, cfg.LogLevel)
	ctx := logger.WithContext(cmd.Context())

	reg, err := registry.New(cfg)
	if err != nil {
		return err
	}
	defer reg.Close()

	if seedPath != "" {
		n, err := reg.Rates.ImportRules(ctx, seedPath)
		if err != nil {
			return fmt.Errorf("failed to import interest rules: %w", err)
		}
		logger.Info().Msgf("Imported %d interest rules from `%s`.", n, seedPath)
	}

	logger.Info().
		Str("database", cfg.Database.Path).
		Int("day_count_basis", cfg.Interest.DayCountBasis).
		Bool("carry_forward_balance", cfg.Interest.CarryForwardBalance).
		Msg("configuration loaded")

	webAPI := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Ledger:     reg.Ledger,
			Rates:      reg.Rates,
			Calculator: reg.Calculator,
			Statements: reg.Statements,
			Logger:     logger,
		},
	})

	return webAPI.Start()
}
