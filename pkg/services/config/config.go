package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/bank-ledger/pkg/models/domain"
	"github.com/spf13/viper"
)

const envPrefix = "BANK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "bank-ledger.db")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("interest.day_count_basis", 365)
	v.SetDefault("interest.carry_forward_balance", false)
	v.SetDefault("cache.rules_ttl", 5*time.Minute)
	v.SetDefault("log_level", "info")
}

// LoadConfig reads the application config. An empty path uses defaults and
// BANK_* environment variables only.
func LoadConfig(path string) (*domain.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Interest.DayCountBasis <= 0 {
		return nil, fmt.Errorf("interest.day_count_basis must be positive, got %d", cfg.Interest.DayCountBasis)
	}
	return &cfg, nil
}
