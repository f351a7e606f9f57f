package domain

import "time"

// Config is the application configuration, loaded by services/config.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Interest InterestConfig `mapstructure:"interest"`
	Cache    CacheConfig    `mapstructure:"cache"`
	LogLevel string         `mapstructure:"log_level"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type InterestConfig struct {
	DayCountBasis int `mapstructure:"day_count_basis"`
	// CarryForwardBalance seeds a month with the balance carried over from
	// earlier months, so dormant accounts accrue interest too.
	CarryForwardBalance bool `mapstructure:"carry_forward_balance"`
}

type CacheConfig struct {
	RulesTTL time.Duration `mapstructure:"rules_ttl"`
}
