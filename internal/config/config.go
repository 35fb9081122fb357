package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	SeedCount int    `mapstructure:"SEED_COUNT"`
	Seed      int64  `mapstructure:"SEED"`
	LatencyMS int    `mapstructure:"LATENCY_MS"`
	PageSize  int    `mapstructure:"PAGE_SIZE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_COUNT", 200)
	v.SetDefault("SEED", 1)
	v.SetDefault("LATENCY_MS", 500)
	v.SetDefault("PAGE_SIZE", 15)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("SEED_COUNT")
	v.BindEnv("SEED")
	v.BindEnv("LATENCY_MS")
	v.BindEnv("PAGE_SIZE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Latency returns the simulated repository latency.
func (c *Config) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// Validate checks that the configuration can drive the application.
func (c *Config) Validate() error {
	if c.SeedCount < 0 {
		return fmt.Errorf("SEED_COUNT must not be negative, got %d", c.SeedCount)
	}
	if c.LatencyMS < 0 {
		return fmt.Errorf("LATENCY_MS must not be negative, got %d", c.LatencyMS)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1, got %d", c.PageSize)
	}
	return nil
}
