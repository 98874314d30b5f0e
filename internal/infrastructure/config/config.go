package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/payoffsim/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Redis, optional; enables Idempotency-Key replay when set
	RedisURL       string        `env:"REDIS_URL"       envDefault:""`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Simulation
	MaxMonths     int    `env:"SIM_MAX_MONTHS"     envDefault:"600"`
	Extra         string `env:"SIM_EXTRA"          envDefault:"0"`
	ReinvestFreed bool   `env:"SIM_REINVEST_FREED" envDefault:"true"`
	OutputDir     string `env:"SIM_OUTPUT_DIR"     envDefault:"./output"`
	StartMonth    string `env:"SIM_START_MONTH"    envDefault:""`
	Parallel      bool   `env:"SIM_PARALLEL"       envDefault:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if _, err := cfg.ExtraAmount(); err != nil {
		return nil, err
	}

	if _, err := cfg.Start(time.Now()); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ExtraAmount parses the configured monthly extra budget.
func (c *Config) ExtraAmount() (decimal.Decimal, error) {
	extra, err := decimal.NewFromString(c.Extra)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid SIM_EXTRA %q: %w", c.Extra, err)
	}
	return extra, nil
}

// Start returns the first simulated month, falling back to now's month when unset.
func (c *Config) Start(now time.Time) (time.Time, error) {
	return domain.ParseStartMonth(c.StartMonth, now)
}
