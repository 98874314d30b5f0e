package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/iho/payoffsim/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SIM_EXTRA", "")
	t.Setenv("SIM_START_MONTH", "")
	os.Unsetenv("SIM_EXTRA")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.MaxMonths != 600 {
		t.Fatalf("expected default month ceiling 600, got %d", cfg.MaxMonths)
	}

	if !cfg.ReinvestFreed {
		t.Fatalf("expected freed payments to be reinvested by default")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	extra, err := cfg.ExtraAmount()
	if err != nil || !extra.IsZero() {
		t.Fatalf("expected zero extra, got %s (%v)", extra, err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SIM_MAX_MONTHS", "120")
	t.Setenv("SIM_EXTRA", "250.50")
	t.Setenv("SIM_REINVEST_FREED", "false")
	t.Setenv("SIM_OUTPUT_DIR", "/tmp/out")
	t.Setenv("SIM_START_MONTH", "2024-03")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "45s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.MaxMonths != 120 || cfg.ReinvestFreed || cfg.OutputDir != "/tmp/out" {
		t.Fatalf("expected simulation overrides, got %+v", cfg)
	}

	if cfg.HTTPPort != "9090" || cfg.HTTPShutdownTimeout != 45*time.Second {
		t.Fatalf("expected HTTP overrides, got port=%s shutdown=%s", cfg.HTTPPort, cfg.HTTPShutdownTimeout)
	}

	extra, _ := cfg.ExtraAmount()
	if extra.String() != "250.5" {
		t.Fatalf("expected extra 250.5, got %s", extra)
	}

	start, err := cfg.Start(time.Now())
	if err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if start.Year() != 2024 || start.Month() != time.March {
		t.Fatalf("expected March 2024, got %s", start)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := map[string]string{
		"HTTP_READ_TIMEOUT": "not-a-duration",
		"SIM_MAX_MONTHS":    "many",
		"SIM_EXTRA":         "lots",
		"SIM_START_MONTH":   "March",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestStart_DefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)

	cfg := &config.Config{}
	start, err := cfg.Start(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Fatalf("expected %s, got %s", want, start)
	}
}
