package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SEED_COUNT")
	os.Unsetenv("LATENCY_MS")
	os.Unsetenv("PAGE_SIZE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SeedCount != 200 {
		t.Errorf("expected default seed count 200, got %d", cfg.SeedCount)
	}
	if cfg.PageSize != 15 {
		t.Errorf("expected default page size 15, got %d", cfg.PageSize)
	}
	if cfg.Latency() != 500*time.Millisecond {
		t.Errorf("expected default latency 500ms, got %v", cfg.Latency())
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("LATENCY_MS", "0")
	os.Setenv("SEED_COUNT", "10")
	defer os.Unsetenv("LATENCY_MS")
	defer os.Unsetenv("SEED_COUNT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Latency() != 0 {
		t.Errorf("expected zero latency, got %v", cfg.Latency())
	}
	if cfg.SeedCount != 10 {
		t.Errorf("expected seed count 10, got %d", cfg.SeedCount)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []Config{
		{SeedCount: -1, PageSize: 15},
		{LatencyMS: -5, PageSize: 15},
		{PageSize: 0},
	}
	for _, c := range cases {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
