package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}

	if cfg.Provider.Driver != DriverYahoo {
		t.Errorf("default driver = %q, want %q", cfg.Provider.Driver, DriverYahoo)
	}
	if cfg.Provider.WindowMonths != 6 {
		t.Errorf("default window = %d, want 6", cfg.Provider.WindowMonths)
	}
	if cfg.Listing.Index != "NIFTY 500" {
		t.Errorf("default index = %q", cfg.Listing.Index)
	}
	if cfg.Database.SQLitePath != "stocks.db" {
		t.Errorf("default sqlite path = %q", cfg.Database.SQLitePath)
	}
	if cfg.Analysis.ShortMA != 50 || cfg.Analysis.LongMA != 200 {
		t.Errorf("default MA windows = %d/%d, want 50/200", cfg.Analysis.ShortMA, cfg.Analysis.LongMA)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
provider:
  driver: financego
  window_months: 12
database:
  sqlite_path: /tmp/test.db
analysis:
  short_ma: 20
  long_ma: 100
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider.Driver != DriverFinanceGo {
		t.Errorf("driver = %q, want financego", cfg.Provider.Driver)
	}
	if cfg.Provider.WindowMonths != 12 {
		t.Errorf("window = %d, want 12", cfg.Provider.WindowMonths)
	}
	if cfg.Database.SQLitePath != "/tmp/test.db" {
		t.Errorf("sqlite path = %q", cfg.Database.SQLitePath)
	}
	if cfg.Analysis.ShortMA != 20 || cfg.Analysis.LongMA != 100 {
		t.Errorf("MA windows = %d/%d, want 20/100", cfg.Analysis.ShortMA, cfg.Analysis.LongMA)
	}
	// Untouched sections still get defaults.
	if cfg.Listing.TimeoutSeconds != 10 {
		t.Errorf("listing timeout = %d, want 10", cfg.Listing.TimeoutSeconds)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PROVIDER_DRIVER", "financego")
	t.Setenv("SQLITE_PATH", "/tmp/env.db")
	t.Setenv("WINDOW_MONTHS", "3")
	t.Setenv("LISTING_INDEX", "NIFTY 50")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider.Driver != DriverFinanceGo {
		t.Errorf("driver = %q, want financego", cfg.Provider.Driver)
	}
	if cfg.Database.SQLitePath != "/tmp/env.db" {
		t.Errorf("sqlite path = %q", cfg.Database.SQLitePath)
	}
	if cfg.Provider.WindowMonths != 3 {
		t.Errorf("window = %d, want 3", cfg.Provider.WindowMonths)
	}
	if cfg.Listing.Index != "NIFTY 50" {
		t.Errorf("index = %q", cfg.Listing.Index)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Provider.Driver = "bloomberg" }},
		{"zero window", func(c *Config) { c.Provider.WindowMonths = -1 }},
		{"empty sqlite path", func(c *Config) { c.Database.SQLitePath = "" }},
		{"short above long", func(c *Config) { c.Analysis.ShortMA = 200; c.Analysis.LongMA = 50 }},
		{"zero chart height", func(c *Config) { c.Chart.Height = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
