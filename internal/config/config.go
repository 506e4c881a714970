package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported market data drivers.
const (
	DriverYahoo     = "yahoo"
	DriverFinanceGo = "financego"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		Driver       string `yaml:"driver"`
		BaseURL      string `yaml:"base_url"`
		WindowMonths int    `yaml:"window_months"`
	} `yaml:"provider"`
	Listing struct {
		BaseURL        string `yaml:"base_url"`
		Index          string `yaml:"index"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"listing"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Analysis struct {
		ShortMA int `yaml:"short_ma"`
		LongMA  int `yaml:"long_ma"`
	} `yaml:"analysis"`
	Chart struct {
		Height int `yaml:"height"`
	} `yaml:"chart"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; every field has a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PROVIDER_DRIVER"); v != "" {
		cfg.Provider.Driver = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("WINDOW_MONTHS"); v != "" {
		var months int
		if _, err := fmt.Sscanf(v, "%d", &months); err == nil {
			cfg.Provider.WindowMonths = months
		}
	}
	if v := os.Getenv("LISTING_BASE_URL"); v != "" {
		cfg.Listing.BaseURL = v
	}
	if v := os.Getenv("LISTING_INDEX"); v != "" {
		cfg.Listing.Index = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Provider.Driver == "" {
		cfg.Provider.Driver = DriverYahoo
	}
	if cfg.Provider.WindowMonths == 0 {
		cfg.Provider.WindowMonths = 6
	}
	if cfg.Listing.Index == "" {
		cfg.Listing.Index = "NIFTY 500"
	}
	if cfg.Listing.TimeoutSeconds == 0 {
		cfg.Listing.TimeoutSeconds = 10
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "stocks.db"
	}
	if cfg.Analysis.ShortMA == 0 {
		cfg.Analysis.ShortMA = 50
	}
	if cfg.Analysis.LongMA == 0 {
		cfg.Analysis.LongMA = 200
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 12
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Provider.Driver {
	case DriverYahoo, DriverFinanceGo:
	default:
		return fmt.Errorf("provider.driver must be %q or %q, got %q",
			DriverYahoo, DriverFinanceGo, c.Provider.Driver)
	}
	if c.Provider.WindowMonths <= 0 {
		return fmt.Errorf("provider.window_months must be positive")
	}
	if c.Listing.TimeoutSeconds <= 0 {
		return fmt.Errorf("listing.timeout_seconds must be positive")
	}
	if c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required")
	}
	if c.Analysis.ShortMA <= 0 {
		return fmt.Errorf("analysis.short_ma must be positive")
	}
	if c.Analysis.ShortMA >= c.Analysis.LongMA {
		return fmt.Errorf("analysis.short_ma must be below analysis.long_ma")
	}
	if c.Chart.Height <= 0 {
		return fmt.Errorf("chart.height must be positive")
	}
	return nil
}
