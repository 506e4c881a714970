package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"StockTracker/internal/cli"
	"StockTracker/internal/config"
	"StockTracker/internal/history"
	"StockTracker/internal/listing"
	"StockTracker/internal/marketdata"
	"StockTracker/internal/model"
	"StockTracker/internal/tracker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := run(); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

// run owns the store lifetime: the deferred Close fires on every exit
// path, including errors bubbling out of the interactive loop.
func run() error {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	var fetcher marketdata.Fetcher
	switch cfg.Provider.Driver {
	case config.DriverFinanceGo:
		fetcher = marketdata.NewFinanceGoFetcher()
	default:
		yf := marketdata.NewYahooFetcher(cfg.Proxy)
		if cfg.Provider.BaseURL != "" {
			yf.BaseURL = cfg.Provider.BaseURL
		}
		fetcher = yf
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	store, err := history.Open(cfg.Database.SQLitePath)
	if err != nil {
		return fmt.Errorf("open price history: %w", err)
	}
	defer store.Close()

	tr := tracker.NewWithOptions(fetcher, store, tracker.Options{
		Window:  model.Window(cfg.Provider.WindowMonths),
		ShortMA: cfg.Analysis.ShortMA,
		LongMA:  cfg.Analysis.LongMA,
	})
	lc := listing.NewClient(cfg.Listing.BaseURL, time.Duration(cfg.Listing.TimeoutSeconds)*time.Second)

	app := &cli.App{Tracker: tr, Listing: lc, Cfg: cfg}
	return cli.NewRootCmd(app).Execute()
}
