package tracker

import (
	"fmt"
	"log"
	"strings"

	"StockTracker/internal/calculator"
	"StockTracker/internal/history"
	"StockTracker/internal/marketdata"
	"StockTracker/internal/model"
)

// Rolling-mean windows for the trend chart, in trading days.
const (
	ShortWindow = 50
	LongWindow  = 200
)

// Options tune a Tracker. Zero fields fall back to the defaults.
type Options struct {
	Window  model.Window // trailing fetch window in months
	ShortMA int          // short rolling-mean window in trading days
	LongMA  int          // long rolling-mean window in trading days
}

// Tracker wires one market data fetcher to the price history store and
// implements the interactive flows on top of them.
type Tracker struct {
	fetcher marketdata.Fetcher
	store   *history.Store
	window  model.Window
	shortMA int
	longMA  int
}

// New creates a Tracker with default options. The store stays owned by the
// caller, which also closes it at shutdown.
func New(fetcher marketdata.Fetcher, store *history.Store) *Tracker {
	return NewWithOptions(fetcher, store, Options{})
}

// NewWithOptions creates a Tracker with explicit fetch and analysis
// windows.
func NewWithOptions(fetcher marketdata.Fetcher, store *history.Store, opts Options) *Tracker {
	if opts.Window <= 0 {
		opts.Window = model.DefaultWindow
	}
	if opts.ShortMA <= 0 {
		opts.ShortMA = ShortWindow
	}
	if opts.LongMA <= 0 {
		opts.LongMA = LongWindow
	}
	return &Tracker{
		fetcher: fetcher,
		store:   store,
		window:  opts.Window,
		shortMA: opts.ShortMA,
		longMA:  opts.LongMA,
	}
}

// Normalize uppercases and trims a user-entered ticker. Observations are
// stored under this bare form; exchange qualification happens inside the
// fetcher.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// LatestPrice returns the most recent closing price within the configured
// window. ok is false when the provider had no data for the symbol.
func (t *Tracker) LatestPrice(symbol string) (float64, bool, error) {
	series, err := t.fetcher.FetchSeries(symbol, t.window)
	if err != nil {
		return 0, false, err
	}
	latest, ok := series.Latest()
	if !ok {
		return 0, false, nil
	}
	return latest.Close, true, nil
}

// Details returns the quote snapshot for the symbol. A descriptor with all
// fields unknown means the provider had nothing for the ticker; callers
// present that instead of treating it as a failure.
func (t *Tracker) Details(symbol string) (model.Descriptor, error) {
	return t.fetcher.FetchDescriptor(symbol)
}

// CompareEntry is one successfully fetched member of a comparison batch.
type CompareEntry struct {
	Symbol string
	Series model.PriceSeries
}

// Compare fetches the configured window for every ticker, appends the latest
// close of each non-empty series to the history store and returns the
// series for charting.
//
// Symbols the provider cannot reach are skipped with a warning and symbols
// it has no data for are skipped quietly, so one bad ticker never aborts
// the batch. A store failure aborts immediately: local persistence is not
// something this flow degrades around.
func (t *Tracker) Compare(symbols []string) ([]CompareEntry, error) {
	var entries []CompareEntry
	for _, raw := range symbols {
		symbol := Normalize(raw)
		if symbol == "" {
			continue
		}

		series, err := t.fetcher.FetchSeries(symbol, t.window)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", symbol, err)
			continue
		}
		if series.Empty() {
			log.Printf("[WARN] no data for %s, skipping", symbol)
			continue
		}

		latest, _ := series.Latest()
		if err := t.store.Append(symbol, latest.Close); err != nil {
			return nil, fmt.Errorf("record %s: %w", symbol, err)
		}
		entries = append(entries, CompareEntry{Symbol: symbol, Series: series})
	}
	return entries, nil
}

// Trend is a series plus its rolling means, aligned index-for-index with
// Series.Bars. Mean positions without a full trailing window are NaN.
type Trend struct {
	Series model.PriceSeries
	Short  []float64
	Long   []float64
}

// Trend fetches the configured window for the symbol and computes the short
// and long rolling means of the close column. An empty series comes back
// as-is for the caller to branch on.
func (t *Tracker) Trend(symbol string) (Trend, error) {
	series, err := t.fetcher.FetchSeries(symbol, t.window)
	if err != nil {
		return Trend{}, err
	}
	if series.Empty() {
		return Trend{Series: series}, nil
	}

	closes := series.Closes()
	short, err := calculator.RollingMean(closes, t.shortMA)
	if err != nil {
		return Trend{}, fmt.Errorf("short mean: %w", err)
	}
	long, err := calculator.RollingMean(closes, t.longMA)
	if err != nil {
		return Trend{}, fmt.Errorf("long mean: %w", err)
	}
	return Trend{Series: series, Short: short, Long: long}, nil
}
