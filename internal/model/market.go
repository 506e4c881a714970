package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the daily bars fetched for one symbol over a trailing
// window, ordered chronologically ascending. A series is produced fresh on
// every fetch and never cached.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Empty reports whether the provider had no data for the symbol/window.
// An empty series is an expected outcome (unknown ticker, delisted symbol),
// not a failure; callers must branch on it before consuming the series.
func (s PriceSeries) Empty() bool { return len(s.Bars) == 0 }

// Closes returns the closing prices in chronological order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Latest returns the most recent bar, if any.
func (s PriceSeries) Latest() (OHLCV, bool) {
	if s.Empty() {
		return OHLCV{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Window is the trailing lookback for a series fetch, in calendar months.
type Window int

// DefaultWindow is the six-month lookback used by every interactive flow.
const DefaultWindow Window = 6

// Range maps the window onto the coarse range buckets the Yahoo chart API
// accepts. Daily bars cap out at two years.
func (w Window) Range() string {
	switch {
	case w <= 1:
		return "1mo"
	case w <= 3:
		return "3mo"
	case w <= 6:
		return "6mo"
	case w <= 12:
		return "1y"
	default:
		return "2y"
	}
}

// Start returns the window's start instant relative to now, for providers
// that take explicit date bounds instead of a named range.
func (w Window) Start(now time.Time) time.Time {
	return now.AddDate(0, -int(w), 0)
}
