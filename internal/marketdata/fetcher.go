package marketdata

import (
	"errors"
	"strings"

	"StockTracker/internal/model"
)

// ErrUnavailable marks transport or resolution failures reaching the market
// data provider. Interactive flows report it as a warning and keep running;
// no retry is performed.
var ErrUnavailable = errors.New("market data unavailable")

// Fetcher defines the interface for querying one market data provider.
//
// Both operations take a bare ticker and qualify it themselves. "Provider
// had nothing for this symbol" is not a failure: FetchSeries returns an
// empty series and FetchDescriptor returns an all-unknown descriptor, both
// with a nil error. ErrUnavailable is reserved for not reaching or not
// resolving against the provider at all.
type Fetcher interface {
	FetchDescriptor(symbol string) (model.Descriptor, error)
	FetchSeries(symbol string, window model.Window) (model.PriceSeries, error)
	Name() string
}

// nseSuffix is the exchange qualifier Yahoo expects for National Stock
// Exchange tickers.
const nseSuffix = ".NS"

// QualifySymbol uppercases a bare ticker and appends the NSE suffix.
// Symbols already carrying an exchange qualifier, and index identifiers
// like ^NSEI, pass through unchanged.
func QualifySymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" || strings.HasPrefix(s, "^") || strings.Contains(s, ".") {
		return s
	}
	return s + nseSuffix
}
