package cli

import (
	"fmt"

	"StockTracker/internal/config"
	"StockTracker/internal/listing"
	"StockTracker/internal/tracker"
)

// App bundles the wired components the commands operate on. Construction
// and lifetime of the store behind the tracker belong to main.
type App struct {
	Tracker *tracker.Tracker
	Listing *listing.Client
	Cfg     *config.Config
}

func (a *App) showList() error {
	listings, err := a.Listing.Constituents(a.Cfg.Listing.Index)
	if err != nil {
		return fmt.Errorf("stock list unavailable: %w", err)
	}

	fmt.Println(title(fmt.Sprintf("%s constituents (%d)", a.Cfg.Listing.Index, len(listings))))
	fmt.Println(renderListings(listings))
	return nil
}

func (a *App) showPrice(symbol string) error {
	price, ok, err := a.Tracker.LatestPrice(symbol)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(warn("no data available for " + symbol))
		return nil
	}
	fmt.Printf("%s latest close: %s\n", title(symbol), formatINR(price))
	return nil
}

func (a *App) showDetails(symbol string) error {
	desc, err := a.Tracker.Details(symbol)
	if err != nil {
		return err
	}
	if desc.AllUnknown() {
		fmt.Println(warn("no details available for " + symbol + " (unknown or delisted)"))
		return nil
	}
	fmt.Println(title(desc.Symbol))
	fmt.Println(renderDescriptor(desc))
	return nil
}

// showCompare charts the requested tickers against each other and reports
// the recorded closes. Unreachable or unknown tickers are already skipped
// inside Compare, so an error here is a store write failure.
func (a *App) showCompare(symbols []string) error {
	entries, err := a.Tracker.Compare(symbols)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(warn("no data available for any requested ticker"))
		return nil
	}

	fmt.Println(title("Closing prices, trailing window"))
	fmt.Println(renderComparison(entries, a.Cfg.Chart.Height))
	for _, e := range entries {
		if latest, ok := e.Series.Latest(); ok {
			fmt.Printf("%s: %s recorded\n", e.Symbol, formatINR(latest.Close))
		}
	}
	return nil
}

func (a *App) showTrend(symbol string) error {
	trend, err := a.Tracker.Trend(symbol)
	if err != nil {
		return err
	}
	if trend.Series.Empty() {
		fmt.Println(warn("no data available for " + symbol))
		return nil
	}

	fmt.Println(title(fmt.Sprintf("%s with %d/%d day rolling means",
		trend.Series.Symbol, a.Cfg.Analysis.ShortMA, a.Cfg.Analysis.LongMA)))
	fmt.Println(renderTrend(trend, a.Cfg.Analysis.ShortMA, a.Cfg.Analysis.LongMA, a.Cfg.Chart.Height))
	if len(trend.Series.Bars) < a.Cfg.Analysis.LongMA {
		fmt.Println(warn(fmt.Sprintf("only %d trading days in the window, the %d day mean has no points yet",
			len(trend.Series.Bars), a.Cfg.Analysis.LongMA)))
	}
	return nil
}
