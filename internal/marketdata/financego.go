package marketdata

import (
	"errors"
	"fmt"
	"sort"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"

	"StockTracker/internal/model"
)

// FinanceGoFetcher implements Fetcher on top of the piquette/finance-go
// client. It talks to the same upstream as YahooFetcher but leaves request
// signing, crumbs and response decoding to the library.
type FinanceGoFetcher struct{}

// NewFinanceGoFetcher creates a finance-go backed fetcher.
func NewFinanceGoFetcher() *FinanceGoFetcher { return &FinanceGoFetcher{} }

func (f *FinanceGoFetcher) Name() string { return "financego" }

// notFound reports whether the provider answered with a structured
// not-found error, which means the symbol simply has no data.
func notFound(err error) bool {
	var yerr *finance.YfinError
	return errors.As(err, &yerr) && yerr.Code == "Not Found"
}

// nonZeroField treats the library's zero values as absent. The upstream
// omits fields it has no data for and the client decodes them as zero, so
// a reported zero is indistinguishable from a missing one here.
func nonZeroField(v float64) model.Field {
	if v == 0 {
		return model.Field{}
	}
	return model.Known(v)
}

func (f *FinanceGoFetcher) FetchDescriptor(symbol string) (model.Descriptor, error) {
	qualified := QualifySymbol(symbol)
	desc := model.Descriptor{Symbol: qualified}

	q, err := equity.Get(qualified)
	if err != nil {
		if notFound(err) {
			return desc, nil
		}
		return desc, fmt.Errorf("equity %s: %w: %v", qualified, ErrUnavailable, err)
	}
	if q == nil {
		// No result and no error: unknown ticker, all fields stay unknown.
		return desc, nil
	}

	desc.CurrentPrice = nonZeroField(q.RegularMarketPrice)
	desc.High52w = nonZeroField(q.FiftyTwoWeekHigh)
	desc.Low52w = nonZeroField(q.FiftyTwoWeekLow)
	desc.MarketCap = nonZeroField(float64(q.MarketCap))
	desc.PERatio = nonZeroField(q.TrailingPE)
	desc.DividendYield = nonZeroField(q.TrailingAnnualDividendYield)
	desc.PreviousClose = nonZeroField(q.RegularMarketPreviousClose)
	return desc, nil
}

func (f *FinanceGoFetcher) FetchSeries(symbol string, window model.Window) (model.PriceSeries, error) {
	qualified := QualifySymbol(symbol)
	series := model.PriceSeries{Symbol: qualified, FetchedAt: time.Now()}

	now := time.Now()
	start := window.Start(now)
	iter := chart.Get(&chart.Params{
		Symbol:   qualified,
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: datetime.OneDay,
	})

	var bars []model.OHLCV
	for iter.Next() {
		b := iter.Bar()
		o := b.Open.InexactFloat64()
		h := b.High.InexactFloat64()
		l := b.Low.InexactFloat64()
		c := b.Close.InexactFloat64()
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		if notFound(err) {
			return series, nil
		}
		return series, fmt.Errorf("chart %s: %w: %v", qualified, ErrUnavailable, err)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	series.Bars = bars
	return series, nil
}
