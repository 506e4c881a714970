package marketdata

import (
	"time"

	"StockTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Symbols keyed in Series/Descriptors answer with that data; anything else
// falls back to bars synthesized around Price, or to the empty/all-unknown
// outcome when Price is zero. Errs injects per-symbol failures, Err a
// global one.
type MockFetcher struct {
	Price       float64
	Series      map[string][]model.OHLCV
	Descriptors map[string]model.Descriptor
	Errs        map[string]error
	Err         error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) fail(qualified string) error {
	if m.Err != nil {
		return m.Err
	}
	return m.Errs[qualified]
}

func (m *MockFetcher) FetchDescriptor(symbol string) (model.Descriptor, error) {
	qualified := QualifySymbol(symbol)
	if err := m.fail(qualified); err != nil {
		return model.Descriptor{}, err
	}
	if d, ok := m.Descriptors[qualified]; ok {
		return d, nil
	}
	desc := model.Descriptor{Symbol: qualified}
	if m.Price != 0 {
		desc.CurrentPrice = model.Known(m.Price)
		desc.PreviousClose = model.Known(m.Price * 0.995)
	}
	return desc, nil
}

func (m *MockFetcher) FetchSeries(symbol string, window model.Window) (model.PriceSeries, error) {
	qualified := QualifySymbol(symbol)
	if err := m.fail(qualified); err != nil {
		return model.PriceSeries{}, err
	}
	series := model.PriceSeries{Symbol: qualified, FetchedAt: time.Now()}
	if bars, ok := m.Series[qualified]; ok {
		series.Bars = bars
		return series, nil
	}
	if m.Price != 0 {
		series.Bars = generateBars(m.Price, int(window)*21)
	}
	return series, nil
}

// generateBars synthesizes a gentle linear drift around basePrice, one bar
// per calendar day ending today.
func generateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
