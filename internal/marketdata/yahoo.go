package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockTracker/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher against the public Yahoo Finance API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: yahooBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo chart API. Bar
// columns arrive as nullable arrays, hence []interface{}.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooQuote is the response structure from the Yahoo quote API. Pointer
// fields keep "absent" distinguishable from a reported zero.
type yahooQuote struct {
	QuoteResponse struct {
		Result []struct {
			RegularMarketPrice          *float64 `json:"regularMarketPrice"`
			FiftyTwoWeekHigh            *float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow             *float64 `json:"fiftyTwoWeekLow"`
			MarketCap                   *float64 `json:"marketCap"`
			TrailingPE                  *float64 `json:"trailingPE"`
			TrailingAnnualDividendYield *float64 `json:"trailingAnnualDividendYield"`
			RegularMarketPreviousClose  *float64 `json:"regularMarketPreviousClose"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func toField(p *float64) model.Field {
	if p == nil {
		return model.Field{}
	}
	return model.Known(*p)
}

func (f *YahooFetcher) get(u string) ([]byte, int, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return body, resp.StatusCode, nil
}

// FetchSeries returns the trailing daily bars for the window. Yahoo answers
// an unknown ticker with a "Not Found" chart error; that maps to an empty
// series, not a failure.
func (f *YahooFetcher) FetchSeries(symbol string, window model.Window) (model.PriceSeries, error) {
	qualified := QualifySymbol(symbol)
	series := model.PriceSeries{Symbol: qualified, FetchedAt: time.Now()}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		f.BaseURL, url.PathEscape(qualified), window.Range())
	body, status, err := f.get(u)
	if err != nil {
		return series, fmt.Errorf("yahoo chart %s: %w", qualified, err)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		if status != http.StatusOK {
			return series, fmt.Errorf("yahoo chart %s: %w: status %d", qualified, ErrUnavailable, status)
		}
		return series, fmt.Errorf("yahoo chart %s: %w: decode: %v", qualified, ErrUnavailable, err)
	}
	if apiErr := chart.Chart.Error; apiErr != nil {
		if apiErr.Code == "Not Found" {
			return series, nil
		}
		return series, fmt.Errorf("yahoo chart %s: %w: %s", qualified, ErrUnavailable, apiErr.Description)
	}
	if status != http.StatusOK {
		return series, fmt.Errorf("yahoo chart %s: %w: status %d", qualified, ErrUnavailable, status)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return series, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return series, nil
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	series.Bars = bars
	return series, nil
}

// FetchDescriptor returns the quote snapshot for the symbol. Fields Yahoo
// omits stay unknown; an empty result set yields an all-unknown descriptor
// and a nil error.
func (f *YahooFetcher) FetchDescriptor(symbol string) (model.Descriptor, error) {
	qualified := QualifySymbol(symbol)
	desc := model.Descriptor{Symbol: qualified}

	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", f.BaseURL, url.QueryEscape(qualified))
	body, status, err := f.get(u)
	if err != nil {
		return desc, fmt.Errorf("yahoo quote %s: %w", qualified, err)
	}
	if status != http.StatusOK {
		return desc, fmt.Errorf("yahoo quote %s: %w: status %d", qualified, ErrUnavailable, status)
	}

	var quote yahooQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return desc, fmt.Errorf("yahoo quote %s: %w: decode: %v", qualified, ErrUnavailable, err)
	}
	if apiErr := quote.QuoteResponse.Error; apiErr != nil {
		return desc, fmt.Errorf("yahoo quote %s: %w: %s", qualified, ErrUnavailable, apiErr.Description)
	}
	if len(quote.QuoteResponse.Result) == 0 {
		return desc, nil
	}

	r := quote.QuoteResponse.Result[0]
	desc.CurrentPrice = toField(r.RegularMarketPrice)
	desc.High52w = toField(r.FiftyTwoWeekHigh)
	desc.Low52w = toField(r.FiftyTwoWeekLow)
	desc.MarketCap = toField(r.MarketCap)
	desc.PERatio = toField(r.TrailingPE)
	desc.DividendYield = toField(r.TrailingAnnualDividendYield)
	desc.PreviousClose = toField(r.RegularMarketPreviousClose)
	return desc, nil
}
