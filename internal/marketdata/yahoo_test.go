package marketdata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"StockTracker/internal/model"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) *YahooFetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f
}

const chartBody = `{"chart":{"result":[{"timestamp":[1736121600,1736208000,1736294400,1736380800],
"indicators":{"quote":[{
"open":[100.0,null,102.0,103.0],
"high":[101.0,null,103.0,104.0],
"low":[99.0,null,101.0,102.0],
"close":[100.5,null,102.5,103.5],
"volume":[1000,null,1200,1300]}]}}],"error":null}}`

func TestYahooFetchSeries(t *testing.T) {
	var gotPath, gotQuery string
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chartBody))
	})

	series, err := f.FetchSeries("tcs", model.DefaultWindow)
	require.NoError(t, err)
	require.Equal(t, "/v8/finance/chart/TCS.NS", gotPath)
	require.Contains(t, gotQuery, "interval=1d")
	require.Contains(t, gotQuery, "range=6mo")

	require.Equal(t, "TCS.NS", series.Symbol)
	// The null bar (market holiday) is dropped.
	require.Len(t, series.Bars, 3)
	require.Equal(t, 100.5, series.Bars[0].Close)
	require.Equal(t, float64(1000), series.Bars[0].Volume)

	latest, ok := series.Latest()
	require.True(t, ok)
	require.Equal(t, 103.5, latest.Close)
}

func TestYahooFetchSeriesSortsBars(t *testing.T) {
	body := `{"chart":{"result":[{"timestamp":[1736208000,1736121600],
"indicators":{"quote":[{"open":[2,1],"high":[2,1],"low":[2,1],"close":[2.5,1.5],"volume":[20,10]}]}}],"error":null}}`
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	series, err := f.FetchSeries("INFY", model.DefaultWindow)
	require.NoError(t, err)
	require.Len(t, series.Bars, 2)
	require.True(t, series.Bars[0].Time.Before(series.Bars[1].Time))
	require.Equal(t, []float64{1.5, 2.5}, series.Closes())
}

func TestYahooFetchSeriesUnknownSymbol(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	})

	series, err := f.FetchSeries("ZZZZ999", model.DefaultWindow)
	require.NoError(t, err)
	require.True(t, series.Empty())
}

func TestYahooFetchSeriesServerError(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	_, err := f.FetchSeries("TCS", model.DefaultWindow)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestYahooFetchSeriesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	srv.Close()

	_, err := f.FetchSeries("TCS", model.DefaultWindow)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestYahooFetchDescriptor(t *testing.T) {
	body := `{"quoteResponse":{"result":[{
"regularMarketPrice":4123.5,
"fiftyTwoWeekHigh":4592.25,
"fiftyTwoWeekLow":3311.0,
"marketCap":1492052000000,
"trailingPE":29.93,
"regularMarketPreviousClose":4101.1}],"error":null}}`
	var gotQuery string
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(body))
	})

	desc, err := f.FetchDescriptor("tcs")
	require.NoError(t, err)
	require.Equal(t, "symbols=TCS.NS", gotQuery)
	require.Equal(t, "TCS.NS", desc.Symbol)

	require.True(t, desc.CurrentPrice.Known)
	require.Equal(t, 4123.5, desc.CurrentPrice.Value)
	require.True(t, desc.High52w.Known)
	require.True(t, desc.Low52w.Known)
	require.True(t, desc.MarketCap.Known)
	require.True(t, desc.PERatio.Known)
	require.True(t, desc.PreviousClose.Known)

	// Yahoo omitted the dividend yield for this symbol.
	require.False(t, desc.DividendYield.Known)
	require.Equal(t, "unknown", desc.DividendYield.String())
	require.False(t, desc.AllUnknown())
}

func TestYahooFetchDescriptorDelistedSymbol(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse":{"result":[],"error":null}}`))
	})

	desc, err := f.FetchDescriptor("GONE")
	require.NoError(t, err)
	require.True(t, desc.AllUnknown())
}

func TestYahooFetchDescriptorServerError(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := f.FetchDescriptor("TCS")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestQualifySymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tcs", "TCS.NS"},
		{" infy ", "INFY.NS"},
		{"RELIANCE.NS", "RELIANCE.NS"},
		{"BRK.B", "BRK.B"},
		{"^NSEI", "^NSEI"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, QualifySymbol(tt.in), "input %q", tt.in)
	}
}
