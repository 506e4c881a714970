package listing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"StockTracker/internal/marketdata"
	"StockTracker/internal/model"
)

const defaultBaseURL = "https://www.nseindia.com"

// DefaultIndex is the index whose constituents the interactive listing
// shows.
const DefaultIndex = "NIFTY 500"

// Client fetches index constituents from the NSE public API. The API
// refuses cookie-less sessions, so every call warms up on the landing page
// first; resty's default cookie jar carries the session over.
type Client struct {
	client *resty.Client
}

// NewClient creates an NSE listing client. An empty baseURL selects the
// real exchange endpoint; a zero timeout defaults to ten seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeaders(map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		"Accept":          "*/*",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         baseURL + "/",
	})
	return &Client{client: c}
}

type indexResponse struct {
	Data []struct {
		Symbol string `json:"symbol"`
		Meta   struct {
			CompanyName string `json:"companyName"`
		} `json:"meta"`
	} `json:"data"`
}

// Constituents returns the (company, exchange-qualified symbol) pairs of an
// NSE index. Any transport failure yields an error, never partial data.
func (c *Client) Constituents(index string) ([]model.Listing, error) {
	if _, err := c.client.R().Get("/"); err != nil {
		return nil, fmt.Errorf("nse warm-up: %w", err)
	}

	resp, err := c.client.R().
		SetQueryParam("index", index).
		Get("/api/equity-stockIndices")
	if err != nil {
		return nil, fmt.Errorf("nse index %q: %w", index, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("nse index %q: status %d", index, resp.StatusCode())
	}

	var decoded indexResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("nse index %q: decode: %w", index, err)
	}

	listings := make([]model.Listing, 0, len(decoded.Data))
	for _, d := range decoded.Data {
		// The index itself appears as a data row without company metadata.
		if d.Meta.CompanyName == "" {
			continue
		}
		listings = append(listings, model.Listing{
			Company: d.Meta.CompanyName,
			Symbol:  marketdata.QualifySymbol(d.Symbol),
		})
	}
	return listings, nil
}
