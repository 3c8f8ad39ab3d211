package quote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// KeyFunc returns the AlphaVantage API key to use for a request. It is
// resolved per call so a key stored through the settings API takes
// effect without a restart.
type KeyFunc func() string

// AlphaVantageClient fetches the latest quote via the GLOBAL_QUOTE
// endpoint. It is the fallback source behind Yahoo because the free
// tier is limited to a handful of requests per minute.
type AlphaVantageClient struct {
	httpClient *http.Client
	baseURL    string
	key        KeyFunc
}

// NewAlphaVantageClient creates an AlphaVantage client. The key func is
// consulted on every request; an empty key disables the source.
func NewAlphaVantageClient(key KeyFunc) *AlphaVantageClient {
	return &AlphaVantageClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://www.alphavantage.co",
		key:        key,
	}
}

// NewAlphaVantageClientWithBaseURL creates a client pointed at an
// alternate endpoint, used by tests.
func NewAlphaVantageClientWithBaseURL(baseURL string, key KeyFunc) *AlphaVantageClient {
	c := NewAlphaVantageClient(key)
	c.baseURL = baseURL
	return c
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
	Note         string `json:"Note"`
	ErrorMessage string `json:"Error Message"`
}

// Price implements Source. The ISIN is ignored; AlphaVantage is queried
// by (normalized) ticker symbol only.
func (c *AlphaVantageClient) Price(symbol, _ string) (float64, error) {
	if symbol == "" {
		return 0, fmt.Errorf("alphavantage: no symbol to query")
	}

	apiKey := c.key()
	if apiKey == "" {
		return 0, fmt.Errorf("alphavantage: no API key configured")
	}

	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", NormalizeTicker(symbol))
	query.Set("apikey", apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "/query?" + query.Encode())
	if err != nil {
		return 0, fmt.Errorf("alphavantage request failed: %w", err)
	}
	defer resp.Body.Close()

	var response globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, fmt.Errorf("alphavantage response parse failed: %w", err)
	}

	if response.ErrorMessage != "" {
		return 0, fmt.Errorf("alphavantage error: %s", response.ErrorMessage)
	}
	if response.Note != "" {
		// Rate limit notice; the quote block is empty when present.
		return 0, fmt.Errorf("alphavantage rate limited: %s", response.Note)
	}
	if response.GlobalQuote.Price == "" {
		return 0, fmt.Errorf("alphavantage: no quote for symbol %s", symbol)
	}

	price, err := strconv.ParseFloat(response.GlobalQuote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("alphavantage: bad price %q: %w", response.GlobalQuote.Price, err)
	}
	if price <= 0 {
		return 0, fmt.Errorf("alphavantage: non-positive price for symbol %s", symbol)
	}
	return price, nil
}
