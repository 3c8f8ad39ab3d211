package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// yahooResponse maps the Yahoo Finance chart API response format.
type yahooResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency string `json:"currency"`
				Symbol   string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// YahooClient fetches the latest close price from the Yahoo Finance
// chart API. It queries the last five trading days and returns the most
// recent non-zero close, which tolerates symbols with no quote on the
// current day.
type YahooClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewYahooClient creates a Yahoo client with default HTTP settings.
func NewYahooClient() *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://query1.finance.yahoo.com",
	}
}

// NewYahooClientWithBaseURL creates a client pointed at an alternate
// endpoint, used by tests.
func NewYahooClientWithBaseURL(baseURL string) *YahooClient {
	c := NewYahooClient()
	c.baseURL = baseURL
	return c
}

// Price implements Source. The ISIN is ignored; Yahoo is queried by
// (normalized) ticker symbol only.
func (c *YahooClient) Price(symbol, _ string) (float64, error) {
	if symbol == "" {
		return 0, fmt.Errorf("yahoo: no symbol to query")
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, NormalizeTicker(symbol))

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("yahoo request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("yahoo response read failed: %w", err)
	}

	var response yahooResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, fmt.Errorf("yahoo response parse failed: %w", err)
	}

	if response.Chart.Error != nil {
		return 0, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return 0, fmt.Errorf("yahoo: no results for symbol %s", symbol)
	}

	result := response.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return 0, fmt.Errorf("yahoo: no quote data for symbol %s", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] > 0 {
			return closes[i], nil
		}
	}

	return 0, fmt.Errorf("yahoo: no close price for symbol %s", symbol)
}
