package request

// UpdateBalanceRequest is the body for setting the portfolio's initial
// cash balance, the anchor point of the equity curve.
type UpdateBalanceRequest struct {
	InitialBalance float64 `json:"initialBalance"`
}

// UpdateAPIKeyRequest is the body for storing the AlphaVantage API key.
type UpdateAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
