// Package request defines the JSON request bodies accepted by the API.
package request

// CreateTradeRequest is the body for opening a new trade.
// Dates use the YYYY-MM-DD format. AvgCostBasis, CurrentPrice and
// AnnualHoldingRate are optional; zero means "use the fallback".
type CreateTradeRequest struct {
	OpenedAt          string  `json:"openedAt"`
	Symbol            string  `json:"symbol"`
	ISIN              string  `json:"isin"`
	Category          string  `json:"category"`
	Currency          string  `json:"currency"`
	Quantity          float64 `json:"quantity"`
	EntryPrice        float64 `json:"entryPrice"`
	AvgCostBasis      float64 `json:"avgCostBasis"`
	CurrentPrice      float64 `json:"currentPrice"`
	OpeningCost       float64 `json:"openingCost"`
	AnnualHoldingRate float64 `json:"annualHoldingRate"`
	Notes             string  `json:"notes"`

	// FetchQuote asks the server to look up the current price from the
	// configured quote sources after creating the trade.
	FetchQuote bool `json:"fetchQuote"`
}

// UpdateTradeRequest is the body for editing a trade's static fields.
// Pointer fields distinguish "not provided" from an explicit zero.
type UpdateTradeRequest struct {
	OpenedAt          *string  `json:"openedAt"`
	Symbol            *string  `json:"symbol"`
	ISIN              *string  `json:"isin"`
	Category          *string  `json:"category"`
	Currency          *string  `json:"currency"`
	Quantity          *float64 `json:"quantity"`
	EntryPrice        *float64 `json:"entryPrice"`
	AvgCostBasis      *float64 `json:"avgCostBasis"`
	CurrentPrice      *float64 `json:"currentPrice"`
	OpeningCost       *float64 `json:"openingCost"`
	AnnualHoldingRate *float64 `json:"annualHoldingRate"`
	Notes             *string  `json:"notes"`
}

// CloseTradeRequest is the body for closing a trade, fully or in part.
// A Quantity of zero (or equal to the open quantity) closes the whole
// position; anything in between splits the lot.
type CloseTradeRequest struct {
	ExitPrice   float64 `json:"exitPrice"`
	Quantity    float64 `json:"quantity"`
	ClosingCost float64 `json:"closingCost"`
}
