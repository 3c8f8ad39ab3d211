package request

// ScenarioRequest is the body for the take-profit / stop-loss
// calculator. It evaluates the P/L of a hypothetical position across a
// range of exit prices.
type ScenarioRequest struct {
	Quantity          float64 `json:"quantity"`
	BuyPrice          float64 `json:"buyPrice"`
	OpeningCost       float64 `json:"openingCost"`
	ClosingCost       float64 `json:"closingCost"`
	MinPrice          float64 `json:"minPrice"`
	MaxPrice          float64 `json:"maxPrice"`
	Step              float64 `json:"step"`
	DaysHeld          int     `json:"daysHeld"`
	AnnualHoldingRate float64 `json:"annualHoldingRate"`
}
