package model

import "time"

// TradeStatus is the lifecycle state of a trade. A trade is created OPEN
// and transitions to CLOSED exactly once; there is no reopening.
type TradeStatus string

const (
	StatusOpen   TradeStatus = "OPEN"
	StatusClosed TradeStatus = "CLOSED"
)

// Instrument categories. Mirrors the dashboard's asset classes.
const (
	CategoryEquity      = "equity"
	CategoryCertificate = "certificate"
	CategoryFund        = "fund"
	CategoryBond        = "bond"
	CategoryCrypto      = "crypto"
	CategoryOther       = "other"
)

// Trade represents one lot of an instrument, open or closed.
//
// Optional price fields (AvgCostBasis, ExitPrice, CurrentPrice) use 0 as
// "unset"; the valuation engine applies the documented fallbacks. The
// derived fields are never authoritative: they are recomputed by
// valuation.Engine.Compute and written back whenever the trade changes.
type Trade struct {
	ID                string      `json:"id"`
	OpenedAt          time.Time   `json:"openedAt"`
	Symbol            string      `json:"symbol"`
	ISIN              string      `json:"isin,omitempty"`
	Category          string      `json:"category"`
	Currency          string      `json:"currency"`
	Status            TradeStatus `json:"status"`
	Quantity          float64     `json:"quantity"`
	EntryPrice        float64     `json:"entryPrice"`
	AvgCostBasis      float64     `json:"avgCostBasis"`
	ExitPrice         float64     `json:"exitPrice,omitempty"`
	CurrentPrice      float64     `json:"currentPrice,omitempty"`
	OpeningCost       float64     `json:"openingCost"`
	ClosingCost       float64     `json:"closingCost"`
	AnnualHoldingRate float64     `json:"annualHoldingRate"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         time.Time   `json:"createdAt,omitempty"`

	// Derived fields, recomputed on every mutation.
	GrossInvested   float64 `json:"grossInvested"`
	NetInvested     float64 `json:"netInvested"`
	CurrentValue    float64 `json:"currentValue"`
	GrossProfitLoss float64 `json:"grossProfitLoss"`
	TaxDue          float64 `json:"taxDue"`
	NetProfit       float64 `json:"netProfit"`
	ReturnPct       float64 `json:"returnPct"`
}

// CostBasis returns the average cost basis, falling back to the entry
// price when no explicit basis was recorded.
func (t Trade) CostBasis() float64 {
	if t.AvgCostBasis > 0 {
		return t.AvgCostBasis
	}
	return t.EntryPrice
}

// IsOpen reports whether the trade is still an open position.
func (t Trade) IsOpen() bool {
	return t.Status == StatusOpen
}
