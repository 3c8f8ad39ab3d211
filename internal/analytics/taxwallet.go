// Package analytics derives portfolio-level reports from a ledger
// snapshot. Every function here is a total, read-only function of the
// trades passed in: no state is retained between calls, and degenerate
// inputs (empty ledger, too few samples) produce zero-valued reports
// instead of errors.
package analytics

import "github.com/antigravity/Trading-Journal-Backend/internal/model"

// TaxWallet is the "zainetto fiscale": the running fiscal balance of
// realized gains and losses across closed trades.
type TaxWallet struct {
	RealizedProfitLoss float64 `json:"realizedProfitLoss"`
	TaxesPaid          float64 `json:"taxesPaid"`
	Gains              float64 `json:"gains"`
	Losses             float64 `json:"losses"`
	FiscalBalance      float64 `json:"fiscalBalance"`
}

// ComputeTaxWallet accumulates realized gains and losses over the CLOSED
// trades in the ledger. Losses are reported as a positive magnitude; the
// fiscal balance is gains minus losses. A ledger with no closed trades
// yields the zero value.
func ComputeTaxWallet(trades []model.Trade) TaxWallet {
	var w TaxWallet
	for _, t := range trades {
		if t.IsOpen() {
			continue
		}
		w.RealizedProfitLoss += t.GrossProfitLoss
		w.TaxesPaid += t.TaxDue
		if t.GrossProfitLoss > 0 {
			w.Gains += t.GrossProfitLoss
		} else {
			w.Losses += -t.GrossProfitLoss
		}
	}
	w.FiscalBalance = w.Gains - w.Losses
	return w
}
