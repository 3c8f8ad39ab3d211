package analytics

import (
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/model"
)

// Performance holds period-windowed portfolio returns, each in percent.
type Performance struct {
	Monthly   float64 `json:"monthly"`
	YTD       float64 `json:"ytd"`
	LTM       float64 `json:"ltm"`
	Inception float64 `json:"inception"`
}

// ComputePerformance computes the return percentage for the standard
// dashboard windows: last 30 days, calendar year to date, last 365 days,
// and inception.
//
// Trades are bucketed by opening date, not by realization date: a closed
// trade's entire net profit is attributed to the window containing the
// date it was opened. A window with no trades, or with non-positive total
// net invested, returns 0.
func ComputePerformance(trades []model.Trade, now time.Time) Performance {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	return Performance{
		Monthly:   periodReturn(trades, now.AddDate(0, 0, -30)),
		YTD:       periodReturn(trades, yearStart),
		LTM:       periodReturn(trades, now.AddDate(0, 0, -365)),
		Inception: periodReturn(trades, time.Time{}),
	}
}

// periodReturn sums net profit and net invested over trades opened on or
// after the window start, and returns profit/invested*100. The zero time
// selects the whole ledger.
func periodReturn(trades []model.Trade, since time.Time) float64 {
	var invested, profit float64
	for _, t := range trades {
		if t.OpenedAt.Before(since) {
			continue
		}
		invested += t.NetInvested
		profit += t.NetProfit
	}
	if invested <= 0 {
		return 0
	}
	return profit / invested * 100
}
