// Package valuation implements the per-trade financial metrics engine.
//
// The engine is a pure function of a trade snapshot and a reference time:
// it never fails and never touches storage. Missing inputs degrade to
// documented fallbacks (reference price -> cost basis, zero net invested
// -> zero return) so a dashboard always has a number to render. Callers
// are expected to persist the returned trade before its derived fields
// are read again.
package valuation

import (
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/model"
)

// Params holds the engine-wide rates. They are configuration, not
// in-code literals, so alternate tax regimes can be injected in tests.
type Params struct {
	// TaxRate is the capital-gains flat rate applied to positive gross
	// profit (Italian regime: 26%). Expressed as a fraction.
	TaxRate float64

	// DefaultAnnualHoldingRate is the annual holding-cost percentage
	// assigned to new trades that do not specify one. The engine itself
	// always uses the trade's stored rate; an explicit zero means no
	// holding cost. Expressed in percent.
	DefaultAnnualHoldingRate float64
}

// DefaultParams returns the production rates.
func DefaultParams() Params {
	return Params{
		TaxRate:                  0.26,
		DefaultAnnualHoldingRate: 0.20,
	}
}

// Engine computes derived financial fields for single trades.
type Engine struct {
	params Params
}

// NewEngine creates an Engine with the provided parameters.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Params returns the engine's configured rates.
func (e *Engine) Params() Params {
	return e.params
}

// Compute returns a copy of the trade with all derived fields recomputed.
//
// The steps, in order:
//  1. cost basis = avg cost basis, or entry price when unset
//  2. gross invested = quantity * cost basis
//  3. days held = max(1, whole days from opening to now if OPEN, else to
//     the opening date itself) — a closed trade accrues exactly one day
//  4. holding cost = gross invested * (stored annual rate / 100) / 365 *
//     days held; a zero rate bills nothing
//  5. net invested = gross invested + opening cost + holding cost
//  6. current value: OPEN  -> quantity * (current price, or cost basis)
//     CLOSED -> quantity * (exit price, or cost basis) - closing cost
//  7. gross P/L = current value - net invested
//  8. tax = TaxRate * gross P/L when positive, else 0; never applied to
//     losses and never netted against other trades
//  9. net profit = gross P/L - tax; return % = net profit / net invested
//     * 100, or 0 when net invested <= 0
//
// A CLOSED trade with no recorded exit price has it backfilled to the
// cost basis in the returned copy.
func (e *Engine) Compute(t model.Trade, now time.Time) model.Trade {
	costBasis := t.CostBasis()

	t.GrossInvested = t.Quantity * costBasis

	end := now
	if !t.IsOpen() {
		end = t.OpenedAt
	}
	days := daysHeld(t.OpenedAt, end)

	holdingCost := t.GrossInvested * (t.AnnualHoldingRate / 100) / 365 * float64(days)

	t.NetInvested = t.GrossInvested + t.OpeningCost + holdingCost

	if t.IsOpen() {
		referencePrice := t.CurrentPrice
		if referencePrice == 0 {
			referencePrice = costBasis
		}
		t.CurrentValue = t.Quantity * referencePrice
	} else {
		if t.ExitPrice == 0 {
			t.ExitPrice = costBasis
		}
		t.CurrentValue = t.Quantity*t.ExitPrice - t.ClosingCost
	}

	t.GrossProfitLoss = t.CurrentValue - t.NetInvested

	if t.GrossProfitLoss > 0 {
		t.TaxDue = t.GrossProfitLoss * e.params.TaxRate
	} else {
		t.TaxDue = 0
	}
	t.NetProfit = t.GrossProfitLoss - t.TaxDue

	if t.NetInvested > 0 {
		t.ReturnPct = t.NetProfit / t.NetInvested * 100
	} else {
		t.ReturnPct = 0
	}

	return t
}

// daysHeld returns the number of whole days between start and end,
// floored at 1. The floor guarantees a minimum fee accrual even for
// trades closed the same day they were opened.
func daysHeld(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
