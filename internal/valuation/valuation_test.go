package valuation_test

import (
	"math"
	"testing"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/valuation"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// TestEngine_Compute_OpenTrade tests the full valuation of an open
// position against hand-computed numbers. The trade carries an explicit
// zero holding rate, which must bill no holding cost; the default rate
// is a creation-time concern, not the engine's.
//
// WHY: Every derived field on a trade flows from this one computation.
// A regression here silently corrupts every aggregate report downstream.
func TestEngine_Compute_OpenTrade(t *testing.T) {
	engine := valuation.NewEngine(valuation.DefaultParams())

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	trade := model.Trade{
		Status:       model.StatusOpen,
		Quantity:     10,
		EntryPrice:   100.0,
		CurrentPrice: 120.0,
		OpeningCost:  5.0,
		OpenedAt:     now.AddDate(0, 0, -10),
	}

	got := engine.Compute(trade, now)

	if !approxEqual(got.GrossInvested, 1000.0) {
		t.Errorf("GrossInvested = %v, want 1000", got.GrossInvested)
	}
	if !approxEqual(got.NetInvested, 1005.0) {
		t.Errorf("NetInvested = %v, want 1005", got.NetInvested)
	}
	if !approxEqual(got.CurrentValue, 1200.0) {
		t.Errorf("CurrentValue = %v, want 1200", got.CurrentValue)
	}
	if !approxEqual(got.GrossProfitLoss, 195.0) {
		t.Errorf("GrossProfitLoss = %v, want 195", got.GrossProfitLoss)
	}
	if !approxEqual(got.TaxDue, 50.7) {
		t.Errorf("TaxDue = %v, want 50.7", got.TaxDue)
	}
	if !approxEqual(got.NetProfit, 144.3) {
		t.Errorf("NetProfit = %v, want 144.3", got.NetProfit)
	}
	if math.Abs(got.ReturnPct-14.358208955223881) > 1e-6 {
		t.Errorf("ReturnPct = %v, want ~14.358", got.ReturnPct)
	}
}

// TestEngine_Compute_ClosedTrade tests the valuation of a losing closed
// trade, including the single-day holding cost floor.
//
// WHY: Closed trades accrue exactly one day of holding cost and must
// never be taxed on a loss.
func TestEngine_Compute_ClosedTrade(t *testing.T) {
	engine := valuation.NewEngine(valuation.DefaultParams())

	opened := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	trade := model.Trade{
		Status:            model.StatusClosed,
		Quantity:          5,
		EntryPrice:        50.0,
		ExitPrice:         40.0,
		OpeningCost:       2.0,
		ClosingCost:       2.0,
		AnnualHoldingRate: 0.20,
		OpenedAt:          opened,
	}

	// The reference time is far in the future; a closed trade must
	// ignore it and bill one day of holding cost only.
	got := engine.Compute(trade, opened.AddDate(1, 0, 0))

	holdingCost := 250.0 * (0.20 / 100) / 365 // one day at the stored rate
	wantNetInvested := 250.0 + 2.0 + holdingCost
	wantGrossPL := 198.0 - wantNetInvested

	if !approxEqual(got.GrossInvested, 250.0) {
		t.Errorf("GrossInvested = %v, want 250", got.GrossInvested)
	}
	if !approxEqual(got.CurrentValue, 198.0) {
		t.Errorf("CurrentValue = %v, want 198", got.CurrentValue)
	}
	if !approxEqual(got.NetInvested, wantNetInvested) {
		t.Errorf("NetInvested = %v, want %v", got.NetInvested, wantNetInvested)
	}
	if !approxEqual(got.GrossProfitLoss, wantGrossPL) {
		t.Errorf("GrossProfitLoss = %v, want %v", got.GrossProfitLoss, wantGrossPL)
	}
	if got.TaxDue != 0 {
		t.Errorf("TaxDue = %v, want 0 on a loss", got.TaxDue)
	}
	if !approxEqual(got.NetProfit, wantGrossPL) {
		t.Errorf("NetProfit = %v, want %v", got.NetProfit, wantGrossPL)
	}
}

// TestEngine_Compute_Fallbacks tests the documented degradation paths:
// missing cost basis, missing reference price, missing exit price, and
// non-positive net invested.
func TestEngine_Compute_Fallbacks(t *testing.T) {
	engine := valuation.NewEngine(valuation.DefaultParams())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("cost basis falls back to entry price", func(t *testing.T) {
		trade := model.Trade{
			Status:     model.StatusOpen,
			Quantity:   4,
			EntryPrice: 25.0,
			OpenedAt:   now.AddDate(0, 0, -5),
		}

		got := engine.Compute(trade, now)

		if !approxEqual(got.GrossInvested, 100.0) {
			t.Errorf("GrossInvested = %v, want 100", got.GrossInvested)
		}
	})

	t.Run("explicit basis overrides entry price", func(t *testing.T) {
		trade := model.Trade{
			Status:       model.StatusOpen,
			Quantity:     4,
			EntryPrice:   25.0,
			AvgCostBasis: 30.0,
			OpenedAt:     now.AddDate(0, 0, -5),
		}

		got := engine.Compute(trade, now)

		if !approxEqual(got.GrossInvested, 120.0) {
			t.Errorf("GrossInvested = %v, want 120", got.GrossInvested)
		}
	})

	t.Run("open trade without quote values at cost basis", func(t *testing.T) {
		trade := model.Trade{
			Status:     model.StatusOpen,
			Quantity:   4,
			EntryPrice: 25.0,
			OpenedAt:   now.AddDate(0, 0, -5),
		}

		got := engine.Compute(trade, now)

		if !approxEqual(got.CurrentValue, 100.0) {
			t.Errorf("CurrentValue = %v, want 100", got.CurrentValue)
		}
	})

	t.Run("closed trade without exit price backfills cost basis", func(t *testing.T) {
		trade := model.Trade{
			Status:     model.StatusClosed,
			Quantity:   4,
			EntryPrice: 25.0,
			OpenedAt:   now.AddDate(0, 0, -5),
		}

		got := engine.Compute(trade, now)

		if !approxEqual(got.ExitPrice, 25.0) {
			t.Errorf("ExitPrice = %v, want backfilled 25", got.ExitPrice)
		}
		if !approxEqual(got.CurrentValue, 100.0) {
			t.Errorf("CurrentValue = %v, want 100", got.CurrentValue)
		}
	})

	t.Run("zero holding rate bills no holding cost", func(t *testing.T) {
		trade := model.Trade{
			Status:     model.StatusOpen,
			Quantity:   10,
			EntryPrice: 100.0,
			OpenedAt:   now.AddDate(0, 0, -30),
		}

		got := engine.Compute(trade, now)

		if !approxEqual(got.NetInvested, 1000.0) {
			t.Errorf("NetInvested = %v, want exactly 1000 with a zero rate", got.NetInvested)
		}
	})

	t.Run("zero net invested yields zero return", func(t *testing.T) {
		trade := model.Trade{
			Status:   model.StatusOpen,
			Quantity: 0,
			OpenedAt: now.AddDate(0, 0, -5),
		}

		got := engine.Compute(trade, now)

		if got.ReturnPct != 0 {
			t.Errorf("ReturnPct = %v, want 0 when net invested is zero", got.ReturnPct)
		}
	})
}

// TestEngine_Compute_TaxNeverOnLosses tests that tax stays zero for any
// non-positive gross P/L.
func TestEngine_Compute_TaxNeverOnLosses(t *testing.T) {
	engine := valuation.NewEngine(valuation.DefaultParams())
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, exitPrice := range []float64{10.0, 50.0, 99.0, 100.0} {
		trade := model.Trade{
			Status:     model.StatusClosed,
			Quantity:   1,
			EntryPrice: 100.0,
			ExitPrice:  exitPrice,
			OpenedAt:   now.AddDate(0, 0, -5),
		}

		got := engine.Compute(trade, now)

		if got.GrossProfitLoss > 0 {
			t.Fatalf("exit %v: expected a loss, got gross P/L %v", exitPrice, got.GrossProfitLoss)
		}
		if got.TaxDue != 0 {
			t.Errorf("exit %v: TaxDue = %v, want 0", exitPrice, got.TaxDue)
		}
	}
}

// TestEngine_Compute_DaysHeldFloor tests the 1-day minimum holding
// period: a same-day trade still accrues one day of holding cost.
func TestEngine_Compute_DaysHeldFloor(t *testing.T) {
	engine := valuation.NewEngine(valuation.DefaultParams())

	opened := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	trade := model.Trade{
		Status:            model.StatusOpen,
		Quantity:          10,
		EntryPrice:        100.0,
		AnnualHoldingRate: 0.20,
		OpenedAt:          opened,
	}

	// Two hours after opening: still one full day of holding cost.
	got := engine.Compute(trade, opened.Add(2*time.Hour))

	oneDayCost := 1000.0 * (0.20 / 100) / 365
	if !approxEqual(got.NetInvested, 1000.0+oneDayCost) {
		t.Errorf("NetInvested = %v, want %v (1-day floor)", got.NetInvested, 1000.0+oneDayCost)
	}
}

// TestEngine_Compute_HoldingCostGrowsDaily tests that an open trade's
// holding cost scales with the number of whole days held.
func TestEngine_Compute_HoldingCostGrowsDaily(t *testing.T) {
	engine := valuation.NewEngine(valuation.DefaultParams())

	opened := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trade := model.Trade{
		Status:            model.StatusOpen,
		Quantity:          10,
		EntryPrice:        100.0,
		AnnualHoldingRate: 0.20,
		OpenedAt:          opened,
	}

	after10 := engine.Compute(trade, opened.AddDate(0, 0, 10))
	after20 := engine.Compute(trade, opened.AddDate(0, 0, 20))

	cost10 := after10.NetInvested - after10.GrossInvested
	cost20 := after20.NetInvested - after20.GrossInvested

	if !approxEqual(cost20, 2*cost10) {
		t.Errorf("holding cost after 20 days = %v, want double the 10-day cost %v", cost20, cost10)
	}
}
