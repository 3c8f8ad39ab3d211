package analytics_test

import (
	"math"
	"testing"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/analytics"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/testutil"
)

func tradeWithReturn(openedAt time.Time, netProfit, returnPct float64) model.Trade {
	return model.Trade{
		Status:    model.StatusClosed,
		OpenedAt:  openedAt,
		NetProfit: netProfit,
		ReturnPct: returnPct,
	}
}

// TestComputeRisk tests the risk report's sample-size guards and the
// equity curve construction.
//
// WHY: Small-sample statistics must degrade to zero instead of
// producing garbage, and the equity curve anchors every drawdown
// number on the dashboard.
func TestComputeRisk(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty ledger yields zero report", func(t *testing.T) {
		report := analytics.ComputeRisk(nil, 1000)

		if report.StdDev != 0 || report.Sharpe != 0 || report.Sortino != 0 || report.VaR95 != 0 {
			t.Errorf("Expected zero statistics for empty ledger, got %+v", report)
		}
		if len(report.EquityCurve) != 0 {
			t.Errorf("Expected empty equity curve, got %d points", len(report.EquityCurve))
		}
	})

	t.Run("fewer than two trades yields zero statistics", func(t *testing.T) {
		trades := []model.Trade{tradeWithReturn(base, 50, 5)}

		report := analytics.ComputeRisk(trades, 1000)

		if report.StdDev != 0 {
			t.Errorf("StdDev = %v, want 0 with a single trade", report.StdDev)
		}
		if len(report.EquityCurve) != 1 {
			t.Errorf("Equity curve should still be built, got %d points", len(report.EquityCurve))
		}
	})

	t.Run("var requires five samples", func(t *testing.T) {
		var trades []model.Trade
		for i := 0; i < 4; i++ {
			trades = append(trades, tradeWithReturn(base.AddDate(0, 0, i), 10, float64(i)))
		}

		report := analytics.ComputeRisk(trades, 1000)

		if report.VaR95 != 0 {
			t.Errorf("VaR95 = %v, want 0 with fewer than 5 samples", report.VaR95)
		}
		if report.StdDev == 0 {
			t.Error("StdDev should be computed with 4 samples")
		}
	})

	t.Run("stddev is the population deviation of returns", func(t *testing.T) {
		trades := []model.Trade{
			tradeWithReturn(base, 0, 10),
			tradeWithReturn(base.AddDate(0, 0, 1), 0, -10),
		}

		report := analytics.ComputeRisk(trades, 1000)

		// Returns 0.10 and -0.10: mean 0, population stddev 0.10 -> 10%.
		if math.Abs(report.StdDev-10) > 1e-9 {
			t.Errorf("StdDev = %v, want 10", report.StdDev)
		}
		if report.Sharpe != 0 {
			t.Errorf("Sharpe = %v, want 0 with zero mean return", report.Sharpe)
		}
	})

	t.Run("equity curve accumulates net profit from initial balance", func(t *testing.T) {
		trades := []model.Trade{
			tradeWithReturn(base, 100, 10),
			tradeWithReturn(base.AddDate(0, 0, 1), -50, -5),
		}

		report := analytics.ComputeRisk(trades, 1000)

		if len(report.EquityCurve) != 2 {
			t.Fatalf("Expected 2 equity points, got %d", len(report.EquityCurve))
		}
		if report.EquityCurve[0].Equity != 1100 {
			t.Errorf("First equity point = %v, want 1100", report.EquityCurve[0].Equity)
		}
		if report.EquityCurve[1].Equity != 1050 {
			t.Errorf("Second equity point = %v, want 1050", report.EquityCurve[1].Equity)
		}

		// Peak 1100, now 1050: drawdown -50/1100.
		wantDrawdown := -50.0 / 1100.0 * 100
		if math.Abs(report.CurrentDrawdown-wantDrawdown) > 1e-9 {
			t.Errorf("CurrentDrawdown = %v, want %v", report.CurrentDrawdown, wantDrawdown)
		}
	})

	t.Run("curve is ordered by opening date regardless of input order", func(t *testing.T) {
		later := tradeWithReturn(base.AddDate(0, 0, 5), -50, -5)
		earlier := tradeWithReturn(base, 100, 10)

		report := analytics.ComputeRisk([]model.Trade{later, earlier}, 0)

		if !report.EquityCurve[0].Date.Equal(earlier.OpenedAt) {
			t.Errorf("First curve point date = %v, want %v", report.EquityCurve[0].Date, earlier.OpenedAt)
		}
	})

	t.Run("drawdown reported zero while running max is not positive", func(t *testing.T) {
		trades := []model.Trade{
			tradeWithReturn(base, -100, -10),
			tradeWithReturn(base.AddDate(0, 0, 1), -100, -10),
		}

		report := analytics.ComputeRisk(trades, 0)

		for i, p := range report.EquityCurve {
			if p.Drawdown != 0 {
				t.Errorf("point %d: Drawdown = %v, want 0 with non-positive equity peak", i, p.Drawdown)
			}
		}
	})

	t.Run("max drawdown bounds every point", func(t *testing.T) {
		profits := []float64{200, -150, 300, -400, 100, -50}
		var trades []model.Trade
		for i, p := range profits {
			trades = append(trades, tradeWithReturn(base.AddDate(0, 0, i), p, p/100))
		}

		report := analytics.ComputeRisk(trades, 1000)

		if report.MaxDrawdown > 0 {
			t.Errorf("MaxDrawdown = %v, must never be positive", report.MaxDrawdown)
		}
		for i, p := range report.EquityCurve {
			if report.MaxDrawdown > p.Drawdown {
				t.Errorf("point %d: MaxDrawdown %v exceeds drawdown %v", i, report.MaxDrawdown, p.Drawdown)
			}
		}
	})

	t.Run("sortino needs at least two negative returns", func(t *testing.T) {
		trades := []model.Trade{
			tradeWithReturn(base, 10, 5),
			tradeWithReturn(base.AddDate(0, 0, 1), 10, 4),
			tradeWithReturn(base.AddDate(0, 0, 2), -10, -3),
		}

		report := analytics.ComputeRisk(trades, 1000)

		if report.Sortino != 0 {
			t.Errorf("Sortino = %v, want 0 with a single negative return", report.Sortino)
		}
	})

	t.Run("var95 is the interpolated fifth percentile", func(t *testing.T) {
		returns := []float64{-10, -5, 0, 5, 10}
		var trades []model.Trade
		for i, r := range returns {
			trades = append(trades, tradeWithReturn(base.AddDate(0, 0, i), r, r))
		}

		report := analytics.ComputeRisk(trades, 1000)

		// rank = 0.05 * 4 = 0.2 between -10 and -5: -10 + 0.2*5 = -9.
		if math.Abs(report.VaR95-(-9)) > 1e-9 {
			t.Errorf("VaR95 = %v, want -9", report.VaR95)
		}
	})
}

// TestComputeRisk_WithBuilderTrades exercises the risk report over
// trades produced by the real valuation engine rather than synthetic
// return values.
func TestComputeRisk_WithBuilderTrades(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	var trades []model.Trade
	for i, exit := range []float64{110, 90, 130, 80, 120} {
		trades = append(trades, testutil.NewTrade().
			WithOpenedAt(now.AddDate(0, 0, -60+i)).
			ClosedAt(exit).
			AsOf(now).
			Trade())
	}

	report := analytics.ComputeRisk(trades, 10000)

	if report.StdDev <= 0 {
		t.Errorf("StdDev = %v, want positive dispersion", report.StdDev)
	}
	if len(report.EquityCurve) != len(trades) {
		t.Errorf("Equity curve has %d points, want %d", len(report.EquityCurve), len(trades))
	}
	if report.MaxDrawdown > 0 {
		t.Errorf("MaxDrawdown = %v, must never be positive", report.MaxDrawdown)
	}
}
