package analytics_test

import (
	"math"
	"testing"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/analytics"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/testutil"
)

// TestComputePerformance tests the period-windowed return aggregation.
//
// WHY: Window boundaries and the zero-denominator guard are the two
// places this can silently go wrong; both produce plausible-looking
// numbers when broken.
func TestComputePerformance(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty ledger returns zeros", func(t *testing.T) {
		perf := analytics.ComputePerformance(nil, now)

		if perf != (analytics.Performance{}) {
			t.Errorf("Expected zero performance for empty ledger, got %+v", perf)
		}
	})

	t.Run("windows select trades by opening date", func(t *testing.T) {
		recent := testutil.NewTrade().
			WithOpenedAt(now.AddDate(0, 0, -10)).
			WithCurrentPrice(120).
			AsOf(now).
			Trade()
		old := testutil.NewTrade().
			WithOpenedAt(now.AddDate(-2, 0, 0)).
			WithCurrentPrice(120).
			AsOf(now).
			Trade()

		perf := analytics.ComputePerformance([]model.Trade{recent, old}, now)

		// Monthly window sees only the recent trade.
		wantMonthly := recent.NetProfit / recent.NetInvested * 100
		if math.Abs(perf.Monthly-wantMonthly) > 1e-9 {
			t.Errorf("Monthly = %v, want %v", perf.Monthly, wantMonthly)
		}

		// Inception sees both.
		wantInception := (recent.NetProfit + old.NetProfit) / (recent.NetInvested + old.NetInvested) * 100
		if math.Abs(perf.Inception-wantInception) > 1e-9 {
			t.Errorf("Inception = %v, want %v", perf.Inception, wantInception)
		}

		// The two-year-old trade is outside LTM as well.
		if math.Abs(perf.LTM-wantMonthly) > 1e-9 {
			t.Errorf("LTM = %v, want %v (old trade excluded)", perf.LTM, wantMonthly)
		}
	})

	t.Run("window with no trades returns zero", func(t *testing.T) {
		old := testutil.NewTrade().
			WithOpenedAt(now.AddDate(-2, 0, 0)).
			WithCurrentPrice(120).
			AsOf(now).
			Trade()

		perf := analytics.ComputePerformance([]model.Trade{old}, now)

		if perf.Monthly != 0 {
			t.Errorf("Monthly = %v, want 0 for an empty window", perf.Monthly)
		}
		if perf.LTM != 0 {
			t.Errorf("LTM = %v, want 0 for an empty window", perf.LTM)
		}
		if perf.Inception == 0 {
			t.Error("Inception should still include the old trade")
		}
	})

	t.Run("ytd window starts at january first", func(t *testing.T) {
		lastYear := testutil.NewTrade().
			WithOpenedAt(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)).
			WithCurrentPrice(120).
			AsOf(now).
			Trade()
		thisYear := testutil.NewTrade().
			WithOpenedAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
			WithCurrentPrice(120).
			AsOf(now).
			Trade()

		perf := analytics.ComputePerformance([]model.Trade{lastYear, thisYear}, now)

		want := thisYear.NetProfit / thisYear.NetInvested * 100
		if math.Abs(perf.YTD-want) > 1e-9 {
			t.Errorf("YTD = %v, want %v (last year's trade excluded)", perf.YTD, want)
		}
	})
}
