package analytics_test

import (
	"math"
	"testing"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/analytics"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/testutil"
)

// TestComputeAllocation tests the current-value breakdowns behind the
// dashboard pie charts.
func TestComputeAllocation(t *testing.T) {
	t.Run("empty ledger yields empty breakdowns", func(t *testing.T) {
		allocation := analytics.ComputeAllocation(nil)

		if len(allocation.ByCurrency) != 0 || len(allocation.ByCategory) != 0 {
			t.Errorf("Expected empty breakdowns, got %+v", allocation)
		}
	})

	t.Run("buckets by currency and category with weights", func(t *testing.T) {
		eur := testutil.NewTrade().WithCurrency("EUR").WithCurrentPrice(100).Trade()
		usd := testutil.NewTrade().WithCurrency("USD").WithCategory(model.CategoryCrypto).WithCurrentPrice(300).Trade()

		allocation := analytics.ComputeAllocation([]model.Trade{eur, usd})

		if len(allocation.ByCurrency) != 2 {
			t.Fatalf("Expected 2 currency buckets, got %d", len(allocation.ByCurrency))
		}

		// Sorted descending by value: USD (3000) before EUR (1000).
		if allocation.ByCurrency[0].Label != "USD" {
			t.Errorf("Largest currency bucket = %s, want USD", allocation.ByCurrency[0].Label)
		}

		total := eur.CurrentValue + usd.CurrentValue
		wantWeight := usd.CurrentValue / total * 100
		if math.Abs(allocation.ByCurrency[0].Weight-wantWeight) > 1e-9 {
			t.Errorf("USD weight = %v, want %v", allocation.ByCurrency[0].Weight, wantWeight)
		}

		var weightSum float64
		for _, s := range allocation.ByCategory {
			weightSum += s.Weight
		}
		if math.Abs(weightSum-100) > 1e-9 {
			t.Errorf("Category weights sum to %v, want 100", weightSum)
		}
	})
}

// TestComputeMonthlyRealized tests the monthly realized P/L buckets.
//
// WHY: Realized P/L is attributed to the month the trade was opened,
// and open positions must stay out entirely.
func TestComputeMonthlyRealized(t *testing.T) {
	t.Run("open trades are excluded", func(t *testing.T) {
		open := testutil.NewTrade().WithCurrentPrice(150).Trade()

		months := analytics.ComputeMonthlyRealized([]model.Trade{open})

		if len(months) != 0 {
			t.Errorf("Expected no buckets for an all-open ledger, got %d", len(months))
		}
	})

	t.Run("buckets closed trades by opening month ascending", func(t *testing.T) {
		jan := testutil.NewTrade().
			WithOpenedAt(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)).
			ClosedAt(120).
			Trade()
		marchA := testutil.NewTrade().
			WithOpenedAt(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)).
			ClosedAt(90).
			Trade()
		marchB := testutil.NewTrade().
			WithOpenedAt(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)).
			ClosedAt(110).
			Trade()

		months := analytics.ComputeMonthlyRealized([]model.Trade{marchA, jan, marchB})

		if len(months) != 2 {
			t.Fatalf("Expected 2 month buckets, got %d", len(months))
		}
		if months[0].Month != "2025-01" || months[1].Month != "2025-03" {
			t.Errorf("Months = %s, %s; want 2025-01, 2025-03", months[0].Month, months[1].Month)
		}

		wantMarch := marchA.GrossProfitLoss + marchB.GrossProfitLoss
		if math.Abs(months[1].ProfitLoss-wantMarch) > 1e-9 {
			t.Errorf("March P/L = %v, want %v", months[1].ProfitLoss, wantMarch)
		}
	})
}
