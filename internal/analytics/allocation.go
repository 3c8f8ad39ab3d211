package analytics

import (
	"slices"

	"github.com/antigravity/Trading-Journal-Backend/internal/model"
)

// AllocationSlice is one bucket of an allocation breakdown, weighted by
// current value.
type AllocationSlice struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"` // percent of total current value
}

// Allocation breaks the portfolio's current value down by currency and
// by instrument category, for the dashboard pie charts.
type Allocation struct {
	ByCurrency []AllocationSlice `json:"byCurrency"`
	ByCategory []AllocationSlice `json:"byCategory"`
}

// ComputeAllocation aggregates current value per currency and category.
// Slices are sorted descending by value so the largest bucket renders
// first. An empty ledger yields empty breakdowns.
func ComputeAllocation(trades []model.Trade) Allocation {
	var total float64
	byCurrency := make(map[string]float64)
	byCategory := make(map[string]float64)

	for _, t := range trades {
		total += t.CurrentValue
		byCurrency[t.Currency] += t.CurrentValue
		byCategory[t.Category] += t.CurrentValue
	}

	return Allocation{
		ByCurrency: toSlices(byCurrency, total),
		ByCategory: toSlices(byCategory, total),
	}
}

func toSlices(buckets map[string]float64, total float64) []AllocationSlice {
	out := make([]AllocationSlice, 0, len(buckets))
	for label, value := range buckets {
		s := AllocationSlice{Label: label, Value: value}
		if total != 0 {
			s.Weight = value / total * 100
		}
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b AllocationSlice) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})
	return out
}

// MonthlyRealized is the realized gross P/L of closed trades for one
// calendar month.
type MonthlyRealized struct {
	Month      string  `json:"month"` // YYYY-MM
	ProfitLoss float64 `json:"profitLoss"`
}

// ComputeMonthlyRealized buckets closed trades' gross P/L by the calendar
// month of their opening date, ascending. Open trades are excluded.
func ComputeMonthlyRealized(trades []model.Trade) []MonthlyRealized {
	byMonth := make(map[string]float64)
	for _, t := range trades {
		if t.IsOpen() {
			continue
		}
		byMonth[t.OpenedAt.Format("2006-01")] += t.GrossProfitLoss
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	slices.Sort(months)

	out := make([]MonthlyRealized, len(months))
	for i, m := range months {
		out[i] = MonthlyRealized{Month: m, ProfitLoss: byMonth[m]}
	}
	return out
}
