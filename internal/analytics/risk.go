package analytics

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/model"
)

// minVaRSamples is the smallest return sample for which a historical
// 5th percentile is reported.
const minVaRSamples = 5

// EquityPoint is one point of the portfolio equity curve: cumulative net
// profit offset by the initial balance, one point per trade in opening
// order. Drawdown is relative to the running equity maximum, in percent.
type EquityPoint struct {
	Date     time.Time `json:"date"`
	Equity   float64   `json:"equity"`
	Drawdown float64   `json:"drawdown"`
}

// RiskReport holds dispersion, drawdown, and risk-adjusted-return
// statistics over the ledger's cross-sectional return sample. Percentage
// fields are scaled to percent; Sharpe and Sortino are unitless ratios.
type RiskReport struct {
	StdDev          float64       `json:"stdDev"`
	Sharpe          float64       `json:"sharpe"`
	Sortino         float64       `json:"sortino"`
	VaR95           float64       `json:"var95"`
	MaxDrawdown     float64       `json:"maxDrawdown"`
	CurrentDrawdown float64       `json:"currentDrawdown"`
	EquityCurve     []EquityPoint `json:"equityCurve"`
}

// ComputeRisk derives risk statistics from the ledger snapshot.
//
// Each trade's return percentage is one sample in the return series: a
// simple cross-sectional statistic over trades, not a time-weighted or
// annualized portfolio return. Fewer than 2 trades yield zero statistics;
// VaR additionally requires at least 5 samples. The equity curve is the
// cumulative sum of net profit in opening-date order, offset by the
// initial balance.
func ComputeRisk(trades []model.Trade, initialBalance float64) RiskReport {
	ordered := slices.Clone(trades)
	slices.SortStableFunc(ordered, func(a, b model.Trade) int {
		return a.OpenedAt.Compare(b.OpenedAt)
	})

	report := RiskReport{EquityCurve: equityCurve(ordered, initialBalance)}

	if n := len(report.EquityCurve); n > 0 {
		report.CurrentDrawdown = report.EquityCurve[n-1].Drawdown
		for _, p := range report.EquityCurve {
			if p.Drawdown < report.MaxDrawdown {
				report.MaxDrawdown = p.Drawdown
			}
		}
	}

	if len(ordered) < 2 {
		return report
	}

	// Returns as fractions; outputs are scaled back to percent.
	returns := make([]float64, len(ordered))
	for i, t := range ordered {
		returns[i] = t.ReturnPct / 100
	}

	avg := mean(returns)
	std := stdDev(returns)
	report.StdDev = std * 100

	if std > 0 {
		// Zero risk-free rate.
		report.Sharpe = avg / std
	}

	var negatives []float64
	for _, r := range returns {
		if r < 0 {
			negatives = append(negatives, r)
		}
	}
	if len(negatives) >= 2 {
		if downside := stdDev(negatives); downside > 0 {
			report.Sortino = avg / downside
		}
	}

	if len(returns) >= minVaRSamples {
		report.VaR95 = percentile(returns, 0.05) * 100
	}

	return report
}

// equityCurve walks the ledger in opening order accumulating net profit.
// Drawdown at each point is measured against the running maximum; while
// the running maximum is not positive the drawdown is reported as 0.
func equityCurve(ordered []model.Trade, initialBalance float64) []EquityPoint {
	if len(ordered) == 0 {
		return nil
	}

	curve := make([]EquityPoint, len(ordered))
	equity := initialBalance
	runningMax := math.Inf(-1)

	for i, t := range ordered {
		equity += t.NetProfit
		if equity > runningMax {
			runningMax = equity
		}

		var drawdown float64
		if runningMax > 0 {
			drawdown = (equity - runningMax) / runningMax * 100
		}

		curve[i] = EquityPoint{
			Date:     t.OpenedAt,
			Equity:   equity,
			Drawdown: drawdown,
		}
	}
	return curve
}

func mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// stdDev is the population standard deviation.
func stdDev(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	avg := mean(samples)
	var sumSq float64
	for _, s := range samples {
		d := s - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(samples)))
}

// percentile returns the p-quantile (0..1) of the sample using linear
// interpolation between the closest order statistics.
func percentile(samples []float64, p float64) float64 {
	sorted := slices.Clone(samples)
	sort.Float64s(sorted)

	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
