package service

import (
	"fmt"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/analytics"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/repository"
	"github.com/antigravity/Trading-Journal-Backend/internal/valuation"
)

// PortfolioService derives portfolio-level reports from the trade
// ledger. All reports are computed from a single ledger snapshot with
// open positions revalued at the request time, so the numbers on one
// dashboard render are mutually consistent.
type PortfolioService struct {
	tradeRepo    *repository.TradeRepository
	settingsRepo *repository.SettingsRepository
	engine       *valuation.Engine
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	tradeRepo *repository.TradeRepository,
	settingsRepo *repository.SettingsRepository,
	engine *valuation.Engine,
) *PortfolioService {
	return &PortfolioService{
		tradeRepo:    tradeRepo,
		settingsRepo: settingsRepo,
		engine:       engine,
	}
}

// Overview is the full dashboard payload: headline totals plus every
// aggregate report, all derived from one ledger snapshot.
type Overview struct {
	InitialBalance  float64                     `json:"initialBalance"`
	TotalValue      float64                     `json:"totalValue"`
	TotalNetProfit  float64                     `json:"totalNetProfit"`
	TotalEquity     float64                     `json:"totalEquity"`
	OpenTrades      int                         `json:"openTrades"`
	ClosedTrades    int                         `json:"closedTrades"`
	TaxWallet       analytics.TaxWallet         `json:"taxWallet"`
	Performance     analytics.Performance       `json:"performance"`
	Risk            analytics.RiskReport        `json:"risk"`
	Allocation      analytics.Allocation        `json:"allocation"`
	MonthlyRealized []analytics.MonthlyRealized `json:"monthlyRealized"`
}

// GetOverview builds the dashboard payload at the given reference time.
func (s *PortfolioService) GetOverview(now time.Time) (Overview, error) {
	trades, initialBalance, err := s.snapshot(now)
	if err != nil {
		return Overview{}, err
	}

	o := Overview{
		InitialBalance:  initialBalance,
		TaxWallet:       analytics.ComputeTaxWallet(trades),
		Performance:     analytics.ComputePerformance(trades, now),
		Risk:            analytics.ComputeRisk(trades, initialBalance),
		Allocation:      analytics.ComputeAllocation(trades),
		MonthlyRealized: analytics.ComputeMonthlyRealized(trades),
	}

	for _, t := range trades {
		o.TotalValue += t.CurrentValue
		o.TotalNetProfit += t.NetProfit
		if t.IsOpen() {
			o.OpenTrades++
		} else {
			o.ClosedTrades++
		}
	}
	o.TotalEquity = initialBalance + o.TotalNetProfit

	return o, nil
}

// GetTaxWallet returns the realized gains/losses fiscal summary.
func (s *PortfolioService) GetTaxWallet(now time.Time) (analytics.TaxWallet, error) {
	trades, _, err := s.snapshot(now)
	if err != nil {
		return analytics.TaxWallet{}, err
	}
	return analytics.ComputeTaxWallet(trades), nil
}

// GetPerformance returns the period-windowed portfolio returns.
func (s *PortfolioService) GetPerformance(now time.Time) (analytics.Performance, error) {
	trades, _, err := s.snapshot(now)
	if err != nil {
		return analytics.Performance{}, err
	}
	return analytics.ComputePerformance(trades, now), nil
}

// GetRisk returns dispersion, drawdown and equity-curve statistics.
func (s *PortfolioService) GetRisk(now time.Time) (analytics.RiskReport, error) {
	trades, initialBalance, err := s.snapshot(now)
	if err != nil {
		return analytics.RiskReport{}, err
	}
	return analytics.ComputeRisk(trades, initialBalance), nil
}

// GetAllocation returns current-value breakdowns by currency and category.
func (s *PortfolioService) GetAllocation(now time.Time) (analytics.Allocation, error) {
	trades, _, err := s.snapshot(now)
	if err != nil {
		return analytics.Allocation{}, err
	}
	return analytics.ComputeAllocation(trades), nil
}

// snapshot loads the ledger with open positions revalued at the given
// time, plus the configured initial balance.
func (s *PortfolioService) snapshot(now time.Time) ([]model.Trade, float64, error) {
	trades, err := s.tradeRepo.ListTrades()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load ledger: %w", err)
	}

	for i, t := range trades {
		if t.IsOpen() {
			trades[i] = s.engine.Compute(t, now)
		}
	}

	initialBalance, err := s.settingsRepo.GetFloatSetting(model.SettingInitialBalance, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load initial balance: %w", err)
	}

	return trades, initialBalance, nil
}
