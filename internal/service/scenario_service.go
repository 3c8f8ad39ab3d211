package service

import (
	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/valuation"
)

// ScenarioService implements the take-profit / stop-loss calculator:
// given a hypothetical position, it tabulates the net outcome across a
// range of exit prices using the same valuation engine as real trades.
type ScenarioService struct {
	engine *valuation.Engine
}

// NewScenarioService creates a new ScenarioService using the provided engine.
func NewScenarioService(engine *valuation.Engine) *ScenarioService {
	return &ScenarioService{engine: engine}
}

// ScenarioRow is the outcome of selling at one exit price.
type ScenarioRow struct {
	ExitPrice       float64 `json:"exitPrice"`
	GrossProfitLoss float64 `json:"grossProfitLoss"`
	TaxDue          float64 `json:"taxDue"`
	NetProfit       float64 `json:"netProfit"`
	ReturnPct       float64 `json:"returnPct"`
}

// Scenarios evaluates the request's price grid. The grid runs from
// MinPrice to MaxPrice in Step increments; the exact buy price is
// inserted into the sequence when the grid would skip over it, so the
// break-even row is always visible.
func (s *ScenarioService) Scenarios(req request.ScenarioRequest) []ScenarioRow {
	prices := priceGrid(req.MinPrice, req.MaxPrice, req.Step, req.BuyPrice)

	rows := make([]ScenarioRow, len(prices))
	for i, price := range prices {
		t := s.evaluate(req, price)
		rows[i] = ScenarioRow{
			ExitPrice:       price,
			GrossProfitLoss: t.GrossProfitLoss,
			TaxDue:          t.TaxDue,
			NetProfit:       t.NetProfit,
			ReturnPct:       t.ReturnPct,
		}
	}
	return rows
}

// evaluate runs one exit price through the valuation engine as a
// synthetic closed trade.
func (s *ScenarioService) evaluate(req request.ScenarioRequest, exitPrice float64) model.Trade {
	t := model.Trade{
		Status:            model.StatusClosed,
		Quantity:          req.Quantity,
		EntryPrice:        req.BuyPrice,
		ExitPrice:         exitPrice,
		OpeningCost:       req.OpeningCost,
		ClosingCost:       req.ClosingCost,
		AnnualHoldingRate: req.AnnualHoldingRate,
	}

	// The engine charges a closed trade exactly one day of holding
	// cost. Scale the rate so the configured number of days is billed.
	days := req.DaysHeld
	if days < 1 {
		days = 1
	}
	// A zero rate means the request left it unspecified; apply the
	// configured default, same as trade creation.
	rate := t.AnnualHoldingRate
	if rate == 0 {
		rate = s.engine.Params().DefaultAnnualHoldingRate
	}
	t.AnnualHoldingRate = rate * float64(days)

	return s.engine.Compute(t, t.OpenedAt)
}

// priceGrid builds the ascending exit-price sequence, splicing in the
// buy price when it falls inside the range but between grid points.
func priceGrid(min, max, step, buyPrice float64) []float64 {
	var prices []float64
	onGrid := false
	for p := min; p <= max+step/2; p += step {
		prices = append(prices, p)
		if p == buyPrice {
			onGrid = true
		}
	}

	if onGrid || buyPrice <= min || buyPrice >= max {
		return prices
	}

	out := make([]float64, 0, len(prices)+1)
	for _, p := range prices {
		if buyPrice < p && (len(out) == 0 || out[len(out)-1] < buyPrice) {
			out = append(out, buyPrice)
		}
		out = append(out, p)
	}
	return out
}
