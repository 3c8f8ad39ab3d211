package service

import (
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/quote"
	"github.com/antigravity/Trading-Journal-Backend/internal/repository"
	"github.com/antigravity/Trading-Journal-Backend/internal/valuation"
)

// maxConcurrentQuoteFetches bounds the parallel quote lookups during a
// bulk price refresh so the free-tier providers are not hammered.
const maxConcurrentQuoteFetches = 4

// TradeService handles trade lifecycle business logic: opening,
// editing, closing (including partial closes) and price refreshes.
// Every mutation runs the trade back through the valuation engine
// before persisting, so stored derived fields are always consistent
// with the stored inputs.
type TradeService struct {
	db        *sql.DB
	tradeRepo *repository.TradeRepository
	engine    *valuation.Engine
	quotes    quote.Source
}

// NewTradeService creates a new TradeService with the provided dependencies.
// The quote source may be nil; quote-dependent features then degrade to
// their fallbacks.
func NewTradeService(
	db *sql.DB,
	tradeRepo *repository.TradeRepository,
	engine *valuation.Engine,
	quotes quote.Source,
) *TradeService {
	return &TradeService{
		db:        db,
		tradeRepo: tradeRepo,
		engine:    engine,
		quotes:    quotes,
	}
}

// GetTrades returns the full ledger, with open positions revalued at
// the current time. Holding cost accrues daily, so a stored valuation
// from yesterday is already stale; the revaluation is in-memory only.
func (s *TradeService) GetTrades() ([]model.Trade, error) {
	trades, err := s.tradeRepo.ListTrades()
	if err != nil {
		return nil, fmt.Errorf("failed to get trades: %w", err)
	}

	now := time.Now().UTC()
	for i, t := range trades {
		if t.IsOpen() {
			trades[i] = s.engine.Compute(t, now)
		}
	}
	return trades, nil
}

// GetTrade returns a single trade by ID, revalued at the current time
// if still open.
func (s *TradeService) GetTrade(id string) (model.Trade, error) {
	t, err := s.tradeRepo.GetTrade(id)
	if err != nil {
		return model.Trade{}, err
	}
	if t.IsOpen() {
		t = s.engine.Compute(t, time.Now().UTC())
	}
	return t, nil
}

// CreateTrade opens a new trade. When the request asks for a quote
// fetch, a lookup failure is not fatal: the trade is created without a
// current price and the valuation falls back to the cost basis.
func (s *TradeService) CreateTrade(req request.CreateTradeRequest) (model.Trade, error) {
	openedAt, err := time.Parse("2006-01-02", req.OpenedAt)
	if err != nil {
		return model.Trade{}, err
	}

	t := model.Trade{
		ID:                uuid.New().String(),
		OpenedAt:          openedAt.UTC(),
		Symbol:            req.Symbol,
		ISIN:              req.ISIN,
		Category:          req.Category,
		Currency:          req.Currency,
		Status:            model.StatusOpen,
		Quantity:          req.Quantity,
		EntryPrice:        req.EntryPrice,
		AvgCostBasis:      req.AvgCostBasis,
		CurrentPrice:      req.CurrentPrice,
		OpeningCost:       req.OpeningCost,
		AnnualHoldingRate: req.AnnualHoldingRate,
		Notes:             req.Notes,
		CreatedAt:         time.Now().UTC(),
	}
	if t.AnnualHoldingRate == 0 {
		t.AnnualHoldingRate = s.engine.Params().DefaultAnnualHoldingRate
	}

	if req.FetchQuote && t.CurrentPrice == 0 && s.quotes != nil {
		if price, err := s.quotes.Price(t.Symbol, t.ISIN); err == nil {
			t.CurrentPrice = price
		}
	}

	t = s.engine.Compute(t, time.Now().UTC())

	if err := s.tradeRepo.InsertTrade(t); err != nil {
		return model.Trade{}, fmt.Errorf("failed to create trade: %w", err)
	}
	return t, nil
}

// UpdateTrade edits the static fields of an existing trade and
// recomputes its valuation. Only the fields present in the request are
// changed. Closing fields cannot be edited here; CloseTrade owns the
// CLOSED transition.
func (s *TradeService) UpdateTrade(id string, req request.UpdateTradeRequest) (model.Trade, error) {
	t, err := s.tradeRepo.GetTrade(id)
	if err != nil {
		return model.Trade{}, err
	}

	if req.OpenedAt != nil {
		openedAt, err := time.Parse("2006-01-02", *req.OpenedAt)
		if err != nil {
			return model.Trade{}, err
		}
		t.OpenedAt = openedAt.UTC()
	}
	if req.Symbol != nil {
		t.Symbol = *req.Symbol
	}
	if req.ISIN != nil {
		t.ISIN = *req.ISIN
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Currency != nil {
		t.Currency = *req.Currency
	}
	if req.Quantity != nil {
		t.Quantity = *req.Quantity
	}
	if req.EntryPrice != nil {
		t.EntryPrice = *req.EntryPrice
	}
	if req.AvgCostBasis != nil {
		t.AvgCostBasis = *req.AvgCostBasis
	}
	if req.CurrentPrice != nil {
		t.CurrentPrice = *req.CurrentPrice
	}
	if req.OpeningCost != nil {
		t.OpeningCost = *req.OpeningCost
	}
	if req.AnnualHoldingRate != nil {
		t.AnnualHoldingRate = *req.AnnualHoldingRate
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}

	t = s.engine.Compute(t, time.Now().UTC())

	if err := s.tradeRepo.UpdateTrade(t); err != nil {
		return model.Trade{}, fmt.Errorf("failed to update trade: %w", err)
	}
	return t, nil
}

// CloseTrade closes a trade fully or partially.
//
// A full close (quantity zero or equal to the open quantity) flips the
// trade to CLOSED in place. A partial close splits the lot: a new
// CLOSED record is created for the closed quantity and the original
// keeps the remainder. The opening cost is apportioned pro rata, with
// the remainder computed by subtraction so the two parts always sum to
// the original cost exactly. Both writes happen in one transaction.
func (s *TradeService) CloseTrade(id string, req request.CloseTradeRequest) ([]model.Trade, error) {
	t, err := s.tradeRepo.GetTrade(id)
	if err != nil {
		return nil, err
	}
	if !t.IsOpen() {
		return nil, apperrors.ErrTradeClosed
	}

	closeQty := req.Quantity
	if closeQty == 0 {
		closeQty = t.Quantity
	}
	if closeQty < 0 || closeQty > t.Quantity {
		return nil, fmt.Errorf("%w: %v of %v", apperrors.ErrInvalidQuantity, closeQty, t.Quantity)
	}

	now := time.Now().UTC()

	if closeQty == t.Quantity {
		t.Status = model.StatusClosed
		t.ExitPrice = req.ExitPrice
		t.ClosingCost = req.ClosingCost
		t = s.engine.Compute(t, now)

		if err := s.tradeRepo.UpdateTrade(t); err != nil {
			return nil, fmt.Errorf("failed to close trade: %w", err)
		}
		return []model.Trade{t}, nil
	}

	closedCost := t.OpeningCost * closeQty / t.Quantity
	remainderCost := t.OpeningCost - closedCost

	closed := t
	closed.ID = uuid.New().String()
	closed.Status = model.StatusClosed
	closed.Quantity = closeQty
	closed.ExitPrice = req.ExitPrice
	closed.ClosingCost = req.ClosingCost
	closed.OpeningCost = closedCost
	closed.CurrentPrice = 0
	closed.CreatedAt = now
	closed = s.engine.Compute(closed, now)

	remainder := t
	remainder.Quantity = t.Quantity - closeQty
	remainder.OpeningCost = remainderCost
	remainder = s.engine.Compute(remainder, now)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.tradeRepo.InsertTradeTx(tx, closed); err != nil {
		return nil, fmt.Errorf("failed to record closed portion: %w", err)
	}
	if err := s.tradeRepo.UpdateTradeTx(tx, remainder); err != nil {
		return nil, fmt.Errorf("failed to update remaining position: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit partial close: %w", err)
	}

	return []model.Trade{closed, remainder}, nil
}

// DeleteTrade removes a trade by ID.
func (s *TradeService) DeleteTrade(id string) error {
	return s.tradeRepo.DeleteTrade(id)
}

// RefreshResult reports the outcome of a bulk price refresh.
type RefreshResult struct {
	Updated  int      `json:"updated"`
	Failures []string `json:"failures"`
}

// RefreshPrices fetches a current quote for every distinct symbol with
// an open position and persists the refreshed valuations. Lookups run
// in parallel with a bounded worker count; a failed symbol is reported
// in the result and does not stop the rest.
func (s *TradeService) RefreshPrices() (RefreshResult, error) {
	if s.quotes == nil {
		return RefreshResult{}, fmt.Errorf("%w: no quote source configured", apperrors.ErrFailedToRefreshPrices)
	}

	open, err := s.tradeRepo.ListOpenTrades()
	if err != nil {
		return RefreshResult{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRefreshPrices, err)
	}

	type instrument struct {
		symbol string
		isin   string
	}
	seen := map[string]instrument{}
	for _, t := range open {
		if _, ok := seen[t.Symbol]; !ok {
			seen[t.Symbol] = instrument{symbol: t.Symbol, isin: t.ISIN}
		}
	}

	var mu sync.Mutex
	prices := map[string]float64{}
	var failures []string

	var g errgroup.Group
	g.SetLimit(maxConcurrentQuoteFetches)
	for _, inst := range seen {
		inst := inst
		g.Go(func() error {
			price, err := s.quotes.Price(inst.symbol, inst.isin)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, fmt.Sprintf("%s: %v", inst.symbol, err))
				return nil
			}
			prices[inst.symbol] = price
			return nil
		})
	}
	_ = g.Wait()

	now := time.Now().UTC()
	updated := 0
	for _, t := range open {
		price, ok := prices[t.Symbol]
		if !ok {
			continue
		}
		t.CurrentPrice = price
		t = s.engine.Compute(t, now)
		if err := s.tradeRepo.UpdateTrade(t); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", t.Symbol, err))
			continue
		}
		updated++
	}
	sort.Strings(failures)

	return RefreshResult{Updated: updated, Failures: failures}, nil
}
