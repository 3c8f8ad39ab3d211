package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/model"
	"github.com/antigravity/Trading-Journal-Backend/internal/repository"
	"github.com/antigravity/Trading-Journal-Backend/internal/valuation"
)

// TradeBuilder provides a fluent interface for creating test trades.
// Derived fields are computed through the real valuation engine before
// the row is written, so the stored trade is internally consistent.
//
// Example usage:
//
//	// Simple open trade with defaults
//	trade := testutil.NewTrade().Build(t, db)
//
//	// Customized closed trade
//	trade := testutil.NewTrade().
//	    WithSymbol("MSFT").
//	    WithQuantity(5).
//	    ClosedAt(110.0).
//	    Build(t, db)
type TradeBuilder struct {
	trade model.Trade
	now   time.Time
}

// NewTrade creates a TradeBuilder with sensible defaults: an open
// position of 10 units at 100.0 opened 30 days ago.
func NewTrade() *TradeBuilder {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &TradeBuilder{
		now: now,
		trade: model.Trade{
			ID:                MakeID(),
			OpenedAt:          now.AddDate(0, 0, -30),
			Symbol:            "AAPL",
			Category:          model.CategoryEquity,
			Currency:          "EUR",
			Status:            model.StatusOpen,
			Quantity:          10,
			EntryPrice:        100.0,
			OpeningCost:       5.0,
			AnnualHoldingRate: 0.20,
			CreatedAt:         now,
		},
	}
}

// WithID sets a custom ID.
func (b *TradeBuilder) WithID(id string) *TradeBuilder {
	b.trade.ID = id
	return b
}

// WithSymbol sets a custom ticker symbol.
func (b *TradeBuilder) WithSymbol(symbol string) *TradeBuilder {
	b.trade.Symbol = symbol
	return b
}

// WithISIN sets a custom ISIN.
func (b *TradeBuilder) WithISIN(isin string) *TradeBuilder {
	b.trade.ISIN = isin
	return b
}

// WithCategory sets a custom instrument category.
func (b *TradeBuilder) WithCategory(category string) *TradeBuilder {
	b.trade.Category = category
	return b
}

// WithCurrency sets a custom currency.
func (b *TradeBuilder) WithCurrency(currency string) *TradeBuilder {
	b.trade.Currency = currency
	return b
}

// WithQuantity sets a custom quantity.
func (b *TradeBuilder) WithQuantity(quantity float64) *TradeBuilder {
	b.trade.Quantity = quantity
	return b
}

// WithEntryPrice sets a custom entry price.
func (b *TradeBuilder) WithEntryPrice(price float64) *TradeBuilder {
	b.trade.EntryPrice = price
	return b
}

// WithAvgCostBasis sets an explicit average cost basis.
func (b *TradeBuilder) WithAvgCostBasis(basis float64) *TradeBuilder {
	b.trade.AvgCostBasis = basis
	return b
}

// WithCurrentPrice sets the current market price.
func (b *TradeBuilder) WithCurrentPrice(price float64) *TradeBuilder {
	b.trade.CurrentPrice = price
	return b
}

// WithOpeningCost sets the broker commission paid at opening.
func (b *TradeBuilder) WithOpeningCost(cost float64) *TradeBuilder {
	b.trade.OpeningCost = cost
	return b
}

// WithOpenedAt sets the opening date.
func (b *TradeBuilder) WithOpenedAt(openedAt time.Time) *TradeBuilder {
	b.trade.OpenedAt = openedAt
	return b
}

// WithNotes sets free-form notes.
func (b *TradeBuilder) WithNotes(notes string) *TradeBuilder {
	b.trade.Notes = notes
	return b
}

// ClosedAt marks the trade CLOSED at the given exit price.
func (b *TradeBuilder) ClosedAt(exitPrice float64) *TradeBuilder {
	b.trade.Status = model.StatusClosed
	b.trade.ExitPrice = exitPrice
	return b
}

// WithClosingCost sets the broker commission paid at closing.
func (b *TradeBuilder) WithClosingCost(cost float64) *TradeBuilder {
	b.trade.ClosingCost = cost
	return b
}

// AsOf sets the valuation reference time used when computing derived fields.
func (b *TradeBuilder) AsOf(now time.Time) *TradeBuilder {
	b.now = now
	return b
}

// Trade returns the trade with derived fields computed, without
// persisting it. Useful for pure analytics tests.
func (b *TradeBuilder) Trade() model.Trade {
	engine := valuation.NewEngine(valuation.DefaultParams())
	return engine.Compute(b.trade, b.now)
}

// Build computes derived fields, persists the trade, and returns it.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	trade := b.Trade()

	repo := repository.NewTradeRepository(db)
	if err := repo.InsertTrade(trade); err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	return trade
}

// Convenience functions

// CreateTrade creates an open trade with the given symbol and default values.
//
// Example usage:
//
//	trade := testutil.CreateTrade(t, db, "MSFT")
func CreateTrade(t *testing.T, db *sql.DB, symbol string) model.Trade {
	t.Helper()
	return NewTrade().WithSymbol(symbol).Build(t, db)
}

// CreateClosedTrade creates a closed trade with the given symbol and exit price.
func CreateClosedTrade(t *testing.T, db *sql.DB, symbol string, exitPrice float64) model.Trade {
	t.Helper()
	return NewTrade().WithSymbol(symbol).ClosedAt(exitPrice).Build(t, db)
}
