package testutil

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/antigravity/Trading-Journal-Backend/internal/quote"
	"github.com/antigravity/Trading-Journal-Backend/internal/repository"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
	"github.com/antigravity/Trading-Journal-Backend/internal/valuation"
)

// MakeID returns a fresh UUID string.
func MakeID() string {
	return uuid.New().String()
}

// StubQuoteSource is a quote.Source backed by a fixed symbol->price map.
// Symbols not in the map return an error, like a provider miss. Safe
// for concurrent use; bulk refreshes fetch in parallel.
type StubQuoteSource struct {
	Prices map[string]float64

	mu    sync.Mutex
	calls int
}

// Price implements quote.Source.
func (s *StubQuoteSource) Price(symbol, _ string) (float64, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	price, ok := s.Prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no quote for %s", symbol)
	}
	return price, nil
}

// CallCount returns how many times Price was invoked.
func (s *StubQuoteSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var _ quote.Source = (*StubQuoteSource)(nil)

// NewTestTradeService wires a TradeService over the test database with
// the default valuation parameters and the given quote source (nil for
// no quotes).
func NewTestTradeService(t *testing.T, db *sql.DB, quotes quote.Source) *service.TradeService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)
	engine := valuation.NewEngine(valuation.DefaultParams())

	return service.NewTradeService(db, tradeRepo, engine, quotes)
}

// NewTestPortfolioService wires a PortfolioService over the test database.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	engine := valuation.NewEngine(valuation.DefaultParams())

	return service.NewPortfolioService(tradeRepo, settingsRepo, engine)
}

// NewTestSettingsService wires a SettingsService over the test database.
// fernetKey may be empty to store secrets in plaintext.
func NewTestSettingsService(t *testing.T, db *sql.DB, fernetKey, envAPIKey string) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)
	svc, err := service.NewSettingsService(settingsRepo, fernetKey, envAPIKey)
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return svc
}
