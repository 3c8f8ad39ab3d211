package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/handlers"
	custommiddleware "github.com/antigravity/Trading-Journal-Backend/internal/api/middleware"
	"github.com/antigravity/Trading-Journal-Backend/internal/config"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
)

// Services bundles the service dependencies the router needs.
type Services struct {
	System    *service.SystemService
	Trade     *service.TradeService
	Portfolio *service.PortfolioService
	Settings  *service.SettingsService
	Scenario  *service.ScenarioService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/trade", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(svc.Trade)
			r.Get("/", tradeHandler.AllTrades)
			r.Post("/", tradeHandler.CreateTrade)
			r.Post("/refresh-prices", tradeHandler.RefreshPrices)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", tradeHandler.GetTrade)
				r.Put("/", tradeHandler.UpdateTrade)
				r.Delete("/", tradeHandler.DeleteTrade)
				r.Post("/close", tradeHandler.CloseTrade)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			r.Get("/overview", portfolioHandler.Overview)
			r.Get("/tax-wallet", portfolioHandler.TaxWallet)
			r.Get("/performance", portfolioHandler.Performance)
			r.Get("/risk", portfolioHandler.Risk)
			r.Get("/allocation", portfolioHandler.Allocation)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svc.Settings)
			r.Get("/balance", settingsHandler.GetBalance)
			r.Put("/balance", settingsHandler.UpdateBalance)
			r.Get("/api-key", settingsHandler.GetAPIKey)
			r.Put("/api-key", settingsHandler.UpdateAPIKey)
		})

		r.Route("/calculator", func(r chi.Router) {
			calculatorHandler := handlers.NewCalculatorHandler(svc.Scenario)
			r.Post("/scenarios", calculatorHandler.Scenarios)
		})
	})

	return r
}
