package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/api"
	"github.com/antigravity/Trading-Journal-Backend/internal/config"
	"github.com/antigravity/Trading-Journal-Backend/internal/database"
	"github.com/antigravity/Trading-Journal-Backend/internal/quote"
	"github.com/antigravity/Trading-Journal-Backend/internal/repository"
	"github.com/antigravity/Trading-Journal-Backend/internal/scheduler"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
	"github.com/antigravity/Trading-Journal-Backend/internal/valuation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	tradeRepo := repository.NewTradeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	engine := valuation.NewEngine(valuation.Params{
		TaxRate:                  cfg.Valuation.TaxRate,
		DefaultAnnualHoldingRate: cfg.Valuation.DefaultAnnualHoldingRate,
	})

	systemService := service.NewSystemService(db)
	settingsService, err := service.NewSettingsService(settingsRepo, cfg.Security.FernetKey, cfg.Pricing.AlphaVantageKey)
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}

	quotes := quote.NewChain(
		quote.NewYahooClient(),
		quote.NewAlphaVantageClient(settingsService.APIKey),
	)

	tradeService := service.NewTradeService(db, tradeRepo, engine, quotes)
	portfolioService := service.NewPortfolioService(tradeRepo, settingsRepo, engine)
	scenarioService := service.NewScenarioService(engine)

	// Create scheduler for periodic price refreshes
	priceScheduler := scheduler.New(cfg.Scheduler.PriceRefreshCron, func() (int, []string, error) {
		result, err := tradeService.RefreshPrices()
		return result.Updated, result.Failures, err
	})
	if err := priceScheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer priceScheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Trade:     tradeService,
		Portfolio: portfolioService,
		Settings:  settingsService,
		Scenario:  scenarioService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
