package handlers

import (
	"net/http"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/response"
	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio-level reports.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Overview handles GET requests for the full dashboard payload:
// headline totals, tax wallet, performance windows, risk report,
// allocation breakdowns and monthly realized P/L.
//
// Endpoint: GET /api/portfolio/overview
// Response: 200 OK with Overview
// Error: 500 Internal Server Error if the ledger cannot be loaded
func (h *PortfolioHandler) Overview(w http.ResponseWriter, _ *http.Request) {
	overview, err := h.portfolioService.GetOverview(time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetOverview.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}

// TaxWallet handles GET requests for the realized gains/losses summary.
//
// Endpoint: GET /api/portfolio/tax-wallet
// Response: 200 OK with TaxWallet
// Error: 500 Internal Server Error if the ledger cannot be loaded
func (h *PortfolioHandler) TaxWallet(w http.ResponseWriter, _ *http.Request) {
	wallet, err := h.portfolioService.GetTaxWallet(time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetOverview.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, wallet)
}

// Performance handles GET requests for the period-windowed returns.
//
// Endpoint: GET /api/portfolio/performance
// Response: 200 OK with Performance
// Error: 500 Internal Server Error if the ledger cannot be loaded
func (h *PortfolioHandler) Performance(w http.ResponseWriter, _ *http.Request) {
	performance, err := h.portfolioService.GetPerformance(time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetOverview.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, performance)
}

// Risk handles GET requests for the risk report and equity curve.
//
// Endpoint: GET /api/portfolio/risk
// Response: 200 OK with RiskReport
// Error: 500 Internal Server Error if the ledger cannot be loaded
func (h *PortfolioHandler) Risk(w http.ResponseWriter, _ *http.Request) {
	risk, err := h.portfolioService.GetRisk(time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetOverview.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, risk)
}

// Allocation handles GET requests for the current-value breakdowns.
//
// Endpoint: GET /api/portfolio/allocation
// Response: 200 OK with Allocation
// Error: 500 Internal Server Error if the ledger cannot be loaded
func (h *PortfolioHandler) Allocation(w http.ResponseWriter, _ *http.Request) {
	allocation, err := h.portfolioService.GetAllocation(time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetOverview.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, allocation)
}
