package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
	"github.com/antigravity/Trading-Journal-Backend/internal/api/response"
	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
	"github.com/antigravity/Trading-Journal-Backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the tradeService.
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// AllTrades handles GET requests to retrieve the full trade ledger.
// Open positions are revalued at the current time before rendering.
//
// Endpoint: GET /api/trade
// Response: 200 OK with array of Trade
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) AllTrades(w http.ResponseWriter, _ *http.Request) {
	trades, err := h.tradeService.GetTrades()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// GetTrade handles GET requests to retrieve a single trade by ID.
//
// Endpoint: GET /api/trade/{uuid}
// Response: 200 OK with Trade
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	trade, err := h.tradeService.GetTrade(tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// CreateTrade handles POST requests to open a new trade.
// Validates the request body and creates a trade record with computed
// valuation fields.
//
// Endpoint: POST /api/trade
// Request Body: CreateTradeRequest
// Response: 201 Created with Trade
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// UpdateTrade handles PUT requests to edit a trade's static fields.
// All fields are optional; derived fields are recomputed after the edit.
//
// Endpoint: PUT /api/trade/{uuid}
// Request Body: UpdateTradeRequest (all fields optional)
// Response: 200 OK with updated Trade
// Error: 400 Bad Request if trade ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if update fails
func (h *TradeHandler) UpdateTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.UpdateTrade(tradeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// CloseTrade handles POST requests to close a trade, fully or in part.
// A partial close splits the lot and returns both resulting records.
//
// Endpoint: POST /api/trade/{uuid}/close
// Request Body: CloseTradeRequest (exitPrice, quantity, closingCost)
// Response: 200 OK with array of affected Trades (1 for full close, 2 for partial)
// Error: 400 Bad Request if trade ID is invalid, validation fails, or the trade is already closed
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if the close fails
func (h *TradeHandler) CloseTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CloseTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCloseTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trades, err := h.tradeService.CloseTrade(tradeID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTradeNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrTradeClosed):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrTradeClosed.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidQuantity):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuantity.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to close trade", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// DeleteTrade handles DELETE requests to remove a trade.
//
// Endpoint: DELETE /api/trade/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if deletion fails
func (h *TradeHandler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	err := h.tradeService.DeleteTrade(tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// RefreshPrices handles POST requests to refresh quotes for all open positions.
// Failed symbols are reported in the result without failing the request.
//
// Endpoint: POST /api/trade/refresh-prices
// Response: 200 OK with RefreshResult (updated count plus per-symbol failures)
// Error: 500 Internal Server Error if the refresh cannot run at all
func (h *TradeHandler) RefreshPrices(w http.ResponseWriter, _ *http.Request) {
	result, err := h.tradeService.RefreshPrices()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshPrices.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
