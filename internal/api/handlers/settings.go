package handlers

import (
	"net/http"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
	"github.com/antigravity/Trading-Journal-Backend/internal/api/response"
	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
	"github.com/antigravity/Trading-Journal-Backend/internal/validation"
)

// SettingsHandler handles HTTP requests for portfolio settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// BalanceResponse represents the initial balance payload.
type BalanceResponse struct {
	InitialBalance float64 `json:"initialBalance"`
}

// GetBalance handles GET requests for the initial cash balance.
//
// Endpoint: GET /api/settings/balance
// Response: 200 OK with BalanceResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) GetBalance(w http.ResponseWriter, _ *http.Request) {
	balance, err := h.settingsService.GetInitialBalance()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, BalanceResponse{InitialBalance: balance})
}

// UpdateBalance handles PUT requests to set the initial cash balance.
//
// Endpoint: PUT /api/settings/balance
// Request Body: UpdateBalanceRequest
// Response: 200 OK with BalanceResponse
// Error: 400 Bad Request if validation fails
// Error: 500 Internal Server Error if the update fails
func (h *SettingsHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateBalanceRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateBalance(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.settingsService.SetInitialBalance(req.InitialBalance); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update balance", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, BalanceResponse{InitialBalance: req.InitialBalance})
}

// APIKeyResponse reports whether a key is stored, without revealing it.
type APIKeyResponse struct {
	Configured bool `json:"configured"`
}

// GetAPIKey handles GET requests for the API key status.
//
// Endpoint: GET /api/settings/api-key
// Response: 200 OK with APIKeyResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) GetAPIKey(w http.ResponseWriter, _ *http.Request) {
	configured, err := h.settingsService.HasStoredAPIKey()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, APIKeyResponse{Configured: configured})
}

// UpdateAPIKey handles PUT requests to store the AlphaVantage API key.
// The key is encrypted at rest when a fernet key is configured.
//
// Endpoint: PUT /api/settings/api-key
// Request Body: UpdateAPIKeyRequest
// Response: 200 OK with APIKeyResponse
// Error: 400 Bad Request if validation fails
// Error: 500 Internal Server Error if the update fails
func (h *SettingsHandler) UpdateAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAPIKey(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.settingsService.SetAPIKey(req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, APIKeyResponse{Configured: true})
}
