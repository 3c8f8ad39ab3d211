package handlers

import (
	"net/http"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
	"github.com/antigravity/Trading-Journal-Backend/internal/api/response"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
	"github.com/antigravity/Trading-Journal-Backend/internal/validation"
)

// CalculatorHandler handles HTTP requests for the take-profit /
// stop-loss scenario calculator.
type CalculatorHandler struct {
	scenarioService *service.ScenarioService
}

// NewCalculatorHandler creates a new CalculatorHandler with the provided service dependency.
func NewCalculatorHandler(scenarioService *service.ScenarioService) *CalculatorHandler {
	return &CalculatorHandler{
		scenarioService: scenarioService,
	}
}

// Scenarios handles POST requests to evaluate a hypothetical position
// across a range of exit prices.
//
// Endpoint: POST /api/calculator/scenarios
// Request Body: ScenarioRequest
// Response: 200 OK with array of ScenarioRow
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *CalculatorHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ScenarioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateScenario(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	rows := h.scenarioService.Scenarios(req)
	response.RespondJSON(w, http.StatusOK, rows)
}
