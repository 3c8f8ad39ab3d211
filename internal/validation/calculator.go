package validation

import (
	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
)

// ValidateScenario validates a take-profit / stop-loss scenario request.
//
// Required fields:
//   - quantity: Must be positive
//   - buyPrice: Must be positive
//   - minPrice, maxPrice: Must be positive with minPrice <= maxPrice
//   - step: Must be positive
func ValidateScenario(req request.ScenarioRequest) error {
	errors := make(map[string]string)

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}
	if req.BuyPrice <= 0.0 {
		errors["buyPrice"] = "buyPrice must be positive"
	}
	if req.MinPrice <= 0.0 {
		errors["minPrice"] = "minPrice must be positive"
	}
	if req.MaxPrice <= 0.0 {
		errors["maxPrice"] = "maxPrice must be positive"
	} else if req.MaxPrice < req.MinPrice {
		errors["maxPrice"] = "maxPrice must be greater than or equal to minPrice"
	}
	if req.Step <= 0.0 {
		errors["step"] = "step must be positive"
	}
	if req.OpeningCost < 0.0 {
		errors["openingCost"] = "openingCost cannot be negative"
	}
	if req.ClosingCost < 0.0 {
		errors["closingCost"] = "closingCost cannot be negative"
	}
	if req.DaysHeld < 0 {
		errors["daysHeld"] = "daysHeld cannot be negative"
	}
	if req.AnnualHoldingRate < 0.0 {
		errors["annualHoldingRate"] = "annualHoldingRate cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
