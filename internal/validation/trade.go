package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
	"github.com/antigravity/Trading-Journal-Backend/internal/model"
)

// ValidCategory contains the allowed instrument category values.
var ValidCategory = map[string]bool{
	model.CategoryEquity:      true,
	model.CategoryCertificate: true,
	model.CategoryFund:        true,
	model.CategoryBond:        true,
	model.CategoryCrypto:      true,
	model.CategoryOther:       true,
}

// ValidateCreateTrade validates a trade creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - openedAt: Must be in YYYY-MM-DD format
//   - symbol: Must be non-empty
//   - category: Must be one of: equity, certificate, fund, bond, crypto, other
//   - currency: Must be non-empty
//   - quantity: Must be positive
//   - entryPrice: Must be positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.OpenedAt) == "" {
		errors["openedAt"] = "openedAt is required"
	} else if _, err := time.Parse("2006-01-02", req.OpenedAt); err != nil {
		errors["openedAt"] = err.Error()
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	} else if !ValidCategory[req.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}

	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.EntryPrice <= 0.0 {
		errors["entryPrice"] = "entryPrice must be positive"
	}

	if req.AvgCostBasis < 0.0 {
		errors["avgCostBasis"] = "avgCostBasis cannot be negative"
	}
	if req.CurrentPrice < 0.0 {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}
	if req.OpeningCost < 0.0 {
		errors["openingCost"] = "openingCost cannot be negative"
	}
	if req.AnnualHoldingRate < 0.0 {
		errors["annualHoldingRate"] = "annualHoldingRate cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTrade validates a trade update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateTrade(req request.UpdateTradeRequest) error {
	errors := make(map[string]string)

	if req.OpenedAt != nil {
		if strings.TrimSpace(*req.OpenedAt) == "" {
			errors["openedAt"] = "openedAt is required"
		} else if _, err := time.Parse("2006-01-02", *req.OpenedAt); err != nil {
			errors["openedAt"] = err.Error()
		}
	}
	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			errors["category"] = "category is required"
		} else if !ValidCategory[*req.Category] {
			errors["category"] = fmt.Sprintf("invalid category: %s", *req.Category)
		}
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) == "" {
		errors["currency"] = "currency is required"
	}
	if req.Quantity != nil && *req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}
	if req.EntryPrice != nil && *req.EntryPrice <= 0.0 {
		errors["entryPrice"] = "entryPrice must be positive"
	}
	if req.AvgCostBasis != nil && *req.AvgCostBasis < 0.0 {
		errors["avgCostBasis"] = "avgCostBasis cannot be negative"
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0.0 {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}
	if req.OpeningCost != nil && *req.OpeningCost < 0.0 {
		errors["openingCost"] = "openingCost cannot be negative"
	}
	if req.AnnualHoldingRate != nil && *req.AnnualHoldingRate < 0.0 {
		errors["annualHoldingRate"] = "annualHoldingRate cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCloseTrade validates a trade close request.
// Quantity zero means "close the whole position" and is allowed; the
// service rejects quantities above what is actually open.
func ValidateCloseTrade(req request.CloseTradeRequest) error {
	errors := make(map[string]string)

	if req.ExitPrice <= 0.0 {
		errors["exitPrice"] = "exitPrice must be positive"
	}
	if req.Quantity < 0.0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.ClosingCost < 0.0 {
		errors["closingCost"] = "closingCost cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
