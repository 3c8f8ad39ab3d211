package validation

import (
	"strings"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
)

// ValidateUpdateBalance validates an initial-balance update request.
// A zero balance is allowed; it simply anchors the equity curve at zero.
func ValidateUpdateBalance(req request.UpdateBalanceRequest) error {
	errors := make(map[string]string)

	if req.InitialBalance < 0.0 {
		errors["initialBalance"] = "initialBalance cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAPIKey validates an API key update request.
func ValidateUpdateAPIKey(req request.UpdateAPIKeyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.APIKey) == "" {
		errors["apiKey"] = "apiKey is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
