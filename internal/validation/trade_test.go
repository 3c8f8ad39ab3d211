package validation_test

import (
	"errors"
	"testing"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/request"
	"github.com/antigravity/Trading-Journal-Backend/internal/validation"
)

func validCreateRequest() request.CreateTradeRequest {
	return request.CreateTradeRequest{
		OpenedAt:   "2025-05-01",
		Symbol:     "AAPL",
		Category:   "equity",
		Currency:   "EUR",
		Quantity:   10,
		EntryPrice: 100,
	}
}

// TestValidateCreateTrade tests the create-request field rules.
func TestValidateCreateTrade(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		if err := validation.ValidateCreateTrade(validCreateRequest()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*request.CreateTradeRequest)
		field  string
	}{
		{"missing openedAt", func(r *request.CreateTradeRequest) { r.OpenedAt = "" }, "openedAt"},
		{"bad date format", func(r *request.CreateTradeRequest) { r.OpenedAt = "01/05/2025" }, "openedAt"},
		{"missing symbol", func(r *request.CreateTradeRequest) { r.Symbol = " " }, "symbol"},
		{"unknown category", func(r *request.CreateTradeRequest) { r.Category = "derivative" }, "category"},
		{"missing currency", func(r *request.CreateTradeRequest) { r.Currency = "" }, "currency"},
		{"zero quantity", func(r *request.CreateTradeRequest) { r.Quantity = 0 }, "quantity"},
		{"negative entry price", func(r *request.CreateTradeRequest) { r.EntryPrice = -1 }, "entryPrice"},
		{"negative opening cost", func(r *request.CreateTradeRequest) { r.OpeningCost = -1 }, "openingCost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := validation.ValidateCreateTrade(req)
			if err == nil {
				t.Fatal("Expected validation error")
			}

			var vErr *validation.Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.field]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.field, vErr.Fields)
			}
		})
	}
}

// TestValidateUpdateTrade tests that optional fields are only validated
// when present.
func TestValidateUpdateTrade(t *testing.T) {
	t.Run("empty update passes", func(t *testing.T) {
		if err := validation.ValidateUpdateTrade(request.UpdateTradeRequest{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("provided field is validated", func(t *testing.T) {
		bad := -1.0
		err := validation.ValidateUpdateTrade(request.UpdateTradeRequest{Quantity: &bad})
		if err == nil {
			t.Error("Expected validation error for negative quantity")
		}
	})
}

// TestValidateCloseTrade tests the close-request rules, including the
// zero-quantity full-close convention.
func TestValidateCloseTrade(t *testing.T) {
	t.Run("zero quantity means full close and passes", func(t *testing.T) {
		err := validation.ValidateCloseTrade(request.CloseTradeRequest{ExitPrice: 100})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("missing exit price fails", func(t *testing.T) {
		err := validation.ValidateCloseTrade(request.CloseTradeRequest{})
		if err == nil {
			t.Error("Expected validation error for missing exit price")
		}
	})

	t.Run("negative quantity fails", func(t *testing.T) {
		err := validation.ValidateCloseTrade(request.CloseTradeRequest{ExitPrice: 100, Quantity: -1})
		if err == nil {
			t.Error("Expected validation error for negative quantity")
		}
	})
}
