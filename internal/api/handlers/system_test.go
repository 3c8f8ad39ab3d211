package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antigravity/Trading-Journal-Backend/internal/api/handlers"
	"github.com/antigravity/Trading-Journal-Backend/internal/service"
	"github.com/antigravity/Trading-Journal-Backend/internal/testutil"
)

// TestSystemHandler_Health tests the health endpoint against a live and
// a closed database.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy database returns 200", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200", rec.Code)
		}

		var health handlers.HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if health.Status != "healthy" || health.Database != "connected" {
			t.Errorf("Health = %+v, want healthy/connected", health)
		}
	})

	t.Run("closed database returns 503", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		db.Close()
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Status = %d, want 503", rec.Code)
		}
	})
}

// TestSystemHandler_Version tests the version endpoint.
func TestSystemHandler_Version(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewSystemHandler(service.NewSystemService(db))

	req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
	rec := httptest.NewRecorder()

	handler.Version(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var version handlers.VersionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &version); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if version.AppVersion == "" {
		t.Error("AppVersion is empty")
	}
}
