// Package response centralizes how handlers write HTTP responses, so
// every endpoint returns the same JSON envelope and error shape.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body returned by every failing endpoint.
// Details carries optional context, such as per-field validation
// messages, and is omitted when empty.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil
// data writes the status line only, which is what 204 responses need.
// The status line is already gone by the time encoding can fail, so an
// encoding error is logged rather than returned.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes an ErrorResponse with the given status code.
// message is the short, stable description; details may hold an
// underlying error string or a field map, or be nil.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	response := ErrorResponse{
		Error:   message,
		Details: details,
	}
	RespondJSON(w, status, response)
}
