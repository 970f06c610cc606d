package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// maxJSONBody caps JSON request bodies at 1MB.
const maxJSONBody = 1 << 20

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a single-message JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeErrors sends the full list of field errors at once.
func writeErrors(w http.ResponseWriter, status int, errs []FieldError) {
	writeJSON(w, status, map[string]any{"errors": errs})
}

// readJSON decodes the request body into the given destination.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return json.NewDecoder(r.Body).Decode(dst)
}
