package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// apiError is the wire shape for JSON API failures.
type apiError struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON encodes v with the given status. Encode failures can only be
// logged; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError sends the JSON error envelope, carrying the request id so a
// client report can be matched to the server log.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, apiError{Error: message, Code: code, RequestID: requestID(r.Context())})
}
