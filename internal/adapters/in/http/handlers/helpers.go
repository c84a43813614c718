// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"net/http"

	"campusink/internal/domain/common"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// writeError maps the error taxonomy to its HTTP status; untyped errors
// answer 500 with a generic message so collaborator internals never leak.
func writeError(w http.ResponseWriter, err error) {
	status := common.StatusOf(err)
	msg := "internal error"
	if ae, ok := common.AsAppError(err); ok {
		msg = ae.Message
	}
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"success": false, "error": "method_not_allowed"})
}
