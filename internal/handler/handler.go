// internal/handler/handler.go
package handler

import (
	"encoding/json"
	"net/http"
)

// userID pulls the authenticated user from the X-User-ID header. The real
// deployment sits behind an auth proxy that sets it; an empty value is
// rejected before any row is touched.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
