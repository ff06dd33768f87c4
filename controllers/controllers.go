package controllers

import (
	"encoding/json"
	"net/http"
)

// writeError sends a client-facing error message as the standard
// {"error": "..."} body.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
