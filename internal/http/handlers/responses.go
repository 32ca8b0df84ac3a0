package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondJSON writes a bare JSON payload. Endpoints with a fixed body shape
// (accept, admin status) use this; everything else goes through the respond
// package envelope.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respondJSON: %v", err)
	}
}
