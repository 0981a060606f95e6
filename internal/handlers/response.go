package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire format for all error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Send a standardized JSON error response
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
