package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body. The error string is a stable part
// of the API contract; clients match on it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendError sends a JSON error response
func SendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// SendJSON sends a successful JSON response
func SendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
