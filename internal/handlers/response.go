package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform envelope for every endpoint.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`

	// Human-readable status message
	Message string `json:"message,omitempty"`

	// Endpoint-specific payload
	Data any `json:"data,omitempty"`

	// Number of items in data, for list responses
	Count *int `json:"count,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

func writeList(w http.ResponseWriter, message string, data any, count int) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data, Count: &count})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}
