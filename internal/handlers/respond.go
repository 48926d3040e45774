package handlers

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response shape shared by every endpoint.
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondOK(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, Envelope{Status: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Envelope{Status: false, Message: message})
}
