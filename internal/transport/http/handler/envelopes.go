package handler

import (
	"encoding/json"
	"net/http"
)

// DataEnvelope is the response wrapper: `{data, success}` on success,
// `{message, success:false}` on failure.
type DataEnvelope struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Success bool        `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, DataEnvelope{Data: data, Success: true})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, DataEnvelope{Message: msg, Success: false})
}
