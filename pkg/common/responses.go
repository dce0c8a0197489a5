package common

import (
	"encoding/json"
	"net/http"
)

// ItemResponse wraps a single created or updated entity
type ItemResponse struct {
	Item interface{} `json:"item"`
}

// DataResponse wraps a query result payload
type DataResponse struct {
	Data interface{} `json:"data"`
}

// MessageResponse carries a human-readable status message
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondItem sends a single entity under the "item" key
func RespondItem(w http.ResponseWriter, status int, item interface{}) {
	RespondJSON(w, status, ItemResponse{Item: item})
}

// RespondData sends a query payload under the "data" key
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, DataResponse{Data: data})
}

// RespondError sends an error message response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, MessageResponse{Message: message})
}
