// Package response provides small helpers for writing JSON API responses
// with a consistent envelope structure, and the pagination header contract
// shared by every read endpoint.
package response

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Pagination metadata headers attached to every read response,
// including empty ones.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderPageSize   = "X-Page-Size"
	HeaderPage       = "X-Page"
)

// JSONResponse is the common response envelope for all API endpoints.
type JSONResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorBody holds details about an API error.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON writes a successful JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	resp := JSONResponse{
		Success:   true,
		Data:      payload,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	writeJSON(w, status, resp)
}

// RespondError writes an error JSON response with the given status code and message.
func RespondError(w http.ResponseWriter, status int, msg string) {
	resp := JSONResponse{
		Success: false,
		Error: &ErrorBody{
			Code:    status,
			Message: msg,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	writeJSON(w, status, resp)
}

// RespondPage writes a read result with pagination metadata headers.
// An empty page yields 204 No Content with the headers still attached,
// so callers can always tell the total apart from the page contents.
func RespondPage(w http.ResponseWriter, payload MessagesPagePayload) {
	w.Header().Set(HeaderTotalCount, strconv.FormatInt(payload.Total, 10))
	w.Header().Set(HeaderPageSize, strconv.Itoa(payload.PageSize))
	w.Header().Set(HeaderPage, strconv.Itoa(payload.Page))

	if len(payload.Items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	RespondJSON(w, http.StatusOK, payload)
}

// writeJSON encodes v as JSON and writes it to the response writer.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
