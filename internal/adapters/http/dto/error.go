// Package dto defines the wire representations of the HTTP API: health
// endpoint response bodies and RFC 9457 Problem Details error responses.
package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse with the given status.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, status int, err error) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
}

// WriteErrorResponse writes an RFC 9457 500 error response. It sets the
// Content-Type to application/problem+json, writes the status code, and
// marshals the error body as JSON. The error detail is the caller's message;
// internal error values must be sanitized before reaching this function.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, http.StatusInternalServerError, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}
