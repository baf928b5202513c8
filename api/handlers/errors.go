// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP status codes and messages

package handlers

import (
	"encoding/json"
	"net/http"

	"vidextract-api/api/dto/responses"
	coreerrors "vidextract-api/core/errors"
)

// statusForError maps a domain error to an HTTP status code.
func statusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case coreerrors.IsInvalidInput(err):
		return http.StatusBadRequest
	case coreerrors.IsUnresolvedIdentifier(err):
		return http.StatusUnprocessableEntity
	case coreerrors.IsNoOp(err):
		return http.StatusUnprocessableEntity
	case coreerrors.IsParse(err):
		return http.StatusBadGateway
	case coreerrors.IsFetch(err):
		return http.StatusBadGateway
	}
	if code, ok := coreerrors.IsHTTPStatus(err); ok {
		if code == http.StatusTooManyRequests {
			return http.StatusTooManyRequests
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeError writes a JSON error response with the user-facing message.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusForError(err))
	json.NewEncoder(w).Encode(responses.MetadataResponse{
		Success: false,
		Error:   coreerrors.UserMessage(err),
	})
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
