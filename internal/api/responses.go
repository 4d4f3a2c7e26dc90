package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	app_errors "weekwise/backend/internal/errors"
	"weekwise/backend/internal/i18n"
)

// This file contains the shared DTOs for API responses and the helpers that
// keep error responses consistent across handlers.

// ErrorResponse is the standard JSON error body. Error carries the localized
// user-facing message, ErrorType the taxonomy category, and Details the raw
// underlying error string for diagnostics.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorType string `json:"errorType"`
	Details   string `json:"details,omitempty"`
}

// respondWithError classifies err, picks the HTTP status for its taxonomy
// type, and writes a localized error body. Anything unclassifiable falls into
// the unknown category and a 500.
func respondWithError(w http.ResponseWriter, lang i18n.Language, err error) {
	classified := app_errors.Classify(err)
	status := classified.Kind.HTTPStatus()
	message := i18n.T(classified.Kind.MessageKey(), lang)

	var details string
	if cause := classified.Unwrap(); cause != nil {
		details = cause.Error()
	}

	slog.Warn("Responding with error",
		"status_code", status,
		"error_type", classified.Kind,
		"internal_error", err,
	)

	respondWithJSON(w, status, ErrorResponse{
		Error:     message,
		ErrorType: string(classified.Kind),
		Details:   details,
	})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g. trying to
		// marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
