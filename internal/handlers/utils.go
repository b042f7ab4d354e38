package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const validationMessage = "Please correct the highlighted fields."

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse lists the invalid request fields.
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// MessageResponse carries a human-readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeValidationError(w http.ResponseWriter, errs []FieldError) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Message: validationMessage,
		Errors:  errs,
	})
}

// writeInternalError logs the underlying failure with detail and
// returns an opaque message to the caller. Raw internal error text is
// never sent to clients.
func writeInternalError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error("request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "Something went wrong")
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
