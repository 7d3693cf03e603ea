package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"docrag/internal/contextutil"
	"docrag/internal/llm"
	"docrag/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	if errors.Is(err, service.ErrExternalService) || errors.Is(err, llm.ErrServiceUnavailable) {
		writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}
