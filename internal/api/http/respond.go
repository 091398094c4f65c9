package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	var (
		validationErr   *apperr.ValidationError
		notFoundErr     *apperr.NotFoundError
		conflictErr     *apperr.ConflictError
		insufficientErr *apperr.InsufficientInventoryError
	)

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = validationErr.Message
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		message = notFoundErr.Message
	case errors.As(err, &conflictErr):
		status = http.StatusBadRequest
		message = conflictErr.Message
	case errors.As(err, &insufficientErr):
		status = http.StatusBadRequest
		message = insufficientErr.Message
	default:
		logger.Error("Unhandled request error", "error", err)
	}

	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}
