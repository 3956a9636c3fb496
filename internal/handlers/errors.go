package handlers

import (
	"strings"

	"vibestore-api/internal/repositories"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// isValidationError checks if an error is a validation error
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	if repositories.IsValidation(err) {
		return true
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "validation") ||
		strings.Contains(errMsg, "required")
}

// isNotFoundError checks if an error is a not found error
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if repositories.IsNotFound(err) {
		return true
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "not found") ||
		strings.Contains(errMsg, "no rows")
}
