package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/export"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrNoContent),
		errors.Is(err, domain.ErrContentTooShort),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, export.ErrNoFlashcards),
		errors.Is(err, export.ErrUnsupportedFormat):
		return http.StatusBadRequest

	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that does not
// expose internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrNoContent):
		return "No content provided"
	case errors.Is(err, domain.ErrContentTooShort):
		return "Content too short. Please provide at least 50 characters."
	case errors.Is(err, domain.ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, export.ErrNoFlashcards):
		return "No flashcards to export"
	case errors.Is(err, export.ErrUnsupportedFormat):
		return "Unsupported export format"
	case errors.As(err, &maxErr):
		return "Request body too large"
	default:
		return "An unexpected error occurred"
	}
}
