package service

import "fmt"

// Error handling:
//  1. Expected conditions are returned as the owning package's sentinel
//     errors (domain.ErrContentTooShort, export.ErrUnsupportedFormat, ...).
//  2. Unexpected failures are wrapped in FlashcardServiceError.
//  3. The API layer maps both to HTTP status codes with errors.Is/errors.As.

// FlashcardServiceError is returned for unexpected failures inside a use case.
// Expected conditions (invalid content, unsupported export format) are
// returned as the owning package's sentinel errors instead.
type FlashcardServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for FlashcardServiceError.
func (e *FlashcardServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flashcard service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("flashcard service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *FlashcardServiceError) Unwrap() error {
	return e.Err
}

// NewFlashcardServiceError creates a new FlashcardServiceError.
func NewFlashcardServiceError(operation, message string, err error) *FlashcardServiceError {
	return &FlashcardServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
