package domain

import "errors"

// Validation errors for user-supplied content and card edits.
var (
	// ErrNoContent is returned when neither pasted text nor extracted file text is present.
	ErrNoContent = errors.New("no content provided")

	// ErrContentTooShort is returned when the trimmed content is under MinContentLength characters.
	ErrContentTooShort = errors.New("content too short")

	// ErrMissingFields is returned when an update lacks an id, question, or answer.
	ErrMissingFields = errors.New("missing required fields")
)
