package generation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when an adapter or prompt template is misconfigured.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyResponse is returned by completers when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrMalformedResponse is returned by completers when a success response cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrNoJSONArray is returned when a completion contains no bracketed array.
	ErrNoJSONArray = errors.New("no JSON array in model response")

	// ErrInsufficientCards is returned when fewer than MinCards valid cards were parsed.
	ErrInsufficientCards = errors.New("insufficient flashcards in model response")
)

// StatusError reports a non-success HTTP status from an inference endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("inference endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("inference endpoint returned status %d: %s", e.StatusCode, e.Body)
}
