package generation

import (
	"errors"

	"github.com/phrazzld/flashforge-api/internal/domain"
)

// DegradeReason classifies why the remote path did not produce cards.
type DegradeReason string

// Degrade reasons. ReasonNone marks a successful remote generation.
const (
	ReasonNone              DegradeReason = ""
	ReasonOffline           DegradeReason = "offline"
	ReasonPromptError       DegradeReason = "prompt_error"
	ReasonTransportError    DegradeReason = "transport_error"
	ReasonBadStatus         DegradeReason = "bad_status"
	ReasonEmptyResponse     DegradeReason = "empty_response"
	ReasonNoJSONArray       DegradeReason = "no_json_array"
	ReasonInvalidJSON       DegradeReason = "invalid_json"
	ReasonInsufficientCards DegradeReason = "insufficient_cards"
	ReasonPanic             DegradeReason = "panic"
)

// Outcome is the result of one remote generation attempt. Either Cards holds
// between MinCards and MaxCards cards and Reason is ReasonNone, or Reason
// says why the attempt degraded and Err carries the cause.
type Outcome struct {
	Cards  []domain.Flashcard
	Reason DegradeReason
	Err    error
}

// Degraded reports whether the attempt must be resolved by the fallback.
func (o Outcome) Degraded() bool {
	return o.Reason != ReasonNone
}

func success(cards []domain.Flashcard) Outcome {
	return Outcome{Cards: cards}
}

func degraded(reason DegradeReason, err error) Outcome {
	return Outcome{Reason: reason, Err: err}
}

// classifyCompletionError maps a Completer error onto a DegradeReason.
func classifyCompletionError(err error) DegradeReason {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		return ReasonBadStatus
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmptyResponse
	case errors.Is(err, ErrMalformedResponse):
		return ReasonInvalidJSON
	default:
		return ReasonTransportError
	}
}
