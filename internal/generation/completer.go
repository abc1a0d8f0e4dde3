package generation

import "context"

// Completer sends a prompt to a language model and returns the generated text.
//
// Implementations make a single attempt with no retry. A non-2xx response
// should be reported as *StatusError; a reply without any text as
// ErrEmptyResponse.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f(ctx, prompt).
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
