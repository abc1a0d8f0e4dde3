package mocks

import (
	"context"
	"sync"
)

// MockCompleter implements generation.Completer for testing.
type MockCompleter struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

// Complete implements generation.Completer.
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt)
	}
	return m.Text, m.Err
}

// Prompts returns the prompts received so far.
func (m *MockCompleter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
