package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/export"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/service"
)

// MockFlashcardService implements service.FlashcardService for testing.
type MockFlashcardService struct {
	GenerateFn func(ctx context.Context, req service.GenerateRequest) (generation.Result, error)
	ExportFn   func(ctx context.Context, records []export.Record, format string) (export.Result, error)
	UpdateFn   func(ctx context.Context, id, question, answer string) (domain.Flashcard, error)

	// Call tracking for verification
	mu            sync.Mutex
	GenerateCalls []service.GenerateRequest
	ExportFormats []string
	UpdateCalls   int
}

var _ service.FlashcardService = (*MockFlashcardService)(nil)

// Generate implements service.FlashcardService. The file body, if any, is
// not retained; inspect it inside GenerateFn.
func (m *MockFlashcardService) Generate(ctx context.Context, req service.GenerateRequest) (generation.Result, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return generation.Result{}, nil
}

// Export implements service.FlashcardService.
func (m *MockFlashcardService) Export(ctx context.Context, records []export.Record, format string) (export.Result, error) {
	m.mu.Lock()
	m.ExportFormats = append(m.ExportFormats, format)
	m.mu.Unlock()

	if m.ExportFn != nil {
		return m.ExportFn(ctx, records, format)
	}
	return export.Result{Success: true}, nil
}

// Update implements service.FlashcardService.
func (m *MockFlashcardService) Update(ctx context.Context, id, question, answer string) (domain.Flashcard, error) {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, question, answer)
	}
	return domain.Flashcard{ID: id, Question: question, Answer: answer}, nil
}
