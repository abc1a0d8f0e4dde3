package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/export"
	"github.com/phrazzld/flashforge-api/internal/extract"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
	"github.com/phrazzld/flashforge-api/internal/redact"
	"github.com/phrazzld/flashforge-api/internal/upload"
)

// Generator produces flashcards for a content string.
type Generator interface {
	Generate(ctx context.Context, content string) generation.Result
}

// UploadStore persists an uploaded document for the duration of a request.
type UploadStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (*upload.Upload, error)
}

// FileInput is an optional uploaded document.
type FileInput struct {
	Name string
	Body io.Reader
}

// GenerateRequest carries the inputs of a generation request.
type GenerateRequest struct {
	TextInput string
	File      *FileInput
}

// FlashcardService provides the flashcard use cases.
type FlashcardService interface {
	// Generate extracts text from the optional file, joins it with the pasted
	// text, validates the result and generates cards. Content errors are
	// domain.ErrNoContent or domain.ErrContentTooShort; extraction failures
	// wrap *extract.ExtractionError.
	Generate(ctx context.Context, req GenerateRequest) (generation.Result, error)

	// Export serializes client-held records. It returns export.ErrNoFlashcards
	// or export.ErrUnsupportedFormat for invalid requests.
	Export(ctx context.Context, records []export.Record, format string) (export.Result, error)

	// Update builds the edited record. It returns domain.ErrMissingFields if
	// any field is blank.
	Update(ctx context.Context, id, question, answer string) (domain.Flashcard, error)
}

type flashcardServiceImpl struct {
	generator Generator
	uploads   UploadStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewFlashcardService creates a FlashcardService.
// It returns an error if any of the required dependencies are nil.
func NewFlashcardService(generator Generator, uploads UploadStore, logger *slog.Logger) (FlashcardService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if uploads == nil {
		return nil, errors.New("upload store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &flashcardServiceImpl{
		generator: generator,
		uploads:   uploads,
		logger:    logger.With(slog.String("component", "flashcard_service")),
		now:       time.Now,
	}, nil
}

// Generate implements FlashcardService.
func (s *flashcardServiceImpl) Generate(ctx context.Context, req GenerateRequest) (generation.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fileText, err := s.extractFile(ctx, req.File)
	if err != nil {
		return generation.Result{}, err
	}

	content := domain.BuildContent(req.TextInput, fileText)
	if err := domain.ValidateContent(content); err != nil {
		log.DebugContext(ctx, "rejecting generation request", "error", err)
		return generation.Result{}, err
	}

	result := s.generator.Generate(ctx, content)
	log.InfoContext(ctx, "flashcards generated",
		"count", len(result.Cards),
		"fallback", result.UsedFallback(),
		"content_length", len(content))
	return result, nil
}

// extractFile saves and reads the uploaded file, removing it before
// returning. A file with a disallowed extension is ignored.
func (s *flashcardServiceImpl) extractFile(ctx context.Context, file *FileInput) (string, error) {
	if file == nil || file.Name == "" {
		return "", nil
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	saved, err := s.uploads.Save(ctx, file.Name, file.Body)
	if errors.Is(err, upload.ErrUnsupportedFileType) {
		log.WarnContext(ctx, "ignoring upload with unsupported file type", "error", err)
		return "", nil
	}
	if err != nil {
		return "", NewFlashcardServiceError("generate", "failed to save upload", err)
	}
	defer func() {
		if err := saved.Remove(); err != nil {
			log.ErrorContext(ctx, "failed to remove upload", "error", redact.Error(err))
		}
	}()

	text, err := extract.File(saved.Path, saved.Kind)
	if err != nil {
		return "", NewFlashcardServiceError("generate", "failed to extract text", err)
	}

	log.DebugContext(ctx, "extracted upload", "kind", string(saved.Kind), "text_length", len(text))
	return text, nil
}

// Export implements FlashcardService.
func (s *flashcardServiceImpl) Export(ctx context.Context, records []export.Record, format string) (export.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := export.Export(records, format, s.now())
	switch {
	case errors.Is(err, export.ErrNoFlashcards), errors.Is(err, export.ErrUnsupportedFormat):
		return export.Result{}, err
	case err != nil:
		return export.Result{}, NewFlashcardServiceError("export", "failed to encode flashcards", err)
	}

	log.InfoContext(ctx, "flashcards exported", "format", format, "count", len(records))
	return result, nil
}

// Update implements FlashcardService.
func (s *flashcardServiceImpl) Update(ctx context.Context, id, question, answer string) (domain.Flashcard, error) {
	card, err := domain.UpdateFlashcard(id, question, answer, s.now())
	if err != nil {
		return domain.Flashcard{}, err
	}
	logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "flashcard updated", "card_id", card.ID)
	return card, nil
}
