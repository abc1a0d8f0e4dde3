package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
	"github.com/phrazzld/flashforge-api/internal/redact"
)

// Result is what Generate hands back: the cards and, when the remote path
// degraded, the reason the fallback was used.
type Result struct {
	Cards          []domain.Flashcard
	FallbackReason DegradeReason
}

// UsedFallback reports whether the cards came from Fallback.
func (r Result) UsedFallback() bool {
	return r.FallbackReason != ReasonNone
}

// Generator orchestrates remote generation with a deterministic fallback.
type Generator struct {
	completer Completer
	prompt    *Prompt
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for card timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator. A nil completer means offline operation:
// every request is served by Fallback. A nil prompt selects
// DefaultPromptTemplate.
func NewGenerator(completer Completer, prompt *Prompt, logger *slog.Logger, opts ...Option) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if prompt == nil {
		var err error
		prompt, err = NewPrompt(DefaultPromptTemplate)
		if err != nil {
			return nil, err
		}
	}

	g := &Generator{
		completer: completer,
		prompt:    prompt,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns between MinCards and MaxCards flashcards for content. It
// never fails: any problem on the remote path is logged and resolved by
// Fallback.
func (g *Generator) Generate(ctx context.Context, content string) Result {
	log := logger.FromContextOrDefault(ctx, g.logger)

	outcome := g.Attempt(ctx, content)
	if !outcome.Degraded() {
		log.InfoContext(ctx, "generated flashcards with language model", "count", len(outcome.Cards))
		return Result{Cards: outcome.Cards}
	}

	switch outcome.Reason {
	case ReasonOffline:
		log.DebugContext(ctx, "no language model configured, using fallback generator")
	case ReasonPanic:
		log.ErrorContext(ctx, "flashcard generation panicked, using fallback generator",
			"reason", string(outcome.Reason),
			"error", redact.Error(outcome.Err))
	default:
		log.WarnContext(ctx, "language model generation degraded, using fallback generator",
			"reason", string(outcome.Reason),
			"error", redact.Error(outcome.Err))
	}

	return Result{
		Cards:          Fallback(content, g.now()),
		FallbackReason: outcome.Reason,
	}
}

// Attempt runs the remote path once and classifies the result. It does not
// fall back; callers switch on Outcome.Reason.
func (g *Generator) Attempt(ctx context.Context, content string) (outcome Outcome) {
	if g.completer == nil {
		return degraded(ReasonOffline, nil)
	}

	defer func() {
		if r := recover(); r != nil {
			outcome = degraded(ReasonPanic, fmt.Errorf("panic during generation: %v", r))
		}
	}()

	prompt, err := g.prompt.Render(content)
	if err != nil {
		return degraded(ReasonPromptError, err)
	}

	text, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return degraded(classifyCompletionError(err), err)
	}
	if strings.TrimSpace(text) == "" {
		return degraded(ReasonEmptyResponse, ErrEmptyResponse)
	}

	raw, ok := ExtractCardArray(text)
	if !ok {
		return degraded(ReasonNoJSONArray, ErrNoJSONArray)
	}

	cards, err := parseCards(raw, g.now())
	if err != nil {
		return degraded(ReasonInvalidJSON, err)
	}
	if len(cards) < MinCards {
		return degraded(ReasonInsufficientCards,
			fmt.Errorf("%w: got %d, need %d", ErrInsufficientCards, len(cards), MinCards))
	}
	if len(cards) > MaxCards {
		cards = cards[:MaxCards]
	}

	return success(cards)
}
