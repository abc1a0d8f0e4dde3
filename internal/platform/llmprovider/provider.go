// Package llmprovider selects the generation.Completer for the configured
// inference provider.
package llmprovider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/gemini"
	"github.com/phrazzld/flashforge-api/internal/platform/openaicompat"
	"github.com/phrazzld/flashforge-api/internal/platform/together"
)

// NewCompleter builds the completer for cfg.Provider. The offline provider
// returns a nil Completer, which makes the Generator use the fallback for
// every request.
func NewCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Completer, error) {
	var (
		completer generation.Completer
		err       error
	)
	switch cfg.Provider {
	case config.ProviderTogether:
		completer, err = together.NewClient(cfg, logger)
	case config.ProviderOpenAI:
		completer, err = openaicompat.NewClient(cfg, baseURL(cfg), nil, logger)
	case config.ProviderGemini:
		completer, err = gemini.NewClient(ctx, cfg, baseURL(cfg), nil, logger)
	case config.ProviderOffline:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s completer: %w", cfg.Provider, err)
	}
	return completer, nil
}

// baseURL returns the configured endpoint for SDK-backed providers, treating
// the Together default as unset.
func baseURL(cfg config.LLMConfig) string {
	if cfg.Endpoint == config.DefaultTogetherEndpoint {
		return ""
	}
	return cfg.Endpoint
}
