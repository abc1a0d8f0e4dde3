package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/llmprovider"
	"github.com/phrazzld/flashforge-api/internal/service"
	"github.com/phrazzld/flashforge-api/internal/upload"
)

// application holds the dependencies shared by every request.
type application struct {
	config *config.Config
	logger *slog.Logger

	uploads          *upload.Store
	generator        *generation.Generator
	flashcardService service.FlashcardService
}

// newApplication wires the upload store, the configured completer, the
// generator and the flashcard service.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.uploads, err = upload.NewStore(cfg.Server.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload store: %w", err)
	}

	completer, err := llmprovider.NewCompleter(ctx, cfg.LLM, logger.With("component", "llm_completer"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	if completer == nil {
		logger.Warn("no LLM provider configured, every request will use the fallback generator")
	}

	prompt, err := generation.LoadPrompt(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.generator, err = generation.NewGenerator(completer, prompt, logger.With("component", "generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}
	logger.Info("flashcard generator initialized",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model)

	app.flashcardService, err = service.NewFlashcardService(app.generator, app.uploads, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	return app, nil
}

// Run serves HTTP until shutdown.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}
