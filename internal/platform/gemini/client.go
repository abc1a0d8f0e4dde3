package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
	"google.golang.org/genai"
)

// Client generates completions with a Gemini model.
type Client struct {
	client *genai.Client
	params config.LLMConfig
	logger *slog.Logger
}

// NewClient creates a Client. An empty baseURL selects the public Gemini API.
// httpClient may be nil.
func NewClient(ctx context.Context, cfg config.LLMConfig, baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
		},
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Client{
		client: client,
		params: cfg,
		logger: logger,
	}, nil
}

// Complete implements generation.Completer.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)
	log.DebugContext(ctx, "sending generate content request",
		"provider", config.ProviderGemini,
		"model", c.params.Model,
		"prompt_length", len(prompt))

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(c.params.Temperature)),
		TopP:             genai.Ptr(float32(c.params.TopP)),
		MaxOutputTokens:  int32(c.params.MaxTokens),
		ResponseMIMEType: "application/json",
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.params.Model, genai.Text(prompt), genConfig)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &generation.StatusError{StatusCode: apiErr.Code, Body: apiErr.Message}
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
			return "", fmt.Errorf("%w: blocked by safety filters", generation.ErrEmptyResponse)
		}
		return "", generation.ErrEmptyResponse
	}
	return text, nil
}
