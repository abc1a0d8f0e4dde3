package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
)

// Client sends text completion requests through the OpenAI SDK.
type Client struct {
	client openai.Client
	params config.LLMConfig
	logger *slog.Logger
}

// NewClient creates a Client. An empty baseURL selects the SDK default.
// httpClient may be nil.
func NewClient(cfg config.LLMConfig, baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// One attempt per request; failures degrade to the fallback generator.
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &Client{
		client: openai.NewClient(opts...),
		params: cfg,
		logger: logger,
	}, nil
}

// Complete implements generation.Completer.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)
	log.DebugContext(ctx, "sending completion request",
		"provider", config.ProviderOpenAI,
		"model", c.params.Model,
		"prompt_length", len(prompt))

	params := openai.CompletionNewParams{
		Model:       openai.CompletionNewParamsModel(c.params.Model),
		Prompt:      openai.CompletionNewParamsPromptUnion{OfString: openai.String(prompt)},
		MaxTokens:   openai.Int(int64(c.params.MaxTokens)),
		Temperature: openai.Float(c.params.Temperature),
		TopP:        openai.Float(c.params.TopP),
	}

	// repetition_penalty is not part of the OpenAI schema but is honoured by
	// compatible servers.
	res, err := c.client.Completions.New(ctx, params,
		option.WithJSONSet("repetition_penalty", c.params.RepetitionPenalty))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &generation.StatusError{StatusCode: apiErr.StatusCode, Body: apiErr.Message}
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(res.Choices) == 0 || res.Choices[0].Text == "" {
		return "", generation.ErrEmptyResponse
	}
	return res.Choices[0].Text, nil
}
