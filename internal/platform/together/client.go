package together

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
)

// maxErrorBody bounds how much of a failed response is kept in a StatusError.
const maxErrorBody = 512

// Client calls a Together-style inference endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	params     config.LLMConfig
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client from the llm section of the configuration.
func NewClient(cfg config.LLMConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: together API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: together endpoint cannot be empty", generation.ErrInvalidConfig)
	}

	c := &Client{
		httpClient: &http.Client{},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		params:     cfg,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type inferenceRequest struct {
	Model             string  `json:"model"`
	Prompt            string  `json:"prompt"`
	MaxTokens         int     `json:"max_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

type inferenceResponse struct {
	Output struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	} `json:"output"`
}

// Complete implements generation.Completer.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)
	start := time.Now()

	body, err := json.Marshal(inferenceRequest{
		Model:             c.params.Model,
		Prompt:            prompt,
		MaxTokens:         c.params.MaxTokens,
		Temperature:       c.params.Temperature,
		TopP:              c.params.TopP,
		RepetitionPenalty: c.params.RepetitionPenalty,
	})
	if err != nil {
		return "", fmt.Errorf("encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.DebugContext(ctx, "sending inference request",
		"provider", config.ProviderTogether,
		"model", c.params.Model,
		"prompt_length", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read inference response: %w", err)
	}

	log.DebugContext(ctx, "received inference response",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return "", &generation.StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded inferenceResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
	}
	if len(decoded.Output.Choices) == 0 || decoded.Output.Choices[0].Text == "" {
		return "", generation.ErrEmptyResponse
	}
	return decoded.Output.Choices[0].Text, nil
}
