package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/gemini"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		Provider:    config.ProviderGemini,
		APIKey:      "gemini-test-key",
		Model:       "gemini-2.0-flash",
		MaxTokens:   2000,
		Temperature: 0.7,
		TopP:        0.9,
	}
}

func newClient(t *testing.T, server *httptest.Server) *gemini.Client {
	t.Helper()
	_, log := logger.SetupTestLogger(t)
	client, err := gemini.NewClient(context.Background(), testConfig(), server.URL+"/", server.Client(), log)
	require.NoError(t, err)
	return client
}

func TestCompleteGeneratesContent(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.0-flash:generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "[{\"question\":\"q\",\"answer\":\"a\"}]"}]},
				"finishReason": "STOP"
			}]
		}`))
	}))
	defer server.Close()

	text, err := newClient(t, server).Complete(context.Background(), "make cards")

	require.NoError(t, err)
	assert.Equal(t, `[{"question":"q","answer":"a"}]`, text)

	genConfig, ok := got["generationConfig"].(map[string]any)
	require.True(t, ok, "request should carry generationConfig: %v", got)
	assert.Equal(t, "application/json", genConfig["responseMimeType"])
	assert.Equal(t, float64(2000), genConfig["maxOutputTokens"])
}

func TestCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	_, err := newClient(t, server).Complete(context.Background(), "prompt")

	var statusErr *generation.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "quota exceeded", statusErr.Body)
}

func TestCompleteSafetyBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"finishReason":"SAFETY"}]}`))
	}))
	defer server.Close()

	_, err := newClient(t, server).Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, generation.ErrEmptyResponse)
	assert.Contains(t, err.Error(), "safety")
}

func TestNewClientValidation(t *testing.T) {
	_, log := logger.SetupTestLogger(t)

	cfg := testConfig()
	cfg.APIKey = ""
	_, err := gemini.NewClient(context.Background(), cfg, "", nil, log)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg = testConfig()
	cfg.Model = ""
	_, err = gemini.NewClient(context.Background(), cfg, "", nil, log)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
