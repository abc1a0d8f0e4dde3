package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/flashforge-api/internal/api"
	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotes = "Photosynthesis converts light energy into chemical energy in plants. " +
	"Chlorophyll absorbs mostly blue and red light. " +
	"The Calvin cycle fixes carbon dioxide into sugars."

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			LogFormat:              "json",
			UploadDir:              filepath.Join(t.TempDir(), "uploads"),
			MaxUploadBytes:         1 << 20,
			CORSAllowedOrigins:     []string{"http://localhost:3000"},
			ShutdownTimeoutSeconds: 1,
		},
		LLM: config.LLMConfig{
			Provider:          config.ProviderOffline,
			Model:             "test-model",
			MaxTokens:         2000,
			Temperature:       0.7,
			TopP:              0.9,
			RepetitionPenalty: 1.1,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	app, err := newApplication(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app
}

func TestNewApplication(t *testing.T) {
	cfg := testConfig(t)
	app := newTestApp(t, cfg)

	assert.NotNil(t, app.generator)
	assert.NotNil(t, app.flashcardService)
	info, err := os.Stat(cfg.Server.UploadDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewApplicationErrors(t *testing.T) {
	t.Run("missing prompt template", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LLM.PromptTemplatePath = filepath.Join(t.TempDir(), "missing.tmpl")

		_, err := newApplication(context.Background(), cfg, slog.Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load prompt template")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LLM.Provider = "carrier-pigeon"

		_, err := newApplication(context.Background(), cfg, slog.Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize LLM client")
	})
}

func TestRouterEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, resp.Header.Get("X-Trace-ID"), 32)
		var body api.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
	})

	t.Run("generate from text and file uses fallback offline", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("text_input", sampleNotes))
		part, err := mw.CreateFormFile("file", "extra notes.txt")
		require.NoError(t, err)
		_, err = part.Write([]byte("Mitochondria produce most of the cell's ATP supply."))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		resp, err := http.Post(srv.URL+"/api/generate-flashcards", mw.FormDataContentType(), &buf)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body api.GenerateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.GreaterOrEqual(t, body.Count, 10)
		assert.LessOrEqual(t, body.Count, 20)
		assert.Len(t, body.Flashcards, body.Count)

		entries, err := os.ReadDir(app.uploads.Dir())
		require.NoError(t, err)
		assert.Empty(t, entries, "uploads are removed after extraction")
	})

	t.Run("generate rejects short content", func(t *testing.T) {
		resp, err := http.PostForm(srv.URL+"/api/generate-flashcards", map[string][]string{"text_input": {"too short"}})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("export csv", func(t *testing.T) {
		body := `{"flashcards":[{"question":"Q1","answer":"A1"}],"format":"csv"}`
		resp, err := http.Post(srv.URL+"/api/export-flashcards", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var result export.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Success)
		assert.Equal(t, export.MIMECSV, result.MIMEType)
		assert.True(t, strings.HasSuffix(result.Filename, ".csv"))
	})

	t.Run("export json keeps large integer ids", func(t *testing.T) {
		body := `{"flashcards":[{"id":9007199254740993,"question":"Q1","answer":"A1"}],"format":"json"}`
		resp, err := http.Post(srv.URL+"/api/export-flashcards", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var result export.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

		dec := json.NewDecoder(strings.NewReader(result.Data))
		dec.UseNumber()
		var records []map[string]any
		require.NoError(t, dec.Decode(&records))
		require.Len(t, records, 1)
		assert.Equal(t, json.Number("9007199254740993"), records[0]["id"])
	})

	t.Run("export rejects format with different case", func(t *testing.T) {
		body := `{"flashcards":[{"question":"Q1","answer":"A1"}],"format":"CSV"}`
		resp, err := http.Post(srv.URL+"/api/export-flashcards", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update", func(t *testing.T) {
		body := `{"id":"abc","question":"Q","answer":"A"}`
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/update-flashcard", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var result api.UpdateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "abc", result.Flashcard.ID)
		assert.False(t, result.Flashcard.UpdatedAt.IsZero())
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/update-flashcard")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/export-flashcards", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestStartHTTPServerShutsDownOnCancel(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, http.NotFoundHandler())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
