package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/flashforge-api/internal/api/middleware"
	"github.com/phrazzld/flashforge-api/internal/api/shared"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	logs, log := logger.SetupTestLogger(t)

	var seenTraceID string
	handler := middleware.TraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Len(t, seenTraceID, 32)
	assert.Equal(t, seenTraceID, w.Header().Get(shared.TraceIDHeader))

	entries, err := logs.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, seenTraceID, entries[0]["trace_id"])
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	handler := middleware.TraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(shared.TraceIDHeader), second.Header().Get(shared.TraceIDHeader))
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "implicit ok", status: 0, level: "INFO"},
		{name: "bad request", status: http.StatusBadRequest, level: "INFO"},
		{name: "server error", status: http.StatusInternalServerError, level: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, log := logger.SetupTestLogger(t)

			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte("ok"))
			})
			handler := middleware.TraceMiddleware(log)(middleware.RequestLogger(inner))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/export-flashcards", nil))

			entries, err := logs.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, "/api/export-flashcards", entry["path"])
			assert.EqualValues(t, 2, entry["bytes"])
			assert.NotEmpty(t, entry["trace_id"])
			if tt.status != 0 {
				assert.EqualValues(t, tt.status, entry["status"])
			} else {
				assert.EqualValues(t, http.StatusOK, entry["status"])
			}
		})
	}
}
