package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aidin1998/contacts_manager/api"
	"github.com/Aidin1998/contacts_manager/internal/config"
	"github.com/Aidin1998/contacts_manager/internal/contacts"
	"github.com/Aidin1998/contacts_manager/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testEnv struct {
	router   *gin.Engine
	sessions *database.SessionManager
	logs     *observer.ObservedLogs
}

func newSessions(t *testing.T) *database.SessionManager {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	sessions, err := database.NewSessionManager(config.DatabaseConfig{
		URL:          fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", name),
		QueryTimeout: time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessions.Close() })
	return sessions
}

// helper to set up router
func setupServer(t *testing.T, opts api.Options) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	sessions := newSessions(t)
	svc := contacts.NewService(logger, sessions)
	require.NoError(t, svc.Migrate())

	srv := api.NewServer(logger, sessions, svc, opts)
	return &testEnv{router: srv.Router(), sessions: sessions, logs: logs}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRoot(t *testing.T) {
	env := setupServer(t, api.Options{})

	w := env.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Contacts Manager API"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	env := setupServer(t, api.Options{})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupServer(t, api.Options{})
	env.do(http.MethodGet, "/", nil)

	w := env.do(http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contacts_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	env := setupServer(t, api.Options{CORSOrigins: []string{"http://app.test"}})

	req, _ := http.NewRequest(http.MethodOptions, "/api/contacts", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDocument(t *testing.T) {
	env := setupServer(t, api.Options{})

	w := env.do(http.MethodGet, "/docs/doc.json", nil)

	require.Equal(t, http.StatusOK, w.Code)
	doc := decode[map[string]any](t, w)
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/contacts/{contact_id}")
	assert.Contains(t, paths, "/api/healthchecker")
}
