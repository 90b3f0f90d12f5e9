package api_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/Aidin1998/contacts_manager/api"
	"github.com/Aidin1998/contacts_manager/api/responses"
	"github.com/Aidin1998/contacts_manager/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestHealthCheck(t *testing.T) {
	env := setupServer(t, api.Options{})

	for i := 0; i < 3; i++ {
		w := env.do(http.MethodGet, "/api/healthchecker", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}
	assert.Equal(t, 3, env.logs.FilterMessage("Health check OK").Len())
}

func TestHealthCheckNotConfigured(t *testing.T) {
	queries := map[string]string{
		"null scalar": "SELECT NULL",
		"no rows":     "SELECT 1 WHERE 1 = 0",
	}
	for name, query := range queries {
		t.Run(name, func(t *testing.T) {
			env := setupServer(t, api.Options{HealthQuery: query})

			w := env.do(http.MethodGet, "/api/healthchecker", nil)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"detail":"Database is not configured correctly"}`, w.Body.String())
			assert.Equal(t, 1, env.logs.FilterLevelExact(zapcore.ErrorLevel).FilterMessage("Database is not configured correctly").Len())
		})
	}
}

func TestHealthCheckConnectionFailure(t *testing.T) {
	env := setupServer(t, api.Options{})
	require.NoError(t, env.sessions.Close())

	w := env.do(http.MethodGet, "/api/healthchecker", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Error connecting to the database"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "closed")

	entries := env.logs.FilterMessage("Error connecting to the database").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestHealthCheckBadQueryIsConnectionError(t *testing.T) {
	env := setupServer(t, api.Options{HealthQuery: "SELECT FROM nowhere WHERE"})

	w := env.do(http.MethodGet, "/api/healthchecker", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Error connecting to the database"}`, w.Body.String())
}

func TestHealthCheckUninitializedManager(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var sessions *database.SessionManager
	srv := api.NewServer(zap.NewNop(), sessions, nil, api.Options{})

	env := &testEnv{router: srv.Router()}
	w := env.do(http.MethodGet, "/api/healthchecker", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[responses.InternalServerErrorResponse](t, w)
	assert.Equal(t, "Database is not configured correctly", body.Detail)
}

func TestHealthCheckWithoutSessionProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := api.NewServer(zap.NewNop(), nil, nil, api.Options{})

	env := &testEnv{router: srv.Router()}
	w := env.do(http.MethodGet, "/api/healthchecker", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Database is not configured correctly"}`, w.Body.String())
}

func TestHealthCheckConcurrent(t *testing.T) {
	env := setupServer(t, api.Options{})

	const n = 50
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = env.do(http.MethodGet, "/api/healthchecker", nil).Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
}
