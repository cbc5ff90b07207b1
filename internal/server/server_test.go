package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeforge-ide/codeforge/backend/internal/config"
	"github.com/codeforge-ide/codeforge/backend/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Development = false
	cfg.RateLimit.Enabled = false

	srv, err := NewServer(cfg, &logging.Logger{Logger: zap.NewNop()})
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })
	return srv
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)

	routes := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/services", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, rt := range routes {
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
		assert.Equal(t, rt.want, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestServerRegistersProviders(t *testing.T) {
	srv := newTestServer(t)

	stats := srv.registry.Stats()
	assert.Equal(t, 2, stats["total_services"])
}
