package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/codeforge-ide/codeforge/backend/internal/fs"
	"github.com/codeforge-ide/codeforge/backend/internal/logging"
	"github.com/codeforge-ide/codeforge/backend/internal/monitoring"
	"github.com/codeforge-ide/codeforge/backend/internal/providers/filesystem"
	"github.com/codeforge-ide/codeforge/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *monitoring.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := &logging.Logger{Logger: zap.NewNop()}
	fsvc := fs.NewService(log)
	t.Cleanup(func() { fsvc.Close() })

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(filesystem.NewProvider(fsvc)))

	metrics := monitoring.NewMetrics()
	h := NewHandlers(registry, fsvc, metrics)
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/services", h.ListServices)
	r.POST("/services/execute", h.ExecuteService)
	return r, metrics
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestRoot(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "CodeForge Backend", body["service"])
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "service_registry")
	assert.Contains(t, body, "filesystem")
}

func TestListServices(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	services, ok := body["services"].([]interface{})
	require.True(t, ok)
	require.Len(t, services, 1)
}

func TestListServicesCategoryFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/services?category=filesystem", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	services, ok := body["services"].([]interface{})
	require.True(t, ok)
	assert.Len(t, services, 1)

	w, body = doJSON(t, r, http.MethodGet, "/services?category=system", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	services, ok = body["services"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, services)
}

func TestListServicesBadCategory(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/services?category=bad%20cat", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	r, _ := newTestRouter(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	w, body := doJSON(t, r, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "filesystem.read",
		"params":  map[string]interface{}{"path": path},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hello", data["content"])
}

func TestExecuteServiceErrorResult(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "filesystem.read",
		"params":  map[string]interface{}{"path": filepath.Join(t.TempDir(), "missing.txt")},
	})
	// Tool failures are valid results, not transport errors.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestExecuteServiceValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/services/execute", map[string]interface{}{
		"params": map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "bad tool id",
		"params":  map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteServiceUnknownService(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "nope.tool",
		"params":  map[string]interface{}{},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func scrapeMetrics(t *testing.T, m *monitoring.Metrics) string {
	t.Helper()
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestExecuteServiceRecordsMetrics(t *testing.T) {
	r, metrics := newTestRouter(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "tracked.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	w, _ := doJSON(t, r, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "filesystem.read",
		"params":  map[string]interface{}{"path": path},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "filesystem.read",
		"params":  map[string]interface{}{"path": filepath.Join(dir, "missing.txt")},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := scrapeMetrics(t, metrics)
	assert.Contains(t, body, `backend_service_calls_total{service="filesystem",status="success",tool="filesystem.read"} 1`)
	assert.Contains(t, body, `backend_service_calls_total{service="filesystem",status="failure",tool="filesystem.read"} 1`)
	assert.Contains(t, body, `backend_service_errors_total{error_code="NOT_FOUND",service="filesystem",tool="filesystem.read"} 1`)
}
