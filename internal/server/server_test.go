package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/logging"
)

func newTestServer(t *testing.T, modify func(*config.Config)) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	if modify != nil {
		modify(cfg)
	}

	srv, err := NewServerWithLogger(cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	return srv
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestRoutesWired(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/math/evaluate", `{"expression":"6 * 7"}`, http.StatusOK},
		{http.MethodPost, "/math/solve", `{"query":"sqrt(144)"}`, http.StatusOK},
		{http.MethodGet, "/math/examples", "", http.StatusOK},
		{http.MethodGet, "/services", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/metrics/json", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(srv, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
		})
	}

	assert.Equal(t, map[string]int64{"sqrt": 1}, srv.Metrics().Snapshot().Solved)
	assert.Len(t, srv.Registry().List(nil), 1)
}

func TestGzipResponses(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := serve(srv, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "mathsearch_uptime_seconds")
}

func TestRateLimitApplied(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.RequestsPerSecond = 1
		cfg.RateLimit.Burst = 1
	})

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.1.1.1:5000"
	assert.Equal(t, http.StatusOK, serve(srv, first).Code)

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.1.1.1:5000"
	assert.Equal(t, http.StatusTooManyRequests, serve(srv, second).Code)
}

func TestGlobalRateLimitApplied(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) { cfg.RateLimit.GlobalRPS = 1 })

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.2.2.1:5000"
	assert.Equal(t, http.StatusOK, serve(srv, first).Code)

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.2.2.2:5000"
	assert.Equal(t, http.StatusTooManyRequests, serve(srv, second).Code)
}

func TestCustomExamplesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examples.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("examples:\n  - query: \"7!\"\n    category: algebra\n    classifier: factorial\n"), 0o644))

	srv := newTestServer(t, func(cfg *config.Config) { cfg.Solver.ExamplesFile = path })

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/math/examples", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"7!"`)
}

func TestNewServerErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.ExamplesFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := NewServerWithLogger(cfg, logging.NewNop())
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Server.Port = ""
	_, err = NewServerWithLogger(cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestLogLevelEndpointDevelopmentOnly(t *testing.T) {
	srv := newTestServer(t, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/loglevel", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	dev := newTestServer(t, func(cfg *config.Config) { cfg.Logging.Development = true })
	w = httptest.NewRecorder()
	dev.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/debug/loglevel", strings.NewReader(`{"level":"error"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":"error"`)
}

func TestRequestAfterCloseDoesNotPanic(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.Close()

	w := serve(srv, httptest.NewRequest(http.MethodPost, "/services/execute",
		strings.NewReader(`{"tool_id":"math.solve","params":{"query":"10!"}}`)))
	assert.Equal(t, http.StatusOK, w.Code)
}
