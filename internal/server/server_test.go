package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/asymintervals/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.RateLimit.Enabled = false
	return cfg
}

func TestNewWiresRoutes(t *testing.T) {
	srv, err := New(testConfig())
	require.NoError(t, err)
	defer srv.Close()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/", 200},
		{"GET", "/health", 200},
		{"GET", "/tools", 200},
		{"GET", "/metrics", 200},
		{"GET", "/missing", 404},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestExecuteThroughStack(t *testing.T) {
	srv, err := New(testConfig())
	require.NoError(t, err)
	defer srv.Close()

	body := `{"tool_id":"interval.add","params":{"a":[0,10,2],"b":[2,8,5]}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)

	var result struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &result))
	require.True(t, result.Success)
	assert.Equal(t, []interface{}{2.0, 18.0, 7.0}, result.Data["interval"])
}

func TestMetricsExposition(t *testing.T) {
	srv, err := New(testConfig())
	require.NoError(t, err)
	defer srv.Close()

	// One request so the counters exist.
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "ain_http_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	srv, err := New(testConfig())
	require.NoError(t, err)
	defer srv.Close()

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// A supplied ID is echoed back.
	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))
}

func TestCORSHeaders(t *testing.T) {
	srv, err := New(testConfig())
	require.NoError(t, err)
	defer srv.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://example.com")
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitTrips(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 1

	srv, err := New(cfg)
	require.NoError(t, err)
	defer srv.Close()

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 429, w.Code)
}

func TestNewRejectsBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "shout"

	_, err := New(cfg)
	assert.Error(t, err)
}
