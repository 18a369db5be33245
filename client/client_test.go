package client

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/asymintervals/internal/api"
	"github.com/GriffinCanCode/asymintervals/internal/monitoring"
	"github.com/GriffinCanCode/asymintervals/internal/providers/interval"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// newTestService starts the real handler stack and returns a client
// pointed at it.
func newTestService(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(interval.NewProvider(0)))
	handlers := api.NewHandlers(registry, monitoring.New(), interval.DefaultMaxSamples)

	router := gin.New()
	router.GET("/health", handlers.Health)
	router.GET("/tools", handlers.ListTools)
	router.POST("/execute", handlers.Execute)
	router.GET("/export/samples", handlers.ExportSamples)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return New(srv.URL)
}

func TestHealth(t *testing.T) {
	c := newTestService(t)

	out, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", out["status"])
}

func TestTools(t *testing.T) {
	c := newTestService(t)

	out, err := c.Tools(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, out["services"])
}

func TestDiscover(t *testing.T) {
	c := newTestService(t)

	out, err := c.Discover(context.Background(), "interval arithmetic", 3)
	require.NoError(t, err)
	assert.Equal(t, "interval arithmetic", out["query"])
	assert.NotEmpty(t, out["services"])
}

func TestExecute(t *testing.T) {
	c := newTestService(t)

	result, err := c.Execute(context.Background(), "interval.add", map[string]interface{}{
		"a": []float64{0, 10, 2},
		"b": []float64{2, 8, 5},
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, []interface{}{2.0, 18.0, 7.0}, result.Data["interval"])
}

func TestExecuteFailureEnvelope(t *testing.T) {
	c := newTestService(t)

	result, err := c.Execute(context.Background(), "interval.bogus", nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage(), "unknown tool")
}

func TestCreate(t *testing.T) {
	c := newTestService(t)

	iv, err := c.Create(context.Background(), 0, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, &Interval{Lower: 0, Upper: 10, Expected: 2}, iv)
}

func TestCreateInvalid(t *testing.T) {
	c := newTestService(t)

	_, err := c.Create(context.Background(), 5, 1, 3)
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "interval.create", toolErr.ToolID)
	assert.Contains(t, toolErr.Message, "exceeds")
}

func TestCompare(t *testing.T) {
	c := newTestService(t)
	iv := Interval{Lower: 0, Upper: 10, Expected: 2}

	probs, err := c.Compare(context.Background(), iv, iv)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs["gt"], 1e-9)
	assert.InDelta(t, 0.5, probs["lt"], 1e-9)
	for _, key := range []string{"gt", "ge", "lt", "le", "eq"} {
		assert.Contains(t, probs, key)
	}
}

func TestDistance(t *testing.T) {
	c := newTestService(t)
	a := Interval{Lower: 0, Upper: 10, Expected: 5}
	b := Interval{Lower: 2, Upper: 12, Expected: 7}

	// Pure translation moves every quantile by the same amount.
	d, err := c.Distance(context.Background(), a, b, "")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-9)

	d, err = c.Distance(context.Background(), a, b, "w1")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, 1e-9)
}

func TestSample(t *testing.T) {
	c := newTestService(t)
	iv := Interval{Lower: 0, Upper: 10, Expected: 2}
	seed := int64(42)

	first, err := c.Sample(context.Background(), iv, 50, &seed)
	require.NoError(t, err)
	require.Len(t, first, 50)
	for _, v := range first {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 10.0)
	}

	second, err := c.Sample(context.Background(), iv, 50, &seed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFit(t *testing.T) {
	c := newTestService(t)

	iv, err := c.Fit(context.Background(), []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, &Interval{Lower: 1, Upper: 5, Expected: 3}, iv)
}

func TestSampleCSV(t *testing.T) {
	c := newTestService(t)
	seed := int64(7)

	var buf bytes.Buffer
	err := c.SampleCSV(context.Background(), Interval{Lower: 0, Upper: 10, Expected: 2}, 20, &seed, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 21)
	assert.Equal(t, []string{"index", "value"}, records[0])
}

func TestSampleCSVBadParams(t *testing.T) {
	c := newTestService(t)

	var buf bytes.Buffer
	err := c.SampleCSV(context.Background(), Interval{Lower: 5, Upper: 1, Expected: 3}, 20, nil, &buf)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUserAgentHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"agent":%q}`, r.Header.Get("User-Agent"))
	}))
	defer srv.Close()

	out, err := New(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "asymintervals-client/1.0", out["agent"])
}

func TestAPIErrorOnUnknownService(t *testing.T) {
	c := newTestService(t)

	_, err := c.Execute(context.Background(), "nope.add", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "not found")
}

func TestBreakerTrips(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := c.Health(ctx)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	}

	// Tripped: the next call never reaches the server.
	_, err := c.Health(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int64(10), hits.Load())
}

func TestRateLimiterHonorsContext(t *testing.T) {
	c := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Health(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}
