package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/asymintervals/internal/resilience"
)

// ErrUnavailable is returned while the circuit breaker refuses calls.
var ErrUnavailable = errors.New("interval service unavailable: circuit breaker open")

// APIError is a non-2xx response from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// ToolError is a domain failure reported by a tool. The transport
// succeeded; the operation itself was rejected.
type ToolError struct {
	ToolID  string
	Message string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.ToolID, e.Message)
}

// Result is the tool execution envelope returned by POST /execute.
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// ErrorMessage returns the failure message, or "".
func (r *Result) ErrorMessage() string {
	if r.Error != nil {
		return *r.Error
	}
	return ""
}

// Interval is the wire form of an asymmetric interval.
type Interval struct {
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Expected float64 `json:"expected"`
}

// Client wraps resty with rate limiting and circuit breaker protection
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	breaker *resilience.Breaker
}

// New creates a production-ready client for the service at baseURL.
func New(baseURL string) *Client {
	// Borrow the pooled transport from retryablehttp; resty owns retries.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 30 * time.Second
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(30*time.Second).
		SetHeader("User-Agent", "asymintervals-client/1.0")
	restyClient.SetTransport(retryClient.HTTPClient.Transport)
	restyClient.JSONMarshal = sonic.Marshal
	restyClient.JSONUnmarshal = sonic.Unmarshal

	breaker := resilience.New("interval-api", resilience.Settings{
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			// Lenient: trip on 10+ consecutive failures or a >70%
			// failure rate across 20+ requests.
			return counts.ConsecutiveFailures >= 10 ||
				(counts.Requests >= 20 && float64(counts.TotalFailures)/float64(counts.Requests) > 0.7)
		},
	})

	return &Client{
		resty:   restyClient,
		limiter: rate.NewLimiter(rate.Inf, 0),
		breaker: breaker,
	}
}

// SetTimeout configures the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) *Client {
	c.resty.SetTimeout(d)
	return c
}

// SetRetry configures retry behavior.
func (c *Client) SetRetry(maxRetries int, minWait, maxWait time.Duration) *Client {
	c.resty.SetRetryCount(maxRetries).
		SetRetryWaitTime(minWait).
		SetRetryMaxWaitTime(maxWait)
	return c
}

// SetRateLimit caps outgoing requests per second. Zero or negative
// removes the cap.
func (c *Client) SetRateLimit(rps float64) *Client {
	if rps <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	} else {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
	return c
}

// do runs one request through the rate limiter and circuit breaker.
// Responses of 500 and above count as breaker failures.
func (c *Client) do(ctx context.Context, build func(r *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	var resp *resty.Response
	err := c.breaker.Do(func() error {
		r, err := build(c.resty.R().SetContext(ctx))
		if err != nil {
			return err
		}
		resp = r
		if r.StatusCode() >= http.StatusInternalServerError {
			return &APIError{Status: r.StatusCode(), Message: errorMessage(r)}
		}
		return nil
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return nil, ErrUnavailable
	}
	if err != nil {
		return resp, err
	}
	if resp.IsError() {
		return resp, &APIError{Status: resp.StatusCode(), Message: errorMessage(resp)}
	}
	return resp, nil
}

func errorMessage(resp *resty.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}
	return resp.Status()
}

// Health returns the /health payload.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	_, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&out).Get("/health")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Tools lists the registered services and their tools.
func (c *Client) Tools(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	_, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&out).Get("/tools")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Discover ranks services against a free-text query.
func (c *Client) Discover(ctx context.Context, query string, limit int) (map[string]interface{}, error) {
	var out map[string]interface{}
	_, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		r.SetQueryParam("q", query)
		if limit > 0 {
			r.SetQueryParam("limit", strconv.Itoa(limit))
		}
		return r.SetResult(&out).Get("/tools")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Execute runs one tool and returns its result envelope. A failed tool
// still returns a nil error; check Result.Success.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*Result, error) {
	var result Result
	_, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetBody(map[string]interface{}{"tool_id": toolID, "params": params}).
			SetResult(&result).
			Post("/execute")
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// call runs a tool and unwraps the envelope, turning domain failures
// into ToolError.
func (c *Client) call(ctx context.Context, toolID string, params map[string]interface{}) (map[string]interface{}, error) {
	result, err := c.Execute(ctx, toolID, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, &ToolError{ToolID: toolID, Message: result.ErrorMessage()}
	}
	return result.Data, nil
}

// Create validates an interval server-side and returns its wire form.
func (c *Client) Create(ctx context.Context, lower, upper, expected float64) (*Interval, error) {
	data, err := c.call(ctx, "interval.create", map[string]interface{}{
		"lower":    lower,
		"upper":    upper,
		"expected": expected,
	})
	if err != nil {
		return nil, err
	}
	var iv Interval
	if err := decodeData(data, &iv); err != nil {
		return nil, err
	}
	return &iv, nil
}

// Compare returns the probabilities of all five order relations
// between a and b.
func (c *Client) Compare(ctx context.Context, a, b Interval) (map[string]float64, error) {
	data, err := c.call(ctx, "interval.compare", map[string]interface{}{
		"a": a,
		"b": b,
	})
	if err != nil {
		return nil, err
	}
	var out map[string]float64
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Distance computes the Wasserstein distance between a and b. Metric
// is "w1", "w2", or "winf"; empty selects "w2".
func (c *Client) Distance(ctx context.Context, a, b Interval, metric string) (float64, error) {
	if metric == "" {
		metric = "w2"
	}
	data, err := c.call(ctx, "interval.dist."+metric, map[string]interface{}{
		"a": a,
		"b": b,
	})
	if err != nil {
		return 0, err
	}
	var out struct {
		Result float64 `json:"result"`
	}
	if err := decodeData(data, &out); err != nil {
		return 0, err
	}
	return out.Result, nil
}

// Sample draws count values from the interval's distribution. A
// non-nil seed makes the draw reproducible.
func (c *Client) Sample(ctx context.Context, iv Interval, count int, seed *int64) ([]float64, error) {
	params := map[string]interface{}{
		"interval": iv,
		"count":    count,
	}
	if seed != nil {
		params["seed"] = *seed
	}
	data, err := c.call(ctx, "interval.sample", params)
	if err != nil {
		return nil, err
	}
	var out struct {
		Values []float64 `json:"values"`
	}
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	return out.Values, nil
}

// Fit estimates an interval from observed sample values.
func (c *Client) Fit(ctx context.Context, values []float64) (*Interval, error) {
	data, err := c.call(ctx, "interval.fit.sample", map[string]interface{}{
		"values": values,
	})
	if err != nil {
		return nil, err
	}
	var iv Interval
	if err := decodeData(data, &iv); err != nil {
		return nil, err
	}
	return &iv, nil
}

// SampleCSV streams count samples as CSV into w.
func (c *Client) SampleCSV(ctx context.Context, iv Interval, count int, seed *int64, w io.Writer) error {
	resp, err := c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		r.SetDoNotParseResponse(true).
			SetQueryParam("lower", formatFloat(iv.Lower)).
			SetQueryParam("upper", formatFloat(iv.Upper)).
			SetQueryParam("expected", formatFloat(iv.Expected)).
			SetQueryParam("count", strconv.Itoa(count))
		if seed != nil {
			r.SetQueryParam("seed", strconv.FormatInt(*seed, 10))
		}
		return r.Get("/export/samples")
	})
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return err
	}
	body := resp.RawBody()
	defer body.Close()

	_, err = io.Copy(w, body)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func decodeData(data map[string]interface{}, out interface{}) error {
	raw, err := sonic.Marshal(data)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(raw, out)
}
