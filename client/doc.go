// Package client provides a Go client for the asymmetric interval
// service HTTP API.
//
// Built on go-resty/resty for production reliability:
//   - Automatic retries with exponential backoff
//   - Connection pooling and keep-alive
//   - Context-based cancellation
//   - Rate limiting per client instance
//   - Circuit breaker around the whole API surface
//
// Typed helpers (Create, Compare, Distance, Sample, Fit) wrap the
// generic Execute call and turn tool failures into ToolError. Transport
// and routing problems surface as APIError; a tripped breaker returns
// ErrUnavailable.
//
// Example Usage:
//
//	c := client.New("http://localhost:8090").SetRateLimit(50)
//	iv, err := c.Create(ctx, 0, 10, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	probs, err := c.Compare(ctx, *iv, client.Interval{Lower: 2, Upper: 8, Expected: 5})
package client
