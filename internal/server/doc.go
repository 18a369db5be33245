// Package server assembles the interval service HTTP stack.
//
// It wires together:
//   - HTTP routing with Gin
//   - Middleware stack (recovery, request IDs, metrics, CORS, rate limiting)
//   - The service registry with the interval provider
//   - WebSocket streaming
//   - Prometheus metrics exposition
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Close()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
