// Package ws streams interval samples and tool results over WebSocket.
//
// Sampling answers in batches so large draws start arriving while the
// rest is still being generated; every other tool routes through the
// same registry the HTTP API uses.
//
// Message Types (Client → Server):
//   - sample: Stream draws from an interval distribution
//   - execute: Run one registry tool
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Connection greeting
//   - batch: One chunk of sampled values
//   - complete: Sampling finished
//   - result: Tool execution outcome
//   - pong: Keep-alive reply
//   - error: Error occurred
//
// Example Usage:
//
//	handler := ws.NewHandler(registry, metrics, logger, 100000, 256)
//	router.GET("/stream", handler.HandleConnection)
package ws
