// Package main is the entry point for the asymmetric interval service.
//
// The server provides:
//   - REST API for interval arithmetic, distributions, comparison, and fitting
//   - Bulk sample export as CSV
//   - WebSocket streaming for large sample draws
//   - Prometheus metrics
//
// Configuration:
//   - Environment variables (AIN_ prefix, 12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8090
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
