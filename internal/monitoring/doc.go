/*
Package monitoring provides Prometheus metrics for the interval service.

# Overview

Tracks HTTP requests, interval tool executions, sample generation, and
WebSocket activity. Each collector owns a private registry, so tests and
embedded servers can create several without registration conflicts.

# Usage

	// Create metrics collector
	metrics := monitoring.New()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time tool executions
	timer := monitoring.NewTimer(metrics, "interval.create")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

Expose the collector's registry via its handler:

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
