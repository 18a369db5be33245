// Package service provides the registry that routes tool calls to providers.
//
// A provider bundles related tools under a shared ID prefix; the registry
// dispatches "interval.add" to whichever provider registered as "interval".
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Free-text discovery with scoring
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(intervalProvider)
//	services := registry.Discover("interval arithmetic", 5)
//	result, err := registry.Execute(ctx, "interval.add", params)
package service
