// Package api contains the HTTP handlers for the interval service.
//
// Endpoints:
//   - GET  /               : liveness probe
//   - GET  /health         : registry stats and request counters
//   - GET  /tools          : tool catalog, ranked when ?q= is given
//   - POST /execute        : run one tool by ID
//   - GET  /export/samples : stream CSV draws from a distribution
//
// Execute responds 200 with a result envelope even when the tool
// reports a domain failure; transport and routing problems use 4xx/5xx.
// Sample exports honor Accept-Encoding: gzip.
package api
