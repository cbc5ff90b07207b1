// Package monitoring provides Prometheus metrics for the backend.
//
// Collected metrics:
//   - HTTP request counts and latency (per method, path, status)
//   - Service tool call counts, latency, and error codes
//   - Active directory watches and watch event counts
//   - WebSocket connection and message counts
//   - Uptime
//
// Each Metrics value owns its registry; expose it via Handler() on
// the /metrics route.
package monitoring
