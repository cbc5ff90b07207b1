// Package http provides the REST handlers for the backend.
//
// Endpoints:
//   - GET  /                 - liveness check with version
//   - GET  /health           - registry and watcher stats
//   - GET  /services         - list registered services (optional category filter)
//   - POST /services/execute - run a single service tool
//
// Handlers validate input at the boundary and delegate to the service
// registry; filesystem errors surface in the result payload, not as
// HTTP failures.
package http
