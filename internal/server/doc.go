// Package server wires the backend together.
//
// Responsibilities:
//   - HTTP routing with Gin
//   - Middleware stack (recovery, metrics, CORS, rate limiting)
//   - Filesystem service construction from configuration
//   - Service provider registration
//   - Graceful shutdown of the HTTP listener and active watches
//
// Lifecycle:
//  1. Load configuration from environment
//  2. Build the logger (production or development)
//  3. Construct the filesystem service and register providers
//  4. Set up routes and middleware
//  5. Run until a shutdown signal arrives
package server
