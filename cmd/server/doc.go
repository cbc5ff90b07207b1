// Package main is the entry point for the CodeForge backend server.
//
// The server exposes filesystem operations to the desktop UI:
//   - REST API for service tool execution
//   - WebSocket streaming of directory watch events
//   - Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8000
//
// Signals:
//   - SIGINT, SIGTERM: graceful shutdown, stops all active watches
package main
