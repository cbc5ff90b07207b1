// Package utils provides input validation helpers shared by the HTTP and
// WebSocket boundaries.
//
// Validation happens at the edge so handlers can reject malformed payloads
// with a clear message before any service runs.
package utils
