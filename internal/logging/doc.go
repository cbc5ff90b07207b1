// Package logging wraps zap with the backend's logger configuration.
//
// Production mode emits JSON to stdout; development mode uses a
// colorized console encoder with stacktraces enabled.
package logging
