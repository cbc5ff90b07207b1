// Package config provides 12-factor configuration management for the
// CodeForge backend.
//
// Configuration is loaded from environment variables with sensible
// defaults. CLI flags can override environment variables for
// development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Filesystem: operation defaults and watch buffering
//   - Logging: log level and output format
//   - RateLimit: per-IP rate limiting configuration
//
// Environment Variables:
//   - PORT, HOST
//   - FS_OVERWRITE, FS_CREATE_PARENT_DIRS, FS_PRESERVE_PERMISSIONS,
//     FS_FOLLOW_SYMLINKS, FS_WATCH_BUFFER
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
