// Package middleware provides HTTP middleware for the backend router.
//
//   - CORS: cross-origin support for the desktop UI origin
//   - RateLimit: per-IP token bucket limiting with idle eviction
//   - GlobalRateLimit: one shared bucket for the whole server
//
// Example:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(cfg.RateLimit))
package middleware
