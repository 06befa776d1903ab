// Package middleware provides HTTP middleware for the math search API.
//
//   - CORS: cross-origin access for the search page, backed by gin-contrib/cors
//   - RateLimit: per-IP token buckets (x/time/rate) with idle client eviction
//   - GlobalRateLimit: one bucket shared by every client
//   - BodyLimit: request body size cap
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.Origins...)))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
//	router.Use(middleware.BodyLimit(middleware.DefaultMaxBodyBytes))
package middleware
