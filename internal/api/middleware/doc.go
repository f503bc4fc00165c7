// Package middleware provides HTTP middleware for the calculator API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing so the browser UI can call the API
//   - RateLimit: Per-IP token bucket rate limiting with idle eviction
//   - BodyLimit: Request body size cap
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
//	router.Use(middleware.BodyLimit(64 << 10))
package middleware
