// Package middleware holds the global and route-specific Echo middleware:
// authentication (Clerk), request ids, request logging, tracing, CORS,
// rate limiting, panic recovery and the global error handler.
package middleware
