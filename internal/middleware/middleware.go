// Package middleware holds the echo middleware shared by every route:
// request ids, the request-scoped logger, tracing, metrics, rate limiting,
// static files, and the error handler that writes every error response.
package middleware
