// Package errs defines the error types returned to API clients.
//
// Every failure that reaches a client is an *HTTPError, so clients always see
// the same JSON shape with the human message under the "error" key.
package errs
