// Package sqlerr turns database driver errors into client errors.
//
// Constraint violations become 400s with readable messages, missing rows
// become 404s, and anything unrecognized becomes a generic 500.
package sqlerr
