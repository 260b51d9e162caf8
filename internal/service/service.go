// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated requests from the handlers, applies the rules that need
// stored state, and calls the repositories. Repositories are taken as
// interfaces so tests can run the services against in-memory stores.
package service
