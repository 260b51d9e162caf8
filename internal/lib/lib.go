// Package lib holds supporting code that does not belong to a single layer:
// the blog aggregation helpers, background jobs and small utilities.
package lib
