// Package repository holds the SQL behind every record type and the Redis
// cache for blog stats.
//
// Missing rows are returned as sqlerr.NotFound(table) so the error handler
// can name the entity in its 404.
package repository
