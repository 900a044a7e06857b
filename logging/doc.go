// Package logging provides structured logging using Go's standard library
// log/slog. Logs are emitted in JSON form; the query tool directs them to
// standard error so that standard output stays reserved for rendered
// results.
package logging
