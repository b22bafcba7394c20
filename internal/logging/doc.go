// Package logging assembles the structured slog loggers used across sortd.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes attr helpers plus a no-op logger so components log with a uniform
// shape. Prefer these constructors over hand-rolled slog setup.
package logging
