// Package services defines the error taxonomy shared by the organize and
// undo paths.
//
// Precondition failures (missing target, missing or empty log) abort an
// operation before any mutation; everything else is a per-file failure that
// the caller reports and skips. Wrap tags errors with a sentinel marker so
// the CLI can classify without string matching.
package services
