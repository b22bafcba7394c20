// Package movelog persists the append-only history of file relocations.
//
// The store is a flat CSV file with one row per successful move. Rows are
// grouped into sessions by their shared timestamp; undo consumes the newest
// session but never truncates the file, so the log remains a full history.
package movelog
