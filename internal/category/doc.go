// Package category owns the fixed extension-to-folder routing table.
//
// The table is process-wide, read-only data; classification is a pure lookup
// with a catch-all fallback so callers never handle a miss. Folder names are
// observable output (they become subdirectories of the organized target), so
// changes here change the on-disk contract.
package category
