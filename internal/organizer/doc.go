// Package organizer orchestrates one organization session over a target
// directory.
//
// A session enumerates the target's immediate children, fingerprints each
// regular file, classifies it by extension, moves it into its category
// folder, and appends one log row per successful move. All rows of a session
// share one timestamp so undo can reverse the session as a unit. Per-file
// failures never abort the session; the design favors as much progress as
// possible over all-or-nothing transactions.
package organizer
