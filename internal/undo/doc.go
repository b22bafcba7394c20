// Package undo reverses the most recent organization session.
//
// The most recent session is defined purely by log contents: the group of
// rows with the lexicographically greatest timestamp. Undo moves each of that
// group's files from its logged destination back to its original path but
// leaves the log untouched, preserving the full append-only history.
package undo
