// Package config loads and validates sortd's TOML configuration.
//
// Load applies defaults, expands ~ in path fields, and normalizes values so
// the rest of the program never sees an unresolved or empty path. The file is
// optional: with no config present the defaults stand and CLI flags remain
// the only overrides.
package config
