// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The merge order is env, flags, JSON; earlier sources win for fields they
// set. Defaults are applied after merging, and the final configuration is
// validated before use.
package config
