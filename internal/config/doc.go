// Package config loads, normalizes, and validates Reel configuration.
//
// Configuration is TOML, located at ~/.config/reel/config.toml or a
// reel.toml in the working directory, with repository defaults applied for
// anything unset. Load returns a fully expanded config (home-relative paths
// resolved) that has passed validation; components never re-check config
// invariants at runtime.
package config
