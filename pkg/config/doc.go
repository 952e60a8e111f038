// Package config handles configuration management for smartcd.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/smartcd/config.toml or $SMARTCD_CONFIG
//  3. SMARTCD_* environment variables
//  4. explicit overrides (command-line flags)
package config
