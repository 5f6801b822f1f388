// Package config handles configuration management for rich-ascii.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and command-line flags.
//
// Sources are layered in this order, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/rich-ascii/config.toml
//  3. RICH_ASCII_* environment variables
//  4. command-line flags that were explicitly set
package config
