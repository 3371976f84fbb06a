// Package config loads the shell's configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The TOML file: an explicit path, or ~/.config/quartercade/config.toml
//  3. QUARTERCADE_* environment variables (envconfig)
//
// Command-line flags are applied by cmd/quartercade on top of the result.
// A missing config file is not an error.
//
// # TOML Format
//
//	stats_url      = "127.0.0.1:7488"
//	stats_poll_ms  = 1000
//	device_glob    = "/dev/input/js*"
//	log_level      = "info"
//	log_dev        = false
//	log_file       = "~/.local/state/quartercade/quartercade.log"
//	fast_repeat_ms = 140
//	slow_repeat_ms = 180
//	grid_columns   = 3
//
//	[[modules]]
//	id = "steam"
//	label = "Steam"
//	caption = "PC library"
//
//	[[library]]
//	id = "6"
//	name = "Stardew Valley"
//	platform = "GOG"
//	hours = 107.5
//
// Every field is optional. Zero or negative durations and column counts
// below 2 keep their defaults. Declaring any [[modules]] or [[library]]
// table replaces the built-in registries as a whole; the result must pass
// catalog validation.
//
// # Environment
//
//   - QUARTERCADE_STATS_URL: monitor address; empty disables telemetry
//   - QUARTERCADE_DEVICE_GLOB: joystick node pattern
//   - QUARTERCADE_LOG_LEVEL, QUARTERCADE_LOG_DEV, QUARTERCADE_LOG_FILE
//
// Tilde expansion is applied to the config path and log_file.
package config
