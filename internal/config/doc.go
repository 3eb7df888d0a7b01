// Package config provides the vimmapper settings.
//
// Settings are resolved from four layers, later layers overriding earlier
// ones:
//
//  1. Built-in defaults (Default)
//  2. The TOML configuration file (~/.config/vimmapper/config.toml or --config)
//  3. VIMMAPPER_* environment variables
//  4. Command-line flags, applied by the caller
//
// A configuration file looks like:
//
//	declaration = "~/.config/nvim/managed_mappings.lua"
//	output = "~/.config/nvim/managed_mappings.vim"
//	format = "lua"
//	log_level = "info"
//	timeout = "5s"
//
//	[watch]
//	debounce = "200ms"
//
// Durations are Go duration strings; bare integers are seconds.
// Call Finalize after applying flags to expand ~ and validate.
package config
