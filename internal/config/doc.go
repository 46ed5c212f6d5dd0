// Package config provides the editor's typed configuration.
//
// Configuration is assembled from three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file
//  3. LINEDIT_* environment variables
//
// The merged layers are decoded strictly into Config, so unknown keys and
// wrongly typed values are reported rather than ignored. Validate checks
// ranges and enumerations.
//
// Example config.toml:
//
//	[editor]
//	tab_width = 4
//	undo_limit = 500
//
//	[history]
//	backend = "sqlite"
//
//	[keymap.normal]
//	w = "file.save"
package config
