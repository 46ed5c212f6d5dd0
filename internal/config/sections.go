package config

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// TabWidth is the number of spaces Tab inserts.
	TabWidth int `toml:"tab_width"`

	// IndentWidth is the extra indent added after a block opener.
	IndentWidth int `toml:"indent_width"`

	// UndoLimit is the maximum number of undo snapshots kept.
	UndoLimit int `toml:"undo_limit"`

	// EnforceReadOnly rejects edits in read-only sessions.
	EnforceReadOnly bool `toml:"enforce_read_only"`
}

// UIConfig holds screen interaction settings.
type UIConfig struct {
	// MessageDelayMS is how long informational messages stay up.
	MessageDelayMS int `toml:"message_delay_ms"`

	// WarningDelayMS is how long warnings stay up.
	WarningDelayMS int `toml:"warning_delay_ms"`

	// Mouse enables click-to-position.
	Mouse bool `toml:"mouse"`
}

// HistoryConfig selects the recent-files store.
type HistoryConfig struct {
	// Backend is "json", "sqlite" or "memory".
	Backend string `toml:"backend"`

	// Path is the store location. Empty means the default under $HOME.
	Path string `toml:"path"`

	// ListLimit is how many entries :ls shows.
	ListLimit int `toml:"list_limit"`
}

// LoggingConfig controls the session log.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level"`

	// File receives log output. Empty discards it.
	File string `toml:"file"`
}
