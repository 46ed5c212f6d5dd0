package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/dshills/linedit/internal/config/loader"
	"github.com/dshills/linedit/internal/input/key"
)

// History backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Keymap sections other than mode names.
const KeymapGlobal = "global"

var (
	validBackends = map[string]bool{BackendJSON: true, BackendSQLite: true, BackendMemory: true}
	validLevels   = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validModes    = map[string]bool{"normal": true, "insert": true, KeymapGlobal: true}
)

// Config is the complete editor configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
	History HistoryConfig `toml:"history"`
	Logging LoggingConfig `toml:"logging"`

	// Keymap maps a mode ("normal", "insert", "global") to key -> action
	// overrides.
	Keymap map[string]map[string]string `toml:"keymap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:    4,
			IndentWidth: 4,
			UndoLimit:   200,
		},
		UI: UIConfig{
			MessageDelayMS: 1000,
			WarningDelayMS: 2000,
			Mouse:          true,
		},
		History: HistoryConfig{
			Backend:   BackendJSON,
			ListLimit: 50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, the file at path (skipped when path
// is empty or the file is missing) and env, then validates it.
func Load(fsys afero.Fs, path string, env loader.Loader) (*Config, error) {
	var sources []loader.Loader
	if path != "" {
		fl, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, fl)
	}
	if env != nil {
		sources = append(sources, env)
	}

	merged := map[string]any{}
	for _, src := range sources {
		m, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg, err := Decode(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode applies a merged settings map on top of the defaults.
func Decode(settings map[string]any) (*Config, error) {
	cfg := Default()
	if len(settings) == 0 {
		return cfg, nil
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	positive := []struct {
		path  string
		value int
	}{
		{"editor.tab_width", c.Editor.TabWidth},
		{"editor.indent_width", c.Editor.IndentWidth},
		{"editor.undo_limit", c.Editor.UndoLimit},
		{"history.list_limit", c.History.ListLimit},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ValidationError{Path: p.path, Message: fmt.Sprintf("must be positive, got %d", p.value)}
		}
	}
	if c.Editor.TabWidth > 16 {
		return &ValidationError{Path: "editor.tab_width", Message: "must be at most 16"}
	}
	if c.UI.MessageDelayMS < 0 {
		return &ValidationError{Path: "ui.message_delay_ms", Message: "must not be negative"}
	}
	if c.UI.WarningDelayMS < 0 {
		return &ValidationError{Path: "ui.warning_delay_ms", Message: "must not be negative"}
	}
	if !validBackends[c.History.Backend] {
		return &ValidationError{Path: "history.backend", Message: fmt.Sprintf("unknown backend %q", c.History.Backend)}
	}
	if !validLevels[c.Logging.Level] {
		return &ValidationError{Path: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}

	modes := make([]string, 0, len(c.Keymap))
	for m := range c.Keymap {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	for _, m := range modes {
		if !validModes[m] {
			return &ValidationError{Path: "keymap." + m, Message: "unknown mode"}
		}
		for spec := range c.Keymap[m] {
			if _, err := key.Parse(spec); err != nil {
				return &ValidationError{Path: "keymap." + m, Message: err.Error()}
			}
		}
	}
	return nil
}

// MessageDelay returns the informational message duration.
func (c *Config) MessageDelay() time.Duration {
	return time.Duration(c.UI.MessageDelayMS) * time.Millisecond
}

// WarningDelay returns the warning message duration.
func (c *Config) WarningDelay() time.Duration {
	return time.Duration(c.UI.WarningDelayMS) * time.Millisecond
}

// HistoryPath returns the recent-files store location, defaulting to a
// dot file in home.
func (c *Config) HistoryPath(home string) string {
	if c.History.Path != "" {
		return c.History.Path
	}
	name := ".linedit_history.json"
	if c.History.Backend == BackendSQLite {
		name = ".linedit_history.db"
	}
	return filepath.Join(home, name)
}
