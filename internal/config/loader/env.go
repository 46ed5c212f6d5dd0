package loader

import (
	"os"
	"strconv"
	"strings"
)

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]string // Env var -> config path
	lookup  LookupFunc
}

// DefaultEnvMapping returns the default environment variable mappings.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		"LINEDIT_LOG_LEVEL":       "logging.level",
		"LINEDIT_LOG_FILE":        "logging.file",
		"LINEDIT_TAB_WIDTH":       "editor.tab_width",
		"LINEDIT_UNDO_LIMIT":      "editor.undo_limit",
		"LINEDIT_HISTORY_BACKEND": "history.backend",
		"LINEDIT_HISTORY_PATH":    "history.path",
	}
}

// NewEnvLoader creates a loader over the process environment with the
// default mappings.
func NewEnvLoader() *EnvLoader {
	return NewEnvLoaderWithMapping(DefaultEnvMapping(), os.LookupEnv)
}

// NewEnvLoaderWithMapping creates a loader with custom mappings and lookup.
func NewEnvLoaderWithMapping(mapping map[string]string, lookup LookupFunc) *EnvLoader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvLoader{mapping: mapping, lookup: lookup}
}

// Load implements Loader.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}
	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	lower := strings.ToLower(s)
	if lower == "true" || lower == "yes" || lower == "on" {
		return true
	}
	if lower == "false" || lower == "no" || lower == "off" {
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	// Navigate/create intermediate maps
	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}
