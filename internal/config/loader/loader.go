// Package loader reads configuration sources into nested maps.
//
// File loaders parse TOML or YAML from an afero file system; the format is
// chosen by extension. The environment loader maps LINEDIT_* variables to
// dotted setting paths. Maps from several sources are combined with
// DeepMerge, later sources winning.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// ParseFunc decodes a configuration document into a map.
type ParseFunc func(data []byte) (map[string]any, error)

// FileLoader loads configuration from a file.
type FileLoader struct {
	fs    afero.Fs
	path  string
	parse ParseFunc
}

// ForPath returns the loader for path based on its extension.
func ForPath(fsys afero.Fs, path string) (*FileLoader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return NewTOMLLoader(fsys, path), nil
	case ".yaml", ".yml":
		return NewYAMLLoader(fsys, path), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
}

// Path returns the file this loader reads.
func (l *FileLoader) Path() string {
	return l.path
}

// Load implements Loader.
func (l *FileLoader) Load() (map[string]any, error) {
	data, err := afero.ReadFile(l.fs, l.path)
	if err != nil {
		if isNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}

	config, err := l.parse(data)
	if err != nil {
		return nil, &ParseError{Path: l.path, Message: err.Error(), Err: err}
	}
	return config, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DeepMerge recursively merges src into dst.
// Values in src override values in dst.
// Maps are merged recursively; other types are replaced.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	if src == nil {
		return dst
	}

	for key, srcVal := range src {
		dstVal, exists := dst[key]
		if !exists {
			dst[key] = srcVal
			continue
		}

		// If both are maps, merge recursively
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dstVal.(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
		} else {
			// Otherwise, src replaces dst
			dst[key] = srcVal
		}
	}

	return dst
}
