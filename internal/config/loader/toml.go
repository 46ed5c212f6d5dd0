package loader

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// NewTOMLLoader creates a loader for a TOML file.
func NewTOMLLoader(fsys afero.Fs, path string) *FileLoader {
	return &FileLoader{fs: fsys, path: path, parse: ParseTOML}
}

// ParseTOML decodes a TOML document.
func ParseTOML(data []byte) (map[string]any, error) {
	var config map[string]any
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return config, nil
}
