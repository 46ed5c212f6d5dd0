package loader

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// NewYAMLLoader creates a loader for a YAML file.
func NewYAMLLoader(fsys afero.Fs, path string) *FileLoader {
	return &FileLoader{fs: fsys, path: path, parse: ParseYAML}
}

// ParseYAML decodes a YAML document. The top level must be a mapping.
func ParseYAML(data []byte) (map[string]any, error) {
	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return normalize(config).(map[string]any), nil
}

// normalize converts the map[any]any values yaml produces for non-string
// keys into map[string]any so every source has the same shape.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return map[string]any{}
		}
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
