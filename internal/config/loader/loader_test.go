package loader

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, p := range []string{"a.toml", "a.TOML", "a.yaml", "a.yml"} {
		_, err := ForPath(fs, p)
		assert.NoError(t, err, p)
	}
	_, err := ForPath(fs, "a.json")
	assert.Error(t, err)
}

func TestTOMLLoader(t *testing.T) {
	fs := afero.NewMemMapFs()
	body := `
[editor]
tab_width = 2

[keymap.normal]
w = "file.save"
`
	require.NoError(t, afero.WriteFile(fs, "/c.toml", []byte(body), 0o644))

	m, err := NewTOMLLoader(fs, "/c.toml").Load()
	require.NoError(t, err)
	editor := m["editor"].(map[string]any)
	assert.EqualValues(t, 2, editor["tab_width"])
	keymap := m["keymap"].(map[string]any)["normal"].(map[string]any)
	assert.Equal(t, "file.save", keymap["w"])
}

func TestYAMLLoader(t *testing.T) {
	fs := afero.NewMemMapFs()
	body := "ui:\n  mouse: false\nkeymap:\n  normal:\n    1: file.save\n"
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte(body), 0o644))

	m, err := NewYAMLLoader(fs, "/c.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, false, m["ui"].(map[string]any)["mouse"])
	normal := m["keymap"].(map[string]any)["normal"].(map[string]any)
	assert.Equal(t, "file.save", normal["1"])
}

func TestLoaderMissingFile(t *testing.T) {
	m, err := NewTOMLLoader(afero.NewMemMapFs(), "/none.toml").Load()
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoaderParseError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.toml", []byte("[editor\n"), 0o644))

	_, err := NewTOMLLoader(fs, "/bad.toml").Load()
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/bad.toml", pe.Path)
}

func TestEmptyYAML(t *testing.T) {
	m, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestEnvLoader(t *testing.T) {
	env := map[string]string{
		"LINEDIT_TAB_WIDTH":       "8",
		"LINEDIT_HISTORY_BACKEND": "sqlite",
		"LINEDIT_LOG_FILE":        "",
	}
	l := NewEnvLoaderWithMapping(DefaultEnvMapping(), func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	m, err := l.Load()
	require.NoError(t, err)
	assert.EqualValues(t, 8, m["editor"].(map[string]any)["tab_width"])
	assert.Equal(t, "sqlite", m["history"].(map[string]any)["backend"])
	assert.Equal(t, "", m["logging"].(map[string]any)["file"])
	_, hasLevel := m["logging"].(map[string]any)["level"]
	assert.False(t, hasLevel)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("yes"))
	assert.Equal(t, false, parseValue("OFF"))
	assert.Equal(t, int64(42), parseValue("42"))
	assert.Equal(t, "debug", parseValue("debug"))
	assert.Equal(t, "", parseValue(""))
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{"editor": map[string]any{"tab_width": 4, "undo_limit": 200}, "x": 1}
	src := map[string]any{"editor": map[string]any{"tab_width": 2}, "x": map[string]any{"y": 1}}

	got := DeepMerge(dst, src)
	editor := got["editor"].(map[string]any)
	assert.Equal(t, 2, editor["tab_width"])
	assert.Equal(t, 200, editor["undo_limit"])
	assert.Equal(t, map[string]any{"y": 1}, got["x"])

	assert.Equal(t, map[string]any{}, DeepMerge(nil, nil))
}
