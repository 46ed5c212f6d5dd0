package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.py", Python},
		{"/a/b/app.JS", JavaScript},
		{"index.ts", TypeScript},
		{"x.c", C},
		{"run.sh", Shell},
		{"README.md", Markdown},
		{"notes", Text},
		{"archive.tar.gz", Text},
		{"", Text},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromPath(tt.path), tt.path)
	}
}

func TestExtensionRoundTrip(t *testing.T) {
	for _, tag := range Tags() {
		assert.Equal(t, tag, FromExtension(Extension(tag)), tag)
	}
	assert.Equal(t, ".txt", Extension("cobol"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Python, Normalize(Python))
	assert.Equal(t, Text, Normalize("klingon"))
	assert.Equal(t, Text, Normalize(""))
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "untitled.py", DefaultFilename(Python))
	assert.Equal(t, "untitled.txt", DefaultFilename(""))
}

func TestTagsOrder(t *testing.T) {
	tags := Tags()
	assert.Len(t, tags, 12)
	assert.Equal(t, Python, tags[0])
	assert.Equal(t, Text, tags[len(tags)-1])
}
