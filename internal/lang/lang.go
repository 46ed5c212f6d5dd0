// Package lang maps language tags to file extensions and back.
package lang

import (
	"path/filepath"
	"strings"
)

// Language tags.
const (
	Python     = "python"
	JavaScript = "javascript"
	TypeScript = "typescript"
	C          = "c/c++"
	Java       = "java"
	HTML       = "html"
	CSS        = "css"
	JSON       = "json"
	XML        = "xml"
	Shell      = "bash/sh"
	Markdown   = "markdown"
	Text       = "text"
)

// table is ordered for display.
var table = []struct {
	tag string
	ext string
}{
	{Python, ".py"},
	{JavaScript, ".js"},
	{TypeScript, ".ts"},
	{C, ".c"},
	{Java, ".java"},
	{HTML, ".html"},
	{CSS, ".css"},
	{JSON, ".json"},
	{XML, ".xml"},
	{Shell, ".sh"},
	{Markdown, ".md"},
	{Text, ".txt"},
}

// Tags returns all known language tags in display order.
func Tags() []string {
	tags := make([]string, len(table))
	for i, e := range table {
		tags[i] = e.tag
	}
	return tags
}

// Known reports whether tag is in the table.
func Known(tag string) bool {
	for _, e := range table {
		if e.tag == tag {
			return true
		}
	}
	return false
}

// Extension returns the file extension for tag, including the dot.
// Unknown tags get the plain text extension.
func Extension(tag string) string {
	for _, e := range table {
		if e.tag == tag {
			return e.ext
		}
	}
	return ".txt"
}

// FromExtension returns the tag for ext. Unknown extensions are plain text.
func FromExtension(ext string) string {
	ext = strings.ToLower(ext)
	for _, e := range table {
		if e.ext == ext {
			return e.tag
		}
	}
	return Text
}

// FromPath infers the language tag from the suffix of path.
func FromPath(path string) string {
	if path == "" {
		return Text
	}
	return FromExtension(filepath.Ext(path))
}

// Normalize returns tag if it is known, or Text otherwise.
func Normalize(tag string) string {
	if Known(tag) {
		return tag
	}
	return Text
}

// DefaultFilename is the name suggested when saving an untitled document.
func DefaultFilename(tag string) string {
	return "untitled" + Extension(tag)
}
