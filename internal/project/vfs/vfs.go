// Package vfs reads and writes documents through an afero file system.
//
// The editor never touches the disk directly. Sessions hold an FS, which
// is the OS file system in production and an afero memory file system in
// tests. Documents keep the encoding they were read with so a save writes
// the same byte format back.
package vfs

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultPerm is the permission used for newly created documents.
const DefaultPerm fs.FileMode = 0o644

// ErrNotExist is returned when a document does not exist.
var ErrNotExist = fs.ErrNotExist

// Document is file content decoded to UTF-8.
type Document struct {
	Path     string
	Text     string
	Encoding Encoding
}

// FS is a document store over an afero file system.
type FS struct {
	fs afero.Fs
}

// New wraps an afero file system.
func New(fsys afero.Fs) *FS {
	return &FS{fs: fsys}
}

// NewOS returns an FS over the operating system's file system.
func NewOS() *FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an FS backed by memory.
func NewMemory() *FS {
	return New(afero.NewMemMapFs())
}

// Afero returns the underlying file system.
func (f *FS) Afero() afero.Fs {
	return f.fs
}

// Exists reports whether path exists and is a regular file.
func (f *FS) Exists(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Read loads and decodes the document at path.
func (f *FS) Read(path string) (Document, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return Document{}, err
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%s: is a directory", path)
	}
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return Document{}, err
	}
	text, enc, err := Decode(data)
	if err != nil {
		return Document{}, err
	}
	return Document{Path: path, Text: text, Encoding: enc}, nil
}

// Write encodes and writes the document, creating parent directories.
func (f *FS) Write(doc Document) error {
	enc := doc.Encoding
	if enc == "" {
		enc = EncodingUTF8
	}
	data, err := Encode(doc.Text, enc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(doc.Path); dir != "." && dir != "" {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(f.fs, doc.Path, data, DefaultPerm)
}

// IsNotExist reports whether err means the document is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
