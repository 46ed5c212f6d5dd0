// Package clipboard provides the clipboard collaborator the editor copies
// documents to.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard can be reached.
var ErrUnavailable = errors.New("clipboard: not available")

// Clipboard receives copied text.
type Clipboard interface {
	// WriteAll replaces the clipboard content.
	WriteAll(text string) error

	// ReadAll returns the clipboard content.
	ReadAll() (string, error)
}

// System is the desktop clipboard.
type System struct{}

// NewSystem returns the desktop clipboard, or Unavailable when the
// platform has no clipboard utility.
func NewSystem() Clipboard {
	if clipboard.Unsupported {
		return Unavailable{}
	}
	return System{}
}

// WriteAll implements Clipboard.
func (System) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// ReadAll implements Clipboard.
func (System) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Join(ErrUnavailable, err)
	}
	return text, nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// WriteAll implements Clipboard.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// ReadAll implements Clipboard.
func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Writes returns how many times WriteAll was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Unavailable fails every operation with ErrUnavailable.
type Unavailable struct{}

// WriteAll implements Clipboard.
func (Unavailable) WriteAll(string) error {
	return ErrUnavailable
}

// ReadAll implements Clipboard.
func (Unavailable) ReadAll() (string, error) {
	return "", ErrUnavailable
}
