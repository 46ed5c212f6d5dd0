// Package statusline composes and draws the bottom status bar.
package statusline

import (
	"fmt"
	"strings"

	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

// Hint is the static key binding summary shown at the right of the bar.
const Hint = " :help | :w :wq :q! | i Insert | s Save | o SaveAs | x Save+Exit | q Quit | c Copy "

// Untitled is displayed in place of a missing filename.
const Untitled = "[untitled]"

// Info is the session state shown in the bar.
type Info struct {
	// Filename is the display name; empty means untitled.
	Filename string
	// Line and Col are zero-based; they are displayed 1-based.
	Line     int
	Col      int
	Modified bool
	ReadOnly bool
	Mode     string
	Language string

	// Search is the active pattern, empty when no search is set.
	Search      string
	SearchCount int
}

// StatusLine renders the status bar.
type StatusLine struct {
	info  Info
	hint  string
	style core.Style
}

// New creates a status line with the default hint.
func New() *StatusLine {
	return &StatusLine{
		hint:  Hint,
		style: core.DefaultStyle().Reverse(),
	}
}

// Set replaces the displayed state.
func (s *StatusLine) Set(info Info) {
	s.info = info
}

// Info returns the displayed state.
func (s *StatusLine) Info() Info {
	return s.info
}

// SetHint replaces the key binding hint.
func (s *StatusLine) SetHint(hint string) {
	s.hint = hint
}

// SetStyle sets the bar style.
func (s *StatusLine) SetStyle(style core.Style) {
	s.style = style
}

// Text returns the left-hand status text.
func (s *StatusLine) Text() string {
	info := s.info
	name := info.Filename
	if name == "" {
		name = Untitled
	}
	modified := ""
	if info.Modified {
		modified = "(modified)"
	}
	if info.ReadOnly {
		modified = strings.TrimSpace(modified + " [RO]")
	}
	search := ""
	if info.Search != "" {
		search = fmt.Sprintf(" /%s (%d) ", info.Search, info.SearchCount)
	}
	return fmt.Sprintf(" %s  Ln %d,Col %d %s [%s] [%s] %s",
		name, info.Line+1, info.Col+1, modified, info.Mode, info.Language, search)
}

// Compose returns the full bar for the given width: the status text, padding,
// then the hint, cut to width.
func (s *StatusLine) Compose(width int) string {
	text := s.Text()
	pad := max(0, width-core.StringWidth(text)-core.StringWidth(s.hint))
	return core.PadRight(text+strings.Repeat(" ", pad)+s.hint, width)
}

// Render draws the status bar across row.
func (s *StatusLine) Render(b backend.Backend, row, width int) {
	backend.DrawString(b, 0, row, width, s.Compose(width), s.style)
}
