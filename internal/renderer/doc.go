// Package renderer paints editor frames.
//
// A frame is the visible part of the document with a line-number gutter,
// the cursor line filled with a distinct background, a separator rule and
// the status bar on the last two rows. Every frame first moves the viewport
// to follow the cursor, so the painted cursor is always inside the text
// region. A change of terminal size forces a full repaint.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	r.Render(buf, statusline.Info{Mode: "NORMAL", Language: "text"})
package renderer
