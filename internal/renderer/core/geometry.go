package core

// ScreenPos is a zero-based screen position.
type ScreenPos struct {
	Row int
	Col int
}

// ScreenRect is a rectangular screen region. Bottom and Right are exclusive.
type ScreenRect struct {
	Top, Left, Bottom, Right int
}

// RectFromSize creates a rect from its top-left corner and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the rect width.
func (r ScreenRect) Width() int {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the rect height.
func (r ScreenRect) Height() int {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Contains returns true if pos is inside the rect.
func (r ScreenRect) Contains(pos ScreenPos) bool {
	return pos.Row >= r.Top && pos.Row < r.Bottom &&
		pos.Col >= r.Left && pos.Col < r.Right
}

// Centered returns a height x width rect centered in a screen of the given
// size. The rect is clamped to the screen.
func Centered(screenW, screenH, width, height int) ScreenRect {
	width = min(width, screenW)
	height = min(height, screenH)
	top := max(0, (screenH-height)/2)
	left := max(0, (screenW-width)/2)
	return RectFromSize(top, left, height, width)
}
