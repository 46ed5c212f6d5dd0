package highlight

import "github.com/dshills/linedit/internal/renderer/core"

// Theme maps token types to styles.
type Theme struct {
	Name   string
	Tokens map[TokenType]core.Style
}

// DefaultTheme returns the editor's default colors.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",
		Tokens: map[TokenType]core.Style{
			TokenNone:    core.DefaultStyle(),
			TokenKeyword: core.NewStyle(core.ColorYellow).Bold(),
			TokenString:  core.NewStyle(core.ColorGreen),
		},
	}
}

// StyleFor returns the style for a token type, falling back to the default.
func (t *Theme) StyleFor(tt TokenType) core.Style {
	if s, ok := t.Tokens[tt]; ok {
		return s
	}
	return core.DefaultStyle()
}
