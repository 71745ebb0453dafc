// Package ast defines the document tree shared by the parser and every renderer.
package ast

// Color is a closed set of semantic colors every renderer maps to its own
// concrete output (an ANSI-256 code, a CSS color, nothing at all for the
// format renderer).
type Color uint8

// Semantic color names. Renderers own the mapping from these to concrete
// output; the tree itself never carries a concrete color value.
const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// TextStyle carries style flags and optional colors for an inline text run.
// It is a value type: copying it copies the style, never shares state.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Fg        Color
	Bg        Color
}

// WithBold returns a copy of s with Bold set.
func (s TextStyle) WithBold(v bool) TextStyle { s.Bold = v; return s }

// WithItalic returns a copy of s with Italic set.
func (s TextStyle) WithItalic(v bool) TextStyle { s.Italic = v; return s }

// WithUnderline returns a copy of s with Underline set.
func (s TextStyle) WithUnderline(v bool) TextStyle { s.Underline = v; return s }

// WithStrike returns a copy of s with Strike set.
func (s TextStyle) WithStrike(v bool) TextStyle { s.Strike = v; return s }

// Equal reports whether s and o describe the same style.
func (s TextStyle) Equal(o TextStyle) bool {
	return s.Bold == o.Bold && s.Italic == o.Italic && s.Underline == o.Underline &&
		s.Strike == o.Strike && s.Fg == o.Fg && s.Bg == o.Bg
}

// IsPlain reports whether s carries no flags or colors at all.
func (s TextStyle) IsPlain() bool {
	return !s.Bold && !s.Italic && !s.Underline && !s.Strike && s.Fg == ColorNone && s.Bg == ColorNone
}
