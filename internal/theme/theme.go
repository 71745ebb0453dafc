// Package theme maps the document tree's closed set of semantic colors
// (ast.Color) to concrete terminal output, and carries the box-drawing
// glyphs the console renderer frames code blocks, alerts, and tables
// with. The range renderer uses its own fixed glyphs.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
)

// Palette maps every ast.Color to a concrete lipgloss color. Renderers
// never hardcode ANSI codes; they ask a Palette.
type Palette struct {
	colors [17]lipgloss.Color // indexed by ast.Color

	Heading1 lipgloss.Color
	Heading2 lipgloss.Color
	Heading3 lipgloss.Color
	Heading4 lipgloss.Color
	Border   lipgloss.Color
	Muted    lipgloss.Color

	AlertNote    lipgloss.Color
	AlertTip     lipgloss.Color
	AlertWarning lipgloss.Color
	AlertCaution lipgloss.Color
	AlertDefault lipgloss.Color
}

// BoxStyle is the 11-string set of box-drawing glyphs spec.md §6 calls
// for: four corners, the two edges, four T-junctions, and a cross.
type BoxStyle struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	TeeDown     string
	TeeUp       string
	TeeRight    string
	TeeLeft     string
	Cross       string
}

// DefaultBoxStyle is a Unicode rounded box, matching the teacher's
// preference for Unicode box-drawing over ASCII (internal/tui/table.go).
var DefaultBoxStyle = BoxStyle{
	TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	Horizontal: "─", Vertical: "│",
	TeeDown: "┬", TeeUp: "┴", TeeRight: "├", TeeLeft: "┤",
	Cross: "┼",
}

func mk(fg, bg, succ, err, warn, hdr, muted, border string) *Palette {
	p := &Palette{
		Heading1: lipgloss.Color(hdr), Heading2: lipgloss.Color(succ),
		Heading3: lipgloss.Color(fg), Heading4: lipgloss.Color(fg),
		Border: lipgloss.Color(border), Muted: lipgloss.Color(muted),
		AlertNote: lipgloss.Color("33"), AlertTip: lipgloss.Color(succ),
		AlertWarning: lipgloss.Color(warn), AlertCaution: lipgloss.Color(err),
		AlertDefault: lipgloss.Color(muted),
	}
	p.colors[ast.ColorNone] = lipgloss.Color("")
	p.colors[ast.ColorBlack] = lipgloss.Color("0")
	p.colors[ast.ColorRed] = lipgloss.Color(err)
	p.colors[ast.ColorGreen] = lipgloss.Color(succ)
	p.colors[ast.ColorYellow] = lipgloss.Color(warn)
	p.colors[ast.ColorBlue] = lipgloss.Color("33")
	p.colors[ast.ColorMagenta] = lipgloss.Color("125")
	p.colors[ast.ColorCyan] = lipgloss.Color("37")
	p.colors[ast.ColorWhite] = lipgloss.Color("7")
	p.colors[ast.ColorBrightBlack] = lipgloss.Color(muted)
	p.colors[ast.ColorBrightRed] = lipgloss.Color("196")
	p.colors[ast.ColorBrightGreen] = lipgloss.Color("46")
	p.colors[ast.ColorBrightYellow] = lipgloss.Color("226")
	p.colors[ast.ColorBrightBlue] = lipgloss.Color("69")
	p.colors[ast.ColorBrightMagenta] = lipgloss.Color("213")
	p.colors[ast.ColorBrightCyan] = lipgloss.Color("87")
	p.colors[ast.ColorBrightWhite] = lipgloss.Color("231")
	return p
}

// Default, Dark, Light, Solarized and Monokai mirror the teacher's theme
// registry (internal/theme/theme.go), adapted from a TUI accent palette
// to the document-renderer's closed Color enum.
var (
	Default   = mk("252", "", "42", "196", "3", "99", "240", "240")
	Dark      = mk("231", "", "46", "196", "226", "141", "243", "238")
	Light     = mk("16", "", "28", "160", "136", "55", "246", "250")
	Solarized = mk("230", "", "64", "160", "136", "33", "240", "235")
	Monokai   = mk("231", "", "148", "197", "208", "141", "243", "237")
)

// ByName resolves a theme by its registry name, falling back to Default.
func ByName(name string) *Palette {
	switch name {
	case "dark":
		return Dark
	case "light":
		return Light
	case "solarized":
		return Solarized
	case "monokai":
		return Monokai
	default:
		return Default
	}
}

// Color resolves a semantic ast.Color to this palette's concrete value.
func (p *Palette) Color(c ast.Color) lipgloss.Color { return p.colors[c] }

// Alert resolves the heading color for an alert/directive label. Unknown
// labels fall back to AlertDefault, per spec.md §8's boundary behavior.
func (p *Palette) Alert(label string) lipgloss.Color {
	switch label {
	case "NOTE":
		return p.AlertNote
	case "TIP":
		return p.AlertTip
	case "WARNING":
		return p.AlertWarning
	case "CAUTION":
		return p.AlertCaution
	default:
		return p.AlertDefault
	}
}

// AlertIcon returns the icon glyph for a recognized alert label, or ""
// for an unrecognized one (spec.md §8: no icon for unknown labels).
func AlertIcon(label string) string {
	switch label {
	case "NOTE":
		return "ℹ"
	case "TIP":
		return "★"
	case "WARNING":
		return "⚠"
	case "CAUTION":
		return "⛔"
	default:
		return ""
	}
}

// Style builds a lipgloss.Style from a TextStyle, resolving its colors
// through this palette.
func (p *Palette) Style(s ast.TextStyle) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Strike {
		st = st.Strikethrough(true)
	}
	if s.Fg != ast.ColorNone {
		st = st.Foreground(p.Color(s.Fg))
	}
	if s.Bg != ast.ColorNone {
		st = st.Background(p.Color(s.Bg))
	}
	return st
}

// Downgrade picks the closest of the given candidate colors to c by
// perceptual (CIE76) distance in go-colorful's Lab space, for mapping a
// palette color onto a terminal that can't render the full ANSI-256 set.
// The renderers in this module do not call it.
func Downgrade(c lipgloss.Color, candidates []lipgloss.Color) lipgloss.Color {
	if len(candidates) == 0 {
		return c
	}
	target, err := colorful.Hex(hexOf(c))
	if err != nil {
		return candidates[0]
	}
	best := candidates[0]
	bestDist := 1e9
	for _, cand := range candidates {
		cc, err := colorful.Hex(hexOf(cand))
		if err != nil {
			continue
		}
		if d := target.DistanceLab(cc); d < bestDist {
			bestDist = d
			best = cand
		}
	}
	return best
}

// hexOf returns a best-effort "#rrggbb" for a lipgloss.Color so it can be
// compared in go-colorful's Lab space; any other value (such as an
// ANSI-256 index) is converted through lipgloss's own RGBA mapping.
func hexOf(c lipgloss.Color) string {
	s := string(c)
	if len(s) == 7 && s[0] == '#' {
		return s
	}
	// ANSI-256 index: approximate via lipgloss's own RGBA conversion.
	r, g, b, _ := lipgloss.Color(s).RGBA()
	return colorful.Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}.Hex()
}
