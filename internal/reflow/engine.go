// Package reflow implements the rendering utilities spec.md §4.3 shares
// across the console, range, and format renderers: a leader stack, a
// style-preserving word-wrapper, and the scratch-buffer convention for
// treating complex inlines (links, images, code spans) as atomic words.
//
// The HTML renderer does not use this package: browsers reflow text
// themselves, so nothing here needs to pre-wrap HTML output.
package reflow

import (
	"github.com/mattn/go-runewidth"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
)

// Atom is one unit the wrapper may place on a line. Word atoms come
// from splitting a Text inline's content on ASCII spaces; Atomic atoms
// are pre-rendered scratch-buffer units (a link, image, autolink, or
// code span) that the wrapper never splits internally, and Break atoms
// force an explicit line break (the inline pass's linebreak node).
type Atom struct {
	Display string
	Style   ast.TextStyle
	Break   bool
}

// Width reports the printed column width of a's Display text, counted
// the way a real terminal would advance its cursor (wide CJK runes
// count as 2, combining marks as 0) rather than a flat code-point
// count, so wrapping stays correct for non-ASCII bodies.
func Width(s string) int { return runewidth.StringWidth(s) }

// RenderAtomic turns a non-text Inline into its Display string for a
// given renderer. Each renderer supplies its own: the format renderer
// turns a link into "[label](url)", and the console renderer may wrap
// the styled label in OSC-8 escapes. Wrap measures Display exactly as
// returned, escapes included.
type RenderAtomic func(in ast.Inline) (display string, style ast.TextStyle)

// Words flattens a leaf's inline runs into wrap atoms: Text runs split
// on ASCII space into separate Word atoms (so the wrapper may break
// between them); every other inline kind becomes one atomic unit via
// renderAtomic, never split internally, matching spec.md §4.3's
// scratch-buffer convention.
func Words(runs []ast.Inline, renderAtomic RenderAtomic) []Atom {
	var atoms []Atom
	for _, in := range runs {
		switch in.Type {
		case ast.InlineText:
			atoms = append(atoms, splitWords(in.Text, in.Style)...)
		case ast.InlineLineBreak:
			atoms = append(atoms, Atom{Break: true})
		default:
			display, style := renderAtomic(in)
			atoms = append(atoms, Atom{Display: display, Style: style})
		}
	}
	return atoms
}

func splitWords(text string, style ast.TextStyle) []Atom {
	var atoms []Atom
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			atoms = append(atoms, Atom{Display: text[start:end], Style: style})
		}
		start = -1
	}
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(text))
	return atoms
}

// Wrap greedily packs atoms into lines no wider than width columns
// (after accounting for indent already consumed by a leader), breaking
// between atoms at a space boundary. An Atom wider than width alone
// still gets its own line rather than being split, since word atoms are
// indivisible (spec.md §4.3).
func Wrap(atoms []Atom, width int) [][]Atom {
	if width <= 0 {
		width = 1
	}
	var lines [][]Atom
	var cur []Atom
	col := 0
	for _, a := range atoms {
		if a.Break {
			lines = append(lines, cur)
			cur = nil
			col = 0
			continue
		}
		w := Width(a.Display)
		need := w
		if len(cur) > 0 {
			need++ // separating space
		}
		if len(cur) > 0 && col+need > width {
			lines = append(lines, cur)
			cur = nil
			col = 0
		}
		if len(cur) > 0 {
			col++ // the space that will render before this atom
		}
		cur = append(cur, a)
		col += w
	}
	lines = append(lines, cur)
	return lines
}

// Leader is one entry in the per-line prefix stack (spec.md §4.3): a
// blockquote's "> ", a list's indent spaces, a code/alert box's "│ ".
type Leader struct {
	Style ast.TextStyle
	Text  string
}

// LeaderWidth sums the printed width of every leader in the stack.
func LeaderWidth(leaders []Leader) int {
	w := 0
	for _, l := range leaders {
		w += Width(l.Text)
	}
	return w
}
