// Package rangerender renders a document tree to plain text plus a list
// of byte-range style annotations, per spec.md §4.5: the same visual
// grammar as the console renderer, but for callers (editors, test
// harnesses) that want styling as structured data instead of ANSI.
package rangerender

import (
	"strconv"
	"strings"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/collab"
	"github.com/JacobCrabill/zigdown-sub003/internal/reflow"
	"github.com/JacobCrabill/zigdown-sub003/internal/toc"
)

// Options configures the range renderer.
type Options struct {
	Width     int
	Indent    int
	Highlight collab.HighlightProvider
}

func (o *Options) fillDefaults() {
	if o.Width <= 0 {
		o.Width = collab.DefaultTermSize.Cols
	}
}

// StyleRange annotates a byte span of the rendered text on one line with
// a style, per spec.md §4.5.
type StyleRange struct {
	Line      int
	StartByte int
	EndByte   int
	Style     ast.TextStyle
}

// Result is the range renderer's output: plain text plus its styling.
type Result struct {
	Text   string
	Ranges []StyleRange
}

// Render renders doc to plain text with style-range annotations.
func Render(doc *ast.Block, opts Options) Result {
	opts.fillDefaults()
	r := &renderer{opts: opts, root: doc}
	r.block(doc)
	if r.col != 0 {
		r.newline()
	}
	return Result{Text: r.buf.String(), Ranges: r.ranges}
}

type renderer struct {
	opts    Options
	root    *ast.Block
	buf     strings.Builder
	line    int
	lineOff int // byte offset of r.line's start within r.buf
	col     int
	leaders []reflow.Leader
	ranges  []StyleRange
}

func (r *renderer) write(s string) {
	r.buf.WriteString(s)
	r.col += reflow.Width(s)
}

func (r *renderer) writeStyled(s string, style ast.TextStyle) {
	if s == "" {
		return
	}
	start := r.buf.Len() - r.lineOff
	r.buf.WriteString(s)
	if !style.IsPlain() {
		r.ranges = append(r.ranges, StyleRange{
			Line: r.line, StartByte: start, EndByte: start + len(s), Style: style,
		})
	}
	r.col += reflow.Width(s)
}

func (r *renderer) newline() {
	r.buf.WriteByte('\n')
	r.line++
	r.lineOff = r.buf.Len()
	r.col = 0
}

func (r *renderer) writeLeaders() {
	for _, l := range r.leaders {
		r.writeStyled(l.Text, l.Style)
	}
}

func (r *renderer) startLine() {
	if r.col != 0 {
		r.newline()
	}
	r.writeLeaders()
}

func (r *renderer) contentWidth() int {
	w := r.opts.Width - r.opts.Indent - reflow.LeaderWidth(r.leaders)
	if w < 4 {
		w = 4
	}
	return w
}

func (r *renderer) writeAtoms(atoms []reflow.Atom) {
	lines := reflow.Wrap(atoms, r.contentWidth())
	for i, line := range lines {
		if i > 0 {
			r.newline()
			r.writeLeaders()
		}
		for j, a := range line {
			if j > 0 {
				r.write(" ")
			}
			r.writeStyled(a.Display, a.Style)
		}
	}
}

func (r *renderer) block(b *ast.Block) {
	if b.IsContainer() {
		switch b.ContainerType {
		case ast.ContainerDocument, ast.ContainerListItem:
			r.children(b)
		case ast.ContainerQuote:
			r.leaders = append(r.leaders, reflow.Leader{Text: "┃ "})
			r.children(b)
			r.leaders = r.leaders[:len(r.leaders)-1]
		case ast.ContainerList:
			r.list(b)
		case ast.ContainerTable:
			r.table(b)
		}
		return
	}
	switch b.LeafType {
	case ast.LeafParagraph:
		r.startLine()
		r.writeAtoms(reflow.Words(b.Inlines, r.renderAtomic))
	case ast.LeafHeading:
		r.heading(b)
	case ast.LeafCode:
		r.code(b)
	case ast.LeafAlert:
		r.alertBox(b.Alert.Alert, b.Inlines)
	case ast.LeafBreak:
		r.startLine()
	}
}

func (r *renderer) children(b *ast.Block) {
	for _, c := range b.Children {
		r.block(c)
	}
}

func (r *renderer) heading(b *ast.Block) {
	r.startLine()
	style := headingStyle(b.Heading.Level)
	prefix := strings.Repeat("#", b.Heading.Level) + " "
	r.writeStyled(prefix, style)
	for i, a := range reflow.Words(b.Inlines, r.renderAtomic) {
		if i > 0 {
			r.write(" ")
		}
		r.writeStyled(a.Display, a.Style)
	}
}

func headingStyle(level int) ast.TextStyle {
	switch level {
	case 1:
		return ast.TextStyle{Bold: true, Fg: ast.ColorBlue}
	case 2:
		return ast.TextStyle{Bold: true, Fg: ast.ColorGreen}
	case 3:
		return ast.TextStyle{Bold: true, Italic: true, Underline: true, Fg: ast.ColorWhite}
	default:
		return ast.TextStyle{Underline: true, Fg: ast.ColorWhite}
	}
}

func (r *renderer) list(b *ast.Block) {
	ordinal := b.List.Start
	for i, item := range b.Children {
		if i > 0 && b.List.Spacing >= 1 {
			r.startLine()
		}
		marker, style, width := listMarker(b.List.ListKind, item, ordinal)
		r.startLine()
		r.writeStyled(marker, style)
		r.leaders = append(r.leaders, reflow.Leader{Text: strings.Repeat(" ", width)})
		first := true
		for _, c := range item.Children {
			if !first {
				r.startLine()
			}
			first = false
			r.block(c)
		}
		r.leaders = r.leaders[:len(r.leaders)-1]
		ordinal++
	}
}

func listMarker(kind ast.ListKind, item *ast.Block, ordinal int) (string, ast.TextStyle, int) {
	switch kind {
	case ast.ListOrdered:
		label := strconv.Itoa(ordinal) + ". "
		return label, ast.TextStyle{Bold: true}, reflow.Width(label)
	case ast.ListTask:
		if item.ListItem.Checked {
			return "☑ ", ast.TextStyle{Fg: ast.ColorGreen}, 2
		}
		return "☐ ", ast.TextStyle{Fg: ast.ColorRed}, 2
	default:
		return "‣ ", ast.TextStyle{Bold: true, Fg: ast.ColorBlue}, 2
	}
}

func (r *renderer) code(b *ast.Block) {
	if b.Code.HasDirective() {
		if b.Code.Directive == "toc" {
			r.alertBoxList("TOC", toc.Build(r.root))
			return
		}
		r.alertBox(strings.ToUpper(b.Code.Directive), directiveBody(b.Code.Text))
		return
	}
	r.startLine()
	header := "╭──── " + b.Code.Tag
	r.writeStyled(header, ast.TextStyle{Fg: ast.ColorBrightBlack})
	r.leaders = append(r.leaders, reflow.Leader{Text: "│ "})
	tokens, err := highlightTokens(r.opts.Highlight, b.Code.Text, b.Code.Tag)
	r.startLine()
	if err != nil {
		for _, ln := range strings.Split(b.Code.Text, "\n") {
			r.writeStyled(ln, ast.TextStyle{Fg: ast.ColorBrightBlack})
			r.startLine()
		}
	} else {
		for _, tok := range tokens {
			r.writeStyled(tok.Text, tok.Style)
			if tok.Newline {
				r.startLine()
			}
		}
	}
	r.leaders = r.leaders[:len(r.leaders)-1]
	r.startLine()
	r.writeStyled("╰─────", ast.TextStyle{Fg: ast.ColorBrightBlack})
}

func directiveBody(text string) []ast.Inline {
	if text == "" {
		return nil
	}
	return []ast.Inline{ast.NewText(text, ast.TextStyle{})}
}

func highlightTokens(hl collab.HighlightProvider, source, lang string) ([]collab.HighlightToken, error) {
	if hl == nil {
		return nil, errNoHighlight
	}
	return hl.Highlight(source, lang)
}

var errNoHighlight = &noHighlightError{}

type noHighlightError struct{}

func (*noHighlightError) Error() string { return "no highlight provider" }

func (r *renderer) alertBox(label string, inlines []ast.Inline) {
	style := ast.TextStyle{Bold: true}
	r.startLine()
	head := label
	if icon := iconFor(label); icon != "" {
		head = icon + " " + label
	}
	r.writeStyled("╭─ "+head+" ", style)
	r.leaders = append(r.leaders, reflow.Leader{Text: "│ "})
	if len(inlines) > 0 {
		r.startLine()
		r.writeAtoms(reflow.Words(inlines, r.renderAtomic))
	}
	r.leaders = r.leaders[:len(r.leaders)-1]
	r.startLine()
	r.writeStyled("╰─────", style)
}

func iconFor(label string) string {
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

func (r *renderer) alertBoxList(label string, list *ast.Block) {
	style := ast.TextStyle{Bold: true}
	r.startLine()
	r.writeStyled("╭─ "+label+" ", style)
	r.leaders = append(r.leaders, reflow.Leader{Text: "│ "})
	r.startLine()
	r.list(list)
	r.leaders = r.leaders[:len(r.leaders)-1]
	r.startLine()
	r.writeStyled("╰─────", style)
}

func (r *renderer) table(b *ast.Block) {
	ncol := b.Table.NCol
	nrow := len(b.Children) / ncol
	colWidth := (r.contentWidth() - (ncol + 1)) / ncol
	if colWidth < 3 {
		colWidth = 3
	}
	border := func() {
		r.startLine()
		r.write(strings.Repeat("─", (colWidth+3)*ncol+1))
	}
	border()
	for row := 0; row < nrow; row++ {
		cellLines := make([][]reflow.Atom, ncol)
		wrapped := make([][][]reflow.Atom, ncol)
		height := 1
		for c := 0; c < ncol; c++ {
			cell := b.Children[row*ncol+c]
			cellLines[c] = reflow.Words(cell.Inlines, r.renderAtomic)
			wrapped[c] = reflow.Wrap(cellLines[c], colWidth)
			if len(wrapped[c]) > height {
				height = len(wrapped[c])
			}
		}
		for ln := 0; ln < height; ln++ {
			r.startLine()
			r.write("│")
			for c := 0; c < ncol; c++ {
				r.write(" ")
				used := 0
				if ln < len(wrapped[c]) {
					for j, a := range wrapped[c][ln] {
						if j > 0 {
							r.write(" ")
							used++
						}
						r.writeStyled(a.Display, a.Style)
						used += reflow.Width(a.Display)
					}
				}
				if pad := colWidth - used; pad > 0 {
					r.write(strings.Repeat(" ", pad))
				}
				r.write(" │")
			}
		}
		if row == 0 {
			border()
		}
	}
	border()
}

func (r *renderer) renderAtomic(in ast.Inline) (string, ast.TextStyle) {
	switch in.Type {
	case ast.InlineCodeSpan:
		return in.Code, ast.TextStyle{Fg: ast.ColorBrightMagenta}
	case ast.InlineLink:
		return ast.PlainText(in.Runs), ast.TextStyle{Underline: true, Fg: ast.ColorBlue}
	case ast.InlineAutolink:
		return in.URL, ast.TextStyle{Underline: true, Fg: ast.ColorBlue}
	case ast.InlineImage:
		return ast.PlainText(in.Runs) + " → " + in.URL, ast.TextStyle{Italic: true}
	default:
		return "", ast.TextStyle{}
	}
}
