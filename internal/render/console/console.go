// Package console renders a document tree (spec.md §3) as ANSI-styled
// terminal output, per spec.md §4.4.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/collab"
	"github.com/JacobCrabill/zigdown-sub003/internal/reflow"
	"github.com/JacobCrabill/zigdown-sub003/internal/rendererr"
	"github.com/JacobCrabill/zigdown-sub003/internal/theme"
	"github.com/JacobCrabill/zigdown-sub003/internal/toc"
)

// Options configures the console renderer (spec.md §6).
type Options struct {
	Width        int
	Indent       int
	MaxImageCols int
	MaxImageRows int
	BoxStyle     theme.BoxStyle
	RootDir      string
	NoFetch      bool
	TermSize     collab.TermSize
	Theme        *theme.Palette
	Highlight    collab.HighlightProvider
	ImageSender  collab.ImageSender
	Fetcher      collab.Fetcher

	// ForcePlain, when true, suppresses ANSI styling and OSC-8 hyperlinks
	// regardless of what w turns out to be. Render also suppresses them
	// automatically whenever w is not a terminal (collab.IsTerminal), so
	// this only matters for forcing plain output to a real terminal.
	ForcePlain bool

	// ForceColor overrides the automatic non-terminal downgrade, e.g. for
	// a caller piping colored output to `less -R` on purpose.
	ForceColor bool
}

func (o *Options) fillDefaults() {
	if o.Width <= 0 {
		if o.TermSize.Cols > 0 {
			o.Width = o.TermSize.Cols
		} else {
			o.Width = collab.DefaultTermSize.Cols
		}
	}
	if o.BoxStyle == (theme.BoxStyle{}) {
		o.BoxStyle = theme.DefaultBoxStyle
	}
	if o.Theme == nil {
		o.Theme = theme.Default
	}
	if o.MaxImageCols <= 0 {
		o.MaxImageCols = o.Width
	}
}

// Render writes doc to w as ANSI terminal output. When w is not a
// terminal (spec.md §6's capability-probing collaborator boundary), the
// output degrades to plain text: no color, no emphasis escapes, no
// OSC-8 hyperlinks, since a pipe or file has no terminal to interpret them.
func Render(w io.Writer, doc *ast.Block, opts Options) error {
	opts.fillDefaults()
	plain := !opts.ForceColor && (opts.ForcePlain || !collab.IsTerminal(w))
	r := &renderer{opts: opts, pal: opts.Theme, bw: bufio.NewWriter(w), root: doc, plain: plain}
	r.block(doc)
	if r.col != 0 {
		r.newline()
	}
	if err := r.bw.Flush(); err != nil {
		return rendererr.IO(err)
	}
	return r.err
}

type renderer struct {
	opts Options
	pal  *theme.Palette
	bw   *bufio.Writer
	root *ast.Block

	leaders []reflow.Leader
	col     int
	err     error
	plain   bool
}

// style resolves an ast.TextStyle to a lipgloss.Style, degrading to an
// unstyled render when the renderer has fallen back to plain output.
func (r *renderer) style(s ast.TextStyle) lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return r.pal.Style(s)
}

// rawStyle degrades an already-built lipgloss.Style to unstyled when the
// renderer has fallen back to plain output, for the handful of callers
// (box borders, alert labels) that build a lipgloss.Style directly
// instead of going through an ast.TextStyle.
func (r *renderer) rawStyle(s lipgloss.Style) lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return s
}

func (r *renderer) write(s string) {
	if _, err := r.bw.WriteString(s); err != nil && r.err == nil {
		r.err = rendererr.IO(err)
	}
}

func (r *renderer) newline() {
	r.write("\n")
	r.col = 0
}

func (r *renderer) writeLeaders() {
	for _, l := range r.leaders {
		r.write(r.style(l.Style).Render(l.Text))
		r.col += reflow.Width(l.Text)
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
				r.col++
			}
			r.write(r.style(a.Style).Render(a.Display))
			r.col += reflow.Width(a.Display)
		}
	}
}

func (r *renderer) block(b *ast.Block) {
	if b.IsContainer() {
		switch b.ContainerType {
		case ast.ContainerDocument:
			r.children(b)
		case ast.ContainerQuote:
			r.quote(b)
		case ast.ContainerList:
			r.list(b)
		case ast.ContainerListItem:
			r.children(b)
		case ast.ContainerTable:
			r.table(b)
		}
		return
	}
	switch b.LeafType {
	case ast.LeafParagraph:
		r.paragraph(b)
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

func (r *renderer) quote(b *ast.Block) {
	r.leaders = append(r.leaders, reflow.Leader{Style: ast.TextStyle{}, Text: "┃ "})
	r.children(b)
	r.leaders = r.leaders[:len(r.leaders)-1]
}

func (r *renderer) paragraph(b *ast.Block) {
	r.startLine()
	r.writeAtoms(reflow.Words(b.Inlines, r.renderAtomic))
}

func (r *renderer) heading(b *ast.Block) {
	r.startLine()
	style, rule := headingStyle(b.Heading.Level)
	prefix := strings.Repeat("#", b.Heading.Level)
	text := r.style(style).Render(prefix + " ")
	content := reflow.Width(prefix) + 1
	for _, a := range reflow.Words(b.Inlines, r.renderAtomic) {
		text += r.style(a.Style).Render(a.Display) + " "
		content += reflow.Width(a.Display) + 1
	}
	if rule != "" {
		fillWidth := r.contentWidth() - content
		if fillWidth > 0 {
			text += r.style(style).Render(strings.Repeat(rule, fillWidth))
		}
	}
	r.write(text)
	r.col = r.opts.Width
}

func headingStyle(level int) (ast.TextStyle, string) {
	switch level {
	case 1:
		return ast.TextStyle{Bold: true, Fg: ast.ColorBlue}, "═"
	case 2:
		return ast.TextStyle{Bold: true, Fg: ast.ColorGreen}, "─"
	case 3:
		return ast.TextStyle{Bold: true, Italic: true, Underline: true, Fg: ast.ColorWhite}, ""
	default:
		return ast.TextStyle{Underline: true, Fg: ast.ColorWhite}, ""
	}
}

func (r *renderer) list(b *ast.Block) {
	ordinal := b.List.Start
	for i, item := range b.Children {
		if i > 0 && b.List.Spacing >= 1 {
			r.startLine()
		}
		marker, markerWidth := r.listMarker(b.List.ListKind, item, ordinal)
		r.startLine()
		r.write(marker)
		r.col += markerWidth
		r.leaders = append(r.leaders, reflow.Leader{Text: strings.Repeat(" ", markerWidth)})
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

func (r *renderer) listMarker(kind ast.ListKind, item *ast.Block, ordinal int) (string, int) {
	switch kind {
	case ast.ListOrdered:
		label := strconv.Itoa(ordinal) + ". "
		return r.style(ast.TextStyle{Bold: true}).Render(label), reflow.Width(label)
	case ast.ListTask:
		icon, style := "☐", ast.TextStyle{Fg: ast.ColorRed}
		if item.ListItem.Checked {
			icon, style = "☑", ast.TextStyle{Fg: ast.ColorGreen}
		}
		return r.style(style).Render(icon) + " ", 2
	default:
		return r.style(ast.TextStyle{Bold: true, Fg: ast.ColorBlue}).Render("‣") + " ", 2
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
	box := r.opts.BoxStyle
	r.startLine()
	header := box.TopLeft + strings.Repeat(box.Horizontal, 4)
	if b.Code.Tag != "" {
		header += " " + b.Code.Tag
	}
	r.write(r.style(ast.TextStyle{Fg: ast.ColorBrightBlack}).Render(header))
	tokens, err := r.highlight(b.Code.Text, b.Code.Tag)
	r.leaders = append(r.leaders, reflow.Leader{Text: box.Vertical + " "})
	r.startLine()
	if err != nil {
		for _, line := range strings.Split(b.Code.Text, "\n") {
			r.write(r.style(ast.TextStyle{Fg: ast.ColorBrightBlack}).Render(line))
			r.startLine()
		}
	} else {
		for _, tok := range tokens {
			r.write(r.style(tok.Style).Render(tok.Text))
			if tok.Newline {
				r.startLine()
			}
		}
	}
	r.leaders = r.leaders[:len(r.leaders)-1]
	r.startLine()
	r.write(r.style(ast.TextStyle{Fg: ast.ColorBrightBlack}).Render(box.BottomLeft + strings.Repeat(box.Horizontal, 5)))
}

// directiveBody turns a directive code block's raw text into a single
// inline run, since code leaves never run through the inline pass.
func directiveBody(text string) []ast.Inline {
	if text == "" {
		return nil
	}
	return []ast.Inline{ast.NewText(text, ast.TextStyle{})}
}

func (r *renderer) highlight(source, lang string) ([]collab.HighlightToken, error) {
	if r.opts.Highlight == nil {
		return nil, fmt.Errorf("no highlight provider")
	}
	toks, err := r.opts.Highlight.Highlight(source, lang)
	if err != nil {
		return nil, rendererr.Fail(rendererr.Highlight, err)
	}
	return toks, nil
}

func (r *renderer) alertBox(label string, inlines []ast.Inline) {
	box := r.opts.BoxStyle
	color := r.pal.Alert(label)
	icon := theme.AlertIcon(label)
	style := r.rawStyle(lipgloss.NewStyle().Bold(true).Foreground(color))

	r.startLine()
	head := label
	if icon != "" {
		head = icon + " " + label
	}
	r.write(style.Render(box.TopLeft + box.Horizontal + " " + head + " "))
	r.leaders = append(r.leaders, reflow.Leader{Text: box.Vertical + " "})
	if len(inlines) > 0 {
		r.startLine()
		r.writeAtoms(reflow.Words(inlines, r.renderAtomic))
	}
	r.leaders = r.leaders[:len(r.leaders)-1]
	r.startLine()
	r.write(style.Render(box.BottomLeft + strings.Repeat(box.Horizontal, 5)))
}

func (r *renderer) alertBoxList(label string, list *ast.Block) {
	box := r.opts.BoxStyle
	style := r.rawStyle(lipgloss.NewStyle().Bold(true))
	r.startLine()
	r.write(style.Render(box.TopLeft + box.Horizontal + " " + label + " "))
	r.leaders = append(r.leaders, reflow.Leader{Text: box.Vertical + " "})
	r.startLine()
	r.list(list)
	r.leaders = r.leaders[:len(r.leaders)-1]
	r.startLine()
	r.write(style.Render(box.BottomLeft + strings.Repeat(box.Horizontal, 5)))
}

func (r *renderer) table(b *ast.Block) {
	ncol := b.Table.NCol
	nrow := len(b.Children) / ncol
	colWidth := (r.contentWidth() - (ncol + 1)) / ncol
	if colWidth < 3 {
		colWidth = 3
	}
	box := r.opts.BoxStyle
	border := func(left, mid, right string) {
		r.startLine()
		r.write(left)
		for c := 0; c < ncol; c++ {
			if c > 0 {
				r.write(mid)
			}
			r.write(strings.Repeat(box.Horizontal, colWidth+2))
		}
		r.write(right)
	}
	border(box.TopLeft, box.TeeDown, box.TopRight)
	for row := 0; row < nrow; row++ {
		cellLines := make([][]string, ncol)
		height := 1
		for c := 0; c < ncol; c++ {
			cell := b.Children[row*ncol+c]
			cellLines[c] = r.renderCell(cell, colWidth)
			if len(cellLines[c]) > height {
				height = len(cellLines[c])
			}
		}
		for ln := 0; ln < height; ln++ {
			r.startLine()
			r.write(box.Vertical)
			for c := 0; c < ncol; c++ {
				text := ""
				if ln < len(cellLines[c]) {
					text = cellLines[c][ln]
				}
				pad := colWidth - reflow.Width(text)
				if pad < 0 {
					pad = 0
				}
				r.write(" " + text + strings.Repeat(" ", pad) + " ")
				r.write(box.Vertical)
			}
		}
		if row == 0 {
			border(box.TeeRight, box.Cross, box.TeeLeft)
		}
	}
	border(box.BottomLeft, box.TeeUp, box.BottomRight)
}

// renderCell word-wraps a table cell's paragraph content at colWidth
// using an independent pass of the reflow engine (spec.md §4.3's
// sub-renderer convention), returning plain styled-ANSI lines.
func (r *renderer) renderCell(cell *ast.Block, width int) []string {
	atoms := reflow.Words(cell.Inlines, r.renderAtomic)
	wrapped := reflow.Wrap(atoms, width)
	lines := make([]string, len(wrapped))
	for i, atomLine := range wrapped {
		var b strings.Builder
		for j, a := range atomLine {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r.style(a.Style).Render(a.Display))
		}
		lines[i] = b.String()
	}
	return lines
}

// renderAtomic renders a non-text Inline (link, autolink, image, code
// span) into the scratch atom the word-wrapper treats as indivisible.
// Links carry the OSC-8 hyperlink escape around their styled label.
func (r *renderer) renderAtomic(in ast.Inline) (string, ast.TextStyle) {
	switch in.Type {
	case ast.InlineCodeSpan:
		style := ast.TextStyle{Fg: ast.ColorBrightMagenta}
		return r.style(style).Render(in.Code), ast.TextStyle{}
	case ast.InlineLink:
		label := ast.PlainText(in.Runs)
		styled := r.style(ast.TextStyle{Underline: true, Fg: ast.ColorBlue}).Render(label)
		return r.osc8(in.URL, styled), ast.TextStyle{}
	case ast.InlineAutolink:
		styled := r.style(ast.TextStyle{Underline: true, Fg: ast.ColorBlue}).Render(in.URL)
		return r.osc8(in.URL, styled), ast.TextStyle{}
	case ast.InlineImage:
		alt := ast.PlainText(in.Runs)
		r.emitImage(in)
		return fmt.Sprintf("%s → %s", alt, in.URL), ast.TextStyle{Italic: true}
	default:
		return "", ast.TextStyle{}
	}
}

// osc8 wraps label in an OSC-8 hyperlink escape, unless the renderer has
// downgraded to plain output for a non-terminal destination.
func (r *renderer) osc8(url, label string) string {
	if r.plain {
		return label
	}
	return "\x1b]8;;" + url + "\x1b\\" + label + "\x1b]8;;\x1b\\"
}

// emitImage invokes the injected image sender best-effort; failures
// degrade to the label-only text already returned by renderAtomic, per
// spec.md §7's CollaboratorFail handling.
func (r *renderer) emitImage(in ast.Inline) {
	if r.opts.ImageSender == nil {
		return
	}
	if in.Kind == ast.ImageWeb && r.opts.NoFetch {
		return
	}
	var data []byte
	var err error
	if in.Kind == ast.ImageWeb {
		if r.opts.Fetcher == nil {
			return
		}
		data, err = r.opts.Fetcher.Fetch(in.URL)
		if err != nil {
			r.err = rendererr.Fail(rendererr.Fetch, err)
			return
		}
	}
	cols := r.opts.MaxImageCols
	rows := r.opts.MaxImageRows
	if err := r.opts.ImageSender.SendPNG(r.bw, data, cols, rows); err != nil {
		r.err = rendererr.Fail(rendererr.ImageSend, err)
	}
}
