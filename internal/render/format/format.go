// Package format renders a document tree back to normalized Markdown
// source, per spec.md §4.7: canonical markers, a fixed emphasis nesting
// order, rewrapped paragraphs, and padded tables. Re-parsing this
// output is expected to reproduce the same tree (idempotence).
package format

import (
	"strconv"
	"strings"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/reflow"
)

// Options configures the format renderer.
type Options struct {
	Width  int
	Indent int
}

func (o *Options) fillDefaults() {
	if o.Width <= 0 {
		o.Width = 80
	}
}

// Render renders doc back to normalized Markdown text.
func Render(doc *ast.Block, opts Options) string {
	opts.fillDefaults()
	r := &renderer{opts: opts}
	r.block(doc, "")
	return strings.TrimRight(r.buf.String(), "\n") + "\n"
}

type renderer struct {
	opts Options
	buf  strings.Builder
}

func (r *renderer) block(b *ast.Block, leader string) {
	if b.IsContainer() {
		switch b.ContainerType {
		case ast.ContainerDocument:
			r.children(b, leader, "\n")
		case ast.ContainerQuote:
			r.children(b, leader+"> ", "")
		case ast.ContainerList:
			r.list(b, leader)
		case ast.ContainerListItem:
			r.children(b, leader, "")
		case ast.ContainerTable:
			r.table(b, leader)
		}
		return
	}
	switch b.LeafType {
	case ast.LeafParagraph:
		r.paragraph(b, leader)
	case ast.LeafHeading:
		r.heading(b, leader)
	case ast.LeafCode:
		r.code(b, leader)
	case ast.LeafAlert:
		r.alert(b, leader)
	case ast.LeafBreak:
		r.buf.WriteString(strings.TrimRight(leader, " ") + "\n")
	}
}

func (r *renderer) children(b *ast.Block, leader, sep string) {
	for i, c := range b.Children {
		if i > 0 && sep != "" {
			r.buf.WriteString(strings.TrimRight(leader, " ") + sep)
		}
		r.block(c, leader)
	}
}

func (r *renderer) paragraph(b *ast.Block, leader string) {
	width := r.opts.Width - reflow.Width(leader)
	atoms := reflow.Words(escapedInlines(b.Inlines), renderAtomic)
	lines := reflow.Wrap(atoms, width)
	for i, line := range lines {
		r.buf.WriteString(leader)
		for j, a := range line {
			if j > 0 {
				r.buf.WriteByte(' ')
			}
			r.buf.WriteString(wrapStyle(a.Display, a.Style))
		}
		if i < len(lines)-1 {
			r.buf.WriteByte('\n')
		}
	}
	r.buf.WriteByte('\n')
}

func (r *renderer) heading(b *ast.Block, leader string) {
	r.buf.WriteString(leader + strings.Repeat("#", b.Heading.Level) + " ")
	r.buf.WriteString(strings.TrimRight(inlineText(b.Inlines), " "))
	r.buf.WriteByte('\n')
}

func (r *renderer) list(b *ast.Block, leader string) {
	ordinal := b.List.Start
	for i, item := range b.Children {
		marker := "- "
		if b.List.ListKind == ast.ListOrdered {
			marker = strconv.Itoa(ordinal) + ". "
		} else if b.List.ListKind == ast.ListTask {
			if item.ListItem.Checked {
				marker = "- [x] "
			} else {
				marker = "- [ ] "
			}
		}
		r.buf.WriteString(leader + marker)
		itemLeader := leader + strings.Repeat(" ", reflow.Width(marker))
		for j, c := range item.Children {
			if j == 0 {
				r.blockInline(c, itemLeader)
			} else {
				r.block(c, itemLeader)
			}
		}
		if b.List.Spacing >= 1 && i < len(b.Children)-1 {
			r.buf.WriteString(strings.TrimRight(leader, " ") + "\n")
		}
		ordinal++
	}
}

// blockInline renders a list item's first child without repeating the
// leader (the marker already occupies that column on this line).
func (r *renderer) blockInline(b *ast.Block, leader string) {
	if !b.IsLeaf() || b.LeafType != ast.LeafParagraph {
		r.block(b, leader)
		return
	}
	width := r.opts.Width - reflow.Width(leader)
	atoms := reflow.Words(escapedInlines(b.Inlines), renderAtomic)
	lines := reflow.Wrap(atoms, width)
	for i, line := range lines {
		if i > 0 {
			r.buf.WriteString(leader)
		}
		for j, a := range line {
			if j > 0 {
				r.buf.WriteByte(' ')
			}
			r.buf.WriteString(wrapStyle(a.Display, a.Style))
		}
		r.buf.WriteByte('\n')
	}
}

func (r *renderer) code(b *ast.Block, leader string) {
	opener := b.Code.Opener
	if opener == "" {
		opener = "```"
	}
	info := b.Code.Tag
	if b.Code.HasDirective() {
		info = "{" + b.Code.Directive + "}"
	}
	r.buf.WriteString(leader + opener + info + "\n")
	for _, ln := range strings.Split(b.Code.Text, "\n") {
		r.buf.WriteString(leader + ln + "\n")
	}
	r.buf.WriteString(leader + opener + "\n")
}

func (r *renderer) alert(b *ast.Block, leader string) {
	r.buf.WriteString(leader + "> [!" + b.Alert.Alert + "]\n")
	if len(b.Inlines) > 0 {
		r.buf.WriteString(leader + "> " + inlineText(b.Inlines) + "\n")
	}
}

func (r *renderer) table(b *ast.Block, leader string) {
	ncol := b.Table.NCol
	nrow := len(b.Children) / ncol
	widths := make([]int, ncol)
	texts := make([]string, len(b.Children))
	for i, cell := range b.Children {
		texts[i] = inlineText(cell.Inlines)
		c := i % ncol
		if w := reflow.Width(texts[i]); w > widths[c] {
			widths[c] = w
		}
	}
	for c := range widths {
		if widths[c] < 3 {
			widths[c] = 3
		}
	}
	writeRow := func(row int) {
		r.buf.WriteString(leader + "|")
		for c := 0; c < ncol; c++ {
			text := texts[row*ncol+c]
			pad := widths[c] - reflow.Width(text)
			r.buf.WriteString(" " + text + strings.Repeat(" ", pad) + " |")
		}
		r.buf.WriteByte('\n')
	}
	writeRow(0)
	r.buf.WriteString(leader + "|")
	for c := 0; c < ncol; c++ {
		r.buf.WriteString(" " + strings.Repeat("-", widths[c]) + " |")
	}
	r.buf.WriteByte('\n')
	for row := 1; row < nrow; row++ {
		writeRow(row)
	}
}

func renderAtomic(in ast.Inline) (string, ast.TextStyle) {
	switch in.Type {
	case ast.InlineCodeSpan:
		return "`" + in.Code + "`", ast.TextStyle{}
	case ast.InlineLink:
		return "[" + inlineText(in.Runs) + "](" + in.URL + ")", ast.TextStyle{}
	case ast.InlineAutolink:
		return "<" + in.URL + ">", ast.TextStyle{}
	case ast.InlineImage:
		return "![" + inlineText(in.Runs) + "](" + in.URL + ")", ast.TextStyle{}
	default:
		return "", ast.TextStyle{}
	}
}

// inlineText renders an inline run sequence to normalized Markdown,
// nesting emphasis markers bold innermost, then italic, then strike
// outermost, so overlapping emphasis canonicalizes to one fixed order
// regardless of source nesting: "~~_**x**_~~".
func inlineText(runs []ast.Inline) string {
	var b strings.Builder
	for _, in := range runs {
		switch in.Type {
		case ast.InlineText:
			b.WriteString(wrapStyle(escapeSpecials(in.Text), in.Style))
		case ast.InlineLineBreak:
			b.WriteString("  \n")
		default:
			display, _ := renderAtomic(in)
			b.WriteString(display)
		}
	}
	return b.String()
}

func wrapStyle(text string, s ast.TextStyle) string {
	if s.Bold {
		text = "**" + text + "**"
	}
	if s.Italic {
		text = "_" + text + "_"
	}
	if s.Strike {
		text = "~~" + text + "~~"
	}
	return text
}

func escapeSpecials(s string) string {
	r := strings.NewReplacer("*", "\\*", "_", "\\_", "`", "\\`")
	return r.Replace(s)
}

// escapedInlines copies runs with every Text run's content escaped, so
// reflow.Words can split on spaces as usual while the word atoms it
// produces are already safe to reassemble as Markdown source (word
// atoms never hand their Display back through escapeSpecials again,
// since pre-rendered atomic atoms like code spans must not be escaped).
func escapedInlines(runs []ast.Inline) []ast.Inline {
	out := make([]ast.Inline, len(runs))
	for i, in := range runs {
		if in.Type == ast.InlineText {
			in.Text = escapeSpecials(in.Text)
		}
		out[i] = in
	}
	return out
}
