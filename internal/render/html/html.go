// Package html renders a document tree to a self-contained HTML
// document, per spec.md §4.6. Browsers reflow text themselves, so this
// renderer never uses the internal/reflow word-wrapper.
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/collab"
	"github.com/JacobCrabill/zigdown-sub003/internal/rendererr"
	"github.com/JacobCrabill/zigdown-sub003/internal/toc"
)

// Options configures the HTML renderer.
type Options struct {
	CSS       string // extra CSS appended to the bundled stylesheet
	Header    string // raw HTML inserted at the top of <body>
	Footer    string // raw HTML inserted at the bottom of <body>
	Highlight collab.HighlightProvider
}

// Render writes doc to w as a complete HTML document.
func Render(w io.Writer, doc *ast.Block, opts Options) error {
	r := &renderer{opts: opts}
	r.buf.WriteString(docHead)
	r.buf.WriteString(defaultCSS)
	if opts.CSS != "" {
		r.buf.WriteString(opts.CSS)
	}
	r.buf.WriteString("</style>\n</head>\n<body>\n")
	if opts.Header != "" {
		r.buf.WriteString(opts.Header)
	}
	r.buf.WriteString("<article class=\"md\">\n")
	r.root = doc
	r.block(doc)
	r.buf.WriteString("</article>\n")
	if opts.Footer != "" {
		r.buf.WriteString(opts.Footer)
	}
	r.buf.WriteString("</body>\n</html>\n")
	if _, err := io.WriteString(w, r.buf.String()); err != nil {
		return rendererr.IO(err)
	}
	return nil
}

const docHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<link rel="preconnect" href="https://fonts.googleapis.com">
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&family=JetBrains+Mono&display=swap" rel="stylesheet">
<style>
`

const defaultCSS = `
body { font-family: "Inter", sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
.md h1, .md h2, .md h3 { font-weight: 700; }
.md pre { background: #282c34; color: #abb2bf; padding: 0.8rem; border-radius: 6px; overflow-x: auto; }
.md code { font-family: "JetBrains Mono", monospace; }
.md blockquote { border-left: 4px solid #8888; margin-left: 0; padding-left: 1rem; color: #666; }
.md .directive { border-radius: 6px; padding: 0.6rem 1rem; margin: 1rem 0; border: 1px solid #8888; }
.md .directive.NOTE { border-color: #3b82f6; }
.md .directive.TIP { border-color: #22c55e; }
.md .directive.WARNING { border-color: #eab308; }
.md .directive.CAUTION { border-color: #ef4444; }
.md .md_table { display: table; border-collapse: collapse; margin: 1rem 0; }
.md .md_row { display: table-row; }
.md .md_cell { display: table-cell; border: 1px solid #8884; padding: 0.4rem 0.8rem; }
.md li.task input { margin-right: 0.4rem; }
.md .line-no { color: #8888; user-select: none; padding-right: 0.8rem; }
`

type renderer struct {
	opts Options
	buf  strings.Builder
	root *ast.Block
}

func (r *renderer) block(b *ast.Block) {
	if b.IsContainer() {
		switch b.ContainerType {
		case ast.ContainerDocument:
			r.children(b)
		case ast.ContainerQuote:
			r.buf.WriteString("<blockquote>\n")
			r.children(b)
			r.buf.WriteString("</blockquote>\n")
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
		r.buf.WriteString("<p>")
		r.inlines(b.Inlines)
		r.buf.WriteString("</p>\n")
	case ast.LeafHeading:
		r.heading(b)
	case ast.LeafCode:
		r.code(b)
	case ast.LeafAlert:
		r.alert(b.Alert.Alert, b.Inlines)
	case ast.LeafBreak:
		// A blank-line boundary has no markup of its own.
	}
}

func (r *renderer) children(b *ast.Block) {
	for _, c := range b.Children {
		r.block(c)
	}
}

func (r *renderer) heading(b *ast.Block) {
	id := toc.AnchorID(b.Heading.Text)
	fmt.Fprintf(&r.buf, "<h%d id=%q>", b.Heading.Level, id)
	r.inlines(b.Inlines)
	fmt.Fprintf(&r.buf, "</h%d>\n", b.Heading.Level)
}

func (r *renderer) list(b *ast.Block) {
	tag, attr := "ul", ""
	if b.List.ListKind == ast.ListOrdered {
		tag = "ol"
		if b.List.Start != 1 {
			attr = fmt.Sprintf(" start=%q", strconv.Itoa(b.List.Start))
		}
	}
	fmt.Fprintf(&r.buf, "<%s%s>\n", tag, attr)
	for _, item := range b.Children {
		if b.List.ListKind == ast.ListTask {
			checked := ""
			if item.ListItem.Checked {
				checked = " checked"
			}
			fmt.Fprintf(&r.buf, "<li class=\"task\"><input type=\"checkbox\" disabled%s>", checked)
		} else {
			r.buf.WriteString("<li>")
		}
		r.children(item)
		r.buf.WriteString("</li>\n")
	}
	fmt.Fprintf(&r.buf, "</%s>\n", tag)
}

func (r *renderer) table(b *ast.Block) {
	ncol := b.Table.NCol
	r.buf.WriteString("<div class=\"md_table\">\n")
	for row := 0; row*ncol < len(b.Children); row++ {
		r.buf.WriteString("<div class=\"md_row\">")
		for c := 0; c < ncol; c++ {
			cell := b.Children[row*ncol+c]
			r.buf.WriteString("<div class=\"md_cell\">")
			r.inlines(cell.Inlines)
			r.buf.WriteString("</div>")
		}
		r.buf.WriteString("</div>\n")
	}
	r.buf.WriteString("</div>\n")
}

func (r *renderer) code(b *ast.Block) {
	if b.Code.HasDirective() {
		if b.Code.Directive == "toc" {
			r.buf.WriteString("<nav class=\"toc\">\n")
			r.list(toc.Build(r.root))
			r.buf.WriteString("</nav>\n")
			return
		}
		r.alert(strings.ToUpper(b.Code.Directive), directiveBody(b.Code.Text))
		return
	}
	class := ""
	if b.Code.Tag != "" {
		class = fmt.Sprintf(" class=\"language-%s\"", escapeAttr(b.Code.Tag))
	}
	fmt.Fprintf(&r.buf, "<pre><table class=\"code\"><tbody>\n")
	lines := tokenizeLines(r.opts.Highlight, b.Code.Text, b.Code.Tag)
	for i, line := range lines {
		fmt.Fprintf(&r.buf, "<tr><td class=\"line-no\">%d</td><td><code%s>", i+1, class)
		for _, tok := range line {
			if tok.Style.IsPlain() {
				r.buf.WriteString(escapeText(tok.Text))
				continue
			}
			fmt.Fprintf(&r.buf, "<span class=%q>%s</span>", spanClass(tok.Style), escapeText(tok.Text))
		}
		r.buf.WriteString("</code></td></tr>\n")
	}
	r.buf.WriteString("</tbody></table></pre>\n")
}

func spanClass(s ast.TextStyle) string {
	var parts []string
	if s.Bold {
		parts = append(parts, "b")
	}
	if s.Italic {
		parts = append(parts, "i")
	}
	if s.Fg != ast.ColorNone {
		parts = append(parts, "fg"+strconv.Itoa(int(s.Fg)))
	}
	return strings.Join(parts, " ")
}

// tokenizeLines splits a highlighted code body into per-source-line
// token slices, falling back to one unstyled token per line when no
// highlight provider is configured or it errors.
func tokenizeLines(hl collab.HighlightProvider, source, lang string) [][]collab.HighlightToken {
	if hl == nil {
		return plainLines(source)
	}
	toks, err := hl.Highlight(source, lang)
	if err != nil {
		return plainLines(source)
	}
	var lines [][]collab.HighlightToken
	var cur []collab.HighlightToken
	for _, t := range toks {
		cur = append(cur, t)
		if t.Newline {
			lines = append(lines, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func plainLines(source string) [][]collab.HighlightToken {
	var lines [][]collab.HighlightToken
	for _, ln := range strings.Split(source, "\n") {
		lines = append(lines, []collab.HighlightToken{{Text: ln}})
	}
	return lines
}

// directiveBody turns a directive code block's raw text into a single
// inline run, since code leaves never run through the inline pass.
func directiveBody(text string) []ast.Inline {
	if text == "" {
		return nil
	}
	return []ast.Inline{ast.NewText(text, ast.TextStyle{})}
}

func (r *renderer) alert(label string, inlines []ast.Inline) {
	fmt.Fprintf(&r.buf, "<div class=\"directive %s\">\n<p class=\"directive-label\">%s</p>\n", escapeAttr(label), escapeText(label))
	if len(inlines) > 0 {
		r.buf.WriteString("<p>")
		r.inlines(inlines)
		r.buf.WriteString("</p>\n")
	}
	r.buf.WriteString("</div>\n")
}

func (r *renderer) inlines(runs []ast.Inline) {
	for _, in := range runs {
		r.inline(in)
	}
}

func (r *renderer) inline(in ast.Inline) {
	switch in.Type {
	case ast.InlineText:
		r.styledText(in.Text, in.Style)
	case ast.InlineLineBreak:
		r.buf.WriteString("<br>\n")
	case ast.InlineCodeSpan:
		fmt.Fprintf(&r.buf, "<code>%s</code>", escapeText(in.Code))
	case ast.InlineLink:
		fmt.Fprintf(&r.buf, "<a href=%q>", escapeAttr(in.URL))
		r.inlines(in.Runs)
		r.buf.WriteString("</a>")
	case ast.InlineAutolink:
		fmt.Fprintf(&r.buf, "<a href=%q>%s</a>", escapeAttr(in.URL), escapeText(in.URL))
	case ast.InlineImage:
		alt := escapeAttr(ast.PlainText(in.Runs))
		fmt.Fprintf(&r.buf, "<img src=%q alt=%q>", escapeAttr(in.URL), alt)
	}
}

func (r *renderer) styledText(text string, style ast.TextStyle) {
	open, close := tagsFor(style)
	r.buf.WriteString(open)
	r.buf.WriteString(escapeText(text))
	r.buf.WriteString(close)
}

func tagsFor(s ast.TextStyle) (string, string) {
	var open, close strings.Builder
	if s.Bold {
		open.WriteString("<strong>")
		close.WriteString("</strong>")
	}
	if s.Italic {
		open.WriteString("<em>")
		close.WriteString("</em>")
	}
	if s.Strike {
		open.WriteString("<del>")
		close.WriteString("</del>")
	}
	if s.Underline {
		open.WriteString("<u>")
		close.WriteString("</u>")
	}
	return open.String(), reverse(close.String())
}

// reverse flips a concatenation of whole "</tag>" strings so closing
// tags nest correctly against the open tags they were paired with.
func reverse(s string) string {
	var tags []string
	for _, part := range strings.SplitAfter(s, ">") {
		if part != "" {
			tags = append(tags, part)
		}
	}
	var b strings.Builder
	for i := len(tags) - 1; i >= 0; i-- {
		b.WriteString(tags[i])
	}
	return b.String()
}

func escapeText(s string) string {
	return xhtml.EscapeString(s)
}

func escapeAttr(s string) string {
	return escapeText(s)
}
