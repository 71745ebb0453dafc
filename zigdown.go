// Package zigdown is a Markdown toolkit: it parses a pragmatic subset of
// Markdown into a typed document tree and renders that tree as ANSI
// terminal output, plain text plus style ranges, HTML, or normalized
// Markdown. See internal/ast for the tree shape and internal/parse,
// internal/render/{console,rangerender,html,format} for each stage.
package zigdown

import (
	"io"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/console"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/format"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/html"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/rangerender"
)

// Document is a parsed document tree, ready to hand to any renderer.
type Document = ast.Block

// ParseWarning is a recoverable oddity noticed while parsing. The only
// one reported is an unclosed fenced code block; malformed table rows
// are not reported.
type ParseWarning = parse.Warning

// ParseOptions configures Parse.
type ParseOptions = parse.Options

// Parse builds a Document tree from Markdown source. It never fails
// outright; recoverable oddities come back as warnings alongside the
// tree.
func Parse(source []byte, opts ParseOptions) (*Document, []ParseWarning) {
	return parse.Parse(source, opts)
}

// ConsoleOptions configures RenderConsole.
type ConsoleOptions = console.Options

// RenderConsole writes doc to w as ANSI-styled terminal output.
func RenderConsole(w io.Writer, doc *Document, opts ConsoleOptions) error {
	return console.Render(w, doc, opts)
}

// RangeOptions configures RenderRange.
type RangeOptions = rangerender.Options

// StyleRange annotates a byte span of RenderRange's plain-text output.
type StyleRange = rangerender.StyleRange

// RenderRange renders doc to plain text plus a side channel of styled
// byte ranges, for embedders that apply highlighting themselves.
func RenderRange(doc *Document, opts RangeOptions) (text string, ranges []StyleRange) {
	res := rangerender.Render(doc, opts)
	return res.Text, res.Ranges
}

// HTMLOptions configures RenderHTML.
type HTMLOptions = html.Options

// RenderHTML writes doc to w as a self-contained HTML document.
func RenderHTML(w io.Writer, doc *Document, opts HTMLOptions) error {
	return html.Render(w, doc, opts)
}

// FormatOptions configures RenderFormat.
type FormatOptions = format.Options

// RenderFormat renders doc back to normalized Markdown source.
func RenderFormat(doc *Document, opts FormatOptions) string {
	return format.Render(doc, opts)
}
