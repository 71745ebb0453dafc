// Package parse implements the Parser (spec §4.1): an open-block-stack
// state machine that consumes source lines and builds the ast.Block
// document tree, plus the inline pass (§4.2) it calls for every leaf
// that accepts phrasing content.
package parse

import (
	"strings"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/line"
)

// Parse builds a Document tree from source. It never panics and never
// fails outright; recoverable oddities are reported as Warnings
// alongside the tree (spec §7's ParseWarn).
func Parse(source []byte, opts Options) (*ast.Block, []Warning) {
	p := &parser{opts: opts}
	p.root = ast.NewDocument()
	p.root.Open = true
	p.stack = []*ast.Block{p.root}
	p.listBullet = map[*ast.Block]byte{}
	p.listDelim = map[*ast.Block]byte{}
	p.listDepth = map[*ast.Block]int{}

	p.lines = line.Split(source)
	for p.idx = 0; p.idx < len(p.lines); p.idx++ {
		p.processLine(p.lines[p.idx].Text)
	}
	p.finish()
	return p.root, p.warnings
}

type parser struct {
	opts     Options
	warnings []Warning

	lines []line.Line
	idx   int

	root  *ast.Block
	stack []*ast.Block // index 0 is always root; containers only

	openLeaf *ast.Block // currently open Paragraph or Alert, or nil
	leafRaw  strings.Builder

	openCode      *ast.Block
	codeFenceChar byte
	codeFenceLen  int

	listBullet map[*ast.Block]byte // unordered bullet char per open List
	listDelim  map[*ast.Block]byte // ordered delimiter char per open List
	listDepth  map[*ast.Block]int  // nesting depth (0 = outermost) per open List

	// blankPending is true right after a blank line, until the next
	// successfully-continued or newly-opened block consumes it. A list
	// item that opens while it's true makes its list loose (spacing=1).
	blankPending bool
}

func (p *parser) warn(msg string) {
	w := Warning{Line: p.idx, Message: msg}
	p.warnings = append(p.warnings, w)
	p.opts.warn(w)
}

func (p *parser) stackTail() *ast.Block { return p.stack[len(p.stack)-1] }

func (p *parser) processLine(text string) {
	if p.openCode != nil {
		p.handleCodeLine(text)
		return
	}
	if line.IsBlank(text) {
		p.handleBlankLine()
		return
	}
	p.handleContentLine(text)
}

func (p *parser) handleBlankLine() {
	if p.openLeaf != nil {
		p.closeOpenLeaf()
	}
	tail := p.stackTail()
	if n := len(tail.Children); n == 0 || tail.Children[n-1].LeafType != ast.LeafBreak || !tail.Children[n-1].IsLeaf() {
		tail.AppendChild(ast.NewBreak(tail.StartCol))
	}
	// A blank line between two list items makes the enclosing list loose.
	// We don't know yet whether another item follows; handleListMarkerLine
	// sets the list's Spacing when a sibling item opens while blankPending
	// is still set.
	p.blankPending = true
}

func (p *parser) handleCodeLine(text string) {
	remainder, failedAt := p.consumeAncestors(text)
	if failedAt >= 0 {
		p.closeOpenCode(true)
		p.closeFrom(failedAt)
		p.processLine(text)
		return
	}
	if p.matchesClosingFence(remainder) {
		p.closeOpenCode(false)
		return
	}
	p.leafRaw.WriteString(remainder)
	p.leafRaw.WriteByte('\n')
}

// matchesClosingFence reports whether remainder is (after indent) a run
// of p.codeFenceChar at least p.codeFenceLen long and nothing else.
func (p *parser) matchesClosingFence(remainder string) bool {
	char, length, info, ok := line.FencePrefix(remainder)
	return ok && char == p.codeFenceChar && length >= p.codeFenceLen && info == ""
}

// stripQuotesOnly strips only the Quote prefixes among the open
// ancestors, leaving any open Lists' indentation untouched, so a list
// marker's own column can be read and bucketed into a nesting depth
// before any list-specific continuation rule runs.
func (p *parser) stripQuotesOnly(text string) (string, bool) {
	cur := text
	for i := 1; i < len(p.stack); i++ {
		if p.stack[i].ContainerType != ast.ContainerQuote {
			continue
		}
		rest, ok := line.QuotePrefix(cur)
		if !ok {
			return cur, false
		}
		cur = rest
	}
	return cur, true
}

func (p *parser) handleContentLine(text string) {
	if base, ok := p.stripQuotesOnly(text); ok {
		if marker, rest, ok := line.ListItemPrefix(base); ok {
			p.handleListMarkerLine(base, marker, rest)
			p.blankPending = false
			return
		}
	}

	remainder, failedAt := p.consumeAncestors(text)
	if failedAt >= 0 {
		p.closeFrom(failedAt)
	}

	// If the ancestor walk above succeeded all the way to an open Table,
	// TableRow(remainder) is guaranteed to match (consumeAncestors checks
	// exactly that for a ContainerTable stack entry), so this row simply
	// extends the table rather than falling through to leaf/new-block
	// handling.
	if p.stackTail().ContainerType == ast.ContainerTable {
		cells, _ := line.TableRow(remainder)
		p.appendTableRow(cells)
		p.blankPending = false
		return
	}

	if p.openLeaf != nil {
		if p.leafAccept(remainder) {
			p.blankPending = false
			return
		}
		p.closeOpenLeaf()
	}

	p.dispatchNewBlock(remainder)
	p.blankPending = false
}
