package parse

import (
	"strings"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/line"
)

// consumeAncestors walks p.stack from root down, letting each open
// Container strip its continuation prefix from text. It returns the
// remaining text and, if some container rejected continuation, the
// stack index of the first container that failed (everything from that
// index on must be closed by the caller). failedAt is -1 on full
// success.
func (p *parser) consumeAncestors(text string) (remainder string, failedAt int) {
	cur := text
	for i := 1; i < len(p.stack); i++ {
		c := p.stack[i]
		switch c.ContainerType {
		case ast.ContainerQuote:
			rest, ok := line.QuotePrefix(cur)
			if !ok {
				return cur, i
			}
			cur = rest
		case ast.ContainerList:
			// The List itself consumes nothing; its ListItem children do.
		case ast.ContainerListItem:
			// Plain continuation text (no new marker) must indent at least
			// one nesting level's width past its list; handleListMarkerLine
			// handles marker lines itself via depth bucketing before this
			// walk ever runs, so only non-marker content reaches this case.
			if line.IndentOf(cur) < listIndentWidth {
				return cur, i
			}
			cur = cur[min(len(cur), listIndentWidth):]
		case ast.ContainerTable:
			if _, ok := line.TableRow(cur); !ok {
				return cur, i
			}
		case ast.ContainerDocument:
			// unreachable below index 0
		}
	}
	return cur, -1
}

// closeFrom closes every stack entry from index idx onward (and the
// open leaf/code beneath it), truncating the stack to idx.
func (p *parser) closeFrom(idx int) {
	if p.openLeaf != nil {
		p.closeOpenLeaf()
	}
	if p.openCode != nil {
		p.closeOpenCode(true)
	}
	for i := idx; i < len(p.stack); i++ {
		p.stack[i].Open = false
		delete(p.listBullet, p.stack[i])
		delete(p.listDelim, p.stack[i])
		delete(p.listDepth, p.stack[i])
	}
	p.stack = p.stack[:idx]
}

func (p *parser) closeOpenLeaf() {
	leaf := p.openLeaf
	raw := p.leafRaw.String()
	p.leafRaw.Reset()
	p.openLeaf = nil

	switch leaf.LeafType {
	case ast.LeafParagraph:
		leaf.Inlines = ParseInline(strings.TrimSuffix(raw, "\n"))
	case ast.LeafAlert:
		leaf.Inlines = ParseInline(strings.TrimSuffix(raw, "\n"))
	}
	leaf.Open = false
}

func (p *parser) closeOpenCode(warnUnclosed bool) {
	if p.openCode == nil {
		return
	}
	if warnUnclosed {
		p.warn("unclosed fenced code block")
	}
	p.openCode.Code.Text = strings.TrimSuffix(p.leafRaw.String(), "\n")
	p.openCode.Open = false
	p.leafRaw.Reset()
	p.openCode = nil
}

// finish closes everything still open at EOF.
func (p *parser) finish() {
	if p.openCode != nil {
		p.closeOpenCode(true)
	}
	if p.openLeaf != nil {
		p.closeOpenLeaf()
	}
	for i := len(p.stack) - 1; i >= 0; i-- {
		p.stack[i].Open = false
	}
	p.stack = p.stack[:1]
}
