package parse

import (
	"strings"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/line"
)

// dispatchNewBlock recognizes and opens a new block from remainder
// (spec §4.1 step 2), recursing when opening a Quote or List/ListItem
// exposes further nested structure on the same source line (e.g.
// "> - [ ] task").
func (p *parser) dispatchNewBlock(remainder string) {
	if char, length, info, ok := line.FencePrefix(remainder); ok {
		p.openCodeBlock(char, length, info)
		return
	}
	if level, rest, ok := line.HeadingPrefix(remainder); ok {
		p.appendHeading(level, rest)
		return
	}
	if rest, ok := line.QuotePrefix(remainder); ok {
		p.openQuoteOrAlert(rest)
		return
	}
	if marker, rest, ok := line.ListItemPrefix(remainder); ok {
		p.handleListMarkerLine(remainder, marker, rest)
		return
	}
	if cells, ok := line.TableRow(remainder); ok {
		if p.peekIsTableDelimiter() {
			p.openTable(cells)
			return
		}
	}
	p.openParagraph(remainder)
}

func (p *parser) openCodeBlock(char byte, length int, info string) {
	tag, directive := splitInfo(info)
	opener := strings.Repeat(string(char), length)
	block := ast.NewCode(opener, tag, directive, line.IndentOf(info))
	block.Open = true
	p.stackTail().AppendChild(block)
	p.openCode = block
	p.codeFenceChar = char
	p.codeFenceLen = length
	p.leafRaw.Reset()
}

func splitInfo(info string) (tag, directive string) {
	info = strings.TrimSpace(info)
	if strings.HasPrefix(info, "{") && strings.HasSuffix(info, "}") && len(info) > 2 {
		return "", info[1 : len(info)-1]
	}
	return info, ""
}

func (p *parser) appendHeading(level int, rest string) {
	block := ast.NewHeading(level, p.colOf(rest))
	block.Inlines = ParseInline(rest)
	block.Heading.Text = strings.TrimSpace(ast.PlainText(block.Inlines))
	p.stackTail().AppendChild(block)
}

func (p *parser) colOf(rest string) int { return len(p.lines[p.idx].Text) - len(rest) }

// openQuoteOrAlert is reached with rest already past the quote marker's
// '>' and optional space. It either promotes this to an Alert (only at
// the outermost nesting level, per spec §9's Open Question resolution)
// or opens an ordinary nested Quote container and recurses on rest.
func (p *parser) openQuoteOrAlert(rest string) {
	if !p.hasOpenQuoteAncestor() {
		if label, ok := line.AlertMarker(rest); ok {
			block := ast.NewAlert(label, p.colOf(rest))
			block.Open = true
			p.stackTail().AppendChild(block)
			p.openLeaf = block
			p.leafRaw.Reset()
			return
		}
	}
	quote := ast.NewQuote(p.colOf(rest))
	quote.Open = true
	p.stackTail().AppendChild(quote)
	p.stack = append(p.stack, quote)
	p.dispatchNewBlock(rest)
}

func (p *parser) hasOpenQuoteAncestor() bool {
	for _, b := range p.stack {
		if b.ContainerType == ast.ContainerQuote {
			return true
		}
	}
	return false
}

// leafAccept offers remainder to the currently open Paragraph or Alert.
// It returns false (rejecting) on blank-equivalent input or when
// remainder would open a new block, matching the collecting-raw state's
// transitions in spec §4.9.
func (p *parser) leafAccept(remainder string) bool {
	switch p.openLeaf.LeafType {
	case ast.LeafAlert:
		rest, ok := line.QuotePrefix(remainder)
		if !ok {
			return false
		}
		p.leafRaw.WriteString(rest)
		p.leafRaw.WriteByte('\n')
		return true
	case ast.LeafParagraph:
		if startsNewBlock(remainder) {
			return false
		}
		p.leafRaw.WriteString(remainder)
		p.leafRaw.WriteByte('\n')
		return true
	default:
		return false
	}
}

// startsNewBlock reports whether s looks like it opens a new block,
// which closes an in-progress paragraph per spec §4.9 even without an
// intervening blank line.
func startsNewBlock(s string) bool {
	if _, _, _, ok := line.FencePrefix(s); ok {
		return true
	}
	if _, _, ok := line.HeadingPrefix(s); ok {
		return true
	}
	if _, ok := line.QuotePrefix(s); ok {
		return true
	}
	if _, _, ok := line.ListItemPrefix(s); ok {
		return true
	}
	return false
}

func (p *parser) openParagraph(remainder string) {
	block := ast.NewParagraph(line.IndentOf(remainder))
	block.Open = true
	p.stackTail().AppendChild(block)
	p.openLeaf = block
	p.leafRaw.Reset()
	p.leafRaw.WriteString(remainder)
	p.leafRaw.WriteByte('\n')
}
