package parse

import (
	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/line"
)

// peekIsTableDelimiter reports whether the line after the current one,
// once stripped of the same ancestor prefixes, is a valid delimiter row.
// A header row only starts a table when immediately followed by one.
func (p *parser) peekIsTableDelimiter() bool {
	if p.idx+1 >= len(p.lines) {
		return false
	}
	next := p.lines[p.idx+1].Text
	remainder, failedAt := p.consumeAncestors(next)
	if failedAt >= 0 {
		return false
	}
	return line.TableDelimiterRow(remainder)
}

// openTable creates the Table container from its header row and
// consumes the delimiter row on the following line without reprocessing
// it as its own line.
func (p *parser) openTable(headerCells []string) {
	table := ast.NewTable(len(headerCells), line.IndentOf(p.lines[p.idx].Text))
	table.Open = true
	p.stackTail().AppendChild(table)
	p.stack = append(p.stack, table)
	p.appendTableRow(headerCells)
	p.idx++ // skip the delimiter row
}

// appendTableRow pads or truncates cells to the table's fixed column
// count and appends each as an inline-parsed Paragraph leaf cell.
func (p *parser) appendTableRow(cells []string) {
	table := p.stackTail()
	ncol := table.Table.NCol
	for i := 0; i < ncol; i++ {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		cell := ast.NewParagraph(0)
		cell.Inlines = ParseInline(text)
		table.AppendChild(cell)
	}
}
