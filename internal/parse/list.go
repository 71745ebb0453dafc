package parse

import (
	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/line"
)

// listIndentWidth is the fixed number of columns one level of list
// nesting consumes. Real CommonMark ties this to each item's own marker
// width; this toolkit uses the simpler fixed-width convention common in
// lightweight parsers, bucketing indentation into nesting levels instead
// of tracking an exact column per item.
const listIndentWidth = 2

// handleListMarkerLine is reached whenever the current line (base,
// already stripped of any enclosing Quote prefixes only) matches a list
// item marker. It resolves which open list the new item attaches to —
// nesting one level deeper, joining the current list as a sibling, or
// popping back out to an ancestor — by bucketing base's indentation into
// nesting levels, then recurses into rest for content on the same line.
func (p *parser) handleListMarkerLine(base string, marker line.ListMarker, rest string) {
	if p.openLeaf != nil {
		p.closeOpenLeaf()
	}
	baseIndent := line.IndentOf(base)
	kind := listKind(marker)

	for {
		tail := p.stackTail()
		if tail.ContainerType != ast.ContainerListItem {
			p.openNewListUnder(tail, kind, marker, 0)
			p.dispatchNewBlock(rest)
			return
		}

		list := p.stack[len(p.stack)-2]
		parent := p.stack[len(p.stack)-3]
		depth := p.listDepth[list]

		if baseIndent >= listIndentWidth*(depth+1) {
			p.openNewListUnder(tail, kind, marker, depth+1)
			p.dispatchNewBlock(rest)
			return
		}
		if baseIndent >= listIndentWidth*depth {
			if p.sameListFlavor(list, marker, kind) {
				p.popOne() // the now-superseded item
				if p.blankPending {
					list.List.Spacing = 1
				}
				p.appendListItem(list, marker)
				p.dispatchNewBlock(rest)
				return
			}
			p.popOne() // item
			p.popOne() // list
			p.openNewListUnder(parent, kind, marker, depth)
			p.dispatchNewBlock(rest)
			return
		}
		p.popOne() // item
		p.popOne() // list
	}
}

func (p *parser) popOne() {
	b := p.stack[len(p.stack)-1]
	b.Open = false
	delete(p.listBullet, b)
	delete(p.listDelim, b)
	delete(p.listDepth, b)
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *parser) openNewListUnder(parent *ast.Block, kind ast.ListKind, marker line.ListMarker, depth int) {
	start := 1
	if marker.Ordered {
		start = marker.Ordinal
	}
	list := ast.NewList(kind, start, marker.ContentCol)
	list.Open = true
	parent.AppendChild(list)
	p.stack = append(p.stack, list)
	p.recordListFlavor(list, marker)
	p.listDepth[list] = depth
	p.appendListItem(list, marker)
}

func (p *parser) appendListItem(list *ast.Block, marker line.ListMarker) {
	item := ast.NewListItem(marker.ContentCol)
	item.Open = true
	if marker.Task {
		item.ListItem.Checked = marker.Checked
	}
	list.AppendChild(item)
	p.stack = append(p.stack, item)
}

func listKind(m line.ListMarker) ast.ListKind {
	switch {
	case m.Task:
		return ast.ListTask
	case m.Ordered:
		return ast.ListOrdered
	default:
		return ast.ListUnordered
	}
}

func (p *parser) sameListFlavor(list *ast.Block, marker line.ListMarker, kind ast.ListKind) bool {
	if list.List.ListKind != kind {
		return false
	}
	switch kind {
	case ast.ListUnordered:
		return p.listBullet[list] == marker.Bullet
	case ast.ListOrdered:
		return p.listDelim[list] == marker.Delim
	default: // ListTask: any checkbox bullet merges into the same list
		return true
	}
}

func (p *parser) recordListFlavor(list *ast.Block, marker line.ListMarker) {
	switch {
	case marker.Unordered:
		p.listBullet[list] = marker.Bullet
	case marker.Ordered:
		p.listDelim[list] = marker.Delim
	}
}
