// Package toc builds the table-of-contents subtree spec.md §4.8 splices
// in wherever a {toc} directive code block appears.
package toc

import (
	"strings"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
)

// AnchorID derives the HTML/console anchor id for a heading's plain
// text: lowercased, spaces replaced with dashes, matching §4.6 and §4.8.
func AnchorID(headingText string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(headingText) {
		if r == ' ' {
			b.WriteByte('-')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Build walks root in document order, collects every Heading, and
// returns a nested unordered List whose items link to each heading's
// anchor. Nesting follows heading level: a heading nests inside the
// item of the nearest still-open heading with a strictly lower level;
// a sub-list is only attached to its parent item once it actually gains
// a child, so headings with no deeper heading beneath them stay flat.
func Build(root *ast.Block) *ast.Block {
	type frame struct {
		level      int
		list       *ast.Block
		parentItem *ast.Block // nil for the top frame
	}
	top := ast.NewList(ast.ListUnordered, 1, 0)
	stack := []frame{{level: 0, list: top}}
	attached := map[*ast.Block]bool{}

	var walk func(b *ast.Block)
	walk = func(b *ast.Block) {
		if !b.IsContainer() && b.LeafType == ast.LeafHeading {
			for len(stack) > 1 && stack[len(stack)-1].level >= b.Heading.Level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1]

			item := ast.NewListItem(0)
			link := ast.NewLink("#"+AnchorID(b.Heading.Text), []ast.Inline{ast.NewText(b.Heading.Text, ast.TextStyle{})})
			para := ast.NewParagraph(0)
			para.Inlines = []ast.Inline{link}
			item.AppendChild(para)

			if !attached[parent.list] {
				attached[parent.list] = true
				if parent.parentItem != nil {
					parent.parentItem.AppendChild(parent.list)
				}
			}
			parent.list.AppendChild(item)

			sub := ast.NewList(ast.ListUnordered, 1, 0)
			stack = append(stack, frame{level: b.Heading.Level, list: sub, parentItem: item})
			return
		}
		if b.IsContainer() {
			for _, c := range b.Children {
				walk(c)
			}
		}
	}
	attached[top] = true
	walk(root)
	return top
}
