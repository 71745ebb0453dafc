package ast_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
)

func TestCheckInvariantsAcceptsWellFormedTree(t *testing.T) {
	doc := ast.NewDocument()
	p := ast.NewParagraph(0)
	p.Inlines = []ast.Inline{ast.NewText("hi", ast.TextStyle{})}
	doc.AppendChild(p)
	assert.NoError(t, ast.CheckInvariants(doc))
}

func TestCheckInvariantsRejectsNonListItemInList(t *testing.T) {
	list := ast.NewList(ast.ListUnordered, 1, 0)
	list.AppendChild(ast.NewParagraph(0))
	assert.Error(t, ast.CheckInvariants(list))
}

func TestCheckInvariantsRejectsMismatchedTableCellCount(t *testing.T) {
	table := ast.NewTable(2, 0)
	table.AppendChild(ast.NewParagraph(0))
	assert.Error(t, ast.CheckInvariants(table))
}

func TestCheckInvariantsRejectsInlinesOnCodeLeaf(t *testing.T) {
	code := ast.NewCode("```", "", "", 0)
	code.Inlines = []ast.Inline{ast.NewText("nope", ast.TextStyle{})}
	assert.Error(t, ast.CheckInvariants(code))
}

func TestAppendChildPanicsOnLeaf(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic appending a child to a Leaf")
		}
	}()
	ast.NewParagraph(0).AppendChild(ast.NewParagraph(0))
}
