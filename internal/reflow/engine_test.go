package reflow_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/reflow"
)

func TestWordsSplitsOnSpaceAndKeepsAtomsIndivisible(t *testing.T) {
	runs := []ast.Inline{
		ast.NewText("one two", ast.TextStyle{}),
		ast.NewLink("http://x", []ast.Inline{ast.NewText("a label", ast.TextStyle{})}),
	}
	atomic := func(in ast.Inline) (string, ast.TextStyle) {
		return ast.PlainText(in.Runs), ast.TextStyle{Underline: true}
	}
	atoms := reflow.Words(runs, atomic)
	assert.Equal(t, 3, len(atoms))
	assert.Equal(t, "one", atoms[0].Display)
	assert.Equal(t, "two", atoms[1].Display)
	assert.Equal(t, "a label", atoms[2].Display)
	assert.True(t, atoms[2].Style.Underline)
}

func TestWrapBreaksAtWidthOnSpaceBoundary(t *testing.T) {
	atoms := []reflow.Atom{
		{Display: "aaaa"}, {Display: "bb"}, {Display: "cc"},
	}
	lines := reflow.Wrap(atoms, 7)
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, 2, len(lines[0]))
	assert.Equal(t, 1, len(lines[1]))
}

func TestWrapNeverSplitsAnOversizedAtom(t *testing.T) {
	atoms := []reflow.Atom{{Display: "supercalifragilistic"}}
	lines := reflow.Wrap(atoms, 5)
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, "supercalifragilistic", lines[0][0].Display)
}

func TestWrapHonorsExplicitBreakAtoms(t *testing.T) {
	atoms := []reflow.Atom{{Display: "one"}, {Break: true}, {Display: "two"}}
	lines := reflow.Wrap(atoms, 80)
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "one", lines[0][0].Display)
	assert.Equal(t, "two", lines[1][0].Display)
}

func TestWidthCountsTerminalColumnsNotBytes(t *testing.T) {
	assert.Equal(t, 4, reflow.Width("日本"))
	assert.Equal(t, 3, reflow.Width("abc"))
}

func TestLeaderWidthSumsAllEntries(t *testing.T) {
	leaders := []reflow.Leader{{Text: "> "}, {Text: "  "}}
	assert.Equal(t, 4, reflow.LeaderWidth(leaders))
}
