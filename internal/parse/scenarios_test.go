package parse_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/format"
)

func formatOf(t *testing.T, source string) string {
	t.Helper()
	doc, warnings := parse.Parse([]byte(source), parse.Options{})
	assert.Equal(t, 0, len(warnings))
	return format.Render(doc, format.Options{})
}

func TestScenario1_HeadingWhitespaceNormalizes(t *testing.T) {
	assert.Equal(t, "# Hello!\n", formatOf(t, " #   Hello!  "))
}

func TestScenario2_EmphasisCanonicalOrderAndBullet(t *testing.T) {
	assert.Equal(t, "- _**list**_ item\n", formatOf(t, "  *   ***list*** item "))
}

func TestScenario3_NestedListDepthBucketing(t *testing.T) {
	got := formatOf(t, "- one\n - two\n  - three\n   - four")
	assert.Equal(t, "- one\n- two\n  - three\n  - four\n", got)
}

func TestScenario4_TableTreeShape(t *testing.T) {
	doc, _ := parse.Parse([]byte("| a | b |\n|---|---|\n| 1 | 2 |"), parse.Options{})
	assert.Equal(t, 1, len(doc.Children))
	table := doc.Children[0]
	assert.Equal(t, ast.ContainerTable, table.ContainerType)
	assert.Equal(t, 2, table.Table.NCol)
	assert.Equal(t, 4, len(table.Children))
	want := []string{"a", "b", "1", "2"}
	for i, cell := range table.Children {
		assert.Equal(t, ast.LeafParagraph, cell.LeafType)
		assert.Equal(t, want[i], ast.PlainText(cell.Inlines))
	}
}

func TestScenario5_DirectiveCodeBlock(t *testing.T) {
	doc, _ := parse.Parse([]byte("```{warning}\nbar\n```"), parse.Options{})
	code := doc.Children[0]
	assert.Equal(t, ast.LeafCode, code.LeafType)
	assert.Equal(t, "warning", code.Code.Directive)
	assert.Equal(t, "bar", code.Code.Text)
}

func TestScenario6_AlertFromQuote(t *testing.T) {
	doc, _ := parse.Parse([]byte("> [!NOTE]\n> hello"), parse.Options{})
	alert := doc.Children[0]
	assert.Equal(t, ast.LeafAlert, alert.LeafType)
	assert.Equal(t, "NOTE", alert.Alert.Alert)
	assert.Equal(t, "hello", ast.PlainText(alert.Inlines))
}

func TestNestedQuoteNeverPromotesToAlert(t *testing.T) {
	doc, _ := parse.Parse([]byte("> > [!NOTE]\n> > hello"), parse.Options{})
	outer := doc.Children[0]
	assert.Equal(t, ast.ContainerQuote, outer.ContainerType)
	inner := outer.Children[0]
	assert.Equal(t, ast.ContainerQuote, inner.ContainerType)
	assert.Equal(t, ast.LeafParagraph, inner.Children[0].LeafType)
}

func TestUnclosedFenceWarnsAndPreservesBody(t *testing.T) {
	doc, warnings := parse.Parse([]byte("```\nfoo\nbar"), parse.Options{})
	assert.Equal(t, 1, len(warnings))
	code := doc.Children[0]
	assert.Equal(t, "foo\nbar", code.Code.Text)
}

func TestOrderedListStartOffset(t *testing.T) {
	doc, _ := parse.Parse([]byte("10. ten\n11. eleven"), parse.Options{})
	list := doc.Children[0]
	assert.Equal(t, 10, list.List.Start)
	assert.Equal(t, 2, len(list.Children))
}

func TestHardLineBreak(t *testing.T) {
	doc, _ := parse.Parse([]byte("one  \ntwo"), parse.Options{})
	para := doc.Children[0]
	var sawBreak bool
	for _, in := range para.Inlines {
		if in.Type == ast.InlineLineBreak {
			sawBreak = true
		}
	}
	assert.True(t, sawBreak)
}

func TestTaskMarkerCapitalXChecked(t *testing.T) {
	doc, _ := parse.Parse([]byte("- [X] done\n- [ ] todo"), parse.Options{})
	list := doc.Children[0]
	assert.True(t, list.Children[0].ListItem.Checked)
	assert.False(t, list.Children[1].ListItem.Checked)
}

func TestWarnCallbackInvoked(t *testing.T) {
	var messages []string
	_, warnings := parse.Parse([]byte("```\nfoo"), parse.Options{Warn: func(s string) {
		messages = append(messages, s)
	}})
	assert.Equal(t, len(warnings), len(messages))
	assert.Equal(t, 1, len(messages))
}
