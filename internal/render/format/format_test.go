package format_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/format"
)

func formatTwice(t *testing.T, source string) (first, second string) {
	t.Helper()
	doc, _ := parse.Parse([]byte(source), parse.Options{})
	first = format.Render(doc, format.Options{})
	doc2, _ := parse.Parse([]byte(first), parse.Options{})
	second = format.Render(doc2, format.Options{})
	return
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome paragraph text.\n",
		"- one\n- two\n  - three\n  - four\n",
		"> a quote\n",
		"| a | b |\n| --- | --- |\n| 1 | 2 |\n",
	}
	for _, in := range inputs {
		first, second := formatTwice(t, in)
		assert.Equal(t, first, second)
	}
}

func TestEmphasisSurvivesParagraphAndListItemRewrap(t *testing.T) {
	doc, _ := parse.Parse([]byte("  *   ***list*** item "), parse.Options{})
	out := format.Render(doc, format.Options{})
	assert.Equal(t, "- _**list**_ item\n", out)

	doc, _ = parse.Parse([]byte("a ***strong and emphasized*** word"), parse.Options{})
	out = format.Render(doc, format.Options{})
	assert.Equal(t, "a _**strong**_ _**and**_ _**emphasized**_ word\n", out)
}

func TestFormatParseFidelityPreservesEmphasis(t *testing.T) {
	first, second := formatTwice(t, "a **bold** and *italic* and ~~struck~~ word\n")
	assert.Equal(t, first, second)
	assert.Contains(t, first, "**bold**")
	assert.Contains(t, first, "_italic_")
	assert.Contains(t, first, "~~struck~~")
}

func TestTablePadding(t *testing.T) {
	doc, _ := parse.Parse([]byte("| a | bb |\n|---|---|\n| ccc | d |"), parse.Options{})
	out := format.Render(doc, format.Options{})
	assert.Contains(t, out, "| --- | --- |\n")
}

func TestCodeFenceVerbatim(t *testing.T) {
	doc, _ := parse.Parse([]byte("```go\nfunc f() {}\n```"), parse.Options{})
	out := format.Render(doc, format.Options{})
	assert.Equal(t, "```go\nfunc f() {}\n```\n", out)
}
