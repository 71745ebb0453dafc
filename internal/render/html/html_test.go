package html_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/html"
)

func render(t *testing.T, source string) string {
	t.Helper()
	doc, _ := parse.Parse([]byte(source), parse.Options{})
	var buf strings.Builder
	err := html.Render(&buf, doc, html.Options{})
	assert.NoError(t, err)
	return buf.String()
}

func TestScenario4_TableCells(t *testing.T) {
	out := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	assert.Contains(t, out, "<div class=\"md_cell\">a</div>")
	assert.Contains(t, out, "<div class=\"md_cell\">b</div>")
	assert.Contains(t, out, "<div class=\"md_cell\">1</div>")
	assert.Contains(t, out, "<div class=\"md_cell\">2</div>")
}

func TestScenario5_DirectiveBox(t *testing.T) {
	out := render(t, "```{warning}\nbar\n```")
	assert.Contains(t, out, "<div class=\"directive WARNING\">")
	assert.Contains(t, out, "bar")
}

func TestScenario6_AlertBox(t *testing.T) {
	out := render(t, "> [!NOTE]\n> hello")
	assert.Contains(t, out, "<div class=\"directive NOTE\">")
	assert.Contains(t, out, "hello")
}

func TestEmptyDocumentEmitsSkeleton(t *testing.T) {
	out := render(t, "")
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "<article class=\"md\">")
}

func TestHeadingAnchorID(t *testing.T) {
	out := render(t, "# Getting Started")
	assert.Contains(t, out, `id="getting-started"`)
}

func TestTextEscaped(t *testing.T) {
	out := render(t, "a < b & c")
	assert.Contains(t, out, "a &lt; b &amp; c")
}
