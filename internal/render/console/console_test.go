package console_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/console"
)

func TestHeadingGetsRuleFill(t *testing.T) {
	doc, _ := parse.Parse([]byte("# Title"), parse.Options{})
	var buf strings.Builder
	err := console.Render(&buf, doc, console.Options{Width: 20})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Title")
	assert.Contains(t, buf.String(), "═")
}

func TestLinkEmitsOSC8WhenColorForced(t *testing.T) {
	doc, _ := parse.Parse([]byte("[label](http://example.com)"), parse.Options{})
	var buf strings.Builder
	assert.NoError(t, console.Render(&buf, doc, console.Options{ForceColor: true}))
	out := buf.String()
	assert.Contains(t, out, "\x1b]8;;http://example.com\x1b\\")
	assert.Contains(t, out, "label")
}

func TestNonTerminalWriterDowngradesToPlainText(t *testing.T) {
	doc, _ := parse.Parse([]byte("[label](http://example.com)"), parse.Options{})
	var buf strings.Builder
	assert.NoError(t, console.Render(&buf, doc, console.Options{}))
	out := buf.String()
	assert.Contains(t, out, "label")
	assert.False(t, strings.Contains(out, "\x1b]8;;"))
}

func TestAlertBoxFramesNoteWithIcon(t *testing.T) {
	doc, _ := parse.Parse([]byte("> [!NOTE]\n> hello"), parse.Options{})
	var buf strings.Builder
	assert.NoError(t, console.Render(&buf, doc, console.Options{}))
	out := buf.String()
	assert.Contains(t, out, "NOTE")
	assert.Contains(t, out, "ℹ")
	assert.Contains(t, out, "hello")
}

func TestUnrecognizedDirectiveHasNoIcon(t *testing.T) {
	doc, _ := parse.Parse([]byte("```{mystery}\nbody\n```"), parse.Options{})
	var buf strings.Builder
	assert.NoError(t, console.Render(&buf, doc, console.Options{}))
	out := buf.String()
	assert.Contains(t, out, "MYSTERY")
	assert.Contains(t, out, "body")
	for _, icon := range []string{"ℹ", "★", "⚠", "⛔"} {
		assert.False(t, strings.Contains(out, icon))
	}
}

func TestTableRendersWithBoxDrawing(t *testing.T) {
	doc, _ := parse.Parse([]byte("| a | b |\n|---|---|\n| 1 | 2 |"), parse.Options{})
	var buf strings.Builder
	assert.NoError(t, console.Render(&buf, doc, console.Options{Width: 40}))
	out := buf.String()
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}
