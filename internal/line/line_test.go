package line_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/line"
)

func TestSplitKeepsEmptyLinesAndStripsCR(t *testing.T) {
	lines := line.Split([]byte("a\r\nb\n\nc"))
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "a", lines[0].Text)
	assert.Equal(t, "b", lines[1].Text)
	assert.Equal(t, "", lines[2].Text)
	assert.Equal(t, "c", lines[3].Text)
}

func TestHeadingPrefixRequiresSpaceAfterHashes(t *testing.T) {
	level, rest, ok := line.HeadingPrefix("## Title")
	assert.True(t, ok)
	assert.Equal(t, 2, level)
	assert.Equal(t, "Title", rest)

	_, _, ok = line.HeadingPrefix("##Title")
	assert.False(t, ok)
}

func TestHeadingPrefixRejectsSevenHashes(t *testing.T) {
	_, _, ok := line.HeadingPrefix("####### nope")
	assert.False(t, ok)
}

func TestFencePrefixParsesLanguageAndDirective(t *testing.T) {
	char, length, info, ok := line.FencePrefix("```go")
	assert.True(t, ok)
	assert.Equal(t, byte('`'), char)
	assert.Equal(t, 3, length)
	assert.Equal(t, "go", info)

	char, length, info, ok = line.FencePrefix("~~~~{warning}")
	assert.True(t, ok)
	assert.Equal(t, byte('~'), char)
	assert.Equal(t, 4, length)
	assert.Equal(t, "{warning}", info)
}

func TestListItemPrefixRecognizesBulletOrderedAndTask(t *testing.T) {
	m, rest, ok := line.ListItemPrefix("- item")
	assert.True(t, ok)
	assert.Equal(t, "item", rest)
	_ = m

	_, rest, ok = line.ListItemPrefix("10. item")
	assert.True(t, ok)
	assert.Equal(t, "item", rest)

	m, rest, ok = line.ListItemPrefix("- [x] done")
	assert.True(t, ok)
	assert.True(t, m.Task)
	assert.True(t, m.Checked)
	assert.Equal(t, "done", rest)
}

func TestAlertMarkerRecognizesBracketedLabel(t *testing.T) {
	label, ok := line.AlertMarker("[!WARNING]")
	assert.True(t, ok)
	assert.Equal(t, "WARNING", label)

	_, ok = line.AlertMarker("not an alert")
	assert.False(t, ok)
}

func TestTableDelimiterRowRecognizesDashes(t *testing.T) {
	assert.True(t, line.TableDelimiterRow("|---|---|"))
	assert.False(t, line.TableDelimiterRow("| a | b |"))
}
