package rangerender_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
	"github.com/JacobCrabill/zigdown-sub003/internal/render/rangerender"
)

func TestPlainTextHasNoEscapeSequences(t *testing.T) {
	doc, _ := parse.Parse([]byte("**bold** and plain"), parse.Options{})
	res := rangerender.Render(doc, rangerender.Options{})
	assert.False(t, strings.Contains(res.Text, "\x1b"))
	assert.Contains(t, res.Text, "bold and plain")
}

func TestStyleRangesDontOverlapOnTheSameLine(t *testing.T) {
	doc, _ := parse.Parse([]byte("**bold** _italic_ plain"), parse.Options{})
	res := rangerender.Render(doc, rangerender.Options{})
	byLine := map[int][]rangerender.StyleRange{}
	for _, r := range res.Ranges {
		byLine[r.Line] = append(byLine[r.Line], r)
	}
	for _, ranges := range byLine {
		for i := 0; i < len(ranges); i++ {
			for j := i + 1; j < len(ranges); j++ {
				overlap := ranges[i].StartByte < ranges[j].EndByte && ranges[j].StartByte < ranges[i].EndByte
				assert.False(t, overlap)
			}
		}
	}
}

func TestRangeBoundsWithinLine(t *testing.T) {
	doc, _ := parse.Parse([]byte("**bold**"), parse.Options{})
	res := rangerender.Render(doc, rangerender.Options{})
	lines := strings.Split(res.Text, "\n")
	for _, r := range res.Ranges {
		assert.True(t, r.StartByte >= 0)
		assert.True(t, r.StartByte < r.EndByte)
		assert.True(t, r.EndByte <= len(lines[r.Line]))
	}
}
