// Package collab defines the contracts the renderers call out to for
// concerns spec.md §1 keeps external: syntax highlighting, terminal
// image delivery, remote fetches, and terminal-size probing. The core
// never implements these itself; embedders inject them.
package collab

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
)

// HighlightToken is one piece of a highlighted code body.
type HighlightToken struct {
	Style   ast.TextStyle
	Text    string
	Newline bool // true on the final token of a source line
}

// HighlightProvider performs syntax highlighting for a fenced code
// block's body. Implementations are free to shell out to Tree-sitter or
// any other engine; the core only consumes the token stream.
type HighlightProvider interface {
	Highlight(source, language string) ([]HighlightToken, error)
}

// ImageSender draws a decoded image inline in a terminal, sized to a
// cell budget. Implementations must be best-effort: a failure here
// degrades the surrounding render rather than aborting it.
type ImageSender interface {
	SendPNG(sink io.Writer, data []byte, widthCells, heightCells int) error
	SendRGB(sink io.Writer, rgb []byte, imgWidth, imgHeight, widthCells, heightCells int) error
}

// Fetcher retrieves the bytes of a remote image URL.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// TermSize reports the terminal's cell and pixel dimensions, as
// returned by a TermSizeProbe.
type TermSize struct {
	Cols, Rows        int
	WidthPx, HeightPx int
}

// TermSizeProbe reports the caller's terminal dimensions. Probe should
// return sensible defaults rather than fail when no terminal is attached.
type TermSizeProbe interface {
	Probe() TermSize
}

// DefaultTermSize is returned by probes (or used directly) when no
// terminal is attached.
var DefaultTermSize = TermSize{Cols: 80, Rows: 24, WidthPx: 640, HeightPx: 384}

// IsTerminal reports whether w is a character device a human is likely
// watching, so a renderer can decide whether ANSI styling and OSC-8
// hyperlinks are worth emitting. Pipes, files, and buffers all report
// false. A nil or non-*os.File writer also reports false.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
