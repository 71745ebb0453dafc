package ast

// InlineType identifies which variant an Inline node holds.
type InlineType uint8

const (
	// InlineText is a run of plain styled text.
	InlineText InlineType = iota
	// InlineLink is [label](url); Runs holds the styled label.
	InlineLink
	// InlineAutolink is <scheme://...>; it is self-labeled.
	InlineAutolink
	// InlineImage is ![alt](src).
	InlineImage
	// InlineCodeSpan is a verbatim backtick-delimited run.
	InlineCodeSpan
	// InlineLineBreak is a hard line break (two trailing spaces + newline).
	InlineLineBreak
)

// ImageKind classifies where an image's bytes come from.
type ImageKind uint8

// ImageKind values.
const (
	ImageLocal ImageKind = iota
	ImageWeb
)

// ImageFormat is inferred from an image src's extension.
type ImageFormat uint8

// ImageFormat values.
const (
	ImageFormatOther ImageFormat = iota
	ImageFormatPNG
	ImageFormatJPEG
	ImageFormatSVG
)

// Inline is one phrasing-content node inside a Leaf. Exactly one of its
// fields is meaningful, selected by Type.
type Inline struct {
	Type InlineType

	// InlineText
	Text  string
	Style TextStyle

	// InlineLink / InlineAutolink / InlineImage
	URL  string
	Runs []Inline // styled label/alt runs; recursively inline for links

	// InlineImage only
	Kind   ImageKind
	Format ImageFormat

	// InlineCodeSpan
	Code string
}

// NewText builds a plain text inline run.
func NewText(text string, style TextStyle) Inline {
	return Inline{Type: InlineText, Text: text, Style: style}
}

// NewLineBreak builds a hard line break inline.
func NewLineBreak() Inline { return Inline{Type: InlineLineBreak} }

// NewCodeSpan builds a verbatim inline code span.
func NewCodeSpan(code string) Inline { return Inline{Type: InlineCodeSpan, Code: code} }

// NewLink builds a link inline with a styled label run sequence.
func NewLink(url string, label []Inline) Inline {
	return Inline{Type: InlineLink, URL: url, Runs: label}
}

// NewAutolink builds a self-labeled autolink.
func NewAutolink(url string) Inline { return Inline{Type: InlineAutolink, URL: url} }

// NewImage builds an image inline with the given, already classified,
// kind and format.
func NewImage(src string, alt []Inline, kind ImageKind, format ImageFormat) Inline {
	return Inline{Type: InlineImage, URL: src, Runs: alt, Kind: kind, Format: format}
}

// PlainText flattens an inline sequence to its plain-text content,
// discarding all styling. Used for heading anchor derivation and ToC
// labels.
func PlainText(runs []Inline) string {
	var out []byte
	for _, r := range runs {
		out = appendPlainText(out, r)
	}
	return string(out)
}

func appendPlainText(out []byte, r Inline) []byte {
	switch r.Type {
	case InlineText:
		out = append(out, r.Text...)
	case InlineCodeSpan:
		out = append(out, r.Code...)
	case InlineLineBreak:
		out = append(out, ' ')
	case InlineLink, InlineImage:
		for _, sub := range r.Runs {
			out = appendPlainText(out, sub)
		}
	case InlineAutolink:
		out = append(out, r.URL...)
	}
	return out
}
