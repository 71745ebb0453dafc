// Package line implements the line-splitting and prefix-classification
// token helpers (spec §4, component 2). These operate directly on raw
// source bytes rather than on the lexer's token stream: block-level
// recognition needs indentation and marker-length counting that is far
// simpler to express against bytes than against a token sequence.
package line

import "strings"

// Line is one line of source text, without its terminating newline.
type Line struct {
	Text      string // line content, '\n'/'\r\n' stripped
	ByteStart int    // byte offset of Text[0] in the original source
	Number    int    // 0-based line number
}

// Split breaks source into lines. A trailing incomplete line (no final
// newline) is still included. An empty source yields zero lines.
func Split(source []byte) []Line {
	s := string(source)
	if s == "" {
		return nil
	}
	var lines []Line
	start := 0
	lineNo := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			text := s[start:i]
			text = strings.TrimSuffix(text, "\r")
			lines = append(lines, Line{Text: text, ByteStart: start, Number: lineNo})
			start = i + 1
			lineNo++
		}
	}
	if start < len(s) {
		lines = append(lines, Line{Text: s[start:], ByteStart: start, Number: lineNo})
	}
	return lines
}

// IndentOf returns the number of leading space characters (tabs count as
// one column, matching spec's column-counting-in-indentation convention
// for list continuation).
func IndentOf(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// IsBlank reports whether s is empty or all whitespace.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }

// HeadingPrefix reports whether s is an ATX heading line, returning the
// level (1-6) and the remaining text after the marker and its one
// required space.
func HeadingPrefix(s string) (level int, rest string, ok bool) {
	trimmed := strings.TrimLeft(s, " \t")
	n := 0
	for n < len(trimmed) && n < 6 && trimmed[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return 0, "", false
	}
	if n < len(trimmed) && trimmed[n] != ' ' {
		// "#hello" is not a heading; "######" alone with nothing after is
		// also rejected unless followed by a space.
		if trimmed[n] != 0 {
			return 0, "", false
		}
	}
	if n >= len(trimmed) {
		return 0, "", false
	}
	if trimmed[n] != ' ' {
		return 0, "", false
	}
	return n, strings.TrimLeft(trimmed[n+1:], " "), true
}

// QuotePrefix reports whether s begins with a blockquote marker '>' and
// returns the remainder after the marker and at most one following
// space.
func QuotePrefix(s string) (rest string, ok bool) {
	trimmed := strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(trimmed, ">") {
		return "", false
	}
	rest = trimmed[1:]
	rest = strings.TrimPrefix(rest, " ")
	return rest, true
}

// FencePrefix reports whether s opens a fenced code block, returning the
// fence character, its length, and the info string after it.
func FencePrefix(s string) (char byte, length int, info string, ok bool) {
	trimmed := strings.TrimLeft(s, " \t")
	if trimmed == "" {
		return 0, 0, "", false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return 0, 0, "", false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0, "", false
	}
	return c, n, strings.TrimSpace(trimmed[n:]), true
}

// ListMarker describes a recognized list-item marker.
type ListMarker struct {
	Unordered bool
	Ordered   bool
	Task      bool
	Bullet    byte // '-', '+', '*' for unordered/task
	Delim     byte // '.' or ')' for ordered lists
	Ordinal   int  // for ordered lists
	Checked   bool // for task lists
	// ContentCol is the column (byte offset within the line) where the
	// item's content begins, i.e. where continuation lines must indent to.
	ContentCol int
}

// ListItemPrefix recognizes a list item marker at the start of s (after
// leading indent), returning the marker info and the remaining text.
//
//nolint:cyclop // one branch per marker grammar rule; not meaningfully smaller
func ListItemPrefix(s string) (m ListMarker, rest string, ok bool) {
	indent := IndentOf(s)
	body := s[indent:]
	if body == "" {
		return ListMarker{}, "", false
	}

	switch body[0] {
	case '-', '+', '*':
		if len(body) < 2 || body[1] != ' ' {
			return ListMarker{}, "", false
		}
		m = ListMarker{Unordered: true, Bullet: body[0]}
		rest = body[2:]

		if task, checked, taskRest, isTask := taskPrefix(rest); isTask {
			m.Unordered = false
			m.Task = true
			m.Checked = checked
			rest = taskRest
			_ = task
		}

		m.ContentCol = indent + (len(body) - len(rest))
		return m, rest, true
	default:
		return ordinalPrefix(s, indent, body)
	}
}

func taskPrefix(rest string) (marker string, checked bool, after string, ok bool) {
	if len(rest) >= 3 && rest[0] == '[' && rest[2] == ']' {
		switch rest[1] {
		case ' ':
			return "[ ]", false, strings.TrimPrefix(rest[3:], " "), true
		case 'x', 'X':
			return "[x]", true, strings.TrimPrefix(rest[3:], " "), true
		}
	}
	return "", false, rest, false
}

func ordinalPrefix(s string, indent int, body string) (m ListMarker, rest string, ok bool) {
	n := 0
	for n < len(body) && body[n] >= '0' && body[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(body) {
		return ListMarker{}, "", false
	}
	delim := body[n]
	if delim != '.' && delim != ')' {
		return ListMarker{}, "", false
	}
	if n+1 >= len(body) || body[n+1] != ' ' {
		return ListMarker{}, "", false
	}
	ordinal := 0
	for _, c := range body[:n] {
		ordinal = ordinal*10 + int(c-'0')
	}
	rest = body[n+2:]
	m = ListMarker{Ordered: true, Ordinal: ordinal, Delim: delim, ContentCol: indent + n + 2}
	return m, rest, true
}

// TableRow reports whether s looks like a pipe-delimited table row and
// splits it into cells, consuming optional leading/trailing pipes.
func TableRow(s string) (cells []string, ok bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || !strings.Contains(trimmed, "|") {
		return nil, false
	}
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := splitUnescapedPipe(trimmed)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, true
}

func splitUnescapedPipe(s string) []string {
	var out []string
	var cur strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == '|':
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	out = append(out, cur.String())
	return out
}

// TableDelimiterRow reports whether s is a delimiter row like
// "| :--- | ---: |" (alignment colons accepted but not retained; format
// §4.7 always renders left-aligned `---`).
func TableDelimiterRow(s string) bool {
	cells, ok := TableRow(s)
	if !ok || len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		c = strings.TrimSpace(c)
		c = strings.TrimPrefix(c, ":")
		c = strings.TrimSuffix(c, ":")
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return true
}

// AlertMarker reports whether s (a quote-interior line, already stripped
// of its leading "> ") is a "[!LABEL]" alert marker line, returning
// LABEL case-preserved.
func AlertMarker(s string) (label string, ok bool) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "[!") || !strings.HasSuffix(t, "]") {
		return "", false
	}
	inner := t[2 : len(t)-1]
	if inner == "" {
		return "", false
	}
	return inner, true
}
