package parse

import (
	"strings"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/lex"
	"github.com/JacobCrabill/zigdown-sub003/internal/token"
)

// ParseInline runs the inline pass (spec §4.2) over a leaf's raw text,
// producing its phrasing-content Inline sequence. raw is the
// already-joined, not-yet-whitespace-folded text of every line the leaf
// absorbed while open.
func ParseInline(raw string) []ast.Inline {
	return parseInlineStyled(raw, ast.TextStyle{})
}

// parseInlineStyled is ParseInline with an ambient style carried in for
// recursive label parsing (so "**[text](url)**" bolds the link label).
func parseInlineStyled(raw string, ambient ast.TextStyle) []ast.Inline {
	segments, breaks := splitHardBreaks(raw)
	var out []ast.Inline
	for i, seg := range segments {
		out = append(out, scanInline(foldNewlines(seg), ambient)...)
		if i < len(breaks) {
			out = append(out, ast.NewLineBreak())
		}
	}
	return out
}

// splitHardBreaks splits raw on hard line breaks: two or more trailing
// spaces immediately before a '\n'. Returns the text segments and a
// parallel (len(segments)-1) marker slice (its length is all that
// matters to the caller).
func splitHardBreaks(raw string) (segments []string, breaks []struct{}) {
	var cur strings.Builder
	lines := strings.Split(raw, "\n")
	for i, ln := range lines {
		isLast := i == len(lines)-1
		trimmed := strings.TrimRight(ln, " ")
		trailingSpaces := len(ln) - len(trimmed)
		if !isLast && trailingSpaces >= 2 {
			cur.WriteString(trimmed)
			segments = append(segments, cur.String())
			breaks = append(breaks, struct{}{})
			cur.Reset()
			continue
		}
		cur.WriteString(ln)
		if !isLast {
			cur.WriteByte('\n')
		}
	}
	segments = append(segments, cur.String())
	return segments, breaks
}

// foldNewlines replaces every remaining lone '\n' with a single space,
// per spec §4.2's whitespace-folding rule.
func foldNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

type emphRun struct {
	char  byte
	count int
}

// scanInline tokenizes one hard-break-free segment and recognizes
// emphasis, code spans, links, images, and autolinks.
//
//nolint:cyclop,funlen // single-pass scanner; splitting it fragments the state it shares
func scanInline(s string, ambient ast.TextStyle) []ast.Inline {
	toks := lex.Lex([]byte(s))
	style := ambient
	var out []ast.Inline
	var textBuf strings.Builder

	flush := func() {
		if textBuf.Len() == 0 {
			return
		}
		out = append(out, ast.NewText(textBuf.String(), style))
		textBuf.Reset()
	}

	i := 0
	for i < len(toks) {
		t := toks[i]
		switch t.Type {
		case token.EOF:
			i++
		case token.Backtick:
			if node, next, ok := tryCodeSpan(toks, i); ok {
				flush()
				out = append(out, node)
				i = next
				continue
			}
			textBuf.WriteString(t.Text())
			i++
		case token.Bang:
			if node, next, ok := tryImage(toks, i, style); ok {
				flush()
				out = append(out, node)
				i = next
				continue
			}
			textBuf.WriteString(t.Text())
			i++
		case token.BracketOpen:
			if node, next, ok := tryLink(toks, i, style); ok {
				flush()
				out = append(out, node)
				i = next
				continue
			}
			textBuf.WriteString(t.Text())
			i++
		case token.LessThan:
			if node, next, ok := tryAutolink(toks, i); ok {
				flush()
				out = append(out, node)
				i = next
				continue
			}
			textBuf.WriteString(t.Text())
			i++
		case token.Asterisk, token.Underscore, token.Tilde:
			run, next := collectRun(toks, i, t.Type)
			flush()
			style = applyEmphasis(style, run)
			i = next
		default:
			textBuf.WriteString(t.Text())
			i++
		}
	}
	flush()
	return out
}

func collectRun(toks []token.Token, i int, typ token.Type) (emphRun, int) {
	char := typeChar(typ)
	n := 0
	for i < len(toks) && toks[i].Type == typ {
		n++
		i++
	}
	return emphRun{char: char, count: n}, i
}

func typeChar(t token.Type) byte {
	switch t {
	case token.Asterisk:
		return '*'
	case token.Underscore:
		return '_'
	case token.Tilde:
		return '~'
	default:
		return 0
	}
}

// applyEmphasis toggles style flags for a delimiter run, per spec §4.2 /
// §9 (a simple per-run toggle, not a full flanking-rule matcher — the
// spec's Open Question on emphasis pairing explicitly allows this).
func applyEmphasis(style ast.TextStyle, run emphRun) ast.TextStyle {
	switch run.char {
	case '~':
		style.Strike = !style.Strike
	case '*', '_':
		n := run.count
		for n > 0 {
			if n >= 2 {
				style.Bold = !style.Bold
				n -= 2
			} else {
				style.Italic = !style.Italic
				n--
			}
		}
	}
	return style
}

// tryCodeSpan matches a backtick-delimited span starting at toks[i].
func tryCodeSpan(toks []token.Token, i int) (ast.Inline, int, bool) {
	openLen := 0
	j := i
	for j < len(toks) && toks[j].Type == token.Backtick {
		openLen++
		j++
	}
	start := j
	for j < len(toks) {
		if toks[j].Type == token.Backtick {
			closeLen := 0
			k := j
			for k < len(toks) && toks[k].Type == token.Backtick {
				closeLen++
				k++
			}
			if closeLen == openLen {
				body := joinTokens(toks[start:j])
				return ast.NewCodeSpan(body), k, true
			}
			j = k
			continue
		}
		if toks[j].Type == token.EOF {
			break
		}
		j++
	}
	return ast.Inline{}, i, false
}

func joinTokens(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text())
	}
	return b.String()
}

// tryLink matches "[label](url)" starting at the '[' token index i.
func tryLink(toks []token.Token, i int, ambient ast.TextStyle) (ast.Inline, int, bool) {
	closeIdx := findMatchingBracket(toks, i+1)
	if closeIdx < 0 {
		return ast.Inline{}, i, false
	}
	if closeIdx+1 >= len(toks) || toks[closeIdx+1].Type != token.ParenOpen {
		return ast.Inline{}, i, false
	}
	urlStart := closeIdx + 2
	urlEnd := findToken(toks, urlStart, token.ParenClose)
	if urlEnd < 0 {
		return ast.Inline{}, i, false
	}
	label := joinTokens(toks[i+1 : closeIdx])
	url := joinTokens(toks[urlStart:urlEnd])
	runs := parseInlineStyled(label, ambient)
	return ast.NewLink(url, runs), urlEnd + 1, true
}

// tryImage matches "![alt](src)" starting at the '!' token index i.
func tryImage(toks []token.Token, i int, ambient ast.TextStyle) (ast.Inline, int, bool) {
	if i+1 >= len(toks) || toks[i+1].Type != token.BracketOpen {
		return ast.Inline{}, i, false
	}
	closeIdx := findMatchingBracket(toks, i+2)
	if closeIdx < 0 {
		return ast.Inline{}, i, false
	}
	if closeIdx+1 >= len(toks) || toks[closeIdx+1].Type != token.ParenOpen {
		return ast.Inline{}, i, false
	}
	urlStart := closeIdx + 2
	urlEnd := findToken(toks, urlStart, token.ParenClose)
	if urlEnd < 0 {
		return ast.Inline{}, i, false
	}
	alt := joinTokens(toks[i+2 : closeIdx])
	src := joinTokens(toks[urlStart:urlEnd])
	runs := parseInlineStyled(alt, ambient)
	kind := classifyImageKind(src)
	format := classifyImageFormat(src)
	return ast.NewImage(src, runs, kind, format), urlEnd + 1, true
}

func classifyImageKind(src string) ast.ImageKind {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return ast.ImageWeb
	}
	return ast.ImageLocal
}

func classifyImageFormat(src string) ast.ImageFormat {
	lower := strings.ToLower(src)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return ast.ImageFormatPNG
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return ast.ImageFormatJPEG
	case strings.HasSuffix(lower, ".svg"):
		return ast.ImageFormatSVG
	default:
		return ast.ImageFormatOther
	}
}

// tryAutolink matches "<scheme://...>" starting at the '<' token index i.
func tryAutolink(toks []token.Token, i int) (ast.Inline, int, bool) {
	end := findToken(toks, i+1, token.GreaterThan)
	if end < 0 {
		return ast.Inline{}, i, false
	}
	url := joinTokens(toks[i+1 : end])
	if !looksLikeURL(url) {
		return ast.Inline{}, i, false
	}
	return ast.NewAutolink(url), end + 1, true
}

func looksLikeURL(s string) bool {
	if strings.ContainsAny(s, " \t\n<>") {
		return false
	}
	idx := strings.Index(s, "://")
	if idx <= 0 {
		return false
	}
	scheme := s[:idx]
	for _, c := range scheme {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.') {
			return false
		}
	}
	return true
}

func findMatchingBracket(toks []token.Token, start int) int {
	return findToken(toks, start, token.BracketClose)
}

// findToken scans forward from start for the first token of typ, never
// crossing EOF. It does not track nesting — per spec §4.2, bracket/paren
// bodies are taken verbatim up to the first matching delimiter.
func findToken(toks []token.Token, start int, typ token.Type) int {
	for j := start; j < len(toks); j++ {
		if toks[j].Type == typ {
			return j
		}
		if toks[j].Type == token.EOF {
			return -1
		}
	}
	return -1
}
