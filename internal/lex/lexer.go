// Package lex implements the Lexer (spec §4, component 1): a pure
// function from source bytes to a flat, line/column-annotated token
// stream. It carries no block-structure state — that is the parser's
// job. The inline pass (spec §4.2) consumes this stream directly; the
// block-level continuation/new-block logic (spec §4.1) instead uses the
// line-splitting and prefix-classification helpers in package line,
// which operate on raw bytes rather than on tokens.
package lex

import (
	"unicode/utf8"

	"github.com/JacobCrabill/zigdown-sub003/internal/token"
)

const eof = -1

// Lex tokenizes source into a flat token stream terminated by a single
// token.EOF. It never panics; malformed UTF-8 bytes are folded into
// adjacent Text runs as the replacement character would render them,
// matching spec §4.1's "malformed UTF-8 ... surfaces as replacement
// characters" failure semantics.
func Lex(source []byte) []token.Token {
	l := &lexer{source: source, line: 0, lineStart: 0}
	var toks []token.Token
	for {
		t := l.next()
		toks = append(toks, t)
		if t.Type == token.EOF {
			return toks
		}
	}
}

type lexer struct {
	source    []byte
	pos       int
	line      int
	lineStart int // byte offset where the current line began
}

func (l *lexer) col() int { return l.pos - l.lineStart }

func (l *lexer) make(typ token.Type, start int) token.Token {
	return token.Token{
		Type:   typ,
		Start:  start,
		End:    l.pos,
		Source: l.source[start:l.pos],
		Line:   l.line,
		Col:    start - l.lineStart,
	}
}

//nolint:cyclop // one branch per delimiter character class, not meaningfully reducible
func (l *lexer) next() token.Token {
	if l.pos >= len(l.source) {
		return token.Token{Type: token.EOF, Start: len(l.source), End: len(l.source), Line: l.line, Col: l.col()}
	}

	start := l.pos
	c := l.source[l.pos]

	switch {
	case c == '\n':
		l.pos++
		t := l.make(token.Newline, start)
		l.line++
		l.lineStart = l.pos
		return t
	case c == '\r':
		// Normalize CRLF: consume the \r silently by folding it into the
		// following newline token's start so callers never see a \r.
		l.pos++
		if l.pos < len(l.source) && l.source[l.pos] == '\n' {
			l.pos++
		}
		t := l.make(token.Newline, start)
		l.line++
		l.lineStart = l.pos
		return t
	case c == ' ' || c == '\t':
		for l.pos < len(l.source) && (l.source[l.pos] == ' ' || l.source[l.pos] == '\t') {
			l.pos++
		}
		return l.make(token.Whitespace, start)
	case c >= '0' && c <= '9':
		for l.pos < len(l.source) && l.source[l.pos] >= '0' && l.source[l.pos] <= '9' {
			l.pos++
		}
		return l.make(token.Number, start)
	case delimType(c) != token.EOF:
		l.pos++
		return l.make(delimType(c), start)
	default:
		return l.lexText(start)
	}
}

// delimType maps a single ASCII delimiter byte to its token type, or
// returns token.EOF (never a real delimiter type) to mean "not a
// delimiter".
func delimType(c byte) token.Type {
	switch c {
	case '#':
		return token.Hash
	case '*':
		return token.Asterisk
	case '_':
		return token.Underscore
	case '~':
		return token.Tilde
	case '`':
		return token.Backtick
	case '-':
		return token.Dash
	case '+':
		return token.Plus
	case '.':
		return token.Dot
	case ':':
		return token.Colon
	case '|':
		return token.Pipe
	case '!':
		return token.Bang
	case '<':
		return token.LessThan
	case '>':
		return token.GreaterThan
	case '{':
		return token.BraceOpen
	case '}':
		return token.BraceClose
	case '[':
		return token.BracketOpen
	case ']':
		return token.BracketClose
	case '(':
		return token.ParenOpen
	case ')':
		return token.ParenClose
	default:
		return token.EOF
	}
}

// lexText consumes a run of non-delimiter, non-whitespace, non-newline
// bytes as a single Text token, decoding UTF-8 so multi-byte runes are
// never split mid-sequence.
func (l *lexer) lexText(start int) token.Token {
	for l.pos < len(l.source) {
		c := l.source[l.pos]
		if c < utf8.RuneSelf {
			if c == '\n' || c == '\r' || c == ' ' || c == '\t' || delimType(c) != token.EOF || (c >= '0' && c <= '9') {
				break
			}
			l.pos++
			continue
		}
		r, size := utf8.DecodeRune(l.source[l.pos:])
		if r == utf8.RuneError && size <= 1 {
			l.pos++ // keep the single invalid byte in this Text run and go on
			continue
		}
		l.pos += size
	}
	return l.make(token.Text, start)
}
