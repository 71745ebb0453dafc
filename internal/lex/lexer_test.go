package lex_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/lex"
	"github.com/JacobCrabill/zigdown-sub003/internal/token"
)

func TestLexEmptyInputYieldsOnlyEOF(t *testing.T) {
	toks := lex.Lex(nil)
	assert.Equal(t, 1, len(toks))
	assert.Equal(t, token.EOF, toks[0].Type)
}

func TestLexSingleCharacterDelimiters(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"#", token.Hash},
		{"*", token.Asterisk},
		{"_", token.Underscore},
		{"~", token.Tilde},
		{"`", token.Backtick},
		{"-", token.Dash},
		{"+", token.Plus},
		{".", token.Dot},
		{":", token.Colon},
		{"|", token.Pipe},
		{"!", token.Bang},
		{"<", token.LessThan},
		{">", token.GreaterThan},
		{"{", token.BraceOpen},
		{"}", token.BraceClose},
		{"[", token.BracketOpen},
		{"]", token.BracketClose},
		{"(", token.ParenOpen},
		{")", token.ParenClose},
	}
	for _, tt := range tests {
		toks := lex.Lex([]byte(tt.input))
		assert.Equal(t, tt.want, toks[0].Type, tt.input)
		assert.Equal(t, token.EOF, toks[1].Type, tt.input)
	}
}

func TestLexNumberRun(t *testing.T) {
	toks := lex.Lex([]byte("123"))
	assert.Equal(t, token.Number, toks[0].Type)
	assert.Equal(t, "123", string(toks[0].Source))
}

func TestLexWhitespaceRun(t *testing.T) {
	toks := lex.Lex([]byte("  \t "))
	assert.Equal(t, token.Whitespace, toks[0].Type)
	assert.Equal(t, 4, toks[0].End-toks[0].Start)
}

func TestLexNewlineAdvancesLineAndCol(t *testing.T) {
	toks := lex.Lex([]byte("a\nb"))
	assert.Equal(t, token.Text, toks[0].Type)
	assert.Equal(t, 0, toks[0].Line)
	assert.Equal(t, token.Newline, toks[1].Type)
	assert.Equal(t, token.Text, toks[2].Type)
	assert.Equal(t, 1, toks[2].Line)
	assert.Equal(t, 0, toks[2].Col)
}

func TestLexCRLFNormalizesToSingleNewline(t *testing.T) {
	toks := lex.Lex([]byte("a\r\nb"))
	assert.Equal(t, token.Newline, toks[1].Type)
	assert.Equal(t, 1, toks[2].Line)
}

func TestLexTextRunStopsAtDelimiter(t *testing.T) {
	toks := lex.Lex([]byte("hello*world"))
	assert.Equal(t, token.Text, toks[0].Type)
	assert.Equal(t, "hello", string(toks[0].Source))
	assert.Equal(t, token.Asterisk, toks[1].Type)
	assert.Equal(t, token.Text, toks[2].Type)
	assert.Equal(t, "world", string(toks[2].Source))
}

func TestLexMultibyteRuneNeverSplits(t *testing.T) {
	toks := lex.Lex([]byte("日本語"))
	assert.Equal(t, token.Text, toks[0].Type)
	assert.Equal(t, "日本語", string(toks[0].Source))
}

func TestLexMalformedUTF8FoldsIntoTheSurroundingTextRun(t *testing.T) {
	toks := lex.Lex([]byte{0xff, 0xfe, 'a'})
	assert.Equal(t, token.Text, toks[0].Type)
	assert.Equal(t, 3, toks[0].End-toks[0].Start)
	assert.Equal(t, token.EOF, toks[1].Type)
}
