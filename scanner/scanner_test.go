package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/token"
)

func TestScanner_PunctuationAndOperators(t *testing.T) {
	sink := errs.New()
	toks := New("(){},.-+;/*! != = == > >= < <=", sink).ScanTokens()
	assert.False(t, sink.HadError)

	want := []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.SLASH, token.STAR, token.BANG, token.BANG_EQUAL, token.EQUAL,
		token.EQUAL_EQUAL, token.GREATER, token.GREATER_EQUAL, token.LESS,
		token.LESS_EQUAL, token.EOF,
	}
	assert.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestScanner_StringLiteralSpansLinesAndIncrementsLine(t *testing.T) {
	sink := errs.New()
	toks := New("\"a\nb\"", sink).ScanTokens()
	assert.False(t, sink.HadError)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Literal.Str)
	assert.Equal(t, 2, toks[0].Line)
}

func TestScanner_UnterminatedStringReportsError(t *testing.T) {
	sink := errs.New()
	New(`"unterminated`, sink).ScanTokens()
	assert.True(t, sink.HadError)
}

func TestScanner_NumberWithFraction(t *testing.T) {
	sink := errs.New()
	toks := New("123.456", sink).ScanTokens()
	assert.False(t, sink.HadError)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, 123.456, toks[0].Literal.Num)
}

func TestScanner_TrailingDotIsNotConsumedWithoutFollowingDigit(t *testing.T) {
	sink := errs.New()
	toks := New("1.", sink).ScanTokens()
	assert.False(t, sink.HadError)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, 1.0, toks[0].Literal.Num)
	assert.Equal(t, token.DOT, toks[1].Kind)
}

func TestScanner_KeywordsAndIdentifiers(t *testing.T) {
	sink := errs.New()
	toks := New("class orchid", sink).ScanTokens()
	assert.False(t, sink.HadError)
	assert.Equal(t, token.CLASS, toks[0].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "orchid", toks[1].Lexeme)
}

func TestScanner_LineCommentIsDiscarded(t *testing.T) {
	sink := errs.New()
	toks := New("1 // a comment\n2", sink).ScanTokens()
	assert.False(t, sink.HadError)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, token.NUMBER, toks[1].Kind)
	assert.Equal(t, token.EOF, toks[2].Kind)
}

func TestScanner_UnexpectedCharacterReportsErrorAndContinues(t *testing.T) {
	sink := errs.New()
	toks := New("1 @ 2", sink).ScanTokens()
	assert.True(t, sink.HadError)
	// scanning continues past the bad character
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, token.NUMBER, toks[1].Kind)
}
