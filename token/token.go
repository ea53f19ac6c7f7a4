/*
File   : plox/token/token.go

Package token defines the lexical token model shared by the scanner,
parser, resolver, and interpreter: token kinds, lexemes, literal values,
and source line positions.
*/
package token

import "fmt"

// Kind identifies the lexical category of a Token: which bucket of the
// grammar's terminal alphabet it belongs to (punctuation, operator,
// literal, keyword, or end-of-file).
//
// It is a closed set fixed at compile time — every Kind the scanner can
// ever produce is declared in the const block below, grouped the way
// the grammar groups them (single-character, one-or-two-character,
// literals, keywords), so a new token kind can only be added by editing
// this file, never constructed dynamically.
type Kind int

const (
	// Single-character tokens.
	LEFT_PAREN Kind = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals.
	IDENTIFIER
	STRING
	NUMBER

	// Keywords.
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
)

var names = map[Kind]string{
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",
	COMMA:         ",",
	DOT:           ".",
	MINUS:         "-",
	PLUS:          "+",
	SEMICOLON:     ";",
	SLASH:         "/",
	STAR:          "*",
	BANG:          "!",
	BANG_EQUAL:    "!=",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "and",
	CLASS:         "class",
	ELSE:          "else",
	FALSE:         "false",
	FUN:           "fun",
	FOR:           "for",
	IF:            "if",
	NIL:           "nil",
	OR:            "or",
	PRINT:         "print",
	RETURN:        "return",
	SUPER:         "super",
	THIS:          "this",
	TRUE:          "true",
	VAR:           "var",
	WHILE:         "while",
	EOF:           "EOF",
}

// String renders a Kind using its canonical lexeme (or a symbolic name
// for kinds, like EOF, that have no source-text form). Token.String uses
// it for the kind half of its debug text.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved-word lexemes to their Kind. The scanner consults
// this table after scanning a maximal identifier run to decide whether it
// scanned a keyword or a user identifier.
var Keywords = map[string]Kind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Literal is the scanned value carried by NUMBER and STRING tokens, and
// the constant value carried by a parsed literal expression (which adds
// true/false/nil on top of what the scanner itself ever produces).
//
// A Literal is a closed variant over four possible payloads — number,
// string, bool, or nothing — tagged by Kind. Exactly one of the
// Num/Str/Bool fields is meaningful at a time, the one Kind selects.
// This keeps literal values as a plain comparable struct instead of an
// interface{} that every caller would have to type-switch on.
//
// Fields:
//   - Kind: which of Num/Str/Bool (if any) holds the real value.
//   - Num: populated when Kind is NumberLiteral.
//   - Str: populated when Kind is StringLiteral.
//   - Bool: populated when Kind is BoolLiteral.
type Literal struct {
	Kind LiteralKind
	Num  float64
	Str  string
	Bool bool
}

// LiteralKind distinguishes which field of a Literal is populated.
type LiteralKind int

const (
	NoLiteral LiteralKind = iota
	NumberLiteral
	StringLiteral
	BoolLiteral
	NilLiteral
)

// NumberValue builds a Literal wrapping a scanned NUMBER token's value.
func NumberValue(n float64) Literal { return Literal{Kind: NumberLiteral, Num: n} }

// StringValue builds a Literal wrapping a scanned STRING token's value.
func StringValue(s string) Literal { return Literal{Kind: StringLiteral, Str: s} }

// Token is a single lexical token produced by the scanner and consumed
// by the parser: its Kind, the exact source text it was scanned from
// (Lexeme), any scanned Literal value, and the 1-indexed source Line it
// appeared on.
//
// Line is carried on every token, not just ones that error, because any
// token can end up anchoring a diagnostic later: a parse error points at
// the offending token, and a runtime error points at the operator or
// identifier token that caused it. Keeping Line here means neither the
// parser nor the interpreter has to track source position separately.
//
// Fields:
//   - Kind: the lexical category (see Kind's constants).
//   - Lexeme: the raw source text, e.g. "123.4", "or", "(".
//   - Literal: the decoded value, populated only for NUMBER and STRING.
//   - Line: the 1-indexed line the scanner was on when the token ended
//     (for a multi-line string, its last line).
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal Literal
	Line    int
}

// New constructs a Token with no literal value.
//
// Use this for punctuation, operators, keywords, and EOF — anything
// whose meaning is fully carried by Kind and Lexeme alone.
//
// Parameters:
//   - kind: the token's lexical category.
//   - lexeme: the raw source text.
//   - line: the 1-indexed source line.
//
// Returns:
//   - Token: a token with a zero-value (absent) Literal.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral constructs a Token carrying a scanned literal value.
//
// Use this for NUMBER and STRING tokens, whose Lexeme alone (e.g. the
// raw digits, or a string with its surrounding quotes) isn't the value a later
// phase wants to read.
//
// Parameters:
//   - kind: NUMBER or STRING.
//   - lexeme: the raw source text the value was scanned from.
//   - literal: the decoded value.
//   - line: the 1-indexed source line.
//
// Returns:
//   - Token: a token with Literal populated.
func NewLiteral(kind Kind, lexeme string, literal Literal, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// String renders the token for debugging as "lexeme:kind", e.g.
// "+:+" or "foo:IDENTIFIER".
func (t Token) String() string {
	return fmt.Sprintf("%s:%v", t.Lexeme, t.Kind)
}
