package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/parser"
	"github.com/ggzor/plox/scanner"
)

func TestPrinter_BinaryExpression(t *testing.T) {
	sink := errs.New()
	toks := scanner.New("1 + 2;", sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	assert.False(t, sink.HadError)

	out := New().PrintProgram(stmts)
	assert.Equal(t, "(+ 1 2)", out)
}

func TestPrinter_Block(t *testing.T) {
	sink := errs.New()
	toks := scanner.New("{ var x = 1; print x; }", sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	assert.False(t, sink.HadError)

	out := New().PrintProgram(stmts)
	assert.Equal(t, "(block\n    (var x 1)\n    (print x))", out)
}

func TestPrinter_ClassWithSuperclassAndMethod(t *testing.T) {
	sink := errs.New()
	toks := scanner.New(`class B < A { greet() { print "hi"; } }`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	assert.False(t, sink.HadError)

	out := New().PrintProgram(stmts)
	assert.Equal(t, "(class B (< A)\n    (func greet ()\n        (print \"hi\")))", out)
}
