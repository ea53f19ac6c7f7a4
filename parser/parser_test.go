package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggzor/plox/ast"
	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/scanner"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *errs.Sink) {
	t.Helper()
	sink := errs.New()
	toks := scanner.New(src, sink).ScanTokens()
	stmts := New(toks, sink).Parse()
	return stmts, sink
}

func TestParser_BinaryPrecedence(t *testing.T) {
	stmts, sink := parse(t, "1 + 2 * 3;")
	assert.False(t, sink.HadError)
	assert.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.Expression)
	assert.True(t, ok)

	bin, ok := exprStmt.Expr.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Operator.Lexeme)

	left, ok := bin.Left.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, 1.0, left.Value.Num)

	right, ok := bin.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", right.Operator.Lexeme)
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts, sink := parse(t, `var a = "hi";`)
	assert.False(t, sink.HadError)
	assert.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.Var)
	assert.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)

	lit, ok := v.Initializer.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, "hi", lit.Value.Str)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	stmts, sink := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.False(t, sink.HadError)
	assert.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.Var)
	assert.True(t, isVar)

	loop, ok := outer.Statements[1].(*ast.While)
	assert.True(t, ok)

	body, ok := loop.Body.(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, body.Statements, 2)
}

func TestParser_ClassWithSuperclass(t *testing.T) {
	stmts, sink := parse(t, `class B < A { greet() { return 1; } }`)
	assert.False(t, sink.HadError)
	assert.Len(t, stmts, 1)

	cls, ok := stmts[0].(*ast.Class)
	assert.True(t, ok)
	assert.Equal(t, "B", cls.Name.Lexeme)
	assert.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	assert.Len(t, cls.Methods, 1)
	assert.Equal(t, "greet", cls.Methods[0].Name.Lexeme)
}

func TestParser_InvalidAssignmentTargetReportsError(t *testing.T) {
	_, sink := parse(t, "1 = 2;")
	assert.True(t, sink.HadError)
}

func TestParser_StrayTokenSynchronizesToNextStatement(t *testing.T) {
	stmts, sink := parse(t, "+;\nprint 1;")
	assert.True(t, sink.HadError)
	// the malformed leading statement is discarded by synchronize, the
	// following print survives
	assert.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
}
