package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/parser"
	"github.com/ggzor/plox/scanner"
)

func resolve(t *testing.T, src string) *errs.Sink {
	t.Helper()
	sink := errs.New()
	toks := scanner.New(src, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	New(sink).Resolve(stmts)
	return sink
}

func TestResolver_ReadingLocalInOwnInitializerIsError(t *testing.T) {
	sink := resolve(t, `{ var a = a; }`)
	assert.True(t, sink.HadError)
}

func TestResolver_RedeclarationInLocalScopeIsError(t *testing.T) {
	sink := resolve(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, sink.HadError)
}

func TestResolver_ReturnFromInitializerIsError(t *testing.T) {
	sink := resolve(t, `class P { init() { return 1; } }`)
	assert.True(t, sink.HadError)
}

func TestResolver_BareReturnFromInitializerIsAllowed(t *testing.T) {
	sink := resolve(t, `class P { init() { return; } }`)
	assert.False(t, sink.HadError)
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	sink := resolve(t, `print this;`)
	assert.True(t, sink.HadError)
}

func TestResolver_ClassInheritingFromItselfIsError(t *testing.T) {
	sink := resolve(t, `class A < A {}`)
	assert.True(t, sink.HadError)
}

func TestResolver_SuperWithoutSuperclassIsError(t *testing.T) {
	sink := resolve(t, `class A { foo() { super.foo(); } }`)
	assert.True(t, sink.HadError)
}

func TestResolver_ValidProgramHasNoErrors(t *testing.T) {
	sink := resolve(t, `
		class A { greet() { print "A"; } }
		class B < A { greet() { super.greet(); print "B"; } }
		B().greet();
	`)
	assert.False(t, sink.HadError)
}
