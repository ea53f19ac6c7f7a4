package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/parser"
	"github.com/ggzor/plox/resolver"
	"github.com/ggzor/plox/scanner"
)

// run scans, parses, resolves, and interprets src, returning everything
// written to stdout and any runtime error. It requires sink.HadError to
// be false after parsing and after resolving, before interpreting,
// mirroring the driver's own rule of refusing to execute a program that
// failed static checking.
func run(t *testing.T, src string) (string, *errs.Sink, error) {
	t.Helper()
	sink := errs.New()
	toks := scanner.New(src, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	require.False(t, sink.HadError, "unexpected parse error(s): %v", sink.Statics())

	depths := resolver.New(sink).Resolve(stmts)
	require.False(t, sink.HadError, "unexpected resolve error(s): %v", sink.Statics())

	var buf bytes.Buffer
	err := New(&buf, depths).Interpret(stmts)
	return buf.String(), sink, err
}

func TestInterpreter_ArithmeticPrecedence(t *testing.T) {
	out, _, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out, _, err := run(t, `var a = "hi"; var b = a + " there"; print b;`)
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestInterpreter_ClosureCounter(t *testing.T) {
	out, _, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun c() { i = i + 1; return i; }
			return c;
		}
		var c = makeCounter();
		print c();
		print c();
		print c();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpreter_RecursiveFibonacci(t *testing.T) {
	out, _, err := run(t, `
		fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); }
		print fib(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestInterpreter_InheritanceAndSuper(t *testing.T) {
	out, _, err := run(t, `
		class A { greet() { print "A"; } }
		class B < A { greet() { super.greet(); print "B"; } }
		B().greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", out)
}

func TestInterpreter_InitializerReturnsInstance(t *testing.T) {
	out, _, err := run(t, `
		class P { init(x) { this.x = x; } }
		var p = P(7);
		print p.x;
	`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpreter_ShortCircuitAnd(t *testing.T) {
	out, _, err := run(t, `
		fun boom() { print "evaluated"; return true; }
		print false and boom();
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestInterpreter_ShortCircuitOr(t *testing.T) {
	out, _, err := run(t, `
		fun boom() { print "evaluated"; return true; }
		print true or boom();
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpreter_NilEquality(t *testing.T) {
	out, _, err := run(t, `print nil == nil; print nil == 0;`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestInterpreter_IntegralNumberPrintsWithoutTrailingZero(t *testing.T) {
	out, _, err := run(t, `print 10 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpreter_CompareStringAndNumberIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `"a" < 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be numbers.")
}

func TestInterpreter_CallingUndefinedVariableIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `undefined();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestInterpreter_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestInterpreter_ReadingUndefinedPropertyIsRuntimeErrorButWriteSucceeds(t *testing.T) {
	_, _, err := run(t, `class C {} var c = C(); c.y;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined property 'y'.")

	_, _, err = run(t, `class C {} var c = C(); c.y = 1; print c.y;`)
	require.NoError(t, err)
}

func TestInterpreter_WrongArityIsRuntimeError(t *testing.T) {
	_, _, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}
