/*
File   : plox/interp/errors.go

Two distinct unwind channels travel up through Go's normal error return
path during evaluation: RuntimeError for actual failures, and
returnSignal for a non-local `return`. Both implement error so
execStmt/execBlock can have a single `error` return type, but
UserFunction.Call is the only place that treats a returnSignal as
anything other than a real error — everywhere else it propagates
exactly like RuntimeError until it reaches that boundary.
*/
package interp

import (
	"fmt"

	"github.com/ggzor/plox/token"
)

// RuntimeError is a Lox runtime failure: a message plus the token that
// was being evaluated when it happened, for line-number context.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(t token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: t, Message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds from a `return` statement back to the nearest
// enclosing UserFunction.Call. It is not a user-visible error; it never
// reaches the top-level driver.
type returnSignal struct {
	Value Value
}

func (r *returnSignal) Error() string { return "return outside of function" }
