/*
File   : plox/interp/eval.go
*/
package interp

import (
	"github.com/ggzor/plox/ast"
	"github.com/ggzor/plox/token"
)

func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.eval(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		return in.lookupVariable(e.Name.Lexeme, e.ID, e.Name)

	case *ast.Assign:
		return in.evalAssign(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookupVariable("this", e.ID, e.Keyword)

	case *ast.Super:
		return in.evalSuper(e)

	default:
		panic("interp: unhandled expr type")
	}
}

// literalValue converts a scanned token.Literal into the Value the
// parser's Literal node wraps.
func literalValue(lit token.Literal) Value {
	switch lit.Kind {
	case token.NumberLiteral:
		return Number(lit.Num)
	case token.StringLiteral:
		return String(lit.Str)
	case token.BoolLiteral:
		return Bool(lit.Bool)
	default:
		return Nil{}
	}
}
