/*
File   : plox/printer/printer.go

Package printer is a Lisp-style pretty printer for the parsed AST: it
walks ast.Expr/ast.Stmt with a type switch and renders a
fully-parenthesized form, e.g. `(+ 1 2)` or a multi-line `(func name
(params) body)`, useful for inspecting exactly how the parser grouped
an expression or desugared a statement.
*/
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ggzor/plox/ast"
	"github.com/ggzor/plox/token"
)

// Printer renders a program in Lisp form, indenting nested blocks by
// four spaces per level.
type Printer struct {
	indent int
}

// New creates a Printer.
func New() *Printer {
	return &Printer{}
}

// PrintProgram renders every top-level statement, one per line.
func (p *Printer) PrintProgram(stmts []ast.Stmt) string {
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		lines[i] = p.Stmt(s)
	}
	return strings.Join(lines, "\n")
}

func (p *Printer) printIndent(s string) string {
	return strings.Repeat(" ", p.indent) + s
}

// Expr renders a single expression node.
func (p *Printer) Expr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return p.literal(e.Value)
	case *ast.Grouping:
		return fmt.Sprintf("(grouping %s)", p.Expr(e.Expression))
	case *ast.Unary:
		return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, p.Expr(e.Right))
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, p.Expr(e.Left), p.Expr(e.Right))
	case *ast.Logical:
		return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, p.Expr(e.Left), p.Expr(e.Right))
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assign:
		return fmt.Sprintf("(assign %s %s)", e.Name.Lexeme, p.Expr(e.Value))
	case *ast.Call:
		return p.call(e)
	case *ast.Get:
		return fmt.Sprintf("(get %s %s)", p.Expr(e.Object), e.Name.Lexeme)
	case *ast.Set:
		return fmt.Sprintf("(set %s %s %s)", p.Expr(e.Object), e.Name.Lexeme, p.Expr(e.Value))
	case *ast.This:
		return "this"
	case *ast.Super:
		return fmt.Sprintf("(%s %s)", e.Keyword.Lexeme, e.Method.Lexeme)
	default:
		panic("printer: unhandled expr type")
	}
}

func (p *Printer) literal(lit token.Literal) string {
	switch lit.Kind {
	case token.NilLiteral, token.NoLiteral:
		return "nil"
	case token.BoolLiteral:
		return strconv.FormatBool(lit.Bool)
	case token.StringLiteral:
		return fmt.Sprintf("%q", lit.Str)
	case token.NumberLiteral:
		return strconv.FormatFloat(lit.Num, 'g', -1, 64)
	default:
		return "nil"
	}
}

func (p *Printer) call(e *ast.Call) string {
	s := fmt.Sprintf("(call %s", p.Expr(e.Callee))
	if len(e.Args) > 0 {
		p.indent += 4
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = p.printIndent(p.Expr(a))
		}
		s += "\n" + strings.Join(parts, "\n")
		p.indent -= 4
	}
	return s + ")"
}
