/*
File   : plox/printer/stmt.go
*/
package printer

import (
	"fmt"
	"strings"

	"github.com/ggzor/plox/ast"
)

// Stmt renders a single statement node.
func (p *Printer) Stmt(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.Expression:
		return p.Expr(s.Expr)
	case *ast.Print:
		return fmt.Sprintf("(print %s)", p.Expr(s.Expr))
	case *ast.Var:
		if s.Initializer != nil {
			return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, p.Expr(s.Initializer))
		}
		return fmt.Sprintf("(var %s)", s.Name.Lexeme)
	case *ast.Block:
		return p.block(s)
	case *ast.If:
		return p.ifStmt(s)
	case *ast.While:
		return p.whileStmt(s)
	case *ast.Function:
		return p.function(s)
	case *ast.Return:
		if s.Value != nil {
			return fmt.Sprintf("(return %s)", p.Expr(s.Value))
		}
		return "(return)"
	case *ast.Class:
		return p.class(s)
	default:
		panic("printer: unhandled stmt type")
	}
}

func (p *Printer) block(b *ast.Block) string {
	s := "(block"
	if len(b.Statements) > 0 {
		p.indent += 4
		parts := make([]string, len(b.Statements))
		for i, st := range b.Statements {
			parts[i] = p.printIndent(p.Stmt(st))
		}
		s += "\n" + strings.Join(parts, "\n")
		p.indent -= 4
	}
	return s + ")"
}

func (p *Printer) ifStmt(s *ast.If) string {
	out := fmt.Sprintf("(if %s", p.Expr(s.Condition))
	p.indent += 4
	out += "\n" + p.printIndent(p.Stmt(s.Then))
	if s.Else != nil {
		out += "\n" + p.printIndent(p.Stmt(s.Else))
	}
	p.indent -= 4
	return out + ")"
}

func (p *Printer) whileStmt(s *ast.While) string {
	out := fmt.Sprintf("(while %s", p.Expr(s.Condition))
	p.indent += 4
	out += "\n" + p.printIndent(p.Stmt(s.Body))
	p.indent -= 4
	return out + ")"
}

func (p *Printer) function(f *ast.Function) string {
	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		params[i] = param.Lexeme
	}
	out := fmt.Sprintf("(func %s (%s)", f.Name.Lexeme, strings.Join(params, " "))
	p.indent += 4
	parts := make([]string, len(f.Body))
	for i, st := range f.Body {
		parts[i] = p.printIndent(p.Stmt(st))
	}
	out += "\n" + strings.Join(parts, "\n")
	p.indent -= 4
	return out + ")"
}

func (p *Printer) class(c *ast.Class) string {
	out := fmt.Sprintf("(class %s", c.Name.Lexeme)
	if c.Superclass != nil {
		out += fmt.Sprintf(" (< %s)", c.Superclass.Name.Lexeme)
	}
	if len(c.Methods) > 0 {
		p.indent += 4
		parts := make([]string, len(c.Methods))
		for i, m := range c.Methods {
			parts[i] = p.printIndent(p.function(m))
		}
		out += "\n" + strings.Join(parts, "\n")
		p.indent -= 4
	}
	return out + ")"
}
