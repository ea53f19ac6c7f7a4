/*
File   : plox/resolver/walk.go

Type-switch dispatch over ast.Stmt/ast.Expr, one case per node kind, as
the AST's own doc comment calls for (no visitor interface).
*/
package resolver

import "github.com/ggzor/plox/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.Var:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)

	case *ast.Function:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, fkFunction)

	case *ast.Expression:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.Return:
		if r.currentFn == fkNone {
			r.sink.Report(s.Keyword.Line, s.Keyword.Lexeme, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFn == fkInitializer {
				r.sink.Report(s.Keyword.Line, s.Keyword.Lexeme, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.Class:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled stmt type")
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingCls := r.currentCls
	r.currentCls = ckClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.sink.Report(s.Superclass.Name.Line, s.Superclass.Name.Lexeme, "A class can't inherit from itself.")
		}
		r.currentCls = ckSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scope()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scope()["this"] = true
	defer r.endScope()

	for _, m := range s.Methods {
		kind := fkMethod
		if m.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(m, kind)
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	defer func() { r.currentFn = enclosingFn }()

	r.beginScope()
	defer r.endScope()

	for _, p := range fn.Params {
		r.declare(p.Lexeme, p.Line)
		r.define(p.Lexeme)
	}
	r.resolveStmts(fn.Body)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if scope := r.scope(); scope != nil {
			if defined, ok := scope[e.Name.Lexeme]; ok && !defined {
				r.sink.Report(e.Name.Line, e.Name.Lexeme, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID, e.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.This:
		if r.currentCls == ckNone {
			r.sink.Report(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID, "this")

	case *ast.Super:
		switch r.currentCls {
		case ckNone:
			r.sink.Report(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'super' outside of a class.")
		case ckClass:
			r.sink.Report(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e.ID, "super")

	case *ast.Literal:
		// no identifiers to resolve

	default:
		panic("resolver: unhandled expr type")
	}
}
