/*
File   : plox/interp/interpreter.go

Package interp is the tree-walking evaluator: it walks a resolved
program (the parser's AST plus the resolver's scope-depth map) and
produces side effects (stdout writes) and a final error, if any. It
holds the global environment, the current environment, and the depth
map, and runs single-threaded and synchronously — there is no
concurrency inside a single Lox program, so no context.Context or
cancellation path is threaded through evaluation.
*/
package interp

import (
	"fmt"
	"io"

	"github.com/ggzor/plox/ast"
)

// Interpreter executes a resolved Lox program.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	depths  map[int]int
	stdout  io.Writer
}

// New creates an Interpreter that writes `print` output to stdout and
// resolves local variables using depths (the resolver's output).
func New(stdout io.Writer, depths map[int]int) *Interpreter {
	globals := NewEnvironment(nil)
	defineNatives(globals)
	return &Interpreter{Globals: globals, env: globals, depths: depths, stdout: stdout}
}

// Interpret executes stmts in the global environment, stopping at the
// first runtime error — a runtime error unwinds the entire evaluation
// stack rather than letting the program continue in a possibly
// inconsistent state. A *RuntimeError is returned for the driver to
// report and map to exit code 70; any other non-nil error indicates an
// interpreter bug (e.g. an escaped *returnSignal that should have been
// caught at a function call boundary).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// execBlock runs stmts in a fresh environment enclosed by env and
// guarantees the interpreter's "current environment" is restored to
// whatever it was before the call on every exit path — normal
// completion, a *returnSignal, or a *RuntimeError — so a block that
// errors partway through never leaves the interpreter pointed at an
// environment that's about to go out of scope.
func (in *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	return in.execStmts(stmts)
}

func (in *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.eval(s.Expr)
		return err

	case *ast.Print:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, v.String())
		return nil

	case *ast.Var:
		var value Value = Nil{}
		if s.Initializer != nil {
			v, err := in.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return in.execBlock(s.Statements, NewEnvironment(in.env))

	case *ast.If:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return in.execStmt(s.Then)
		} else if s.Else != nil {
			return in.execStmt(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := in.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &UserFunction{Decl: s, Closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value Value = Nil{}
		if s.Value != nil {
			v, err := in.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}

	case *ast.Class:
		return in.execClass(s)

	default:
		panic("interp: unhandled stmt type")
	}
}

func (in *Interpreter) execClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, Nil{})

	classEnv := in.env
	if superclass != nil {
		classEnv = NewEnvironment(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &UserFunction{Decl: m, Closure: classEnv, IsInitializer: m.IsInitializer}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	in.env.Assign(s.Name.Lexeme, class)
	return nil
}
