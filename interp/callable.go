/*
File   : plox/interp/callable.go

The two Callable implementations that don't construct an instance:
UserFunction (a `fun` declaration or a class method) and NativeFunction
(a Go closure exposed to Lox code, e.g. clock()). Class also implements
Callable — constructing an Instance — but lives in class.go next to the
Instance type it produces.
*/
package interp

import (
	"fmt"

	"github.com/ggzor/plox/ast"
)

// UserFunction is a Lox function or method value: its declaration, the
// environment captured at the point it was declared, and whether it is
// a class initializer.
//
// Closure is what makes closures work: it's the Environment that was
// active when the `fun` statement (or method declaration) ran, not a
// snapshot of the values visible then. Calling the function later
// builds a new frame enclosed by Closure, so the function body can
// still read and write variables from its defining scope even after
// that scope's own statement has long finished executing.
//
// IsInitializer is set only for a class's `init` method; Call consults
// it to always yield the receiver (`this`) regardless of what the body
// itself returns, the one place a Lox function's return value isn't
// simply whatever `return` produced.
//
// Fields:
//   - Decl: the parsed function or method declaration.
//   - Closure: the environment this function closes over.
//   - IsInitializer: true only for a class's `init` method.
type UserFunction struct {
	Decl          *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (*UserFunction) Type() string { return "function" }

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}

func (f *UserFunction) Arity() int {
	return len(f.Decl.Params)
}

// Bind returns a copy of f whose closure has one extra frame binding
// `this` to instance — producing the value a `get` expression yields
// when it resolves to a method (e.g. `instance.method`, before any call
// parentheses are even seen).
//
// Each access to an instance's method calls Bind again and produces a
// fresh bound value rather than caching one on the instance: two reads
// of `instance.method` are two distinct UserFunction values (distinct
// by Go pointer identity, so `instance.method == instance.method` is
// false), even though calling either behaves identically.
//
// Parameters:
//   - instance: the receiver `this` should refer to inside the body.
//
// Returns:
//   - *UserFunction: a new function value sharing Decl with f, closing
//     over an environment that binds `this` to instance.
func (f *UserFunction) Bind(instance *Instance) *UserFunction {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &UserFunction{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

// Call runs f's body in a fresh environment enclosing its closure, with
// parameters bound to args in order. A bare `return;` or falling off
// the end of the body yields nil, except for an initializer, which
// always yields the bound `this` instead — callers never need to write
// `return this;` themselves.
func (f *UserFunction) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.execBlock(f.Decl.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return Nil{}, nil
}

// NativeFunction wraps a Go function as a Lox callable, for builtins
// implemented directly in Go rather than parsed from Lox source (the
// current surface is just clock(), defined in native.go).
type NativeFunction struct {
	Name    string
	NumArgs int
	Fn      func(in *Interpreter, args []Value) (Value, error)
}

func (*NativeFunction) Type() string   { return "function" }
func (*NativeFunction) String() string { return "<native fn>" }
func (f *NativeFunction) Arity() int   { return f.NumArgs }
func (f *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return f.Fn(in, args)
}
