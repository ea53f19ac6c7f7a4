/*
File   : plox/ast/expr.go

Package ast defines the Lox abstract syntax tree as a closed set of Go
structs, one per grammar production, instead of a class hierarchy with a
Visitor interface. Each node kind is its own struct; every consumer
(resolver, interp, printer) walks the tree with a type switch on the
concrete node type rather than double-dispatching through Visit*
methods. With the grammar fixed and never extended at runtime, a type
switch says exactly what it means and the compiler flags a missing case
the moment a new node kind is added, which a Visitor interface would
only catch by a method simply never being called.
*/
package ast

import "github.com/ggzor/plox/token"

// Expr is the marker interface implemented by every expression node:
// Literal, Grouping, Unary, Binary, Logical, Variable, Assign, Call,
// Get, Set, This, and Super. It carries no methods beyond the marker —
// all real behavior lives in the type switches of the packages that
// consume the tree.
type Expr interface {
	exprNode()
}

// Literal is a constant: number, string, boolean, or nil. For numbers
// and strings, Value is the same token.Literal the scanner attached to
// the token, carried through parsing unchanged; for true, false, and
// nil the parser builds it.
type Literal struct {
	Value token.Literal
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so the pretty printer can show the parentheses.
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operator application: `!` or `-`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Binary is an infix operator application: arithmetic, comparison, or
// equality.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Logical is `and`/`or`, kept distinct from Binary because both
// operators short-circuit — the right operand is never evaluated once
// the left one has already decided the result — instead of always
// evaluating both sides the way every Binary operator does.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Variable is a reference to a named binding. ID is a resolution key
// assigned by the parser, unique across every Variable/Assign/This/Super
// node in the program; the resolver's scope-depth map is keyed by it
// rather than by the node's pointer identity, so the map stays valid
// even if a node is ever copied.
type Variable struct {
	ID   int
	Name token.Token
}

// Assign stores Value into the binding named Name. ID is its own
// resolution key, distinct from any Variable node's ID even when they
// share Name — reading `x` and assigning to `x` resolve independently.
type Assign struct {
	ID    int
	Name  token.Token
	Value Expr
}

// Call is a function or method invocation. Paren is the closing `)`,
// kept so a runtime error on the call (wrong arity, calling a
// non-callable) can report the right source line.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

// Get reads a property or bound method off an instance.
type Get struct {
	Object Expr
	Name   token.Token
}

// Set stores Value into a property of an instance.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// This is a reference to the implicit receiver inside a method body.
// ID is the resolution key, resolved exactly like a Variable bound to
// the synthetic name "this".
type This struct {
	ID      int
	Keyword token.Token
}

// Super is a `super.method` reference inside a subclass method body.
// ID is the resolution key for the implicit "super" binding; Method is
// the name looked up on the superclass once `super` itself resolves.
type Super struct {
	ID      int
	Keyword token.Token
	Method  token.Token
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
