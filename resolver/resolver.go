/*
File   : plox/resolver/resolver.go

Package resolver implements the static scope-depth pass: a single walk
over the parsed AST that runs after parsing and before interpretation.
For each Variable, Assign, This, and Super node it either assigns a
depth (the number of enclosing environment frames to skip at runtime to
reach the binding) or leaves it unresolved, which the interpreter
treats as "look up in globals". Running this walk once up front, rather
than searching the scope chain at every variable access, is what lets
closures capture exactly the bindings they close over even when a
variable is later shadowed.

It also enforces the static rules that have no runtime representation
of their own: redeclaring a name in the same block, reading a local
variable from inside its own initializer, a `return` outside any
function, a `return <expr>` inside a class initializer, and `this` or
`super` used outside a class.
*/
package resolver

import (
	"github.com/ggzor/plox/ast"
	"github.com/ggzor/plox/errs"
)

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// Resolver walks a parsed program once and produces Depths, the
// scope-depth map the interpreter consults on every variable access,
// assignment, `this`, and `super` reference instead of re-searching the
// environment chain at runtime.
//
// A Resolver mirrors the interpreter's block structure with a stack of
// lexical scopes (scopes), but stores only names and a defined/not-yet
// flag — never values — since its job is entirely static. currentFn and
// currentCls track which kind of function or class body is being walked,
// so that rules like "no return outside a function" can be enforced
// without threading that context through every call.
//
// Fields:
//   - sink: where static rule violations are reported.
//   - Depths: the node-ID-to-depth map this Resolver builds; read by
//     the interpreter once resolving finishes without error.
type Resolver struct {
	sink   *errs.Sink
	Depths map[int]int

	scopes     []map[string]bool
	currentFn  functionKind
	currentCls classKind
}

// New creates a Resolver reporting to sink.
func New(sink *errs.Sink) *Resolver {
	return &Resolver{sink: sink, Depths: make(map[int]int)}
}

// Resolve walks every top-level statement and returns the scope-depth
// map.
//
// Callers should not execute the program if sink.HadError is set
// afterward: depths recorded before the first error are still correct,
// but the program as a whole didn't pass static checking.
//
// Parameters:
//   - stmts: the top-level statements produced by the parser.
//
// Returns:
//   - map[int]int: node ID to depth, for every Variable/Assign/This/Super
//     node that resolved to a local binding.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[int]int {
	r.resolveStmts(stmts)
	return r.Depths
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) scope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name into the innermost scope with is_defined=false.
// Redeclaring a name already present in that scope is an error; globals
// (no scope pushed, since the resolver never opens one for the top
// level) are exempt.
func (r *Resolver) declare(name string, line int) {
	scope := r.scope()
	if scope == nil {
		return
	}
	if _, exists := scope[name]; exists {
		r.sink.Report(line, name, "Already a variable with this name in this scope.")
	}
	scope[name] = false
}

func (r *Resolver) define(name string) {
	if scope := r.scope(); scope != nil {
		scope[name] = true
	}
}

// resolveLocal scans scopes innermost-outward and records the depth at
// which name is found. No match means the reference is implicitly
// global, and nothing is recorded — the interpreter's fallback lookup
// handles it.
func (r *Resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Depths[id] = len(r.scopes) - 1 - i
			return
		}
	}
}
