/*
File   : plox/parser/parser.go

Package parser implements a recursive-descent, single-token-lookahead
parser for Lox. It turns a token sequence from the scanner into a list
of ast.Stmt, reporting syntax errors to an errs.Sink and recovering at
statement boundaries so a single run can surface more than one mistake
instead of stopping at the first.
*/
package parser

import (
	"github.com/ggzor/plox/ast"
	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/token"
)

// Parser turns a token sequence into an AST by recursive descent, one
// function per grammar production, each consuming the tokens for its
// production and returning the node built from them.
//
// Besides parse position and the shared error sink, Parser assigns a
// fresh, monotonically increasing ID to every Variable, Assign, This,
// and Super node as it's built. These IDs are what let the resolver
// record a scope depth per node without relying on pointer identity —
// a node's ID never changes even if the AST is later copied or its
// pointers otherwise become unstable.
//
// Fields:
//   - tokens: the full token stream from the scanner, EOF-terminated.
//   - current: index of the next unconsumed token.
//   - sink: where syntax errors are reported.
//   - nextID: counter backing freshID, handed out in parse order.
type Parser struct {
	tokens  []token.Token
	current int
	sink    *errs.Sink
	nextID  int
}

// New creates a Parser over tokens that reports syntax errors to sink.
//
// Parameters:
//   - tokens: the token stream to parse, as produced by the scanner.
//   - sink: the diagnostic sink syntax errors are reported to.
//
// Returns:
//   - *Parser: ready to call Parse on.
func New(tokens []token.Token, sink *errs.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse parses the entire token stream and returns every statement it
// could recover, in source order.
//
// Callers must check sink.HadError before resolving or executing the
// result: a syntax error doesn't stop Parse from returning statements
// (synchronize lets it keep going so later mistakes are reported too),
// but those statements are not safe to run.
//
// Returns:
//   - []ast.Stmt: every top-level statement successfully parsed.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) freshID() int {
	p.nextID++
	return p.nextID
}

// --- token stream primitives ---

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token is one of
// kinds; otherwise it leaves the position untouched.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it matches kind, else
// reports message at the current token and raises a parseError that
// unwinds to the nearest synchronize point.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// parseError is the unwind signal used by the recursive-descent parser
// to bail out of the current declaration/statement back to Parse's
// synchronize loop. It is deliberately not a plain error return: Lox's
// grammar recursion is deep enough that threading an error return
// through every production would obscure the grammar the functions are
// meant to mirror, so a parseError panic plus a recover at the
// statement boundary (recoverStmt) keeps each production reading like
// the grammar rule it implements.
type parseError struct{}

func (p *Parser) errorAt(t token.Token, message string) parseError {
	at := t.Lexeme
	if t.Kind == token.EOF {
		at = "end"
	}
	p.sink.Report(t.Line, at, message)
	return parseError{}
}

// synchronize discards tokens until a likely statement boundary is
// reached: just after a consumed `;`, or just before a token that
// starts a new statement. This is what lets one malformed statement be
// reported without losing the ability to parse (and report errors in)
// every statement after it.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// recoverStmt runs fn, catching a parseError panic and synchronizing,
// returning nil in that case. Every declaration()/statement() entry
// point that can panic with parseError is wrapped with this so one bad
// statement doesn't abort the whole parse.
func (p *Parser) recoverStmt(fn func() ast.Stmt) (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return fn()
}
