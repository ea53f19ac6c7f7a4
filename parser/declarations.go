/*
File   : plox/parser/declarations.go
*/
package parser

import (
	"github.com/ggzor/plox/ast"
	"github.com/ggzor/plox/token"
)

// declaration is the single recovery boundary: any parseError raised
// while parsing a class/fun/var declaration or a plain statement is
// caught here, the token stream is synchronized, and nil is returned
// so Parse's loop keeps going.
func (p *Parser) declaration() ast.Stmt {
	return p.recoverStmt(func() ast.Stmt {
		switch {
		case p.match(token.CLASS):
			return p.classDeclaration()
		case p.match(token.FUN):
			return p.function("function")
		case p.match(token.VAR):
			return p.varDeclaration()
		default:
			return p.statement()
		}
	})
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENTIFIER, "Expect superclass name.")
		superclass = &ast.Variable{ID: p.freshID(), Name: p.previous()}
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

// function parses a function or method body. kind is "function" or
// "method", used only to phrase error messages — class method bodies
// reuse this same grammar, just without the leading `fun` keyword a
// top-level function declaration has already consumed.
func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.Function{Name: name, Params: params, Body: body, IsInitializer: kind == "method" && name.Lexeme == "init"}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}
