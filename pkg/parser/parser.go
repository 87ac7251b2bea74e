// Package parser implements a recursive-descent parser for the Lox
// statement and expression grammar.
package parser

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/scanner"
	"lox/interpreter-go/pkg/token"
)

// Error is a syntax error tagged with the offending token's line.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

type parser struct {
	tokens []token.Token
	pos    int
	errors []*Error
}

// ParseSource tokenizes and parses source in one step. Lexical errors are
// reported alongside syntax errors.
func ParseSource(source string) ([]ast.Statement, []*Error) {
	tokens, scanErrs := scanner.Scan(source)
	statements, parseErrs := Parse(tokens)
	if len(scanErrs) == 0 {
		return statements, parseErrs
	}
	errs := make([]*Error, 0, len(scanErrs)+len(parseErrs))
	for _, e := range scanErrs {
		errs = append(errs, &Error{Line: e.Line, Message: e.Message})
	}
	return statements, append(errs, parseErrs...)
}

// Parse consumes a token stream (terminated by EOF) and produces the
// statement sequence. All syntax errors are collected; after each error the
// parser resynchronizes at the next statement boundary.
func Parse(tokens []token.Token) ([]ast.Statement, []*Error) {
	p := &parser{tokens: tokens}
	var statements []ast.Statement
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.record(err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements, p.errors
}

func (p *parser) declaration() (ast.Statement, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() (ast.Statement, error) {
	name, err := p.expect(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return ast.NewVarStatement(name, initializer), nil
}

func (p *parser) statement() (ast.Statement, error) {
	switch {
	case p.check(token.Print):
		keyword := p.advance()
		return p.printStatement(keyword)
	case p.check(token.If):
		keyword := p.advance()
		return p.ifStatement(keyword)
	case p.check(token.While):
		keyword := p.advance()
		return p.whileStatement(keyword)
	case p.match(token.LeftBrace):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStatement(statements), nil
	default:
		return p.expressionStatement()
	}
}

func (p *parser) printStatement(keyword token.Token) (ast.Statement, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.NewPrintStatement(keyword, value), nil
}

func (p *parser) ifStatement(keyword token.Token) (ast.Statement, error) {
	if _, err := p.expect(token.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(keyword, condition, thenBranch, elseBranch), nil
}

func (p *parser) whileStatement(keyword token.Token) (ast.Statement, error) {
	if _, err := p.expect(token.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(keyword, condition, body), nil
}

func (p *parser) block() ([]ast.Statement, error) {
	var statements []ast.Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.expect(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

// Expressions, lowest precedence first.

func (p *parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *parser) assignment() (ast.Expression, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if p.check(token.Equal) {
		equals := p.advance()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if variable, ok := expr.(*ast.VariableExpression); ok {
			return ast.NewAssignmentExpression(variable.Name, value), nil
		}
		return nil, &Error{Line: equals.Line, Message: "Invalid assignment target."}
	}
	return expr, nil
}

func (p *parser) logicOr() (ast.Expression, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.Or) {
		operator := p.advance()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogicalExpression(expr, operator, right)
	}
	return expr, nil
}

func (p *parser) logicAnd() (ast.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(token.And) {
		operator := p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogicalExpression(expr, operator, right)
	}
	return expr, nil
}

func (p *parser) equality() (ast.Expression, error) {
	return p.binaryLevel(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *parser) comparison() (ast.Expression, error) {
	return p.binaryLevel(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *parser) term() (ast.Expression, error) {
	return p.binaryLevel(p.factor, token.Minus, token.Plus)
}

func (p *parser) factor() (ast.Expression, error) {
	return p.binaryLevel(p.unary, token.Slash, token.Star)
}

func (p *parser) binaryLevel(operand func() (ast.Expression, error), operators ...token.Type) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.checkAny(operators...) {
		operator := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpression(expr, operator, right)
	}
	return expr, nil
}

func (p *parser) unary() (ast.Expression, error) {
	if p.checkAny(token.Bang, token.Minus) {
		operator := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(operator, right), nil
	}
	return p.primary()
}

func (p *parser) primary() (ast.Expression, error) {
	tok := p.current()
	switch tok.Type {
	case token.Number:
		p.advance()
		value, ok := tok.Literal.(float64)
		if !ok {
			return nil, &Error{Line: tok.Line, Message: "Number token has no literal value."}
		}
		return ast.NewNumberLiteral(value), nil
	case token.String:
		p.advance()
		value, ok := tok.Literal.(string)
		if !ok {
			return nil, &Error{Line: tok.Line, Message: "String token has no literal value."}
		}
		return ast.NewStringLiteral(value), nil
	case token.True:
		p.advance()
		return ast.NewBooleanLiteral(true), nil
	case token.False:
		p.advance()
		return ast.NewBooleanLiteral(false), nil
	case token.Nil:
		p.advance()
		return ast.NewNilLiteral(), nil
	case token.Identifier:
		p.advance()
		return ast.NewVariableExpression(tok), nil
	case token.LeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGroupingExpression(expr), nil
	default:
		return nil, &Error{Line: tok.Line, Message: "Expect expression."}
	}
}

// Token-stream helpers.

func (p *parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) check(typ token.Type) bool {
	return p.current().Type == typ
}

func (p *parser) checkAny(types ...token.Type) bool {
	for _, typ := range types {
		if p.check(typ) {
			return true
		}
	}
	return false
}

func (p *parser) match(typ token.Type) bool {
	if !p.check(typ) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) expect(typ token.Type, message string) (token.Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return token.Token{}, &Error{Line: p.current().Line, Message: message}
}

func (p *parser) atEnd() bool {
	return p.current().Type == token.EOF
}

func (p *parser) record(err error) {
	if perr, ok := err.(*Error); ok {
		p.errors = append(p.errors, perr)
		return
	}
	p.errors = append(p.errors, &Error{Line: p.current().Line, Message: err.Error()})
}

// synchronize discards tokens until a likely statement boundary so that one
// syntax error does not cascade into spurious follow-ups.
func (p *parser) synchronize() {
	for !p.atEnd() {
		if p.advance().Type == token.Semicolon {
			return
		}
		switch p.current().Type {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
	}
}
