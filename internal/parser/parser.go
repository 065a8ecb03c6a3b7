// Package parser implements the predictive recursive-descent parser
// that turns a token stream into a Program AST.
package parser

import (
	"fmt"

	"github.com/wisp-lang/wispc/internal/diag"
	"github.com/wisp-lang/wispc/internal/stream"
	"github.com/wisp-lang/wispc/pkg/ast"
	"github.com/wisp-lang/wispc/pkg/token"
)

// Parser consumes a *stream.Stream and produces *ast.Program. The
// first syntax error halts parsing; there is no recovery and no
// multi-error collection.
type Parser struct {
	s      *stream.Stream
	source string
	file   string
}

// New returns a Parser over tokens already extracted from a Lexer.
// source and file are used only for diagnostic rendering.
func New(tokens []token.Token, source, file string) *Parser {
	return &Parser{s: stream.New(tokens), source: source, file: file}
}

// Parse runs the grammar's top production and returns the resulting
// Program, or the first syntax error encountered.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*diag.Error)
			if !ok {
				panic(r)
			}
			prog, err = nil, pe
		}
	}()

	stmts := []ast.Statement{}
	for !p.s.MatchShape(token.EndOfProgram) {
		stmts = append(stmts, p.parseStatement())
	}
	return &ast.Program{Statements: stmts}, nil
}

// fail raises a fatal syntax error at the current token's position.
// It unwinds via panic/recover so every production can report without
// threading an error return through the whole call chain — mirroring
// the "halt immediately" failure semantics with a single top-level
// catch point.
func (p *Parser) fail(format string, args ...any) {
	panic(diag.New(p.s.Position(), fmt.Sprintf(format, args...), p.source, p.file))
}

func (p *Parser) expect(t token.Type, what string) token.Token {
	if !p.s.MatchShape(t) {
		p.fail("expected %s, found %s", what, p.s.Peek())
	}
	return p.s.Consume()
}

// parseStatement dispatches on a single token of lookahead.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.s.MatchShape(token.LeftCurly):
		return p.parseBlock()
	case p.s.MatchShape(token.KeywordVar):
		return p.parseVariableDefinition()
	case p.s.MatchShape(token.KeywordFunc):
		return p.parseFunctionDefinition()
	case p.s.MatchShape(token.KeywordReturn):
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	p.expect(token.LeftCurly, "'{'")
	stmts := []ast.Statement{}
	for !p.s.MatchShape(token.RightCurly) {
		if p.s.MatchShape(token.EndOfProgram) {
			p.fail("expected '}', found %s", p.s.Peek())
		}
		stmts = append(stmts, p.parseStatement())
	}
	p.s.Consume()
	return &ast.Block{Statements: stmts}
}

func (p *Parser) parseVariableDefinition() *ast.VariableDefinition {
	p.s.Consume() // 'var'
	name := p.expect(token.Identifier, "identifier")

	def := &ast.VariableDefinition{Name: name.Text}

	if p.s.MatchShape(token.VarTypeColon) {
		p.s.Consume()
		typeName := p.expect(token.Identifier, "identifier")
		def.Type = typeName.Text
	}

	switch {
	case p.s.MatchShape(token.EndOfStatement):
		p.s.Consume()
	case p.s.MatchShape(token.Assign):
		p.s.Consume()
		def.Initializer = p.parseExpression()
		p.expect(token.EndOfStatement, "';'")
	default:
		p.fail("expected ';' or '=', found %s", p.s.Peek())
	}

	return def
}

func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	p.s.Consume() // 'func'
	name := p.expect(token.Identifier, "identifier")

	p.expect(token.LeftRound, "'('")
	params := p.parseParameters()
	p.expect(token.RightRound, "')'")

	def := &ast.FunctionDefinition{Name: name.Text, Parameters: params}

	if p.s.MatchShape(token.ReturnTypeArrow) {
		p.s.Consume()
		retType := p.expect(token.Identifier, "identifier")
		def.ReturnType = retType.Text
	}

	def.Body = p.parseBlock().Statements
	return def
}

func (p *Parser) parseParameters() []ast.Parameter {
	params := []ast.Parameter{}
	if p.s.MatchShape(token.RightRound) {
		return params
	}
	params = append(params, p.parseParameter())
	for p.s.MatchShape(token.Comma) {
		p.s.Consume()
		params = append(params, p.parseParameter())
	}
	return params
}

func (p *Parser) parseParameter() ast.Parameter {
	name := p.expect(token.Identifier, "identifier")
	param := ast.Parameter{Name: name.Text}
	if p.s.MatchShape(token.VarTypeColon) {
		p.s.Consume()
		typeName := p.expect(token.Identifier, "identifier")
		param.Type = typeName.Text
	}
	return param
}

func (p *Parser) parseReturn() *ast.Return {
	p.s.Consume() // 'return'
	value := p.parseExpression()
	p.expect(token.EndOfStatement, "';'")
	return &ast.Return{Value: value}
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	expr := p.parseExpression()
	p.expect(token.EndOfStatement, "';'")
	return &ast.ExpressionStatement{Expression: expr}
}

// parseExpression is the grammar's expr production: it simply enters
// the lowest precedence layer.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignExpr()
}

// The four binary layers below all share one shape: parse the next
// layer up as the left operand, then fold in zero or more
// same-precedence operators left-associatively.

func (p *Parser) parseAssignExpr() ast.Expression {
	left := p.parseEqExpr()
	for p.s.MatchShape(token.Assign) {
		p.s.Consume()
		right := p.parseEqExpr()
		left = &ast.BinaryOperation{Operator: ast.Assign, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEqExpr() ast.Expression {
	left := p.parseAddExpr()
	for {
		var op ast.Operator
		switch {
		case p.s.MatchShape(token.Equal):
			op = ast.Eq
		case p.s.MatchShape(token.NotEqual):
			op = ast.NotEq
		default:
			return left
		}
		p.s.Consume()
		right := p.parseAddExpr()
		left = &ast.BinaryOperation{Operator: op, Left: left, Right: right}
	}
}

func (p *Parser) parseAddExpr() ast.Expression {
	left := p.parseMulExpr()
	for {
		var op ast.Operator
		switch {
		case p.s.MatchShape(token.Add):
			op = ast.Add
		case p.s.MatchShape(token.Minus):
			op = ast.Sub
		default:
			return left
		}
		p.s.Consume()
		right := p.parseMulExpr()
		left = &ast.BinaryOperation{Operator: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMulExpr() ast.Expression {
	left := p.parseFactor()
	for {
		var op ast.Operator
		switch {
		case p.s.MatchShape(token.Times):
			op = ast.Mul
		case p.s.MatchShape(token.Divide):
			op = ast.Div
		default:
			return left
		}
		p.s.Consume()
		right := p.parseFactor()
		left = &ast.BinaryOperation{Operator: op, Left: left, Right: right}
	}
}

// parseFactor dispatches on one token of lookahead: '(' a
// parenthesized expression, an identifier a call-or-bare-name, a
// number or string a literal. Anything else is a parse error.
func (p *Parser) parseFactor() ast.Expression {
	switch {
	case p.s.MatchShape(token.LeftRound):
		p.s.Consume()
		expr := p.parseExpression()
		p.expect(token.RightRound, "')'")
		return expr
	case p.s.MatchShape(token.Identifier):
		return p.parseCallOrIdentifier()
	case p.s.MatchShape(token.Number):
		tok := p.s.Consume()
		return &ast.Number{Value: tok.Value}
	case p.s.MatchShape(token.String):
		tok := p.s.Consume()
		return &ast.String{Value: tok.Text}
	default:
		p.fail("expected expression, found %s", p.s.Peek())
		return nil
	}
}

func (p *Parser) parseCallOrIdentifier() ast.Expression {
	name := p.s.Consume()
	if !p.s.MatchShape(token.LeftRound) {
		return &ast.Identifier{Name: name.Text}
	}
	p.s.Consume()
	args := p.parseArguments()
	p.expect(token.RightRound, "')'")
	return &ast.FunctionCall{Callee: name.Text, Arguments: args}
}

func (p *Parser) parseArguments() []ast.Expression {
	args := []ast.Expression{}
	if p.s.MatchShape(token.RightRound) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.s.MatchShape(token.Comma) {
		p.s.Consume()
		args = append(args, p.parseExpression())
	}
	return args
}
