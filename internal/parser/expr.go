package parser

import (
	"kiri/internal/ast"
	"kiri/token"
)

// parseExpr parses a full expression: declarations, conditionals, matches,
// layout blocks and infix chains.
func (p *Parser) parseExpr() ast.SpannedExpr {
	switch p.peek().Type {
	case token.DOC_COMMENT, token.LET, token.TYPE:
		return p.parseDeclarations()
	case token.IF:
		return p.parseIfElse()
	case token.MATCH:
		return p.parseMatch()
	case token.OPEN_BLOCK:
		return p.parseBlock()
	}
	return p.parseInfix()
}

// parseInfix builds the operator chain as written. Every operator makes the
// rest of the chain its right operand; no precedence is applied.
func (p *Parser) parseInfix() ast.SpannedExpr {
	if p.check(token.LAMBDA) {
		return p.parseLambda()
	}

	start := p.start()
	lhs := p.parseApp()
	if !p.check(token.OPERATOR) {
		return lhs
	}
	op := p.ident(p.advance())
	rhs := p.parseInfix()
	return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.InfixExpr{Left: lhs, Op: op, Right: rhs})
}

func (p *Parser) parseLambda() ast.SpannedExpr {
	start := p.start()
	p.advance()

	var params []ast.SpannedIdent
	for p.check(token.IDENT) {
		params = append(params, p.ident(p.advance()))
	}
	if len(params) == 0 {
		p.unexpected("parameter name")
	}

	var body ast.SpannedExpr
	if p.expect(token.ARROW) {
		body = p.parseExpr()
	} else {
		body = ast.Spanning[ast.Expr](p.emptySpan(), &ast.ErrorExpr{})
	}

	return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.LambdaExpr{
		Name:   p.env.Intern(""),
		Params: params,
		Body:   body,
	})
}

// parseApp parses `f a b c` into one application with three arguments.
func (p *Parser) parseApp() ast.SpannedExpr {
	start := p.start()
	fn := p.parseAtomic()

	var args []ast.SpannedExpr
	for p.startsAtomic() {
		args = append(args, p.parseAtomic())
	}
	if len(args) == 0 {
		return fn
	}
	return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.AppExpr{Func: fn, Args: args})
}

func (p *Parser) startsAtomic() bool {
	switch p.peek().Type {
	case token.IDENT, token.STRING, token.CHAR, token.INT, token.BYTE, token.FLOAT,
		token.LPAREN, token.LBRACKET, token.LBRACE:
		return true
	}
	return false
}

func (p *Parser) parseAtomic() ast.SpannedExpr {
	start := p.start()

	var expr ast.SpannedExpr
	switch tok := p.peek(); tok.Type {
	case token.IDENT:
		name := p.ident(p.advance())
		expr = ast.Spanning[ast.Expr](name.Span, &ast.IdentExpr{Name: name.Value})
	case token.STRING, token.CHAR, token.INT, token.BYTE, token.FLOAT:
		p.advance()
		expr = ast.Spanning[ast.Expr](tokenSpan(tok), &ast.LiteralExpr{Value: literal(tok)})
	case token.LPAREN:
		expr = p.parseParenExpr()
	case token.LBRACKET:
		expr = p.parseArray()
	case token.LBRACE:
		expr = p.parseRecordExpr()
	default:
		return ast.Spanning[ast.Expr](p.skipUnexpected("expression"), &ast.ErrorExpr{})
	}

	for p.match(token.DOT) {
		var field ast.SpannedIdent
		if p.check(token.IDENT) {
			field = p.ident(p.advance())
		} else {
			p.unexpected("field name")
			field = ast.Spanning(p.emptySpan(), p.env.Intern(""))
		}
		expr = ast.Spanning[ast.Expr](p.spanFrom(start), &ast.ProjectionExpr{Base: expr, Field: field.Value})
	}
	return expr
}

func literal(tok token.Token) ast.Literal {
	switch tok.Type {
	case token.CHAR:
		return ast.Literal{Kind: ast.CharLiteral, Char: tok.Char}
	case token.INT:
		return ast.Literal{Kind: ast.IntLiteral, Int: tok.Int}
	case token.BYTE:
		return ast.Literal{Kind: ast.ByteLiteral, Byte: tok.Byte}
	case token.FLOAT:
		return ast.Literal{Kind: ast.FloatLiteral, Float: tok.Float}
	}
	return ast.Literal{Kind: ast.StringLiteral, Text: tok.Text}
}

// parseParenExpr handles `()`, `(e)` and the unsupported tuples. A single
// parenthesized expression stays wrapped in a one-element block so later
// passes can tell it apart from a bare operand.
func (p *Parser) parseParenExpr() ast.SpannedExpr {
	start := p.start()
	p.advance()
	elems := p.parseExprList(token.RPAREN)
	span := p.spanFrom(start)

	switch len(elems) {
	case 0:
		return ast.Spanning[ast.Expr](span, &ast.TupleExpr{})
	case 1:
		return ast.Spanning[ast.Expr](span, &ast.BlockExpr{Exprs: elems})
	}
	p.unsupported(span, "tuples")
	return ast.Spanning[ast.Expr](span, &ast.ErrorExpr{})
}

func (p *Parser) parseArray() ast.SpannedExpr {
	start := p.start()
	p.advance()
	elems := p.parseExprList(token.RBRACKET)
	return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.ArrayExpr{Elems: elems})
}

// parseExprList parses comma separated expressions up to and including the
// closing token. A trailing comma is allowed.
func (p *Parser) parseExprList(closer token.Type) []ast.SpannedExpr {
	var elems []ast.SpannedExpr
	for !p.check(closer) && !p.isAtEnd() {
		elems = append(elems, p.parseExpr())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeDelim(closer)
	return elems
}

// parseRecordExpr splits fields like record patterns do: a bare uppercase
// name is a type component, `x = e` and a bare lowercase `x` are values.
func (p *Parser) parseRecordExpr() ast.SpannedExpr {
	start := p.start()
	p.advance()

	record := &ast.RecordExpr{}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		name, ok := p.consumeIdent("field name")
		if !ok {
			break
		}

		switch {
		case p.match(token.EQUALS):
			value := p.parseExpr()
			record.Fields = append(record.Fields, ast.ExprField{Name: name, Value: &value})
		case p.isConstructor(name):
			record.Types = append(record.Types, name)
		default:
			record.Fields = append(record.Fields, ast.ExprField{Name: name})
		}

		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeDelim(token.RBRACE)

	return ast.Spanning[ast.Expr](p.spanFrom(start), record)
}

func (p *Parser) parseIfElse() ast.SpannedExpr {
	start := p.start()
	p.advance()

	expr := &ast.IfElseExpr{Pred: p.parseExpr()}
	p.expect(token.THEN)
	expr.Then = p.parseExpr()
	p.expect(token.ELSE)
	expr.Else = p.parseExpr()

	return ast.Spanning[ast.Expr](p.spanFrom(start), expr)
}

func (p *Parser) parseMatch() ast.SpannedExpr {
	start := p.start()
	p.advance()

	expr := &ast.MatchExpr{Scrutinee: p.parseExpr()}
	p.expect(token.WITH)

	for p.match(token.PIPE) {
		pattern := p.parsePattern()
		var body ast.SpannedExpr
		if p.expect(token.ARROW) {
			body = p.shrink(p.parseExpr())
		} else {
			body = ast.Spanning[ast.Expr](p.emptySpan(), &ast.ErrorExpr{})
		}
		expr.Alts = append(expr.Alts, ast.Alternative{Pattern: pattern, Expr: body})
	}
	if len(expr.Alts) == 0 {
		p.unexpected(token.PIPE.String())
		return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.ErrorExpr{})
	}

	return ast.Spanning[ast.Expr](p.spanFrom(start), expr)
}

// parseBlock parses a layout block. A block holding a single expression is
// that expression.
func (p *Parser) parseBlock() ast.SpannedExpr {
	start := p.start()
	p.advance()

	exprs := []ast.SpannedExpr{p.parseExpr()}
	for p.match(token.SEMI) {
		exprs = append(exprs, p.parseExpr())
	}
	p.closeDelim(token.CLOSE_BLOCK)

	if len(exprs) == 1 {
		return exprs[0]
	}
	return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.BlockExpr{Exprs: exprs})
}
