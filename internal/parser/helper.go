package parser

import (
	"sort"

	"kiri/internal/ast"
	"kiri/token"
)

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

// peekAt looks n tokens ahead, stopping at EOF.
func (p *Parser) peekAt(n int) token.Token {
	return p.tokens[min(p.current+n, len(p.tokens)-1)]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt token.Type) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes tt or reports it missing without consuming anything.
func (p *Parser) expect(tt token.Type) bool {
	if p.match(tt) {
		return true
	}
	p.unexpected(tt.String())
	return false
}

// start is the offset the next production begins at.
func (p *Parser) start() int {
	return p.peek().Pos.Offset
}

// spanFrom closes a span at the end of the last consumed token.
func (p *Parser) spanFrom(start int) ast.Span {
	end := start
	if p.current > 0 {
		end = p.previous().End
	}
	return ast.NewSpan(start, end)
}

func tokenSpan(tok token.Token) ast.Span {
	return ast.NewSpan(tok.Pos.Offset, tok.End)
}

// emptySpan is the zero-width span at the next token.
func (p *Parser) emptySpan() ast.Span {
	return ast.NewSpan(p.start(), p.start())
}

func (p *Parser) ident(tok token.Token) ast.SpannedIdent {
	return ast.Spanning(tokenSpan(tok), p.env.Intern(tok.Text))
}

// consumeIdent consumes an identifier. On failure it reports the error and
// returns the empty name without consuming.
func (p *Parser) consumeIdent(expected string) (ast.SpannedIdent, bool) {
	if p.check(token.IDENT) {
		return p.ident(p.advance()), true
	}
	p.unexpected(expected)
	return ast.Spanning(p.emptySpan(), p.env.Intern("")), false
}

func (p *Parser) isConstructor(name ast.SpannedIdent) bool {
	return ast.IsConstructorName(p.env.Name(name.Value))
}

func (p *Parser) unexpected(expected ...string) {
	p.unexpectedAt(p.current, expected...)
}

func (p *Parser) unexpectedAt(idx int, expected ...string) {
	if idx == p.errorAt {
		return
	}
	p.errorAt = idx

	tok := p.tokens[idx]
	err := &Error{Kind: UnexpectedToken, Span: tokenSpan(tok), Token: tok.Type, Expected: expected}
	switch {
	case tok.Synthetic && tok.Pos.Offset >= p.tokens[len(p.tokens)-1].Pos.Offset:
		err.Token = token.EOF
	case tok.Type == token.IDENT || tok.Type == token.OPERATOR:
		err.Text = tok.Text
	}
	p.errs.Push(err)
}

func (p *Parser) unsupported(span ast.Span, feature string) {
	p.errs.Push(&Error{Kind: Unsupported, Span: span, Feature: feature})
}

// isSync reports whether tt ends an enclosing production. Recovery never
// consumes such a token so the enclosing production can still match it.
func isSync(tt token.Type) bool {
	switch tt {
	case token.IN, token.THEN, token.ELSE, token.WITH, token.AND,
		token.PIPE, token.ARROW, token.EQUALS, token.COMMA,
		token.SEMI, token.CLOSE_BLOCK, token.EOF,
		token.RPAREN, token.RBRACKET, token.RBRACE:
		return true
	}
	return false
}

// skipUnexpected reports the next token and consumes it unless it is a sync token.
// It returns the span of what was consumed.
func (p *Parser) skipUnexpected(expected string) ast.Span {
	p.unexpected(expected)
	if isSync(p.peek().Type) {
		return p.emptySpan()
	}
	return tokenSpan(p.advance())
}

func opens(tt token.Type) bool {
	return tt == token.LPAREN || tt == token.LBRACKET || tt == token.LBRACE || tt == token.OPEN_BLOCK
}

func closes(tt token.Type) bool {
	return tt == token.RPAREN || tt == token.RBRACKET || tt == token.RBRACE || tt == token.CLOSE_BLOCK
}

// closeDelim consumes the closing token tt. Anything in front of it is
// reported once and skipped, nested brackets included.
func (p *Parser) closeDelim(tt token.Type) {
	if p.match(tt) {
		return
	}
	p.unexpected(tt.String())

	depth := 0
	for !p.isAtEnd() {
		cur := p.peek().Type
		switch {
		case opens(cur):
			depth++
		case closes(cur):
			if depth == 0 {
				if cur == tt {
					p.advance()
				}
				return
			}
			depth--
		}
		p.advance()
	}
}

// skipExtra discards malformed tokens in front of the keyword ending a
// binding chain. It reports one error for the whole run and returns whether
// it did. Closers without an opener are skipped too; any other closer at
// depth 0 belongs to an enclosing production.
func (p *Parser) skipExtra(stop token.Type) bool {
	if p.check(stop) || p.isAtEnd() {
		return false
	}
	p.unexpected(stop.String())

	depth := 0
	for !p.isAtEnd() {
		cur := p.peek().Type
		switch {
		case p.stray[p.current]:
		case cur == stop && depth == 0:
			return true
		case opens(cur):
			depth++
		case closes(cur):
			if depth == 0 {
				return true
			}
			depth--
		}
		p.advance()
	}
	return true
}

// shrink narrows span to the visible tokens it covers, dropping the
// zero-width layout tokens at its edges.
func (p *Parser) shrink(e ast.SpannedExpr) ast.SpannedExpr {
	toks := p.tokens

	lo := sort.Search(len(toks), func(i int) bool { return toks[i].Pos.Offset >= e.Span.Start })
	for lo < len(toks) && !toks[lo].Visible() {
		lo++
	}

	hi := sort.Search(len(toks), func(i int) bool { return toks[i].Pos.Offset >= e.Span.End }) - 1
	for hi >= 0 && (!toks[hi].Visible() || toks[hi].End > e.Span.End) {
		hi--
	}

	if lo >= len(toks) || hi < 0 || hi < lo {
		return e
	}
	e.Span = ast.NewSpan(toks[lo].Pos.Offset, toks[hi].End)
	return e
}
