// Package parser turns a layout-resolved token stream into a span-annotated
// syntax tree. Parsing never fails outright: malformed input yields
// placeholder nodes in the tree and entries in the caller's error sink.
package parser

import (
	"github.com/tliron/commonlog"

	"kiri/internal/ast"
	"kiri/internal/layout"
	"kiri/internal/lexer"
	"kiri/internal/symbol"
	"kiri/token"
)

var log = commonlog.GetLogger("kiri.parser")

type Parser struct {
	tokens  []token.Token
	current int

	env  symbol.Env
	errs *Errors

	// errorAt is the index of the token the last UnexpectedToken error was
	// reported at. A token is reported at most once.
	errorAt int

	// stray holds the indices of closing brackets with no opener.
	stray map[int]bool
}

func newParser(tokens []token.Token, env symbol.Env, errs *Errors) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		end := 0
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].End
		}
		tokens = append(tokens, token.Token{Type: token.EOF, Pos: token.Position{Offset: end}, End: end})
	}
	return &Parser{tokens: tokens, env: env, errs: errs, errorAt: -1, stray: strayClosers(tokens)}
}

// strayClosers pairs brackets the way layout does: a closer matches the
// innermost open bracket of any kind.
func strayClosers(tokens []token.Token) map[int]bool {
	stray := make(map[int]bool)
	depth := 0
	for i, tok := range tokens {
		switch tok.Type {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			if depth == 0 {
				stray[i] = true
				continue
			}
			depth--
		}
	}
	return stray
}

// Parse parses one top-level expression. It always returns a tree; syntax
// errors are appended to errs in source order.
func Parse(tokens []token.Token, env symbol.Env, errs *Errors) ast.SpannedExpr {
	mark := errs.Len()
	p := newParser(tokens, env, errs)

	body := p.parseExpr()
	if !p.isAtEnd() {
		p.unexpected(token.EOF.String())
		p.current = len(p.tokens) - 1
	}
	body = p.shrink(body)

	errs.sortFrom(mark)
	log.Debugf("parsed %d tokens with %d errors", len(p.tokens), errs.Len()-mark)
	return body
}

// ParseSource lexes, lays out and parses source. Lexical and layout errors
// are forwarded into errs as User errors.
func ParseSource(filename, source string, env symbol.Env, errs *Errors) ast.SpannedExpr {
	mark := errs.Len()

	tokens, lexErrs := lexer.Scan(filename, source)
	for _, err := range lexErrs {
		length := max(err.Length, 1)
		errs.Push(&Error{
			Kind: User,
			Span: ast.NewSpan(err.Pos.Offset, min(err.Pos.Offset+length, len(source))),
			Err:  err,
		})
	}

	tokens, layoutErrs := layout.Transform(tokens)
	for _, err := range layoutErrs {
		errs.Push(&Error{
			Kind: User,
			Span: ast.NewSpan(err.Pos.Offset, min(err.Pos.Offset+1, len(source))),
			Err:  err,
		})
	}

	expr := Parse(tokens, env, errs)
	errs.sortFrom(mark)
	return expr
}
