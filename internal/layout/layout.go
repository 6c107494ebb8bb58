// Package layout turns indentation into explicit block structure. It
// inserts zero-width OPEN_BLOCK, CLOSE_BLOCK and SEMI tokens, plus the
// implicit `in` that ends a `let` or `type` declaration followed by a
// statement on the same column.
package layout

import (
	"fmt"

	"kiri/token"
)

type Error struct {
	Message string
	Pos     token.Position
	// Unclosed marks a bracket still open at the end of input. More input
	// could fix it.
	Unclosed bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

type contextKind int

const (
	blockContext contextKind = iota
	delimContext
)

type context struct {
	kind   contextKind
	column int
	open   token.Token // opening bracket of a delimiter context
	// pendingLets counts `let`/`type` declarations in this block still
	// waiting for their `in`.
	pendingLets int
}

type transformer struct {
	in     []token.Token
	out    []token.Token
	stack  []*context
	errors []*Error
}

// Transform applies the offside rule to a lexed token stream ending in EOF.
// The whole input becomes one block at the column of its first token.
func Transform(tokens []token.Token) ([]token.Token, []*Error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		tokens = append(tokens, token.Token{Type: token.EOF})
	}
	t := &transformer{in: tokens, out: make([]token.Token, 0, len(tokens)+8)}
	t.run()
	return t.out, t.errors
}

func synthetic(tt token.Type, pos token.Position) token.Token {
	return token.Token{Type: tt, Pos: pos, End: pos.Offset, Synthetic: true}
}

func (t *transformer) run() {
	first := t.in[0]
	t.openBlock(first)

	var prev *token.Token
	openerPending := false

	for i := range t.in {
		tok := t.in[i]
		if tok.Type == token.EOF {
			t.closeAll(tok)
			t.out = append(t.out, tok)
			return
		}

		newLine := prev != nil && tok.Pos.Line > prev.Pos.Line
		switch {
		case openerPending && newLine && tok.Pos.Column > t.blockColumn():
			t.openBlock(tok)
		case newLine && prev.Type != token.DOC_COMMENT:
			t.lineStart(i, openerPending)
		}
		openerPending = false

		t.handle(tok)
		if opensBlock(tok.Type) {
			openerPending = true
		}
		prev = &t.in[i]
	}
}

func opensBlock(tt token.Type) bool {
	switch tt {
	case token.EQUALS, token.ARROW, token.IN, token.THEN, token.ELSE:
		return true
	}
	return false
}

// continuesLine reports whether a line starting with tt continues the
// previous statement instead of starting a new one.
func continuesLine(tt token.Type) bool {
	switch tt {
	case token.IN, token.AND, token.THEN, token.ELSE, token.WITH, token.PIPE,
		token.ARROW, token.OPERATOR, token.DOT, token.EQUALS, token.COLON,
		token.COMMA, token.RPAREN, token.RBRACKET, token.RBRACE:
		return true
	}
	return false
}

func (t *transformer) top() *context {
	return t.stack[len(t.stack)-1]
}

// blockColumn is the column of the innermost enclosing block.
func (t *transformer) blockColumn() int {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].kind == blockContext {
			return t.stack[i].column
		}
	}
	return 0
}

func (t *transformer) openBlock(at token.Token) {
	t.stack = append(t.stack, &context{kind: blockContext, column: at.Pos.Column})
	t.out = append(t.out, synthetic(token.OPEN_BLOCK, at.Pos))
}

func (t *transformer) closeBlock(at token.Token) {
	t.stack = t.stack[:len(t.stack)-1]
	t.out = append(t.out, synthetic(token.CLOSE_BLOCK, at.Pos))
}

// leading returns the first token of the line starting at i, looking past
// doc comments.
func (t *transformer) leading(i int) token.Token {
	for ; i < len(t.in); i++ {
		if t.in[i].Type != token.DOC_COMMENT {
			return t.in[i]
		}
	}
	return t.in[len(t.in)-1]
}

func (t *transformer) lineStart(i int, continuation bool) {
	tok := t.in[i]
	col := tok.Pos.Column

	for len(t.stack) > 1 && t.top().kind == blockContext && col < t.top().column {
		t.closeBlock(tok)
	}

	top := t.top()
	if continuation || top.kind != blockContext || col != top.column {
		return
	}
	if continuesLine(t.leading(i).Type) {
		return
	}

	if top.pendingLets > 0 {
		for ; top.pendingLets > 0; top.pendingLets-- {
			t.out = append(t.out, synthetic(token.IN, tok.Pos))
		}
		return
	}
	t.out = append(t.out, synthetic(token.SEMI, tok.Pos))
}

func (t *transformer) handle(tok token.Token) {
	top := t.top()

	switch tok.Type {
	case token.LET, token.TYPE:
		if top.kind == blockContext {
			top.pendingLets++
		}

	case token.IN:
		if top.kind == blockContext && top.pendingLets > 0 {
			top.pendingLets--
		}

	case token.LPAREN, token.LBRACKET, token.LBRACE:
		t.out = append(t.out, tok)
		t.stack = append(t.stack, &context{kind: delimContext, column: tok.Pos.Column, open: tok})
		return

	case token.RPAREN, token.RBRACKET, token.RBRACE:
		if t.closeToDelim(tok) {
			t.stack = t.stack[:len(t.stack)-1]
		} else {
			t.errors = append(t.errors, &Error{
				Message: fmt.Sprintf("unmatched closing %q", tok.Text),
				Pos:     tok.Pos,
			})
		}

	case token.COMMA:
		t.closeToDelim(tok)
	}

	t.out = append(t.out, tok)
}

// closeToDelim closes the blocks opened inside the innermost bracket pair
// and reports whether such a bracket exists. The delimiter context itself is
// left on the stack.
func (t *transformer) closeToDelim(at token.Token) bool {
	idx := -1
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].kind == delimContext {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for len(t.stack)-1 > idx {
		t.closeBlock(at)
	}
	return true
}

func (t *transformer) closeAll(eof token.Token) {
	for len(t.stack) > 0 {
		ctx := t.top()
		if ctx.kind == delimContext {
			t.errors = append(t.errors, &Error{
				Message:  fmt.Sprintf("unclosed %q", ctx.open.Text),
				Pos:      ctx.open.Pos,
				Unclosed: true,
			})
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}
		t.closeBlock(eof)
	}
}
