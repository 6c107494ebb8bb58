// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"
	"slices"
)

type Type int

const (
	ILLEGAL Type = iota
	EOF

	// Identifiers + literals
	IDENT    // foo, Option, _
	OPERATOR // +, <|, ==
	STRING   // "abc"
	CHAR     // 'a'
	INT      // 123, 0xff
	BYTE     // 12b
	FLOAT    // 1.5

	DOC_COMMENT

	// Keywords
	AND
	ELSE
	IF
	IN
	LET
	MATCH
	THEN
	TYPE
	WITH

	// Punctuation
	COLON
	COMMA
	DOT
	EQUALS
	LAMBDA
	PIPE
	ARROW

	// Brackets
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	LPAREN
	RPAREN

	// Layout
	OPEN_BLOCK
	CLOSE_BLOCK
	SEMI
)

var names = [...]string{
	ILLEGAL:     "illegal token",
	EOF:         "end of input",
	IDENT:       "identifier",
	OPERATOR:    "operator",
	STRING:      "string literal",
	CHAR:        "char literal",
	INT:         "int literal",
	BYTE:        "byte literal",
	FLOAT:       "float literal",
	DOC_COMMENT: "doc comment",
	AND:         "and",
	ELSE:        "else",
	IF:          "if",
	IN:          "in",
	LET:         "let",
	MATCH:       "match",
	THEN:        "then",
	TYPE:        "type",
	WITH:        "with",
	COLON:       ":",
	COMMA:       ",",
	DOT:         ".",
	EQUALS:      "=",
	LAMBDA:      "\\",
	PIPE:        "|",
	ARROW:       "->",
	LBRACE:      "{",
	RBRACE:      "}",
	LBRACKET:    "[",
	RBRACKET:    "]",
	LPAREN:      "(",
	RPAREN:      ")",
	OPEN_BLOCK:  "indented block",
	CLOSE_BLOCK: "end of block",
	SEMI:        "new line",
}

func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsKeyword reports whether t is one of the reserved words.
func (t Type) IsKeyword() bool {
	return t >= AND && t <= WITH
}

// IsLiteral reports whether t carries a decoded literal value.
func (t Type) IsLiteral() bool {
	return t >= STRING && t <= FLOAT
}

// IsLayout reports whether t is produced by the layout transform rather than
// by the lexer.
func (t Type) IsLayout() bool {
	return t == OPEN_BLOCK || t == CLOSE_BLOCK || t == SEMI
}

type Position struct {
	Offset int // 0-based byte offset
	Line   int // 1-based
	Column int // 1-based
}

type Token struct {
	Type Type
	// Text holds the identifier, operator or doc comment text, and the
	// decoded contents of string literals.
	Text string

	Int   int64
	Float float64
	Char  rune
	Byte  byte

	Pos Position
	End int // byte offset one past the token

	// Synthetic marks zero-width tokens inserted by the layout transform.
	Synthetic bool
}

// Visible reports whether the token covers source text a user can see.
func (t Token) Visible() bool {
	return !t.Synthetic && t.Type != EOF
}

func (t Token) String() string {
	switch t.Type {
	case IDENT, OPERATOR:
		return t.Text
	case STRING:
		return fmt.Sprintf("%q", t.Text)
	case CHAR:
		return fmt.Sprintf("%q", t.Char)
	case INT:
		return fmt.Sprintf("%d", t.Int)
	case BYTE:
		return fmt.Sprintf("%db", t.Byte)
	case FLOAT:
		return fmt.Sprintf("%g", t.Float)
	case DOC_COMMENT:
		return "///" + t.Text
	}
	return t.Type.String()
}

var keywords = map[string]Type{
	"and":   AND,
	"else":  ELSE,
	"if":    IF,
	"in":    IN,
	"let":   LET,
	"match": MATCH,
	"then":  THEN,
	"type":  TYPE,
	"with":  WITH,
}

var punctuation = map[string]Type{
	":":  COLON,
	".":  DOT,
	"=":  EQUALS,
	"\\": LAMBDA,
	"|":  PIPE,
	"->": ARROW,
}

// Keywords returns the reserved words in alphabetical order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	slices.Sort(out)
	return out
}

func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupOperator classifies an operator run, separating out the runs that
// are reserved punctuation.
func LookupOperator(op string) Type {
	if tok, ok := punctuation[op]; ok {
		return tok
	}
	return OPERATOR
}
