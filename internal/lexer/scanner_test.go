package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kiri/token"
)

func types(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tokens, errs := Scan("test.kiri", "let and in if then else match with type foo Option _ x'")
	require.Empty(t, errs)

	assert.Equal(t, []token.Type{
		token.LET, token.AND, token.IN, token.IF, token.THEN, token.ELSE,
		token.MATCH, token.WITH, token.TYPE, token.IDENT, token.IDENT,
		token.IDENT, token.IDENT, token.EOF,
	}, types(tokens))
	assert.Equal(t, "Option", tokens[10].Text)
	assert.Equal(t, "x'", tokens[12].Text)
}

func TestNumbers(t *testing.T) {
	tokens, errs := Scan("test.kiri", "42 0x1F 7b 1.5 2.5e3")
	require.Empty(t, errs)
	require.Len(t, tokens, 6)

	assert.Equal(t, token.INT, tokens[0].Type)
	assert.Equal(t, int64(42), tokens[0].Int)
	assert.Equal(t, token.INT, tokens[1].Type)
	assert.Equal(t, int64(31), tokens[1].Int)
	assert.Equal(t, token.BYTE, tokens[2].Type)
	assert.Equal(t, byte(7), tokens[2].Byte)
	assert.Equal(t, token.FLOAT, tokens[3].Type)
	assert.Equal(t, 1.5, tokens[3].Float)
	assert.Equal(t, 2500.0, tokens[4].Float)
}

func TestByteOutOfRange(t *testing.T) {
	tokens, errs := Scan("test.kiri", "300b")
	require.Len(t, errs, 1)
	assert.Equal(t, "byte literal out of range", errs[0].Message)
	assert.Equal(t, token.BYTE, tokens[0].Type)
}

func TestStringsAndChars(t *testing.T) {
	tokens, errs := Scan("test.kiri", `"hello\n" 'a' '\t'`)
	require.Empty(t, errs)

	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello\n", tokens[0].Text)
	assert.Equal(t, token.CHAR, tokens[1].Type)
	assert.Equal(t, 'a', tokens[1].Char)
	assert.Equal(t, '\t', tokens[2].Char)
}

func TestUnterminatedString(t *testing.T) {
	tokens, errs := Scan("test.kiri", `"abc`)
	require.Len(t, errs, 1)
	assert.Equal(t, "unterminated string literal", errs[0].Message)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "abc", tokens[0].Text)
}

func TestOperatorsAndPunctuation(t *testing.T) {
	tokens, errs := Scan("test.kiri", `(->) a.b : = \ | -> + <| == , [ ] { }`)
	require.Empty(t, errs)

	assert.Equal(t, []token.Type{
		token.LPAREN, token.ARROW, token.RPAREN,
		token.IDENT, token.DOT, token.IDENT,
		token.COLON, token.EQUALS, token.LAMBDA, token.PIPE, token.ARROW,
		token.OPERATOR, token.OPERATOR, token.OPERATOR,
		token.COMMA, token.LBRACKET, token.RBRACKET, token.LBRACE, token.RBRACE,
		token.EOF,
	}, types(tokens))
	assert.Equal(t, "<|", tokens[12].Text)
}

func TestComments(t *testing.T) {
	source := "/// Adds one.\n// plain\nlet /* inline */ x = 1"
	tokens, errs := Scan("test.kiri", source)
	require.Empty(t, errs)

	assert.Equal(t, []token.Type{
		token.DOC_COMMENT, token.LET, token.IDENT, token.EQUALS, token.INT, token.EOF,
	}, types(tokens))
	assert.Equal(t, "Adds one.", tokens[0].Text)
}

func TestUnterminatedComment(t *testing.T) {
	tokens, errs := Scan("test.kiri", "x /* never closed")
	require.Len(t, errs, 1)
	assert.Equal(t, "unterminated block comment", errs[0].Message)
	assert.Equal(t, []token.Type{token.IDENT, token.EOF}, types(tokens))
}

func TestPositions(t *testing.T) {
	tokens, errs := Scan("test.kiri", "let x =\n  foo")
	require.Empty(t, errs)

	foo := tokens[3]
	assert.Equal(t, "foo", foo.Text)
	assert.Equal(t, token.Position{Offset: 10, Line: 2, Column: 3}, foo.Pos)
	assert.Equal(t, 13, foo.End)

	eof := tokens[len(tokens)-1]
	assert.Equal(t, token.EOF, eof.Type)
	assert.Equal(t, 13, eof.Pos.Offset)
}

func TestInvalidCharacter(t *testing.T) {
	tokens, errs := Scan("test.kiri", "a ` b")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "unexpected character")
	assert.Equal(t, []token.Type{token.IDENT, token.IDENT, token.EOF}, types(tokens))
}
