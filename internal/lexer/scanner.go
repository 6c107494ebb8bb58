package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"kiri/token"
)

// Error is a lexical error. Lexing continues past it; the offending text is
// either dropped or turned into a best-effort token.
type Error struct {
	Message string
	Pos     token.Position
	Length  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

var symbols = KiriLexer.Symbols()

type scanner struct {
	tokens []token.Token
	errors []*Error
}

// Scan tokenizes source. The returned slice always ends with an EOF token.
func Scan(filename, source string) ([]token.Token, []*Error) {
	s := &scanner{}

	lex, err := KiriLexer.LexString(filename, source)
	if err != nil {
		s.errors = append(s.errors, &Error{Message: err.Error()})
		return s.finish(source, token.Position{Offset: len(source)}), s.errors
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			s.errors = append(s.errors, &Error{Message: err.Error(), Pos: position(tok.Pos)})
			break
		}
		if tok.EOF() {
			return s.finish(source, position(tok.Pos)), s.errors
		}
		s.scanToken(tok)
	}

	return s.finish(source, token.Position{Offset: len(source)}), s.errors
}

func (s *scanner) finish(source string, pos token.Position) []token.Token {
	pos.Offset = len(source)
	return append(s.tokens, token.Token{Type: token.EOF, Pos: pos, End: len(source)})
}

func position(p lexer.Position) token.Position {
	return token.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func (s *scanner) scanToken(tok lexer.Token) {
	pos := position(tok.Pos)
	out := token.Token{Pos: pos, End: pos.Offset + len(tok.Value)}

	switch tok.Type {
	case symbols["Whitespace"], symbols["Comment"], symbols["BlockComment"]:
		return

	case symbols["UnterminatedComment"]:
		s.reportError(pos, len(tok.Value), "unterminated block comment")
		return

	case symbols["DocComment"]:
		out.Type = token.DOC_COMMENT
		text := strings.TrimPrefix(tok.Value, "///")
		text = strings.TrimPrefix(text, " ")
		out.Text = strings.TrimRight(text, "\r")

	case symbols["Ident"]:
		out.Type = token.LookupIdent(tok.Value)
		out.Text = tok.Value

	case symbols["Operator"]:
		out.Type = token.LookupOperator(tok.Value)
		out.Text = tok.Value

	case symbols["Punct"]:
		out.Type = punctType(tok.Value)
		out.Text = tok.Value

	case symbols["Int"]:
		out.Type = token.INT
		v, err := strconv.ParseInt(tok.Value, 0, 64)
		if err != nil {
			s.reportError(pos, len(tok.Value), "integer literal out of range")
		}
		out.Int = v

	case symbols["Byte"]:
		out.Type = token.BYTE
		v, err := strconv.ParseUint(strings.TrimSuffix(tok.Value, "b"), 10, 8)
		if err != nil {
			s.reportError(pos, len(tok.Value), "byte literal out of range")
		}
		out.Byte = byte(v)

	case symbols["Float"]:
		out.Type = token.FLOAT
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			s.reportError(pos, len(tok.Value), "invalid float literal")
		}
		out.Float = v

	case symbols["String"]:
		out.Type = token.STRING
		v, err := strconv.Unquote(tok.Value)
		if err != nil {
			s.reportError(pos, len(tok.Value), "invalid escape sequence in string literal")
			v = tok.Value[1 : len(tok.Value)-1]
		}
		out.Text = v

	case symbols["UnterminatedString"]:
		s.reportError(pos, len(tok.Value), "unterminated string literal")
		out.Type = token.STRING
		out.Text = tok.Value[1:]

	case symbols["Char"]:
		out.Type = token.CHAR
		v, err := strconv.Unquote(tok.Value)
		if err != nil || utf8.RuneCountInString(v) != 1 {
			s.reportError(pos, len(tok.Value), "invalid char literal")
			v = tok.Value[1:]
		}
		out.Char, _ = utf8.DecodeRuneInString(v)

	default:
		s.reportError(pos, len(tok.Value), fmt.Sprintf("unexpected character %q", tok.Value))
		return
	}

	s.tokens = append(s.tokens, out)
}

func punctType(p string) token.Type {
	switch p {
	case "(":
		return token.LPAREN
	case ")":
		return token.RPAREN
	case "{":
		return token.LBRACE
	case "}":
		return token.RBRACE
	case "[":
		return token.LBRACKET
	case "]":
		return token.RBRACKET
	}
	return token.COMMA
}

func (s *scanner) reportError(pos token.Position, length int, message string) {
	s.errors = append(s.errors, &Error{Message: message, Pos: pos, Length: length})
}
