package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"kiri/internal/ast"
	"kiri/internal/layout"
	"kiri/internal/lexer"
	"kiri/internal/parser"
	"kiri/token"
)

// SyntaxErrorBuilder provides a fluent interface for creating syntax errors
type SyntaxErrorBuilder struct {
	err CompilerError
}

func NewSyntaxError(code, message string, pos ast.Position) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

func (b *SyntaxErrorBuilder) WithSuggestion(message string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *SyntaxErrorBuilder) WithReplacement(message, replacement string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *SyntaxErrorBuilder) Build() CompilerError {
	return b.err
}

// FromParseErrors converts every entry of a parser sink, keeping its order.
func FromParseErrors(errs *parser.Errors, index *ast.LineIndex) []CompilerError {
	out := make([]CompilerError, 0, errs.Len())
	for _, err := range errs.List() {
		out = append(out, FromParseError(err, index))
	}
	return out
}

// FromParseError turns one parser error into a diagnostic with a code and,
// where one applies, a suggestion.
func FromParseError(err *parser.Error, index *ast.LineIndex) CompilerError {
	pos := index.Position(err.Span.Start)
	length := max(1, err.Span.Len())

	switch err.Kind {
	case parser.Unsupported:
		return unsupported(err, pos, length)
	case parser.User:
		return forwarded(err, pos, length)
	}

	if err.AtEOF() {
		b := NewSyntaxError(ErrorUnexpectedEOF, err.Error(), pos)
		if len(err.Expected) > 0 {
			b.WithNote(fmt.Sprintf("the input ended where %s was expected", err.Expected[0]))
		}
		return b.Build()
	}

	b := NewSyntaxError(ErrorUnexpectedToken, err.Error(), pos).WithLength(length)
	if err.Token == token.IDENT && err.Text != "" {
		if similar := findSimilarNames(err.Text, err.Expected); len(similar) > 0 {
			b.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
		}
	}
	if len(err.Expected) == 1 && err.Expected[0] == token.IN.String() {
		b.WithHelp("every let or type declaration needs `in` or a following line at the same indentation")
	}
	return b.Build()
}

func unsupported(err *parser.Error, pos ast.Position, length int) CompilerError {
	b := NewSyntaxError(ErrorUnsupportedSyntax, err.Error(), pos).WithLength(length)
	switch {
	case strings.HasPrefix(err.Feature, "tuple"):
		b.WithReplacement("use a record with named fields instead", "{ first = ..., second = ... }").
			WithNote("only `()` and a single parenthesized element are accepted")
	case err.Feature == "unit patterns":
		b.WithSuggestion("bind the value to `_` instead")
	}
	return b.Build()
}

// forwarded wraps lexer and layout errors, which arrive as User errors.
func forwarded(err *parser.Error, pos ast.Position, length int) CompilerError {
	var lexErr *lexer.Error
	if stderrors.As(err.Err, &lexErr) {
		return NewSyntaxError(ErrorLexical, lexErr.Message, pos).WithLength(length).Build()
	}

	var layoutErr *layout.Error
	if stderrors.As(err.Err, &layoutErr) {
		b := NewSyntaxError(ErrorLayout, layoutErr.Message, pos)
		if layoutErr.Unclosed {
			b.WithHelp("add the matching closing bracket")
		}
		return b.Build()
	}

	return NewSyntaxError(ErrorUnexpectedToken, err.Error(), pos).WithLength(length).Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
