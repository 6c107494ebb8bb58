package ast

import (
	"fmt"

	"kiri/internal/symbol"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func NewSpan(start, end int) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Merge returns the smallest span enclosing both s and o.
func (s Span) Merge(o Span) Span {
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Within reports whether the span is well formed and fits in a source of
// length n.
func (s Span) Within(n int) bool {
	return 0 <= s.Start && s.Start <= s.End && s.End <= n
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned pairs a value with the source range it was parsed from.
type Spanned[T any] struct {
	Span  Span
	Value T
}

func Spanning[T any](span Span, value T) Spanned[T] {
	return Spanned[T]{Span: span, Value: value}
}

type (
	SpannedExpr    = Spanned[Expr]
	SpannedType    = Spanned[Type]
	SpannedPattern = Spanned[Pattern]
	SpannedIdent   = Spanned[*symbol.Symbol]
)
