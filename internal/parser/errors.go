package parser

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"kiri/internal/ast"
	"kiri/internal/layout"
	"kiri/token"
)

type ErrorKind int

const (
	// UnexpectedToken is raised when no production matches the next token.
	UnexpectedToken ErrorKind = iota
	// Unsupported marks syntax the grammar recognizes but does not
	// implement yet, such as tuples of two or more elements.
	Unsupported
	// User carries an error reported by the lexer or the layout transform.
	User
)

// Error is one syntax error in the sink.
type Error struct {
	Kind ErrorKind
	Span ast.Span

	// Token is the class of the offending token. Premature end of input,
	// including layout tokens synthesized there, is reported as token.EOF.
	Token token.Type
	// Text is the offending identifier or operator.
	Text     string
	Expected []string

	// Feature names the unsupported construct.
	Feature string

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case Unsupported:
		return fmt.Sprintf("%s are not supported", e.Feature)
	case User:
		if e.Err == nil {
			return "invalid input"
		}
		return e.Err.Error()
	}

	found := e.Token.String()
	if e.Text != "" {
		found = fmt.Sprintf("%s %q", found, e.Text)
	}
	msg := "unexpected " + found
	if len(e.Expected) > 0 {
		msg += ", expected " + joinAlternatives(e.Expected)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AtEOF reports whether the error was caused by running out of input.
func (e *Error) AtEOF() bool {
	return e.Kind == UnexpectedToken && e.Token == token.EOF
}

func joinAlternatives(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

// Errors is the caller-owned error sink. The zero value is ready to use. It
// is not safe for concurrent use; each parse gets its own sink.
type Errors struct {
	list []*Error
}

func (e *Errors) Push(err *Error) {
	e.list = append(e.list, err)
}

func (e *Errors) Len() int {
	return len(e.list)
}

func (e *Errors) List() []*Error {
	return e.list
}

// Err returns nil for an empty sink and otherwise joins every entry.
func (e *Errors) Err() error {
	if len(e.list) == 0 {
		return nil
	}
	errs := make([]error, len(e.list))
	for i, err := range e.list {
		errs[i] = err
	}
	return errors.Join(errs...)
}

// sortFrom orders the entries pushed since mark by source offset, keeping the
// push order of entries at the same offset.
func (e *Errors) sortFrom(mark int) {
	slices.SortStableFunc(e.list[mark:], func(a, b *Error) int {
		return a.Span.Start - b.Span.Start
	})
}

// IsIncomplete reports whether the sink only holds errors more input could
// fix: premature end of input and brackets left open.
func IsIncomplete(errs *Errors) bool {
	incomplete := false
	for _, err := range errs.list {
		switch {
		case err.AtEOF():
			incomplete = true
		case err.Kind == User:
			var layoutErr *layout.Error
			if !errors.As(err.Err, &layoutErr) || !layoutErr.Unclosed {
				return false
			}
			incomplete = true
		default:
			return false
		}
	}
	return incomplete
}
