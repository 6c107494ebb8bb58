package ast

import (
	"unicode"
	"unicode/utf8"
)

// IsConstructorName reports whether an identifier lives in the type and
// constructor namespace. The classification is purely lexical: a leading
// uppercase letter.
func IsConstructorName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// HoleName is the identifier written for an unconstrained type or kind.
const HoleName = "_"
