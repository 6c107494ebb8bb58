package ast

import "kiri/internal/symbol"

type Builtin int

const (
	BuiltinInt Builtin = iota
	BuiltinByte
	BuiltinFloat
	BuiltinString
	BuiltinChar
	BuiltinArray
	BuiltinFunction
)

var builtinNames = [...]string{
	BuiltinInt:      "Int",
	BuiltinByte:     "Byte",
	BuiltinFloat:    "Float",
	BuiltinString:   "String",
	BuiltinChar:     "Char",
	BuiltinArray:    "Array",
	BuiltinFunction: "->",
}

func (b Builtin) String() string {
	return builtinNames[b]
}

// LookupBuiltin returns the primitive type named by an identifier.
// The function constructor `->` is only reachable as `(->)`.
func LookupBuiltin(name string) (Builtin, bool) {
	for b, n := range builtinNames {
		if n == name && Builtin(b) != BuiltinFunction {
			return Builtin(b), true
		}
	}
	return 0, false
}

// BuiltinNames lists the identifiers recognized as primitive types.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinNames)-1)
	for b, n := range builtinNames {
		if Builtin(b) != BuiltinFunction {
			names = append(names, n)
		}
	}
	return names
}

type BuiltinType struct {
	Builtin Builtin
}

// IdentType references a named type.
type IdentType struct {
	Name *symbol.Symbol
}

// GenericType is a type parameter.
type GenericType struct {
	Name *symbol.Symbol
	Kind Kind
}

type AppType struct {
	Head SpannedType
	Args []SpannedType
}

type FunctionType struct {
	Args []SpannedType
	Ret  SpannedType
}

// Field is a named member of a record or variant type.
type Field struct {
	Name SpannedIdent
	Type SpannedType
}

// RecordType holds its fields in declaration order. The unit type is the
// record with no fields.
type RecordType struct {
	Fields []Field
}

// VariantType is a row of constructors; each field maps a constructor name to
// the function type building the variant from its arguments.
type VariantType struct {
	Fields []Field
}

type HoleType struct{}

type ErrorType struct{}

// NewFunctionType builds `args -> ret`. With no arguments the result is ret
// itself.
func NewFunctionType(span Span, args []SpannedType, ret SpannedType) SpannedType {
	if len(args) == 0 {
		return ret
	}
	return Spanning[Type](span, &FunctionType{Args: args, Ret: ret})
}
