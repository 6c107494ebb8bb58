package ast

import "kiri/internal/symbol"

type IdentPattern struct {
	Name *symbol.Symbol
}

// ConstructorPattern matches a constructor. Arguments are plain identifiers;
// nested sub-patterns are not part of the grammar.
type ConstructorPattern struct {
	Name SpannedIdent
	Args []SpannedIdent
}

// PatternField is one entry of a record pattern. Value is set when the field
// is rebound under another name (`x = y`).
type PatternField struct {
	Name  SpannedIdent
	Value *SpannedIdent
}

// RecordPattern destructures a record. Type components and value components
// are kept apart, each in source order.
type RecordPattern struct {
	Types  []PatternField
	Fields []PatternField
}

type ErrorPattern struct{}
