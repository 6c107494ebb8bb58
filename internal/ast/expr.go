package ast

import "kiri/internal/symbol"

type LiteralKind int

const (
	StringLiteral LiteralKind = iota
	CharLiteral
	IntLiteral
	ByteLiteral
	FloatLiteral
)

// Literal holds an already decoded constant; only the field matching Kind is
// meaningful.
type Literal struct {
	Kind  LiteralKind
	Text  string
	Char  rune
	Int   int64
	Byte  byte
	Float float64
}

type IdentExpr struct {
	Name *symbol.Symbol
}

type LiteralExpr struct {
	Value Literal
}

// ProjectionExpr is `Base.Field`. A malformed field after the dot leaves
// Field as the empty symbol.
type ProjectionExpr struct {
	Base  SpannedExpr
	Field *symbol.Symbol
}

// TupleExpr only ever holds zero elements (unit); wider tuples are rejected
// by the parser and one element is represented as a BlockExpr.
type TupleExpr struct {
	Elems []SpannedExpr
}

type ArrayExpr struct {
	Elems []SpannedExpr
}

// ExprField is a value field of a record expression. A nil Value is the
// shorthand `{ x }` binding the field to the variable of the same name.
type ExprField struct {
	Name  SpannedIdent
	Value *SpannedExpr
}

// RecordExpr mirrors RecordPattern: exported type names and value fields are
// kept in separate lists, each in source order.
type RecordExpr struct {
	Types  []SpannedIdent
	Fields []ExprField
}

type AppExpr struct {
	Func SpannedExpr
	Args []SpannedExpr
}

// LambdaExpr carries an empty Name until a later naming pass assigns one.
type LambdaExpr struct {
	Name   *symbol.Symbol
	Params []SpannedIdent
	Body   SpannedExpr
}

// InfixExpr is one link of an operator chain exactly as written. Chains lean
// right and carry no precedence: `a + b * c` is Infix(a, +, Infix(b, *, c))
// whatever the operators' fixities. Resolving the chain is left to a later
// pass.
type InfixExpr struct {
	Left  SpannedExpr
	Op    SpannedIdent
	Right SpannedExpr
}

type IfElseExpr struct {
	Pred SpannedExpr
	Then SpannedExpr
	Else SpannedExpr
}

type MatchExpr struct {
	Scrutinee SpannedExpr
	Alts      []Alternative
}

// BlockExpr evaluates Exprs in order; its value is the last one.
type BlockExpr struct {
	Exprs []SpannedExpr
}

// LetBindingsExpr binds every name in Bindings simultaneously, so bindings
// joined with `and` may refer to each other.
type LetBindingsExpr struct {
	Bindings []*ValueBinding
	Body     SpannedExpr
}

type TypeBindingsExpr struct {
	Bindings []*TypeBinding
	Body     SpannedExpr
}

// ErrorExpr stands in for an expression that failed to parse. The matching
// error is in the parser's error sink.
type ErrorExpr struct{}
