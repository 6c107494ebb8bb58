package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	ERROR_EXPR
	ERROR_TYPE
	ERROR_PATTERN

	// Kinds
	HOLE_KIND
	TYPE_KIND
	ROW_KIND
	FUNCTION_KIND

	// Types
	BUILTIN_TYPE
	IDENT_TYPE
	GENERIC_TYPE
	APP_TYPE
	FUNCTION_TYPE
	RECORD_TYPE
	VARIANT_TYPE
	HOLE_TYPE

	// Patterns
	IDENT_PATTERN
	CONSTRUCTOR_PATTERN
	RECORD_PATTERN

	// Expressions
	IDENT_EXPR
	LITERAL_EXPR
	PROJECTION_EXPR
	TUPLE_EXPR
	ARRAY_EXPR
	RECORD_EXPR
	APP_EXPR
	LAMBDA_EXPR
	INFIX_EXPR
	IF_ELSE_EXPR
	MATCH_EXPR
	BLOCK_EXPR
	LET_BINDINGS_EXPR
	TYPE_BINDINGS_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:             "Illegal",
	ERROR_EXPR:          "Error",
	ERROR_TYPE:          "ErrorType",
	ERROR_PATTERN:       "ErrorPattern",
	HOLE_KIND:           "HoleKind",
	TYPE_KIND:           "TypeKind",
	ROW_KIND:            "RowKind",
	FUNCTION_KIND:       "FunctionKind",
	BUILTIN_TYPE:        "Builtin",
	IDENT_TYPE:          "Ident",
	GENERIC_TYPE:        "Generic",
	APP_TYPE:            "App",
	FUNCTION_TYPE:       "Function",
	RECORD_TYPE:         "Record",
	VARIANT_TYPE:        "Variant",
	HOLE_TYPE:           "Hole",
	IDENT_PATTERN:       "Ident",
	CONSTRUCTOR_PATTERN: "Constructor",
	RECORD_PATTERN:      "Record",
	IDENT_EXPR:          "Ident",
	LITERAL_EXPR:        "Literal",
	PROJECTION_EXPR:     "Projection",
	TUPLE_EXPR:          "Tuple",
	ARRAY_EXPR:          "Array",
	RECORD_EXPR:         "Record",
	APP_EXPR:            "App",
	LAMBDA_EXPR:         "Lambda",
	INFIX_EXPR:          "Infix",
	IF_ELSE_EXPR:        "IfElse",
	MATCH_EXPR:          "Match",
	BLOCK_EXPR:          "Block",
	LET_BINDINGS_EXPR:   "LetBindings",
	TYPE_BINDINGS_EXPR:  "TypeBindings",
}

func (t NodeType) String() string {
	if int(t) >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "Illegal"
}
