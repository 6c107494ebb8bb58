package ast

// HoleKind is an unconstrained kind left for inference.
type HoleKind struct{}

// TypeKind is the kind of value types.
type TypeKind struct{}

// RowKind is the kind of record rows.
type RowKind struct{}

// FunctionKind is `Arg -> Ret`.
type FunctionKind struct {
	Arg Kind
	Ret Kind
}

// NewFunctionKind folds args into a right-associative arrow ending in ret.
func NewFunctionKind(args []Kind, ret Kind) Kind {
	for i := len(args) - 1; i >= 0; i-- {
		ret = &FunctionKind{Arg: args[i], Ret: ret}
	}
	return ret
}
