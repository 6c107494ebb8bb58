package ast

type Node interface {
	NodeType() NodeType
	String() string
}

type Kind interface {
	Node
	isKind()
}

type Type interface {
	Node
	isType()
}

type Pattern interface {
	Node
	isPattern()
}

type Expr interface {
	Node
	isExpr()
}

func (*HoleKind) NodeType() NodeType     { return HOLE_KIND }
func (*TypeKind) NodeType() NodeType     { return TYPE_KIND }
func (*RowKind) NodeType() NodeType      { return ROW_KIND }
func (*FunctionKind) NodeType() NodeType { return FUNCTION_KIND }

func (*HoleKind) isKind()     {}
func (*TypeKind) isKind()     {}
func (*RowKind) isKind()      {}
func (*FunctionKind) isKind() {}

func (*BuiltinType) NodeType() NodeType  { return BUILTIN_TYPE }
func (*IdentType) NodeType() NodeType    { return IDENT_TYPE }
func (*GenericType) NodeType() NodeType  { return GENERIC_TYPE }
func (*AppType) NodeType() NodeType      { return APP_TYPE }
func (*FunctionType) NodeType() NodeType { return FUNCTION_TYPE }
func (*RecordType) NodeType() NodeType   { return RECORD_TYPE }
func (*VariantType) NodeType() NodeType  { return VARIANT_TYPE }
func (*HoleType) NodeType() NodeType     { return HOLE_TYPE }
func (*ErrorType) NodeType() NodeType    { return ERROR_TYPE }

func (*BuiltinType) isType()  {}
func (*IdentType) isType()    {}
func (*GenericType) isType()  {}
func (*AppType) isType()      {}
func (*FunctionType) isType() {}
func (*RecordType) isType()   {}
func (*VariantType) isType()  {}
func (*HoleType) isType()     {}
func (*ErrorType) isType()    {}

func (*IdentPattern) NodeType() NodeType       { return IDENT_PATTERN }
func (*ConstructorPattern) NodeType() NodeType { return CONSTRUCTOR_PATTERN }
func (*RecordPattern) NodeType() NodeType      { return RECORD_PATTERN }
func (*ErrorPattern) NodeType() NodeType       { return ERROR_PATTERN }

func (*IdentPattern) isPattern()       {}
func (*ConstructorPattern) isPattern() {}
func (*RecordPattern) isPattern()      {}
func (*ErrorPattern) isPattern()       {}

func (*IdentExpr) NodeType() NodeType        { return IDENT_EXPR }
func (*LiteralExpr) NodeType() NodeType      { return LITERAL_EXPR }
func (*ProjectionExpr) NodeType() NodeType   { return PROJECTION_EXPR }
func (*TupleExpr) NodeType() NodeType        { return TUPLE_EXPR }
func (*ArrayExpr) NodeType() NodeType        { return ARRAY_EXPR }
func (*RecordExpr) NodeType() NodeType       { return RECORD_EXPR }
func (*AppExpr) NodeType() NodeType          { return APP_EXPR }
func (*LambdaExpr) NodeType() NodeType       { return LAMBDA_EXPR }
func (*InfixExpr) NodeType() NodeType        { return INFIX_EXPR }
func (*IfElseExpr) NodeType() NodeType       { return IF_ELSE_EXPR }
func (*MatchExpr) NodeType() NodeType        { return MATCH_EXPR }
func (*BlockExpr) NodeType() NodeType        { return BLOCK_EXPR }
func (*LetBindingsExpr) NodeType() NodeType  { return LET_BINDINGS_EXPR }
func (*TypeBindingsExpr) NodeType() NodeType { return TYPE_BINDINGS_EXPR }
func (*ErrorExpr) NodeType() NodeType        { return ERROR_EXPR }

func (*IdentExpr) isExpr()        {}
func (*LiteralExpr) isExpr()      {}
func (*ProjectionExpr) isExpr()   {}
func (*TupleExpr) isExpr()        {}
func (*ArrayExpr) isExpr()        {}
func (*RecordExpr) isExpr()       {}
func (*AppExpr) isExpr()          {}
func (*LambdaExpr) isExpr()       {}
func (*InfixExpr) isExpr()        {}
func (*IfElseExpr) isExpr()       {}
func (*MatchExpr) isExpr()        {}
func (*BlockExpr) isExpr()        {}
func (*LetBindingsExpr) isExpr()  {}
func (*TypeBindingsExpr) isExpr() {}
func (*ErrorExpr) isExpr()        {}
