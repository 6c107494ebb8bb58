package ast

type CommentType int

const (
	LineComment CommentType = iota
	BlockComment
)

// Comment is a doc comment attached to a declaration. Consecutive doc lines
// are joined with newlines.
type Comment struct {
	Type    CommentType
	Content string
	Span    Span
}

type ValueBinding struct {
	Comment *Comment
	Name    SpannedPattern
	Args    []SpannedIdent
	Type    SpannedType // HoleType when no annotation was written
	Body    SpannedExpr
}

// IsFunction reports whether the binding uses curried function sugar.
func (b *ValueBinding) IsFunction() bool {
	return len(b.Args) > 0
}

type TypeBinding struct {
	Comment *Comment
	Name    SpannedIdent
	Params  []Spanned[*GenericType]
	Alias   SpannedType
}

type Alternative struct {
	Pattern SpannedPattern
	Expr    SpannedExpr
}
