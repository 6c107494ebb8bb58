package ast

// Visitor is called for every spanned node in pre-order. Returning false
// skips the node's children.
type Visitor func(span Span, node Node) bool

// Inspect walks an expression tree, descending into the patterns and types
// it contains.
func Inspect(root SpannedExpr, visit Visitor) {
	walker{visit: visit}.expr(root)
}

func InspectType(root SpannedType, visit Visitor) {
	walker{visit: visit}.typ(root)
}

func InspectPattern(root SpannedPattern, visit Visitor) {
	walker{visit: visit}.pattern(root)
}

// Walk is Inspect with a second callback, called once a visited node's
// children are done. Nodes whose visit returned false get no leave call.
func Walk(root SpannedExpr, visit Visitor, leave func()) {
	walker{visit: visit, leave: leave}.expr(root)
}

type walker struct {
	visit Visitor
	leave func()
}

func (w walker) exit() {
	if w.leave != nil {
		w.leave()
	}
}

func (w walker) pattern(p SpannedPattern) {
	if p.Value == nil || !w.visit(p.Span, p.Value) {
		return
	}
	w.exit()
}

func (w walker) expr(e SpannedExpr) {
	if e.Value == nil || !w.visit(e.Span, e.Value) {
		return
	}
	defer w.exit()

	switch n := e.Value.(type) {
	case *ProjectionExpr:
		w.expr(n.Base)
	case *TupleExpr:
		w.exprs(n.Elems)
	case *ArrayExpr:
		w.exprs(n.Elems)
	case *RecordExpr:
		for _, f := range n.Fields {
			if f.Value != nil {
				w.expr(*f.Value)
			}
		}
	case *AppExpr:
		w.expr(n.Func)
		w.exprs(n.Args)
	case *LambdaExpr:
		w.expr(n.Body)
	case *InfixExpr:
		w.expr(n.Left)
		w.expr(n.Right)
	case *IfElseExpr:
		w.expr(n.Pred)
		w.expr(n.Then)
		w.expr(n.Else)
	case *MatchExpr:
		w.expr(n.Scrutinee)
		for _, alt := range n.Alts {
			w.pattern(alt.Pattern)
			w.expr(alt.Expr)
		}
	case *BlockExpr:
		w.exprs(n.Exprs)
	case *LetBindingsExpr:
		for _, b := range n.Bindings {
			w.pattern(b.Name)
			w.typ(b.Type)
			w.expr(b.Body)
		}
		w.expr(n.Body)
	case *TypeBindingsExpr:
		for _, b := range n.Bindings {
			for _, p := range b.Params {
				if w.visit(p.Span, p.Value) {
					w.exit()
				}
			}
			w.typ(b.Alias)
		}
		w.expr(n.Body)
	}
}

func (w walker) exprs(exprs []SpannedExpr) {
	for _, e := range exprs {
		w.expr(e)
	}
}

func (w walker) typ(t SpannedType) {
	if t.Value == nil || !w.visit(t.Span, t.Value) {
		return
	}
	defer w.exit()

	switch n := t.Value.(type) {
	case *AppType:
		w.typ(n.Head)
		for _, arg := range n.Args {
			w.typ(arg)
		}
	case *FunctionType:
		for _, arg := range n.Args {
			w.typ(arg)
		}
		w.typ(n.Ret)
	case *RecordType:
		for _, f := range n.Fields {
			w.typ(f.Type)
		}
	case *VariantType:
		for _, f := range n.Fields {
			w.typ(f.Type)
		}
	}
}
