package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (*HoleKind) String() string { return HoleName }
func (*TypeKind) String() string { return "Type" }
func (*RowKind) String() string  { return "Row" }

func (fk *FunctionKind) String() string {
	if _, ok := fk.Arg.(*FunctionKind); ok {
		return fmt.Sprintf("(%s) -> %s", fk.Arg, fk.Ret)
	}
	return fmt.Sprintf("%s -> %s", fk.Arg, fk.Ret)
}

func (bt *BuiltinType) String() string {
	if bt.Builtin == BuiltinFunction {
		return "(->)"
	}
	return bt.Builtin.String()
}

func (it *IdentType) String() string { return it.Name.String() }

func (gt *GenericType) String() string { return gt.Name.String() }

func (at *AppType) String() string {
	var b strings.Builder
	b.WriteString(typeOperand(at.Head.Value))
	for _, arg := range at.Args {
		b.WriteString(" ")
		b.WriteString(typeOperand(arg.Value))
	}
	return b.String()
}

func (ft *FunctionType) String() string {
	var b strings.Builder
	for _, arg := range ft.Args {
		if _, ok := arg.Value.(*FunctionType); ok {
			b.WriteString("(" + arg.Value.String() + ")")
		} else {
			b.WriteString(arg.Value.String())
		}
		b.WriteString(" -> ")
	}
	b.WriteString(ft.Ret.Value.String())
	return b.String()
}

func (rt *RecordType) String() string {
	if len(rt.Fields) == 0 {
		return "()"
	}
	fields := make([]string, len(rt.Fields))
	for i, f := range rt.Fields {
		fields[i] = fmt.Sprintf("%s : %s", f.Name.Value, f.Type.Value)
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

func (vt *VariantType) String() string {
	var b strings.Builder
	for i, f := range vt.Fields {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("| ")
		b.WriteString(f.Name.Value.String())
		if fn, ok := f.Type.Value.(*FunctionType); ok {
			for _, arg := range fn.Args {
				b.WriteString(" ")
				b.WriteString(typeOperand(arg.Value))
			}
		}
	}
	return b.String()
}

func (*HoleType) String() string  { return HoleName }
func (*ErrorType) String() string { return "<error>" }

func typeOperand(t Type) string {
	switch t.(type) {
	case *AppType, *FunctionType, *VariantType:
		return "(" + t.String() + ")"
	}
	return t.String()
}

func (ip *IdentPattern) String() string { return ip.Name.String() }

func (cp *ConstructorPattern) String() string {
	parts := []string{cp.Name.Value.String()}
	for _, arg := range cp.Args {
		parts = append(parts, arg.Value.String())
	}
	return strings.Join(parts, " ")
}

func (pf PatternField) String() string {
	if pf.Value != nil {
		return fmt.Sprintf("%s = %s", pf.Name.Value, pf.Value.Value)
	}
	return pf.Name.Value.String()
}

func (rp *RecordPattern) String() string {
	var fields []string
	for _, f := range rp.Types {
		fields = append(fields, f.String())
	}
	for _, f := range rp.Fields {
		fields = append(fields, f.String())
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

func (*ErrorPattern) String() string { return "<error>" }

func (ie *IdentExpr) String() string { return ie.Name.String() }

func (le *LiteralExpr) String() string {
	v := le.Value
	switch v.Kind {
	case StringLiteral:
		return strconv.Quote(v.Text)
	case CharLiteral:
		return strconv.QuoteRune(v.Char)
	case IntLiteral:
		return strconv.FormatInt(v.Int, 10)
	case ByteLiteral:
		return strconv.Itoa(int(v.Byte)) + "b"
	case FloatLiteral:
		s := strconv.FormatFloat(v.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEn") {
			s += ".0"
		}
		return s
	}
	return "<literal>"
}

func (pe *ProjectionExpr) String() string {
	return exprOperand(pe.Base.Value) + "." + pe.Field.String()
}

func (te *TupleExpr) String() string {
	return "(" + joinExprs(te.Elems, ", ") + ")"
}

func (ae *ArrayExpr) String() string {
	return "[" + joinExprs(ae.Elems, ", ") + "]"
}

func (re *RecordExpr) String() string {
	var fields []string
	for _, t := range re.Types {
		fields = append(fields, t.Value.String())
	}
	for _, f := range re.Fields {
		if f.Value != nil {
			fields = append(fields, fmt.Sprintf("%s = %s", f.Name.Value, f.Value.Value))
		} else {
			fields = append(fields, f.Name.Value.String())
		}
	}
	if len(fields) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

func (ae *AppExpr) String() string {
	parts := []string{exprOperand(ae.Func.Value)}
	for _, arg := range ae.Args {
		parts = append(parts, exprOperand(arg.Value))
	}
	return strings.Join(parts, " ")
}

func (le *LambdaExpr) String() string {
	params := make([]string, len(le.Params))
	for i, p := range le.Params {
		params[i] = p.Value.String()
	}
	return fmt.Sprintf("\\%s -> %s", strings.Join(params, " "), le.Body.Value)
}

// String shows the chain fully parenthesized so its unresolved, right-leaning
// shape is visible.
func (ie *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", ie.Left.Value, ie.Op.Value, ie.Right.Value)
}

func (ie *IfElseExpr) String() string {
	return fmt.Sprintf("if %s then %s else %s", ie.Pred.Value, ie.Then.Value, ie.Else.Value)
}

func (me *MatchExpr) String() string {
	var b strings.Builder
	b.WriteString("match ")
	b.WriteString(me.Scrutinee.Value.String())
	b.WriteString(" with")
	for _, alt := range me.Alts {
		b.WriteString(" | ")
		b.WriteString(alt.Pattern.Value.String())
		b.WriteString(" -> ")
		b.WriteString(alt.Expr.Value.String())
	}
	return b.String()
}

func (be *BlockExpr) String() string {
	return "(" + joinExprs(be.Exprs, "; ") + ")"
}

func (c *Comment) String() string {
	var b strings.Builder
	for _, line := range strings.Split(c.Content, "\n") {
		b.WriteString("/// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (vb *ValueBinding) String() string {
	var b strings.Builder
	if vb.Comment != nil {
		b.WriteString(vb.Comment.String())
	}
	b.WriteString(vb.Name.Value.String())
	for _, arg := range vb.Args {
		b.WriteString(" ")
		b.WriteString(arg.Value.String())
	}
	if _, hole := vb.Type.Value.(*HoleType); !hole && vb.Type.Value != nil {
		b.WriteString(" : ")
		b.WriteString(vb.Type.Value.String())
	}
	b.WriteString(" = ")
	b.WriteString(vb.Body.Value.String())
	return b.String()
}

func (tb *TypeBinding) String() string {
	var b strings.Builder
	if tb.Comment != nil {
		b.WriteString(tb.Comment.String())
	}
	b.WriteString(tb.Name.Value.String())
	for _, p := range tb.Params {
		b.WriteString(" ")
		if _, hole := p.Value.Kind.(*HoleKind); hole || p.Value.Kind == nil {
			b.WriteString(p.Value.Name.String())
		} else {
			b.WriteString(fmt.Sprintf("(%s : %s)", p.Value.Name, p.Value.Kind))
		}
	}
	b.WriteString(" = ")
	b.WriteString(tb.Alias.Value.String())
	return b.String()
}

func (le *LetBindingsExpr) String() string {
	var b strings.Builder
	for i, binding := range le.Bindings {
		if i == 0 {
			b.WriteString("let ")
		} else {
			b.WriteString(" and ")
		}
		b.WriteString(binding.String())
	}
	b.WriteString(" in ")
	b.WriteString(le.Body.Value.String())
	return b.String()
}

func (te *TypeBindingsExpr) String() string {
	var b strings.Builder
	for i, binding := range te.Bindings {
		if i == 0 {
			b.WriteString("type ")
		} else {
			b.WriteString(" and ")
		}
		b.WriteString(binding.String())
	}
	b.WriteString(" in ")
	b.WriteString(te.Body.Value.String())
	return b.String()
}

func (*ErrorExpr) String() string { return "<error>" }

func exprOperand(e Expr) string {
	switch e.(type) {
	case *AppExpr, *LambdaExpr, *IfElseExpr, *MatchExpr, *LetBindingsExpr, *TypeBindingsExpr:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func joinExprs(exprs []SpannedExpr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.Value.String()
	}
	return strings.Join(parts, sep)
}
