package ast

import (
	"gopkg.in/yaml.v3"
)

// EncodeYAML renders an expression tree as an order-preserving YAML
// document for tooling. Spans are included when withSpans is set.
func EncodeYAML(root SpannedExpr, withSpans bool) *yaml.Node {
	enc := yamlEncoder{spans: withSpans}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{enc.expr(root)}}
}

type yamlEncoder struct {
	spans bool
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func sequence(items []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

func (enc yamlEncoder) mapping(node Node, span Span) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	put(m, "node", scalar(node.NodeType().String()))
	if enc.spans {
		put(m, "span", scalar(span.String()))
	}
	return m
}

func put(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

func (enc yamlEncoder) ident(id SpannedIdent) *yaml.Node {
	return scalar(id.Value.String())
}

func (enc yamlEncoder) idents(ids []SpannedIdent) *yaml.Node {
	items := make([]*yaml.Node, len(ids))
	for i, id := range ids {
		items[i] = enc.ident(id)
	}
	return sequence(items)
}

func (enc yamlEncoder) exprs(exprs []SpannedExpr) *yaml.Node {
	items := make([]*yaml.Node, len(exprs))
	for i, e := range exprs {
		items[i] = enc.expr(e)
	}
	return sequence(items)
}

func (enc yamlEncoder) expr(e SpannedExpr) *yaml.Node {
	m := enc.mapping(e.Value, e.Span)
	switch n := e.Value.(type) {
	case *IdentExpr:
		put(m, "name", scalar(n.Name.String()))
	case *LiteralExpr:
		put(m, "value", scalar(n.String()))
	case *ProjectionExpr:
		put(m, "base", enc.expr(n.Base))
		put(m, "field", scalar(n.Field.String()))
	case *TupleExpr:
		put(m, "elems", enc.exprs(n.Elems))
	case *ArrayExpr:
		put(m, "elems", enc.exprs(n.Elems))
	case *RecordExpr:
		put(m, "types", enc.idents(n.Types))
		fields := make([]*yaml.Node, len(n.Fields))
		for i, f := range n.Fields {
			fm := &yaml.Node{Kind: yaml.MappingNode}
			put(fm, "name", enc.ident(f.Name))
			if f.Value != nil {
				put(fm, "value", enc.expr(*f.Value))
			}
			fields[i] = fm
		}
		put(m, "fields", sequence(fields))
	case *AppExpr:
		put(m, "func", enc.expr(n.Func))
		put(m, "args", enc.exprs(n.Args))
	case *LambdaExpr:
		put(m, "params", enc.idents(n.Params))
		put(m, "body", enc.expr(n.Body))
	case *InfixExpr:
		put(m, "left", enc.expr(n.Left))
		put(m, "op", enc.ident(n.Op))
		put(m, "right", enc.expr(n.Right))
	case *IfElseExpr:
		put(m, "pred", enc.expr(n.Pred))
		put(m, "then", enc.expr(n.Then))
		put(m, "else", enc.expr(n.Else))
	case *MatchExpr:
		put(m, "scrutinee", enc.expr(n.Scrutinee))
		alts := make([]*yaml.Node, len(n.Alts))
		for i, alt := range n.Alts {
			am := &yaml.Node{Kind: yaml.MappingNode}
			put(am, "pattern", enc.pattern(alt.Pattern))
			put(am, "expr", enc.expr(alt.Expr))
			alts[i] = am
		}
		put(m, "alts", sequence(alts))
	case *BlockExpr:
		put(m, "exprs", enc.exprs(n.Exprs))
	case *LetBindingsExpr:
		bindings := make([]*yaml.Node, len(n.Bindings))
		for i, b := range n.Bindings {
			bm := &yaml.Node{Kind: yaml.MappingNode}
			if b.Comment != nil {
				put(bm, "comment", scalar(b.Comment.Content))
			}
			put(bm, "name", enc.pattern(b.Name))
			put(bm, "args", enc.idents(b.Args))
			put(bm, "type", enc.typ(b.Type))
			put(bm, "body", enc.expr(b.Body))
			bindings[i] = bm
		}
		put(m, "bindings", sequence(bindings))
		put(m, "body", enc.expr(n.Body))
	case *TypeBindingsExpr:
		bindings := make([]*yaml.Node, len(n.Bindings))
		for i, b := range n.Bindings {
			bm := &yaml.Node{Kind: yaml.MappingNode}
			if b.Comment != nil {
				put(bm, "comment", scalar(b.Comment.Content))
			}
			put(bm, "name", enc.ident(b.Name))
			params := make([]*yaml.Node, len(b.Params))
			for j, p := range b.Params {
				params[j] = enc.typ(Spanning[Type](p.Span, p.Value))
			}
			put(bm, "params", sequence(params))
			put(bm, "alias", enc.typ(b.Alias))
			bindings[i] = bm
		}
		put(m, "bindings", sequence(bindings))
		put(m, "body", enc.expr(n.Body))
	}
	return m
}

func (enc yamlEncoder) pattern(p SpannedPattern) *yaml.Node {
	m := enc.mapping(p.Value, p.Span)
	switch n := p.Value.(type) {
	case *IdentPattern:
		put(m, "name", scalar(n.Name.String()))
	case *ConstructorPattern:
		put(m, "name", enc.ident(n.Name))
		put(m, "args", enc.idents(n.Args))
	case *RecordPattern:
		put(m, "types", enc.patternFields(n.Types))
		put(m, "fields", enc.patternFields(n.Fields))
	}
	return m
}

func (enc yamlEncoder) patternFields(fields []PatternField) *yaml.Node {
	items := make([]*yaml.Node, len(fields))
	for i, f := range fields {
		items[i] = scalar(f.String())
	}
	return sequence(items)
}

func (enc yamlEncoder) typ(t SpannedType) *yaml.Node {
	m := enc.mapping(t.Value, t.Span)
	switch n := t.Value.(type) {
	case *BuiltinType:
		put(m, "name", scalar(n.String()))
	case *IdentType:
		put(m, "name", scalar(n.Name.String()))
	case *GenericType:
		put(m, "name", scalar(n.Name.String()))
		if n.Kind != nil {
			put(m, "kind", scalar(n.Kind.String()))
		}
	case *AppType:
		put(m, "head", enc.typ(n.Head))
		put(m, "args", enc.types(n.Args))
	case *FunctionType:
		put(m, "args", enc.types(n.Args))
		put(m, "ret", enc.typ(n.Ret))
	case *RecordType:
		put(m, "fields", enc.fields(n.Fields))
	case *VariantType:
		put(m, "fields", enc.fields(n.Fields))
	}
	return m
}

func (enc yamlEncoder) types(types []SpannedType) *yaml.Node {
	items := make([]*yaml.Node, len(types))
	for i, t := range types {
		items[i] = enc.typ(t)
	}
	return sequence(items)
}

func (enc yamlEncoder) fields(fields []Field) *yaml.Node {
	items := make([]*yaml.Node, len(fields))
	for i, f := range fields {
		fm := &yaml.Node{Kind: yaml.MappingNode}
		put(fm, "name", enc.ident(f.Name))
		put(fm, "type", enc.typ(f.Type))
		items[i] = fm
	}
	return sequence(items)
}
