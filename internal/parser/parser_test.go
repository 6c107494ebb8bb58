package parser

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiri/internal/ast"
	"kiri/internal/lexer"
	"kiri/internal/symbol"
)

type fixture struct {
	env  *symbol.Table
	errs *Errors
	expr ast.SpannedExpr
}

func parse(t *testing.T, source string) fixture {
	t.Helper()
	f := fixture{env: symbol.NewTable(), errs: &Errors{}}
	f.expr = ParseSource("test.kiri", source, f.env, f.errs)
	return f
}

func parseValid(t *testing.T, source string) fixture {
	t.Helper()
	f := parse(t, source)
	require.NoError(t, f.errs.Err(), "source: %s", source)
	return f
}

func (f fixture) sym(name string) *symbol.Symbol {
	return f.env.Intern(name)
}

func (f fixture) ident(name string) ast.SpannedIdent {
	return ast.SpannedIdent{Value: f.sym(name)}
}

func (f fixture) generic(name string) ast.SpannedType {
	return ast.SpannedType{Value: &ast.GenericType{Name: f.sym(name), Kind: &ast.HoleKind{}}}
}

var treeOptions = cmp.Options{
	cmpopts.IgnoreTypes(ast.Span{}),
	cmp.Comparer(func(a, b *symbol.Symbol) bool { return a.String() == b.String() }),
}

func assertTree(t *testing.T, expected, actual ast.Node) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, treeOptions); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func errorNodes(root ast.SpannedExpr) []ast.Node {
	var found []ast.Node
	ast.Inspect(root, func(_ ast.Span, node ast.Node) bool {
		switch node.(type) {
		case *ast.ErrorExpr, *ast.ErrorType, *ast.ErrorPattern:
			found = append(found, node)
		}
		return true
	})
	return found
}

var validSources = []string{
	`1`,
	`"text"`,
	`'c'`,
	`1.5`,
	`3b`,
	`f a b c`,
	`a + b * c`,
	`\x y -> x`,
	`foo.bar.baz`,
	`()`,
	`(a)`,
	`[1, 2, 3]`,
	`[]`,
	`{ x = 1, y }`,
	`{ Int, x = 1, }`,
	`if a then b else c`,
	`match x with | None -> 0 | Some y -> y`,
	`let f x = x in f`,
	`let f x = x and g y = y in f`,
	`let x : Int = 1 in x`,
	`let f : (->) Int Int = g in f`,
	`let { x, Y } = r in x`,
	`let Some x = o in x`,
	`type Pair a b = { first : a, second : b } in Pair`,
	`type Option a = | None | Some a in None`,
	`type Unit = () in Unit`,
	"let x = 1\nlet y = 2\nx + y",
	"type List a =\n    | Nil\n    | Cons a (List a)\nNil",
	"type Fix (f : Type -> Type) = f (Fix f)\nFix",
	"/// Doubles.\nlet double x = x + x\ndouble 2",
	"let main =\n    print 1\n    print 2\nmain",
	"match x with\n| A ->\n    a\n    b\n| B -> c",
	"f <| \\x ->\n    x",
}

func TestValidExpressionsHaveNoErrors(t *testing.T) {
	for _, source := range validSources {
		t.Run(source, func(t *testing.T) {
			f := parse(t, source)
			assert.Zero(t, f.errs.Len(), "errors: %v", f.errs.Err())
			assert.Empty(t, errorNodes(f.expr))
		})
	}
}

func TestSpansStayInsideSource(t *testing.T) {
	sources := append([]string{
		"foo.",
		"(1, 2)",
		"let x = 1",
		"if a b else c",
		"let f x = x = y in f",
		"a )",
		"(1 +",
		"",
		"   \n  ",
	}, validSources...)

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			f := parse(t, source)
			ast.Inspect(f.expr, func(span ast.Span, node ast.Node) bool {
				assert.True(t, span.Within(len(source)), "%s at %s", node.NodeType(), span)
				return true
			})
			for _, err := range f.errs.List() {
				assert.True(t, err.Span.Within(len(source)), "%v at %s", err, err.Span)
			}
		})
	}
}

func TestChildSpansAreEnclosed(t *testing.T) {
	sources := append([]string{"f (a + b) [c, d] { x = e.g }"}, validSources...)

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			f := parseValid(t, source)

			var parents []ast.Span
			ast.Walk(f.expr, func(span ast.Span, node ast.Node) bool {
				if len(parents) > 0 {
					parent := parents[len(parents)-1]
					assert.True(t, parent.Contains(span), "%s at %s outside %s", node.NodeType(), span, parent)
				}
				parents = append(parents, span)
				return true
			}, func() {
				parents = parents[:len(parents)-1]
			})
		})
	}

	f := parseValid(t, "f (a + b) [c, d] { x = e.g }")
	assert.Equal(t, ast.Span{Start: 0, End: 28}, f.expr.Span)
}

func TestVariantSelfTypeSpans(t *testing.T) {
	f := parseValid(t, "type Option a = | None | Some a in None")

	variant := f.expr.Value.(*ast.TypeBindingsExpr).Bindings[0].Alias.Value.(*ast.VariantType)
	require.Len(t, variant.Fields, 2)
	assert.Equal(t, ast.Span{Start: 18, End: 22}, variant.Fields[0].Type.Span)
	assert.Equal(t, "Option a", variant.Fields[0].Type.Value.String())

	some := variant.Fields[1].Type
	assert.Equal(t, ast.Span{Start: 25, End: 31}, some.Span)
	assert.Equal(t, "a -> Option a", some.Value.String())
}

func TestInfixChainLeansRight(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "(a * (b + c))"},
		{"a - b - c - d", "(a - (b - (c - d)))"},
		{"f x <| g y", "((f x) <| (g y))"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			f := parseValid(t, tt.source)
			assert.Equal(t, tt.expected, f.expr.Value.String())
		})
	}

	f := parseValid(t, "a + b * c")
	outer := f.expr.Value.(*ast.InfixExpr)
	assert.Equal(t, "+", outer.Op.Value.String())
	assert.IsType(t, &ast.IdentExpr{}, outer.Left.Value)
	inner := outer.Right.Value.(*ast.InfixExpr)
	assert.Equal(t, "*", inner.Op.Value.String())
}

func TestParenthesizedExpressionIsBlock(t *testing.T) {
	f := parseValid(t, "(a + b)")
	block, ok := f.expr.Value.(*ast.BlockExpr)
	require.True(t, ok, "got %T", f.expr.Value)
	require.Len(t, block.Exprs, 1)
	assert.IsType(t, &ast.InfixExpr{}, block.Exprs[0].Value)
	assert.Equal(t, ast.Span{Start: 0, End: 7}, f.expr.Span)

	f = parseValid(t, "f (x)")
	app := f.expr.Value.(*ast.AppExpr)
	assert.IsType(t, &ast.BlockExpr{}, app.Args[0].Value)
}

func TestApplicationIsFlat(t *testing.T) {
	f := parseValid(t, "f a b c")
	app, ok := f.expr.Value.(*ast.AppExpr)
	require.True(t, ok)
	assert.Equal(t, "f", app.Func.Value.String())
	assert.Len(t, app.Args, 3)
}

func TestRecordFieldOrder(t *testing.T) {
	f := parseValid(t, "{ A, x = 1, B, y }")
	record := f.expr.Value.(*ast.RecordExpr)
	require.Len(t, record.Types, 2)
	assert.Equal(t, "A", record.Types[0].Value.String())
	assert.Equal(t, "B", record.Types[1].Value.String())
	require.Len(t, record.Fields, 2)
	assert.Equal(t, "x", record.Fields[0].Name.Value.String())
	assert.NotNil(t, record.Fields[0].Value)
	assert.Equal(t, "y", record.Fields[1].Name.Value.String())
	assert.Nil(t, record.Fields[1].Value)

	f = parseValid(t, "let { A, x, B = b, y } = r in x")
	pattern := f.expr.Value.(*ast.LetBindingsExpr).Bindings[0].Name.Value.(*ast.RecordPattern)
	require.Len(t, pattern.Types, 1)
	assert.Equal(t, "A", pattern.Types[0].String())
	require.Len(t, pattern.Fields, 3)
	assert.Equal(t, "x", pattern.Fields[0].String())
	assert.Equal(t, "B = b", pattern.Fields[1].String())
	assert.Equal(t, "y", pattern.Fields[2].String())

	f = parseValid(t, "type R = { b : Int, a : Float } in R")
	alias := f.expr.Value.(*ast.TypeBindingsExpr).Bindings[0].Alias.Value
	assert.Equal(t, "{ b : Int, a : Float }", alias.String())
}

func TestTypeBindingScenarios(t *testing.T) {
	t.Run("record alias", func(t *testing.T) {
		f := parseValid(t, "type Pair a b = { first : a, second : b } in Pair")
		expected := &ast.TypeBindingsExpr{
			Bindings: []*ast.TypeBinding{{
				Name: f.ident("Pair"),
				Params: []ast.Spanned[*ast.GenericType]{
					{Value: &ast.GenericType{Name: f.sym("a"), Kind: &ast.HoleKind{}}},
					{Value: &ast.GenericType{Name: f.sym("b"), Kind: &ast.HoleKind{}}},
				},
				Alias: ast.SpannedType{Value: &ast.RecordType{Fields: []ast.Field{
					{Name: f.ident("first"), Type: f.generic("a")},
					{Name: f.ident("second"), Type: f.generic("b")},
				}}},
			}},
			Body: ast.SpannedExpr{Value: &ast.IdentExpr{Name: f.sym("Pair")}},
		}
		assertTree(t, expected, f.expr.Value)
	})

	t.Run("variant desugaring", func(t *testing.T) {
		f := parseValid(t, "type Option a = | None | Some a in None")
		self := func() ast.SpannedType {
			return ast.SpannedType{Value: &ast.AppType{
				Head: ast.SpannedType{Value: &ast.IdentType{Name: f.sym("Option")}},
				Args: []ast.SpannedType{f.generic("a")},
			}}
		}
		expected := &ast.TypeBindingsExpr{
			Bindings: []*ast.TypeBinding{{
				Name: f.ident("Option"),
				Params: []ast.Spanned[*ast.GenericType]{
					{Value: &ast.GenericType{Name: f.sym("a"), Kind: &ast.HoleKind{}}},
				},
				Alias: ast.SpannedType{Value: &ast.VariantType{Fields: []ast.Field{
					{Name: f.ident("None"), Type: self()},
					{Name: f.ident("Some"), Type: ast.SpannedType{Value: &ast.FunctionType{
						Args: []ast.SpannedType{f.generic("a")},
						Ret:  self(),
					}}},
				}}},
			}},
			Body: ast.SpannedExpr{Value: &ast.IdentExpr{Name: f.sym("None")}},
		}
		assertTree(t, expected, f.expr.Value)
	})

	t.Run("variant on indented lines", func(t *testing.T) {
		f := parseValid(t, "type List a =\n    | Nil\n    | Cons a (List a)\nNil")
		assert.Equal(t, "type List a = | Nil | Cons a (List a) in Nil", f.expr.Value.String())

		variant := f.expr.Value.(*ast.TypeBindingsExpr).Bindings[0].Alias.Value.(*ast.VariantType)
		cons := variant.Fields[1].Type.Value.(*ast.FunctionType)
		assert.Equal(t, "a -> List a -> List a", cons.String())
	})

	t.Run("kinded parameter", func(t *testing.T) {
		f := parseValid(t, "type Fix (f : Type -> Type) = f (Fix f)\nFix")
		binding := f.expr.Value.(*ast.TypeBindingsExpr).Bindings[0]
		require.Len(t, binding.Params, 1)
		assert.Equal(t, "Type -> Type", binding.Params[0].Value.Kind.String())
		assert.Equal(t, "f (Fix f)", binding.Alias.Value.String())
	})

	t.Run("nullary declaration without parameters", func(t *testing.T) {
		f := parseValid(t, "type Bool = | True | False in True")
		variant := f.expr.Value.(*ast.TypeBindingsExpr).Bindings[0].Alias.Value.(*ast.VariantType)
		require.Len(t, variant.Fields, 2)
		assert.Equal(t, &ast.IdentType{Name: f.sym("Bool")}, variant.Fields[0].Type.Value)
	})
}

func TestLetBindingScenarios(t *testing.T) {
	f := parseValid(t, "let f x = x in f")
	expected := &ast.LetBindingsExpr{
		Bindings: []*ast.ValueBinding{{
			Name: ast.SpannedPattern{Value: &ast.IdentPattern{Name: f.sym("f")}},
			Args: []ast.SpannedIdent{f.ident("x")},
			Type: ast.SpannedType{Value: &ast.HoleType{}},
			Body: ast.SpannedExpr{Value: &ast.IdentExpr{Name: f.sym("x")}},
		}},
		Body: ast.SpannedExpr{Value: &ast.IdentExpr{Name: f.sym("f")}},
	}
	assertTree(t, expected, f.expr.Value)

	f = parseValid(t, "let f x = x and g y = y in f")
	let := f.expr.Value.(*ast.LetBindingsExpr)
	require.Len(t, let.Bindings, 2)
	assert.Equal(t, "f", let.Bindings[0].Name.Value.String())
	assert.Equal(t, "g", let.Bindings[1].Name.Value.String())
	assert.Equal(t, "let f x = x and g y = y in f", let.String())

	f = parseValid(t, "let x : Int -> Int = f in x")
	binding := f.expr.Value.(*ast.LetBindingsExpr).Bindings[0]
	assert.False(t, binding.IsFunction())
	assert.Equal(t, "Int -> Int", binding.Type.Value.String())

	f = parseValid(t, "let Some x = o in x")
	binding = f.expr.Value.(*ast.LetBindingsExpr).Bindings[0]
	assert.Empty(t, binding.Args)
	assert.Equal(t, "Some x", binding.Name.Value.String())
	assert.IsType(t, &ast.ConstructorPattern{}, binding.Name.Value)
}

func TestLayoutDeclarations(t *testing.T) {
	f := parseValid(t, "let x = 1\nlet y = 2\nx + y")
	assert.Equal(t, "let x = 1 in let y = 2 in (x + y)", f.expr.Value.String())

	f = parseValid(t, "let main =\n    print 1\n    print 2\nmain")
	body := f.expr.Value.(*ast.LetBindingsExpr).Bindings[0].Body
	block, ok := body.Value.(*ast.BlockExpr)
	require.True(t, ok, "got %T", body.Value)
	assert.Len(t, block.Exprs, 2)

	f = parseValid(t, "a\nb\n\n")
	assert.Equal(t, ast.Span{Start: 0, End: 3}, f.expr.Span)
}

func TestMatchAlternativeSpanIsShrunk(t *testing.T) {
	source := "match x with\n| A ->\n    a\n    b\n| B -> c"
	f := parseValid(t, source)

	match := f.expr.Value.(*ast.MatchExpr)
	require.Len(t, match.Alts, 2)
	assert.IsType(t, &ast.BlockExpr{}, match.Alts[0].Expr.Value)
	assert.Equal(t, ast.Span{Start: 24, End: 31}, match.Alts[0].Expr.Span)
	assert.Equal(t, "B", match.Alts[1].Pattern.Value.String())
}

func TestDocComments(t *testing.T) {
	f := parseValid(t, "/// Adds.\n/// Twice.\nlet f x = x\nf")
	let := f.expr.Value.(*ast.LetBindingsExpr)
	require.NotNil(t, let.Bindings[0].Comment)
	assert.Equal(t, "Adds.\nTwice.", let.Bindings[0].Comment.Content)

	f = parseValid(t, "let f x = x\n/// Second.\nand g y = y\nf")
	let = f.expr.Value.(*ast.LetBindingsExpr)
	require.Len(t, let.Bindings, 2)
	assert.Nil(t, let.Bindings[0].Comment)
	require.NotNil(t, let.Bindings[1].Comment)
	assert.Equal(t, "Second.", let.Bindings[1].Comment.Content)

	f = parseValid(t, "/// Stray.\nx")
	assert.IsType(t, &ast.IdentExpr{}, f.expr.Value)
}

func TestLambdaHasEmptyName(t *testing.T) {
	f := parseValid(t, `\x y -> x`)
	lambda := f.expr.Value.(*ast.LambdaExpr)
	assert.Equal(t, "", lambda.Name.String())
	assert.Len(t, lambda.Params, 2)
}

func TestLiterals(t *testing.T) {
	f := parseValid(t, `f "s" 'c' 1 2b 1.5`)
	app := f.expr.Value.(*ast.AppExpr)
	require.Len(t, app.Args, 5)

	lit := func(i int) ast.Literal { return app.Args[i].Value.(*ast.LiteralExpr).Value }
	assert.Equal(t, ast.Literal{Kind: ast.StringLiteral, Text: "s"}, lit(0))
	assert.Equal(t, ast.Literal{Kind: ast.CharLiteral, Char: 'c'}, lit(1))
	assert.Equal(t, ast.Literal{Kind: ast.IntLiteral, Int: 1}, lit(2))
	assert.Equal(t, ast.Literal{Kind: ast.ByteLiteral, Byte: 2}, lit(3))
	assert.Equal(t, ast.Literal{Kind: ast.FloatLiteral, Float: 1.5}, lit(4))
}

func TestParseUnwrappedTokens(t *testing.T) {
	tokens, lexErrs := lexer.Scan("test.kiri", "let x = 1 in x")
	require.Empty(t, lexErrs)

	errs := &Errors{}
	expr := Parse(tokens, symbol.NewTable(), errs)
	assert.Zero(t, errs.Len())
	assert.Equal(t, "let x = 1 in x", expr.Value.String())
}

func TestParseIsReentrant(t *testing.T) {
	source := "type Option a = | None | Some a\nlet f x = match x with | Some y -> y | None -> 0\nf (Some 1)"
	expected := parseValid(t, source).expr.Value.String()

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs := &Errors{}
			results[i] = ParseSource("test.kiri", source, symbol.NewTable(), errs).Value.String()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, expected, got)
	}
}
