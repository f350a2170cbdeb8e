package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jward/jsxrewrite/internal/estree"
)

func TestPrint_MissingComponentHelper(t *testing.T) {
	t.Parallel()
	fn := &estree.FunctionDeclaration{
		ID:     estree.Ident("_missingComponent"),
		Params: []estree.Pattern{estree.Ident("name")},
		Body: estree.Block(estree.Return(&estree.FunctionExpression{
			Body: estree.Block(estree.Throw(estree.New(estree.Ident("Error"),
				estree.Concat(estree.Str("Component `"), estree.Ident("name"), estree.Str("` was not imported, exported, or given"))))),
		})),
	}
	want := "function _missingComponent(name) {\n" +
		"  return function () {\n" +
		"    throw new Error(\"Component `\" + name + \"` was not imported, exported, or given\");\n" +
		"  };\n" +
		"}"
	assert.Equal(t, want, Print(fn))
}

func TestPrint_ComponentsPrologue(t *testing.T) {
	t.Parallel()
	initializer := estree.Object(
		estree.Prop("h1", estree.Str("h1")),
		estree.Prop("Foo", estree.Call(estree.Ident("_missingComponent"), estree.Str("Foo"))),
		estree.Spread(estree.Member("props", "components")),
	)
	decl := estree.Const(estree.Ident("_components"), initializer)
	assert.Equal(t,
		`const _components = {h1: "h1", Foo: _missingComponent("Foo"), ...props.components};`,
		Print(decl))

	destructure := estree.Const(estree.ObjectPatternOf(
		estree.Prop("wrapper", estree.Ident("MDXLayout")),
		estree.ShorthandProp("Foo"),
		estree.Prop("my-element", estree.Ident("_component0")),
	), estree.Ident("_components"))
	assert.Equal(t,
		`const {wrapper: MDXLayout, Foo, "my-element": _component0} = _components;`,
		Print(destructure))
}

func TestPrint_Precedence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		expr estree.Expression
		want string
	}{
		{
			name: "lower binds looser on the right",
			expr: &estree.BinaryExpression{Operator: "*", Left: estree.Ident("a"),
				Right: &estree.BinaryExpression{Operator: "+", Left: estree.Ident("b"), Right: estree.Ident("c")}},
			want: "a * (b + c)",
		},
		{
			name: "left associativity",
			expr: &estree.BinaryExpression{Operator: "-", Left: estree.Ident("a"),
				Right: &estree.BinaryExpression{Operator: "-", Left: estree.Ident("b"), Right: estree.Ident("c")}},
			want: "a - (b - c)",
		},
		{
			name: "no parens needed",
			expr: &estree.BinaryExpression{Operator: "+", Left: estree.Ident("a"),
				Right: &estree.BinaryExpression{Operator: "*", Left: estree.Ident("b"), Right: estree.Ident("c")}},
			want: "a + b * c",
		},
		{
			name: "nullish mixed with or",
			expr: &estree.LogicalExpression{Operator: "??",
				Left:  &estree.LogicalExpression{Operator: "||", Left: estree.Ident("a"), Right: estree.Ident("b")},
				Right: estree.Ident("c")},
			want: "(a || b) ?? c",
		},
		{
			name: "arrow as callee",
			expr: estree.Call(&estree.ArrowFunctionExpression{ExprBody: estree.Num(1)}),
			want: "(() => 1)()",
		},
		{
			name: "conditional in member",
			expr: &estree.MemberExpression{
				Object:   &estree.ConditionalExpression{Test: estree.Ident("a"), Consequent: estree.Ident("b"), Alternate: estree.Ident("c")},
				Property: estree.Ident("d")},
			want: "(a ? b : c).d",
		},
		{
			name: "double negation",
			expr: &estree.UnaryExpression{Operator: "-", Argument: &estree.UnaryExpression{Operator: "-", Argument: estree.Ident("x")}},
			want: "- -x",
		},
		{
			name: "typeof",
			expr: &estree.UnaryExpression{Operator: "typeof", Argument: estree.Ident("x")},
			want: "typeof x",
		},
		{
			name: "new with call callee",
			expr: estree.New(estree.Call(estree.Ident("f"))),
			want: "new (f())()",
		},
		{
			name: "sequence in argument",
			expr: estree.Call(estree.Ident("f"), &estree.SequenceExpression{Expressions: []estree.Expression{estree.Ident("a"), estree.Ident("b")}}),
			want: "f((a, b))",
		},
		{
			name: "optional chain",
			expr: &estree.MemberExpression{Object: estree.Ident("a"), Property: estree.Ident("b"), Optional: true},
			want: "a?.b",
		},
		{
			name: "computed member",
			expr: estree.Index(estree.Ident("a"), estree.Str("b")),
			want: `a["b"]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Print(tc.expr))
		})
	}
}

func TestPrint_StatementPosition(t *testing.T) {
	t.Parallel()
	objStmt := &estree.ExpressionStatement{Expression: estree.Object()}
	assert.Equal(t, "({});", Print(objStmt))

	iife := &estree.ExpressionStatement{Expression: estree.Call(&estree.FunctionExpression{Body: estree.Block()})}
	assert.Equal(t, "(function () {})();", Print(iife))

	arrowObj := &estree.ArrowFunctionExpression{ExprBody: estree.Object(estree.ShorthandProp("a"))}
	assert.Equal(t, "() => ({a})", Print(arrowObj))
}

func TestPrint_Program(t *testing.T) {
	t.Parallel()
	prog := &estree.Program{Body: []estree.Statement{
		&estree.ImportDeclaration{
			Specifiers: []estree.ModuleSpecifier{&estree.ImportSpecifier{
				Imported: estree.Ident("useMDXComponents"),
				Local:    estree.Ident("_provideComponents"),
			}},
			Source: estree.Str("@mdx-js/react"),
		},
		&estree.ExportDefaultDeclaration{Declaration: &estree.FunctionDeclaration{
			ID:     estree.Ident("MDXContent"),
			Params: []estree.Pattern{estree.Ident("props")},
			Body: estree.Block(estree.Return(estree.Element("_components.h1", estree.OriginShorthand,
				estree.Text("Hello")))),
		}},
	}}
	want := `import {useMDXComponents as _provideComponents} from "@mdx-js/react";
export default function MDXContent(props) {
  return <_components.h1>Hello</_components.h1>;
}
`
	assert.Equal(t, want, Print(prog))
}

func TestPrint_JSX(t *testing.T) {
	t.Parallel()
	el := estree.Element("a", estree.OriginShorthand, estree.Text("x"))
	el.OpeningElement.Attributes = []estree.JSXAttr{
		&estree.JSXAttribute{Name: &estree.JSXIdentifier{Name: "href"}, Value: estree.Str("/")},
		&estree.JSXAttribute{Name: &estree.JSXIdentifier{Name: "title"}, Value: estree.Str(`say "hi"`)},
		&estree.JSXAttribute{Name: &estree.JSXIdentifier{Name: "hidden"}},
		&estree.JSXSpreadAttribute{Argument: estree.Ident("rest")},
	}
	assert.Equal(t, `<a href="/" title='say "hi"' hidden {...rest}>x</a>`, Print(el))

	frag := &estree.JSXFragment{Children: []estree.JSXChild{
		estree.Element("svg:rect", estree.OriginShorthand),
		&estree.JSXExpressionContainer{Expression: estree.Ident("y")},
	}}
	assert.Equal(t, `<><svg:rect />{y}</>`, Print(frag))
}

func TestPrint_Loops(t *testing.T) {
	t.Parallel()
	push := &estree.ExpressionStatement{Expression: estree.Call(estree.Member("out", "push"), estree.Element("li", estree.OriginShorthand))}
	let := func(name string, init estree.Expression) *estree.VariableDeclaration {
		return &estree.VariableDeclaration{Keyword: "let", Declarations: []*estree.VariableDeclarator{{ID: estree.Ident(name), Init: init}}}
	}
	tests := []struct {
		name string
		stmt estree.Statement
		want string
	}{
		{
			name: "for",
			stmt: &estree.ForStatement{
				Init:   let("i", estree.Num(0)),
				Test:   &estree.BinaryExpression{Operator: "<", Left: estree.Ident("i"), Right: estree.Ident("n")},
				Update: &estree.UpdateExpression{Operator: "++", Argument: estree.Ident("i")},
				Body:   estree.Block(push),
			},
			want: "for (let i = 0; i < n; i++) {\n  out.push(<li />);\n}",
		},
		{
			name: "endless",
			stmt: &estree.ForStatement{Body: estree.Block()},
			want: "for (;;) {}",
		},
		{
			name: "for of",
			stmt: &estree.ForOfStatement{
				Left:  &estree.VariableDeclaration{Keyword: "const", Declarations: []*estree.VariableDeclarator{{ID: estree.Ident("item")}}},
				Right: estree.Member("props", "items"),
				Body:  push,
				Await: true,
			},
			want: "for await (const item of props.items) out.push(<li />);",
		},
		{
			name: "for in",
			stmt: &estree.ForInStatement{Left: estree.Ident("key"), Right: estree.Ident("obj"), Body: estree.Block()},
			want: "for (key in obj) {}",
		},
		{
			name: "while",
			stmt: &estree.WhileStatement{Test: estree.Call(estree.Ident("more")), Body: estree.Block(&estree.BreakStatement{})},
			want: "while (more()) {\n  break;\n}",
		},
		{
			name: "do while",
			stmt: &estree.DoWhileStatement{Body: estree.Block(&estree.ContinueStatement{Label: estree.Ident("outer")}), Test: estree.Ident("more")},
			want: "do {\n  continue outer;\n} while (more);",
		},
		{
			name: "labeled",
			stmt: &estree.LabeledStatement{Label: estree.Ident("outer"), Body: &estree.ForStatement{Body: estree.Block()}},
			want: "outer: for (;;) {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Print(tt.stmt))
		})
	}
}

func TestPrint_TryAndSwitch(t *testing.T) {
	t.Parallel()
	ret := func(name string) estree.Statement {
		return estree.Return(estree.Element(name, estree.OriginShorthand))
	}
	try := &estree.TryStatement{
		Block:     estree.Block(ret("Bar")),
		Handler:   &estree.CatchClause{Param: estree.Ident("err"), Body: estree.Block()},
		Finalizer: estree.Block(&estree.ExpressionStatement{Expression: estree.Call(estree.Ident("done"))}),
	}
	assert.Equal(t, "try {\n  return <Bar />;\n} catch (err) {} finally {\n  done();\n}", Print(try))

	bare := &estree.TryStatement{Block: estree.Block(), Handler: &estree.CatchClause{Body: estree.Block()}}
	assert.Equal(t, "try {} catch {}", Print(bare))

	sw := &estree.SwitchStatement{Discriminant: estree.Ident("kind"), Cases: []*estree.SwitchCase{
		{Test: estree.Str("a")},
		{Test: estree.Str("b"), Consequent: []estree.Statement{ret("Baz")}},
		{Consequent: []estree.Statement{ret("p")}},
	}}
	want := "switch (kind) {\n" +
		"  case \"a\":\n" +
		"  case \"b\":\n" +
		"    return <Baz />;\n" +
		"  default:\n" +
		"    return <p />;\n" +
		"}"
	assert.Equal(t, want, Print(sw))
	assert.Equal(t, "switch (x) {}", Print(&estree.SwitchStatement{Discriminant: estree.Ident("x")}))
}

func TestPrint_Templates(t *testing.T) {
	t.Parallel()
	tl := &estree.TemplateLiteral{
		Quasis: []*estree.TemplateElement{{Raw: "a "}, {Raw: ` \n `}, {Raw: "", Tail: true}},
		Expressions: []estree.Expression{
			estree.Ident("b"),
			estree.Element("Foo", estree.OriginShorthand),
		},
	}
	assert.Equal(t, "`a ${b} \\n ${<Foo />}`", Print(tl))

	tagged := &estree.TaggedTemplateExpression{
		Tag:   estree.Member("styled", "div"),
		Quasi: &estree.TemplateLiteral{Quasis: []*estree.TemplateElement{{Raw: "color: red;", Tail: true}}},
	}
	assert.Equal(t, "styled.div`color: red;`", Print(tagged))

	yield := &estree.YieldExpression{Argument: estree.Ident("x"), Delegate: true}
	assert.Equal(t, "yield* x", Print(yield))
	assert.Equal(t, "yield", Print(&estree.YieldExpression{}))
}

func TestQuote(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `"a\"b\\c\nd"`, Quote("a\"b\\c\nd"))
	assert.Equal(t, `"\x01"`, Quote("\x01"))
	assert.Equal(t, `"\u2028"`, Quote("\u2028"))
	assert.Equal(t, `"😀"`, Quote("😀"))
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1", formatNumber(1))
	assert.Equal(t, "0.5", formatNumber(0.5))
	assert.Equal(t, "1e+21", formatNumber(1e21))
	assert.Equal(t, "-3", formatNumber(-3))
}
