package jsxrewrite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/jsxrewrite/internal/estree"
	"github.com/jward/jsxrewrite/internal/printer"
	"github.com/jward/jsxrewrite/internal/topscope"
)

const helperSource = "function _missingComponent(name) {\n" +
	"  return function () {\n" +
	"    throw new Error(\"Component `\" + name + \"` was not imported, exported, or given\");\n" +
	"  };\n" +
	"}\n"

// el builds a shorthand-origin element; no children means self-closing.
func el(name string, children ...estree.JSXChild) *estree.JSXElement {
	if len(children) == 0 {
		return estree.Element(name, estree.OriginShorthand)
	}
	return estree.Element(name, estree.OriginShorthand, children...)
}

func explicit(name string, children ...estree.JSXChild) *estree.JSXElement {
	e := el(name, children...)
	e.Origin = estree.OriginExplicit
	return e
}

func fragment(children ...estree.JSXChild) *estree.JSXFragment {
	return &estree.JSXFragment{Children: children}
}

func function(name string, params []estree.Pattern, body ...estree.Statement) *estree.FunctionDeclaration {
	return &estree.FunctionDeclaration{ID: estree.Ident(name), Params: params, Body: estree.Block(body...)}
}

func props() []estree.Pattern {
	return []estree.Pattern{estree.Ident("props")}
}

func program(body ...estree.Statement) *estree.Program {
	return &estree.Program{Body: body}
}

func rewriteAndPrint(t *testing.T, prog *estree.Program, opts ...Option) (*Result, string) {
	t.Helper()
	res := New(opts...).Rewrite(prog)
	require.NotNil(t, res)
	return res, printer.Print(prog)
}

func TestRewrite_EndToEnd(t *testing.T) {
	t.Parallel()
	prog := program(function("MDXContent", props(),
		estree.Return(fragment(el("h1", estree.Text("hi")), el("Foo"))),
	))

	res, got := rewriteAndPrint(t, prog)

	want := helperSource +
		"function MDXContent(props) {\n" +
		"  const _components = {h1: \"h1\", Foo: _missingComponent(\"Foo\"), ...props.components};\n" +
		"  const {Foo} = _components;\n" +
		"  return <><_components.h1>hi</_components.h1><Foo /></>;\n" +
		"}\n"
	assert.Equal(t, want, got)

	assert.True(t, res.NeedsHelper)
	assert.False(t, res.NeedsProvider)
	require.Len(t, res.Functions, 1)
	assert.Equal(t, FunctionReport{
		Name:       "MDXContent",
		Tags:       []string{"h1"},
		Components: []string{"Foo"},
		Objects:    []string{},
		Entry:      true,
	}, normalizeReport(res.Functions[0]))
	assert.Equal(t, []string{"Foo"}, res.MissingComponents())
}

// normalizeReport replaces nil slices with empty ones for comparison.
func normalizeReport(r FunctionReport) FunctionReport {
	for _, s := range []*[]string{&r.Tags, &r.Components, &r.Objects} {
		if *s == nil {
			*s = []string{}
		}
	}
	return r
}

func TestRewrite_ProviderProgram(t *testing.T) {
	t.Parallel()
	prog := program(function("MDXContent", props(),
		estree.Return(fragment(el("h1"), el("Foo"))),
	))

	res, got := rewriteAndPrint(t, prog, WithProviderImportSource("x"), WithOutputFormat(FormatProgram))

	want := "import {useMDXComponents as _provideComponents} from \"x\";\n" +
		helperSource +
		"function MDXContent(props) {\n" +
		"  const _components = {h1: \"h1\", Foo: _missingComponent(\"Foo\"), ..._provideComponents(), ...props.components};\n" +
		"  const {Foo} = _components;\n" +
		"  return <><_components.h1 /><Foo /></>;\n" +
		"}\n"
	assert.Equal(t, want, got)
	assert.True(t, res.NeedsProvider)
}

func TestRewrite_ProviderFunctionBody(t *testing.T) {
	t.Parallel()
	prog := program(function("MDXContent", props(), estree.Return(el("p"))))

	res, got := rewriteAndPrint(t, prog, WithProviderImportSource("x"), WithOutputFormat(FormatFunctionBody))

	want := "const {useMDXComponents: _provideComponents} = arguments[0];\n" +
		"function MDXContent(props) {\n" +
		"  const _components = {p: \"p\", ..._provideComponents(), ...props.components};\n" +
		"  return <_components.p />;\n" +
		"}\n"
	assert.Equal(t, want, got)
	assert.True(t, res.NeedsProvider)
	assert.False(t, res.NeedsHelper)
}

func TestRewrite_ProviderImportedOnce(t *testing.T) {
	t.Parallel()
	prog := program(
		function("A", nil, estree.Return(el("p"))),
		function("B", nil, estree.Return(el("em"))),
	)

	res := Rewrite(prog, WithProviderImportSource("x"))

	require.Len(t, res.Functions, 2)
	imports := 0
	for _, s := range prog.Body {
		if _, ok := s.(*estree.ImportDeclaration); ok {
			imports++
		}
	}
	assert.Equal(t, 1, imports)
	_, first := prog.Body[0].(*estree.ImportDeclaration)
	assert.True(t, first)
}

func TestRewrite_MemberChainObjects(t *testing.T) {
	t.Parallel()
	bar := el("Foo.Bar")
	prog := program(function("MDXContent", props(),
		estree.Return(fragment(bar, el("Foo.Baz"), el("a.b.c"))),
	))

	res, got := rewriteAndPrint(t, prog)

	want := "function MDXContent(props) {\n" +
		"  const _components = {...props.components};\n" +
		"  const {Foo, a} = _components;\n" +
		"  return <><Foo.Bar /><Foo.Baz /><a.b.c /></>;\n" +
		"}\n"
	assert.Equal(t, want, got)
	assert.False(t, res.NeedsHelper)
	assert.Equal(t, []string{"Foo", "a"}, res.Functions[0].Objects)
	assert.Equal(t, "Foo.Bar", estree.JSXNameString(bar.OpeningElement.Name))
}

func TestRewrite_MDXLayoutIsWrapper(t *testing.T) {
	t.Parallel()
	prog := program(function("MDXContent", props(),
		estree.Return(el("MDXLayout", el("Foo"))),
	))

	res, got := rewriteAndPrint(t, prog)

	want := helperSource +
		"function MDXContent(props) {\n" +
		"  const _components = {Foo: _missingComponent(\"Foo\"), ...props.components};\n" +
		"  const {wrapper: MDXLayout, Foo} = _components;\n" +
		"  return <MDXLayout><Foo /></MDXLayout>;\n" +
		"}\n"
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"Foo"}, res.MissingComponents())
}

func TestRewrite_LayoutAloneNeedsNoHelper(t *testing.T) {
	t.Parallel()
	prog := program(function("MDXContent", props(), estree.Return(el("MDXLayout"))))

	res, got := rewriteAndPrint(t, prog)

	assert.False(t, res.NeedsHelper)
	assert.NotContains(t, got, "_missingComponent")
	assert.Contains(t, got, "const {wrapper: MDXLayout} = _components;")
}

func TestRewrite_NamespacedNamesAreInert(t *testing.T) {
	t.Parallel()
	rect := el("svg:rect")
	fn := function("Icon", nil, estree.Return(rect))
	prog := program(fn)

	res := Rewrite(prog)

	assert.Empty(t, res.Functions)
	assert.Len(t, fn.Body.Body, 1)
	assert.Equal(t, "svg:rect", estree.JSXNameString(rect.OpeningElement.Name))
	assert.Len(t, prog.Body, 1)
}

func TestRewrite_ExplicitMarkup(t *testing.T) {
	t.Parallel()
	h1 := explicit("h1", estree.Text("kept"))
	foo := explicit("Foo")
	prog := program(function("MDXContent", props(), estree.Return(fragment(h1, foo))))

	res, got := rewriteAndPrint(t, prog)

	assert.Equal(t, "h1", estree.JSXNameString(h1.OpeningElement.Name))
	assert.Equal(t, "h1", estree.JSXNameString(h1.ClosingElement.Name))
	assert.Empty(t, res.Functions[0].Tags)
	// Explicit origin does not exempt components.
	assert.Equal(t, []string{"Foo"}, res.Functions[0].Components)
	assert.Contains(t, got, "const _components = {Foo: _missingComponent(\"Foo\"), ...props.components};")
}

func TestRewrite_TagRewritesOpeningAndClosing(t *testing.T) {
	t.Parallel()
	p := el("p", estree.Text("x"))
	prog := program(function("A", nil, estree.Return(p)))

	Rewrite(prog)

	assert.Equal(t, "_components.p", estree.JSXNameString(p.OpeningElement.Name))
	require.NotNil(t, p.ClosingElement)
	assert.Equal(t, "_components.p", estree.JSXNameString(p.ClosingElement.Name))
}

func TestRewrite_TopScopeExcluded(t *testing.T) {
	t.Parallel()
	prog := program(
		&estree.ImportDeclaration{
			Specifiers: []estree.ModuleSpecifier{&estree.ImportSpecifier{Imported: estree.Ident("Chart"), Local: estree.Ident("Chart")}},
			Source:     estree.Str("./chart.js"),
		},
		estree.Const(estree.Ident("ui"), estree.Object()),
		function("MDXContent", props(), estree.Return(fragment(el("Chart"), el("ui.Button")))),
	)

	res := Rewrite(prog)

	assert.False(t, res.NeedsHelper)
	assert.Empty(t, res.Functions)
	fn := prog.Body[2].(*estree.FunctionDeclaration)
	assert.Len(t, fn.Body.Body, 1)
}

func TestRewrite_LowercaseTagIgnoresTopScope(t *testing.T) {
	t.Parallel()
	prog := program(
		estree.Const(estree.Ident("p"), estree.Num(1)),
		function("A", nil, estree.Return(el("p"))),
	)

	res := Rewrite(prog)

	require.Len(t, res.Functions, 1)
	assert.Equal(t, []string{"p"}, res.Functions[0].Tags)
}

func TestRewrite_WithTopScope(t *testing.T) {
	t.Parallel()
	prog := program(function("MDXContent", props(), estree.Return(el("Provided"))))

	res := Rewrite(prog, WithTopScope(func(*estree.Program) topscope.Set {
		return topscope.Set{"Provided": {}}
	}))

	assert.Empty(t, res.Functions)
	assert.False(t, res.NeedsHelper)
}

func TestRewrite_NestedFunctionsAttributeToOutermost(t *testing.T) {
	t.Parallel()
	inner := &estree.ArrowFunctionExpression{ExprBody: el("em")}
	deeper := &estree.FunctionExpression{Body: estree.Block(estree.Return(el("Deep")))}
	outer := function("MDXContent", props(),
		estree.Const(estree.Ident("render"), inner),
		estree.Const(estree.Ident("other"), deeper),
		estree.Return(el("p")),
	)
	prog := program(outer)

	res := Rewrite(prog)

	require.Len(t, res.Functions, 1)
	assert.Equal(t, "MDXContent", res.Functions[0].Name)
	assert.Equal(t, []string{"em", "p"}, res.Functions[0].Tags)
	assert.Equal(t, []string{"Deep"}, res.Functions[0].Components)

	// Inner functions receive nothing and keep their shape.
	assert.Nil(t, inner.Body)
	assert.NotNil(t, inner.ExprBody)
	assert.Len(t, deeper.Body.Body, 1)
	assert.Len(t, outer.Body.Body, 5)
}

func TestRewrite_ElementsInsideControlFlow(t *testing.T) {
	t.Parallel()
	push := func(arg estree.Expression) estree.Statement {
		return &estree.ExpressionStatement{Expression: estree.Call(estree.Member("out", "push"), arg)}
	}
	loop := &estree.ForOfStatement{
		Left:  &estree.VariableDeclaration{Keyword: "const", Declarations: []*estree.VariableDeclarator{{ID: estree.Ident("x")}}},
		Right: estree.Member("props", "items"),
		Body:  estree.Block(push(el("li", el("Foo")))),
	}
	try := &estree.TryStatement{
		Block:   estree.Block(estree.Return(el("Bar"))),
		Handler: &estree.CatchClause{Body: estree.Block()},
	}
	sw := &estree.SwitchStatement{Discriminant: estree.Ident("kind"), Cases: []*estree.SwitchCase{
		{Test: estree.Str("a"), Consequent: []estree.Statement{push(el("Baz"))}},
		{Consequent: []estree.Statement{push(el("p"))}},
	}}
	tmpl := &estree.TemplateLiteral{
		Quasis:      []*estree.TemplateElement{{Raw: ""}, {Raw: "", Tail: true}},
		Expressions: []estree.Expression{el("em")},
	}
	prog := program(function("MDXContent", props(), loop, try, sw, push(tmpl)))

	res, got := rewriteAndPrint(t, prog)

	require.Len(t, res.Functions, 1)
	assert.Equal(t, []string{"li", "p", "em"}, res.Functions[0].Tags)
	assert.Equal(t, []string{"Foo", "Bar", "Baz"}, res.Functions[0].Components)
	assert.Contains(t, got, "out.push(<_components.li><Foo /></_components.li>);")
	assert.Contains(t, got, "return <Bar />;")
	assert.Contains(t, got, "out.push(<_components.p />);")
	assert.Contains(t, got, "out.push(`${<_components.em />}`);")
	assert.Contains(t, got, "const {Foo, Bar, Baz} = _components;")
}

func TestRewrite_ArrowEntryGetsBlockBody(t *testing.T) {
	t.Parallel()
	arrow := &estree.ArrowFunctionExpression{
		Params:   props(),
		ExprBody: el("h2", estree.Text("t")),
	}
	prog := program(estree.Const(estree.Ident("MDXContent"), arrow))

	res, got := rewriteAndPrint(t, prog)

	want := "const MDXContent = (props) => {\n" +
		"  const _components = {h2: \"h2\", ...props.components};\n" +
		"  return <_components.h2>t</_components.h2>;\n" +
		"};\n"
	assert.Equal(t, want, got)
	assert.True(t, res.Functions[0].Entry)
	assert.Nil(t, arrow.ExprBody)
}

func TestRewrite_ArrowWithoutInjectionUnchanged(t *testing.T) {
	t.Parallel()
	arrow := &estree.ArrowFunctionExpression{ExprBody: el("svg:rect")}
	prog := program(estree.Const(estree.Ident("f"), arrow))

	Rewrite(prog)

	assert.Nil(t, arrow.Body)
	assert.NotNil(t, arrow.ExprBody)
}

func TestRewrite_NonEntryHasNoPropsSpread(t *testing.T) {
	t.Parallel()
	prog := program(function("Other", props(), estree.Return(el("h1"))))

	res, got := rewriteAndPrint(t, prog)

	assert.False(t, res.Functions[0].Entry)
	assert.Contains(t, got, "const _components = {h1: \"h1\"};")
	assert.NotContains(t, got, "props.components")
}

func TestRewrite_NonIdentifierTagAliased(t *testing.T) {
	t.Parallel()
	custom := el("my-element", estree.Text("x"))
	prog := program(function("A", nil, estree.Return(fragment(custom, el("my-element")))))

	_, got := rewriteAndPrint(t, prog)

	want := "function A() {\n" +
		"  const _components = {\"my-element\": \"my-element\"};\n" +
		"  const {\"my-element\": _component0} = _components;\n" +
		"  return <><_component0>x</_component0><_component0 /></>;\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestRewrite_UnscopedElements(t *testing.T) {
	t.Parallel()
	top := el("h1")
	prog := program(&estree.ExpressionStatement{Expression: top})

	res := Rewrite(prog)

	assert.Equal(t, []string{"h1"}, res.Unscoped)
	assert.Equal(t, "h1", estree.JSXNameString(top.OpeningElement.Name))
	assert.Empty(t, res.Functions)
}

func TestRewrite_EntryWithoutParamsGetsProps(t *testing.T) {
	t.Parallel()
	fn := function("MDXContent", nil, estree.Return(el("p")))
	prog := program(fn)

	_, got := rewriteAndPrint(t, prog)

	require.Len(t, fn.Params, 1)
	assert.Contains(t, got, "function MDXContent(props) {")
	assert.Contains(t, got, "...props.components}")
}

func TestRewrite_EntryWithDefaultedParam(t *testing.T) {
	t.Parallel()
	fn := function("MDXContent", []estree.Pattern{
		&estree.AssignmentPattern{Left: estree.Ident("p"), Right: estree.Object()},
	}, estree.Return(el("p")))

	_, got := rewriteAndPrint(t, program(fn))

	assert.Contains(t, got, "...p.components}")
}

func TestRewrite_EntryWithDestructuredParam(t *testing.T) {
	t.Parallel()
	fn := function("MDXContent", []estree.Pattern{
		estree.ObjectPatternOf(estree.ShorthandProp("title")),
	}, estree.Return(el("h1")))

	_, got := rewriteAndPrint(t, program(fn))

	want := "function MDXContent(_props) {\n" +
		"  const {title} = _props;\n" +
		"  const _components = {h1: \"h1\", ..._props.components};\n" +
		"  return <_components.h1 />;\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestRewrite_ComponentRecordedOnce(t *testing.T) {
	t.Parallel()
	prog := program(function("MDXContent", props(), estree.Return(fragment(el("Foo"), el("Foo"), el("Bar")))))

	res := Rewrite(prog)

	assert.Equal(t, []string{"Foo", "Bar"}, res.Functions[0].Components)
}

func TestRewrite_UnknownNameVariantPanics(t *testing.T) {
	t.Parallel()
	broken := &estree.JSXElement{OpeningElement: &estree.JSXOpeningElement{SelfClosing: true}}
	prog := program(function("A", nil, estree.Return(broken)))

	assert.Panics(t, func() { Rewrite(prog) })
}

func TestRewriter_FreshStatePerCall(t *testing.T) {
	t.Parallel()
	r := New()
	build := func() *estree.Program {
		return program(function("MDXContent", props(), estree.Return(el("Foo"))))
	}

	first := r.Rewrite(build())
	second := r.Rewrite(build())

	assert.Equal(t, first, second)
	assert.True(t, second.NeedsHelper)
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Options{OutputFormat: FormatProgram}.Validate())
	assert.NoError(t, Options{OutputFormat: FormatFunctionBody}.Validate())
	assert.NoError(t, Options{}.Validate())

	err := Options{OutputFormat: "commonjs"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutputFormat))
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()
	f, err := ParseOutputFormat("function-body")
	require.NoError(t, err)
	assert.Equal(t, FormatFunctionBody, f)

	f, err = ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatProgram, f)

	_, err = ParseOutputFormat("esm")
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
}
