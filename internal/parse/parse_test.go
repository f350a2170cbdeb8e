package parse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jward/jsxrewrite/internal/estree"
)

func mustParse(t *testing.T, src string, opts ...Option) *estree.Program {
	t.Helper()
	prog, err := Source(context.Background(), []byte(src), opts...)
	require.NoError(t, err)
	return prog
}

func TestParse_FunctionWithJSX(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `export default function MDXContent(props) {
  return <div className="x"><h1>Hi</h1><Foo.Bar /></div>;
}`)
	require.Len(t, prog.Body, 1)

	exp, ok := prog.Body[0].(*estree.ExportDefaultDeclaration)
	require.True(t, ok)
	fn, ok := exp.Declaration.(*estree.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "MDXContent", fn.ID.Name)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "props", fn.Params[0].(*estree.Identifier).Name)

	ret := fn.Body.Body[0].(*estree.ReturnStatement)
	div, ok := ret.Argument.(*estree.JSXElement)
	require.True(t, ok)
	assert.Equal(t, "div", estree.JSXNameString(div.OpeningElement.Name))
	assert.Equal(t, estree.OriginExplicit, div.Origin)
	assert.Equal(t, 2, div.Pos.Line)
	require.Len(t, div.OpeningElement.Attributes, 1)
	attr := div.OpeningElement.Attributes[0].(*estree.JSXAttribute)
	assert.Equal(t, "className", estree.JSXNameString(attr.Name))
	assert.Equal(t, "x", attr.Value.(*estree.Literal).Value)

	require.Len(t, div.Children, 2)
	h1 := div.Children[0].(*estree.JSXElement)
	assert.Equal(t, "h1", estree.JSXNameString(h1.OpeningElement.Name))
	require.NotNil(t, h1.ClosingElement)
	assert.Equal(t, "Hi", h1.Children[0].(*estree.JSXText).Value)

	member := div.Children[1].(*estree.JSXElement)
	_, isMember := member.OpeningElement.Name.(*estree.JSXMemberExpression)
	assert.True(t, isMember)
	assert.True(t, member.OpeningElement.SelfClosing)
}

func TestParse_ShorthandOrigin(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `const C = () => <p />;`, WithShorthand(true))
	decl := prog.Body[0].(*estree.VariableDeclaration)
	arrow := decl.Declarations[0].Init.(*estree.ArrowFunctionExpression)
	el := arrow.ExprBody.(*estree.JSXElement)
	assert.Equal(t, estree.OriginShorthand, el.Origin)
}

func TestParse_Fragment(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `const x = <><a /></>;`)
	decl := prog.Body[0].(*estree.VariableDeclaration)
	frag, ok := decl.Declarations[0].Init.(*estree.JSXFragment)
	require.True(t, ok)
	require.Len(t, frag.Children, 1)
}

func TestParse_NamespacedName(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `const x = <svg:rect />;`)
	el := prog.Body[0].(*estree.VariableDeclaration).Declarations[0].Init.(*estree.JSXElement)
	ns, ok := el.OpeningElement.Name.(*estree.JSXNamespacedName)
	require.True(t, ok)
	assert.Equal(t, "svg", ns.Namespace.Name)
	assert.Equal(t, "rect", ns.Name.Name)
}

func TestParse_ImportsAndExports(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `import React, {useState as use, Fragment} from "react";
import * as icons from './icons.js';
export const title = "Hello";
export {title as heading};`)
	require.Len(t, prog.Body, 4)

	imp := prog.Body[0].(*estree.ImportDeclaration)
	assert.Equal(t, "react", imp.Source.Value)
	require.Len(t, imp.Specifiers, 3)
	assert.Equal(t, "React", imp.Specifiers[0].(*estree.ImportDefaultSpecifier).Local.Name)
	spec := imp.Specifiers[1].(*estree.ImportSpecifier)
	assert.Equal(t, "useState", spec.Imported.Name)
	assert.Equal(t, "use", spec.Local.Name)

	ns := prog.Body[1].(*estree.ImportDeclaration)
	assert.Equal(t, "./icons.js", ns.Source.Value)
	assert.Equal(t, "icons", ns.Specifiers[0].(*estree.ImportNamespaceSpecifier).Local.Name)

	named := prog.Body[2].(*estree.ExportNamedDeclaration)
	_, isVar := named.Declaration.(*estree.VariableDeclaration)
	assert.True(t, isVar)

	clause := prog.Body[3].(*estree.ExportNamedDeclaration)
	require.Len(t, clause.Specifiers, 1)
	assert.Equal(t, "heading", clause.Specifiers[0].Exported.Name)
}

func TestParse_Destructuring(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `const {a, b: c, d = 1, ...rest} = obj;
let [x, , y] = list;`)
	obj := prog.Body[0].(*estree.VariableDeclaration).Declarations[0].ID.(*estree.ObjectPattern)
	require.Len(t, obj.Properties, 4)
	assert.True(t, obj.Properties[0].(*estree.Property).Shorthand)
	_, isRest := obj.Properties[3].(*estree.RestElement)
	assert.True(t, isRest)

	arr := prog.Body[1].(*estree.VariableDeclaration)
	assert.Equal(t, "let", arr.Keyword)
	elems := arr.Declarations[0].ID.(*estree.ArrayPattern).Elements
	require.Len(t, elems, 3)
	assert.Nil(t, elems[1])
}

func TestParse_Loops(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `for (let i = 0; i < n; i++) { out.push(<li key={i} />); }
for (const item of props.items) out.push(<Foo />);
for (key in obj) {}
while (more()) { step(); }
do { n--; } while (n > 0);
outer: for (;;) { break outer; continue; }`)
	require.Len(t, prog.Body, 6)

	loop := prog.Body[0].(*estree.ForStatement)
	init := loop.Init.(*estree.VariableDeclaration)
	assert.Equal(t, "let", init.Keyword)
	assert.Equal(t, "i", init.Declarations[0].ID.(*estree.Identifier).Name)
	assert.Equal(t, "<", loop.Test.(*estree.BinaryExpression).Operator)
	assert.Equal(t, "++", loop.Update.(*estree.UpdateExpression).Operator)
	call := loop.Body.(*estree.BlockStatement).Body[0].(*estree.ExpressionStatement).Expression.(*estree.CallExpression)
	_, isElement := call.Arguments[0].(*estree.JSXElement)
	assert.True(t, isElement)

	of := prog.Body[1].(*estree.ForOfStatement)
	left := of.Left.(*estree.VariableDeclaration)
	assert.Equal(t, "const", left.Keyword)
	assert.Equal(t, "item", left.Declarations[0].ID.(*estree.Identifier).Name)
	assert.Nil(t, left.Declarations[0].Init)
	assert.False(t, of.Await)
	body := of.Body.(*estree.ExpressionStatement).Expression.(*estree.CallExpression)
	assert.Equal(t, "Foo", estree.JSXNameString(body.Arguments[0].(*estree.JSXElement).OpeningElement.Name))

	in := prog.Body[2].(*estree.ForInStatement)
	assert.Equal(t, "key", in.Left.(*estree.Identifier).Name)
	assert.Equal(t, "obj", in.Right.(*estree.Identifier).Name)

	_, isWhile := prog.Body[3].(*estree.WhileStatement)
	assert.True(t, isWhile)
	do := prog.Body[4].(*estree.DoWhileStatement)
	assert.Equal(t, ">", do.Test.(*estree.BinaryExpression).Operator)

	labeled := prog.Body[5].(*estree.LabeledStatement)
	assert.Equal(t, "outer", labeled.Label.Name)
	forever := labeled.Body.(*estree.ForStatement)
	assert.Nil(t, forever.Init)
	assert.Nil(t, forever.Test)
	assert.Nil(t, forever.Update)
	jumps := forever.Body.(*estree.BlockStatement).Body
	require.Len(t, jumps, 2)
	assert.Equal(t, "outer", jumps[0].(*estree.BreakStatement).Label.Name)
	assert.Nil(t, jumps[1].(*estree.ContinueStatement).Label)
}

func TestParse_TryAndSwitch(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `try { render(<Bar />); } catch (err) { log(err); } finally { done(); }
try { a(); } catch { b(); }
switch (kind) {
  case "a":
  case "b":
    x = <Baz />;
    break;
  default:
    x = <p />;
}`)
	require.Len(t, prog.Body, 3)

	try := prog.Body[0].(*estree.TryStatement)
	require.Len(t, try.Block.Body, 1)
	require.NotNil(t, try.Handler)
	assert.Equal(t, "err", try.Handler.Param.(*estree.Identifier).Name)
	require.NotNil(t, try.Finalizer)
	assert.Len(t, try.Finalizer.Body, 1)

	bare := prog.Body[1].(*estree.TryStatement)
	require.NotNil(t, bare.Handler)
	assert.Nil(t, bare.Handler.Param)
	assert.Nil(t, bare.Finalizer)

	sw := prog.Body[2].(*estree.SwitchStatement)
	assert.Equal(t, "kind", sw.Discriminant.(*estree.Identifier).Name)
	require.Len(t, sw.Cases, 3)
	assert.Equal(t, "a", sw.Cases[0].Test.(*estree.Literal).Value)
	assert.Empty(t, sw.Cases[0].Consequent)
	require.Len(t, sw.Cases[1].Consequent, 2)
	assign := sw.Cases[1].Consequent[0].(*estree.ExpressionStatement).Expression.(*estree.AssignmentExpression)
	_, isElement := assign.Right.(*estree.JSXElement)
	assert.True(t, isElement)
	_, isBreak := sw.Cases[1].Consequent[1].(*estree.BreakStatement)
	assert.True(t, isBreak)
	assert.Nil(t, sw.Cases[2].Test)
	assert.Len(t, sw.Cases[2].Consequent, 1)
}

func TestParse_Templates(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, "const a = `x ${b} \\n ${<Foo />}!`;\nconst c = css`color: ${d};`;\nconst e = `plain`;")
	require.Len(t, prog.Body, 3)

	tl := prog.Body[0].(*estree.VariableDeclaration).Declarations[0].Init.(*estree.TemplateLiteral)
	require.Len(t, tl.Quasis, 3)
	require.Len(t, tl.Expressions, 2)
	assert.Equal(t, "x ", tl.Quasis[0].Raw)
	assert.Equal(t, ` \n `, tl.Quasis[1].Raw)
	assert.Equal(t, "!", tl.Quasis[2].Raw)
	assert.True(t, tl.Quasis[2].Tail)
	assert.False(t, tl.Quasis[0].Tail)
	_, isElement := tl.Expressions[1].(*estree.JSXElement)
	assert.True(t, isElement)

	tagged := prog.Body[1].(*estree.VariableDeclaration).Declarations[0].Init.(*estree.TaggedTemplateExpression)
	assert.Equal(t, "css", tagged.Tag.(*estree.Identifier).Name)
	assert.Equal(t, "color: ", tagged.Quasi.Quasis[0].Raw)
	assert.Equal(t, "d", tagged.Quasi.Expressions[0].(*estree.Identifier).Name)

	plain := prog.Body[2].(*estree.VariableDeclaration).Declarations[0].Init.(*estree.TemplateLiteral)
	require.Len(t, plain.Quasis, 1)
	assert.Equal(t, "plain", plain.Quasis[0].Raw)
	assert.Empty(t, plain.Expressions)
}

func TestParse_Yield(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `function* gen() { yield <p />; yield* other(); yield; }`)
	body := prog.Body[0].(*estree.FunctionDeclaration).Body.Body
	require.Len(t, body, 3)
	first := body[0].(*estree.ExpressionStatement).Expression.(*estree.YieldExpression)
	_, isElement := first.Argument.(*estree.JSXElement)
	assert.True(t, isElement)
	assert.True(t, body[1].(*estree.ExpressionStatement).Expression.(*estree.YieldExpression).Delegate)
	assert.Nil(t, body[2].(*estree.ExpressionStatement).Expression.(*estree.YieldExpression).Argument)
}

func TestParse_UnmodelledConstructKeptRaw(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `class Widget { size = 1; }`)
	class := prog.Body[0].(*estree.ClassDeclaration)
	require.Len(t, class.Body, 1)
	raw, ok := class.Body[0].(*estree.Raw)
	require.True(t, ok)
	assert.Contains(t, raw.Text, "size = 1")
}

func TestParse_JSXInUnmodelledConstructFails(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	_, err := Source(context.Background(), []byte("class Widget {\n  icon = <Icon />;\n}"), WithLogger(zap.New(core)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedJSX)
	assert.Contains(t, err.Error(), "at 2:3")
	assert.Equal(t, 1, logs.Len())
}

func TestParse_SyntaxError(t *testing.T) {
	t.Parallel()
	_, err := Source(context.Background(), []byte(`function (`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParse_StringLiterals(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `const s = 'it\'s A\n';`)
	lit := prog.Body[0].(*estree.VariableDeclaration).Declarations[0].Init.(*estree.Literal)
	assert.Equal(t, "it's A\n", lit.Value)
	assert.Equal(t, `'it\'s A\n'`, lit.Raw)
}

func TestUnquote(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{`"plain"`, "plain"},
		{`"a\"b"`, `a"b`},
		{`'\x41\u{1F600}'`, "A😀"},
		{`"😀"`, "😀"},
		{`"tab\there"`, "tab\there"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, unquote(tc.in), tc.in)
	}
}

func TestParse_Numbers(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `const a = 0x10, b = 1_000, c = 1.5;`)
	decls := prog.Body[0].(*estree.VariableDeclaration).Declarations
	assert.Equal(t, float64(16), decls[0].Init.(*estree.Literal).Value)
	assert.Equal(t, float64(1000), decls[1].Init.(*estree.Literal).Value)
	assert.Equal(t, 1.5, decls[2].Init.(*estree.Literal).Value)
}

func TestInputForFile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"docs/index.jsx", InputJSX, true},
		{"docs/index.JS", InputJSX, true},
		{"page.mjs", InputJSX, true},
		{"page.mdx.json", InputESTree, true},
		{"README.md", "", false},
	}
	for _, tc := range tests {
		got, ok := InputForFile(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}

func TestFile_DispatchesOnExtension(t *testing.T) {
	t.Parallel()
	p := New()
	ctx := context.Background()

	prog, err := p.File(ctx, "a.jsx", []byte(`const x = <b />;`))
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	prog, err = p.File(ctx, "a.json", []byte(`{"type":"Program","sourceType":"module","body":[]}`))
	require.NoError(t, err)
	assert.Empty(t, prog.Body)

	_, err = p.File(ctx, "a.md", []byte("# hi"))
	require.Error(t, err)

	_, err = p.File(ctx, "broken.jsx", []byte(`function (`))
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), "broken.jsx")
}

func TestAs_OverridesExtension(t *testing.T) {
	t.Parallel()
	prog, err := New().As(context.Background(), InputESTree, "page.mdx", []byte(`{"type":"Program","body":[]}`))
	require.NoError(t, err)
	assert.Empty(t, prog.Body)

	_, err = New().As(context.Background(), "yaml", "page.mdx", nil)
	require.Error(t, err)
}
