// Package printer serializes estree trees back to JavaScript + JSX source.
//
// Output is deterministic: two-space indentation, double-quoted strings,
// semicolons after every simple statement, and parentheses only where
// operator precedence or statement position requires them.
package printer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jward/jsxrewrite/internal/estree"
)

// Precedence levels, lowest binding first.
type level int

const (
	lLowest level = iota
	lComma
	lSpread
	lAssign
	lConditional
	lNullish
	lLogicalOr
	lLogicalAnd
	lBitwiseOr
	lBitwiseXor
	lBitwiseAnd
	lEquals
	lCompare
	lShift
	lAdd
	lMultiply
	lExponent
	lPrefix
	lPostfix
	lCall
	lMember
)

var binaryLevels = map[string]level{
	"??":         lNullish,
	"||":         lLogicalOr,
	"&&":         lLogicalAnd,
	"|":          lBitwiseOr,
	"^":          lBitwiseXor,
	"&":          lBitwiseAnd,
	"==":         lEquals,
	"!=":         lEquals,
	"===":        lEquals,
	"!==":        lEquals,
	"<":          lCompare,
	">":          lCompare,
	"<=":         lCompare,
	">=":         lCompare,
	"in":         lCompare,
	"instanceof": lCompare,
	"<<":         lShift,
	">>":         lShift,
	">>>":        lShift,
	"+":          lAdd,
	"-":          lAdd,
	"*":          lMultiply,
	"/":          lMultiply,
	"%":          lMultiply,
	"**":         lExponent,
}

// Print returns the source text of n.
func Print(n estree.Node) string {
	p := &printer{}
	p.node(n)
	return p.sb.String()
}

// Fprint writes the source text of n to w.
func Fprint(w io.Writer, n estree.Node) error {
	_, err := io.WriteString(w, Print(n))
	return err
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) write(s string) {
	p.sb.WriteString(s)
}

func (p *printer) newline() {
	p.sb.WriteByte('\n')
	p.sb.WriteString(strings.Repeat("  ", p.indent))
}

func (p *printer) node(n estree.Node) {
	switch n := n.(type) {
	case *estree.Program:
		for i, s := range n.Body {
			if i > 0 {
				p.write("\n")
			}
			p.stmt(s)
		}
		if len(n.Body) > 0 {
			p.write("\n")
		}
	case estree.Statement:
		p.stmt(n)
	case estree.Expression:
		p.expr(n, lLowest)
	case estree.Pattern:
		p.pattern(n)
	default:
		panic(fmt.Sprintf("printer: cannot print %T at top level", n))
	}
}

// ---- statements ----

func (p *printer) stmt(s estree.Statement) {
	switch s := s.(type) {
	case *estree.ExpressionStatement:
		if startsAmbiguously(s.Expression) {
			p.write("(")
			p.expr(s.Expression, lLowest)
			p.write(")")
		} else {
			p.expr(s.Expression, lLowest)
		}
		p.write(";")
	case *estree.BlockStatement:
		p.block(s)
	case *estree.ReturnStatement:
		p.write("return")
		if s.Argument != nil {
			p.write(" ")
			p.expr(s.Argument, lLowest)
		}
		p.write(";")
	case *estree.IfStatement:
		p.write("if (")
		p.expr(s.Test, lLowest)
		p.write(") ")
		p.stmt(s.Consequent)
		if s.Alternate != nil {
			p.write(" else ")
			p.stmt(s.Alternate)
		}
	case *estree.ThrowStatement:
		p.write("throw ")
		p.expr(s.Argument, lLowest)
		p.write(";")
	case *estree.EmptyStatement:
		p.write(";")
	case *estree.VariableDeclaration:
		p.varDecl(s)
		p.write(";")
	case *estree.FunctionDeclaration:
		p.function(s.Async, s.Generator, s.ID, s.Params, s.Body)
	case *estree.ClassDeclaration:
		p.class(s.ID, s.SuperClass, s.Body)
	case *estree.ImportDeclaration:
		p.importDecl(s)
	case *estree.ExportNamedDeclaration:
		p.write("export ")
		if s.Declaration != nil {
			p.stmt(s.Declaration)
			return
		}
		p.write("{")
		for i, spec := range s.Specifiers {
			if i > 0 {
				p.write(", ")
			}
			p.write(spec.Local.Name)
			if spec.Exported != nil && spec.Exported.Name != spec.Local.Name {
				p.write(" as " + spec.Exported.Name)
			}
		}
		p.write("}")
		if s.Source != nil {
			p.write(" from ")
			p.literal(s.Source)
		}
		p.write(";")
	case *estree.ExportDefaultDeclaration:
		p.write("export default ")
		switch d := s.Declaration.(type) {
		case *estree.FunctionDeclaration, *estree.ClassDeclaration:
			p.stmt(d.(estree.Statement))
		case estree.Expression:
			if startsAmbiguously(d) {
				p.write("(")
				p.expr(d, lLowest)
				p.write(")")
			} else {
				p.expr(d, lAssign)
			}
			p.write(";")
		default:
			panic(fmt.Sprintf("printer: unexpected default export %T", d))
		}
	case *estree.ExportAllDeclaration:
		p.write("export *")
		if s.Exported != nil {
			p.write(" as " + s.Exported.Name)
		}
		p.write(" from ")
		p.literal(s.Source)
		p.write(";")
	case *estree.ForStatement:
		p.write("for (")
		switch init := s.Init.(type) {
		case *estree.VariableDeclaration:
			p.varDecl(init)
		case estree.Expression:
			p.expr(init, lLowest)
		}
		p.write(";")
		if s.Test != nil {
			p.write(" ")
			p.expr(s.Test, lLowest)
		}
		p.write(";")
		if s.Update != nil {
			p.write(" ")
			p.expr(s.Update, lLowest)
		}
		p.write(") ")
		p.stmt(s.Body)
	case *estree.ForInStatement:
		p.write("for (")
		p.forLeft(s.Left)
		p.write(" in ")
		p.expr(s.Right, lLowest)
		p.write(") ")
		p.stmt(s.Body)
	case *estree.ForOfStatement:
		p.write("for ")
		if s.Await {
			p.write("await ")
		}
		p.write("(")
		p.forLeft(s.Left)
		p.write(" of ")
		p.expr(s.Right, lAssign)
		p.write(") ")
		p.stmt(s.Body)
	case *estree.WhileStatement:
		p.write("while (")
		p.expr(s.Test, lLowest)
		p.write(") ")
		p.stmt(s.Body)
	case *estree.DoWhileStatement:
		p.write("do ")
		p.stmt(s.Body)
		p.write(" while (")
		p.expr(s.Test, lLowest)
		p.write(");")
	case *estree.TryStatement:
		p.write("try ")
		p.block(s.Block)
		if h := s.Handler; h != nil {
			p.write(" catch ")
			if h.Param != nil {
				p.write("(")
				p.pattern(h.Param)
				p.write(") ")
			}
			p.block(h.Body)
		}
		if s.Finalizer != nil {
			p.write(" finally ")
			p.block(s.Finalizer)
		}
	case *estree.SwitchStatement:
		p.switchStmt(s)
	case *estree.LabeledStatement:
		p.write(s.Label.Name + ": ")
		p.stmt(s.Body)
	case *estree.BreakStatement:
		p.jump("break", s.Label)
	case *estree.ContinueStatement:
		p.jump("continue", s.Label)
	case *estree.Raw:
		p.write(s.Text)
	default:
		panic(fmt.Sprintf("printer: unknown statement %T", s))
	}
}

func (p *printer) block(b *estree.BlockStatement) {
	if len(b.Body) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent++
	for _, s := range b.Body {
		p.newline()
		p.stmt(s)
	}
	p.indent--
	p.newline()
	p.write("}")
}

// forLeft prints the binding of a for-in or for-of loop.
func (p *printer) forLeft(left estree.Node) {
	switch l := left.(type) {
	case *estree.VariableDeclaration:
		p.varDecl(l)
	case estree.Pattern:
		p.pattern(l)
	case estree.Expression:
		p.expr(l, lCall)
	default:
		panic(fmt.Sprintf("printer: unknown for loop binding %T", left))
	}
}

func (p *printer) switchStmt(s *estree.SwitchStatement) {
	p.write("switch (")
	p.expr(s.Discriminant, lLowest)
	p.write(") ")
	if len(s.Cases) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent++
	for _, c := range s.Cases {
		p.newline()
		if c.Test == nil {
			p.write("default:")
		} else {
			p.write("case ")
			p.expr(c.Test, lLowest)
			p.write(":")
		}
		p.indent++
		for _, st := range c.Consequent {
			p.newline()
			p.stmt(st)
		}
		p.indent--
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) jump(keyword string, label *estree.Identifier) {
	p.write(keyword)
	if label != nil {
		p.write(" " + label.Name)
	}
	p.write(";")
}

func (p *printer) varDecl(d *estree.VariableDeclaration) {
	p.write(d.Keyword + " ")
	for i, decl := range d.Declarations {
		if i > 0 {
			p.write(", ")
		}
		p.pattern(decl.ID)
		if decl.Init != nil {
			p.write(" = ")
			p.expr(decl.Init, lAssign)
		}
	}
}

func (p *printer) importDecl(d *estree.ImportDeclaration) {
	p.write("import ")
	var named []*estree.ImportSpecifier
	wrote := false
	for _, spec := range d.Specifiers {
		switch spec := spec.(type) {
		case *estree.ImportDefaultSpecifier:
			p.write(spec.Local.Name)
			wrote = true
		case *estree.ImportNamespaceSpecifier:
			if wrote {
				p.write(", ")
			}
			p.write("* as " + spec.Local.Name)
			wrote = true
		case *estree.ImportSpecifier:
			named = append(named, spec)
		}
	}
	if len(named) > 0 {
		if wrote {
			p.write(", ")
		}
		p.write("{")
		for i, spec := range named {
			if i > 0 {
				p.write(", ")
			}
			p.write(spec.Imported.Name)
			if spec.Local != nil && spec.Local.Name != spec.Imported.Name {
				p.write(" as " + spec.Local.Name)
			}
		}
		p.write("}")
		wrote = true
	}
	if wrote {
		p.write(" from ")
	}
	p.literal(d.Source)
	p.write(";")
}

func (p *printer) function(async, generator bool, id *estree.Identifier, params []estree.Pattern, body *estree.BlockStatement) {
	if async {
		p.write("async ")
	}
	p.write("function")
	if generator {
		p.write("*")
	}
	if id != nil {
		p.write(" " + id.Name)
	} else {
		p.write(" ")
	}
	p.params(params)
	p.write(" ")
	p.block(body)
}

func (p *printer) params(params []estree.Pattern) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.pattern(param)
	}
	p.write(")")
}

func (p *printer) class(id *estree.Identifier, super estree.Expression, body []estree.ClassMember) {
	p.write("class")
	if id != nil {
		p.write(" " + id.Name)
	}
	if super != nil {
		p.write(" extends ")
		p.expr(super, lCall)
	}
	if len(body) == 0 {
		p.write(" {}")
		return
	}
	p.write(" {")
	p.indent++
	for _, m := range body {
		p.newline()
		switch m := m.(type) {
		case *estree.MethodDefinition:
			p.method(m)
		case *estree.Raw:
			p.write(m.Text)
		}
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) method(m *estree.MethodDefinition) {
	if m.Static {
		p.write("static ")
	}
	fn := m.Value
	if fn.Async {
		p.write("async ")
	}
	if fn.Generator {
		p.write("*")
	}
	switch m.MethodKind {
	case "get", "set":
		p.write(m.MethodKind + " ")
	}
	p.propertyKey(m.Key, m.Computed)
	p.params(fn.Params)
	p.write(" ")
	p.block(fn.Body)
}

// startsAmbiguously reports whether e printed in statement position would
// begin with "{", "function" or "class" and so needs wrapping parentheses.
func startsAmbiguously(e estree.Expression) bool {
	for {
		switch n := e.(type) {
		case *estree.ObjectExpression, *estree.FunctionExpression, *estree.ClassExpression:
			return true
		case *estree.CallExpression:
			if parenthesizedCallee(n.Callee) {
				return false
			}
			e = n.Callee
		case *estree.MemberExpression:
			if parenthesizedCallee(n.Object) {
				return false
			}
			e = n.Object
		case *estree.BinaryExpression:
			e = n.Left
		case *estree.LogicalExpression:
			e = n.Left
		case *estree.ConditionalExpression:
			e = n.Test
		case *estree.SequenceExpression:
			if len(n.Expressions) == 0 {
				return false
			}
			e = n.Expressions[0]
		case *estree.AssignmentExpression:
			if _, ok := n.Left.(*estree.ObjectPattern); ok {
				return true
			}
			left, ok := n.Left.(estree.Expression)
			if !ok {
				return false
			}
			e = left
		case *estree.UpdateExpression:
			if n.Prefix {
				return false
			}
			e = n.Argument
		case *estree.TaggedTemplateExpression:
			if parenthesizedCallee(n.Tag) {
				return false
			}
			e = n.Tag
		default:
			return false
		}
	}
}

// parenthesizedCallee reports whether callee always wraps e.
func parenthesizedCallee(e estree.Expression) bool {
	switch e.(type) {
	case *estree.FunctionExpression, *estree.ClassExpression:
		return true
	}
	return false
}

// ---- expressions ----

func (p *printer) wrap(need bool, f func()) {
	if need {
		p.write("(")
	}
	f()
	if need {
		p.write(")")
	}
}

func (p *printer) expr(e estree.Expression, prec level) {
	switch e := e.(type) {
	case *estree.Identifier:
		p.write(e.Name)
	case *estree.Literal:
		p.literal(e)
	case *estree.ThisExpression:
		p.write("this")
	case *estree.ArrayExpression:
		p.write("[")
		for i, el := range e.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el != nil {
				p.expr(el, lAssign)
			}
		}
		if n := len(e.Elements); n > 0 && e.Elements[n-1] == nil {
			p.write(",")
		}
		p.write("]")
	case *estree.ObjectExpression:
		p.object(e)
	case *estree.SpreadElement:
		p.write("...")
		p.expr(e.Argument, lAssign)
	case *estree.FunctionExpression:
		p.function(e.Async, e.Generator, e.ID, e.Params, e.Body)
	case *estree.ArrowFunctionExpression:
		p.wrap(prec > lAssign, func() { p.arrow(e) })
	case *estree.ClassExpression:
		p.class(e.ID, e.SuperClass, e.Body)
	case *estree.CallExpression:
		p.wrap(prec > lCall, func() {
			p.callee(e.Callee)
			if e.Optional {
				p.write("?.")
			}
			p.args(e.Arguments)
		})
	case *estree.NewExpression:
		p.wrap(prec > lCall, func() {
			p.write("new ")
			if hasCall(e.Callee) {
				p.write("(")
				p.expr(e.Callee, lLowest)
				p.write(")")
			} else {
				p.expr(e.Callee, lMember)
			}
			p.args(e.Arguments)
		})
	case *estree.MemberExpression:
		p.wrap(prec > lMember, func() {
			p.callee(e.Object)
			switch {
			case e.Computed:
				if e.Optional {
					p.write("?.")
				}
				p.write("[")
				p.expr(e.Property, lLowest)
				p.write("]")
			case e.Optional:
				p.write("?.")
				p.expr(e.Property, lMember)
			default:
				p.write(".")
				p.expr(e.Property, lMember)
			}
		})
	case *estree.ConditionalExpression:
		p.wrap(prec > lConditional, func() {
			p.expr(e.Test, lNullish)
			p.write(" ? ")
			p.expr(e.Consequent, lAssign)
			p.write(" : ")
			p.expr(e.Alternate, lAssign)
		})
	case *estree.BinaryExpression:
		p.binary(e.Operator, e.Left, e.Right, prec)
	case *estree.LogicalExpression:
		p.binary(e.Operator, e.Left, e.Right, prec)
	case *estree.UnaryExpression:
		p.wrap(prec > lPrefix, func() {
			p.write(e.Operator)
			if isWordOperator(e.Operator) || startsWithSameSign(e.Operator, e.Argument) {
				p.write(" ")
			}
			p.expr(e.Argument, lPrefix)
		})
	case *estree.UpdateExpression:
		if e.Prefix {
			p.wrap(prec > lPrefix, func() {
				p.write(e.Operator)
				p.expr(e.Argument, lPrefix)
			})
		} else {
			p.wrap(prec > lPostfix, func() {
				p.expr(e.Argument, lPostfix)
				p.write(e.Operator)
			})
		}
	case *estree.AssignmentExpression:
		p.wrap(prec > lAssign, func() {
			p.pattern(e.Left)
			p.write(" " + e.Operator + " ")
			p.expr(e.Right, lAssign)
		})
	case *estree.SequenceExpression:
		p.wrap(prec > lComma, func() {
			for i, x := range e.Expressions {
				if i > 0 {
					p.write(", ")
				}
				p.expr(x, lAssign)
			}
		})
	case *estree.AwaitExpression:
		p.wrap(prec > lPrefix, func() {
			p.write("await ")
			p.expr(e.Argument, lPrefix)
		})
	case *estree.YieldExpression:
		p.wrap(prec > lAssign, func() {
			p.write("yield")
			if e.Delegate {
				p.write("*")
			}
			if e.Argument != nil {
				p.write(" ")
				p.expr(e.Argument, lAssign)
			}
		})
	case *estree.TemplateLiteral:
		p.template(e)
	case *estree.TaggedTemplateExpression:
		p.wrap(prec > lCall, func() {
			p.callee(e.Tag)
			p.template(e.Quasi)
		})
	case *estree.JSXElement:
		p.jsxElement(e)
	case *estree.JSXFragment:
		p.write("<>")
		p.jsxChildren(e.Children)
		p.write("</>")
	case *estree.JSXEmptyExpression:
	case *estree.Raw:
		p.write(e.Text)
	default:
		panic(fmt.Sprintf("printer: unknown expression %T", e))
	}
}

func (p *printer) template(t *estree.TemplateLiteral) {
	p.write("`")
	for i, q := range t.Quasis {
		p.write(q.Raw)
		if i < len(t.Expressions) {
			p.write("${")
			p.expr(t.Expressions[i], lLowest)
			p.write("}")
		}
	}
	p.write("`")
}

// callee prints the object of a member access or the callee of a call.
// Anything binding looser than a call, and function expressions, which
// would otherwise be read as declarations, are parenthesized.
func (p *printer) callee(e estree.Expression) {
	switch e.(type) {
	case *estree.FunctionExpression, *estree.ClassExpression:
		p.write("(")
		p.expr(e, lLowest)
		p.write(")")
	case *estree.Literal:
		if _, isNum := e.(*estree.Literal).Value.(float64); isNum {
			p.write("(")
			p.expr(e, lLowest)
			p.write(")")
			return
		}
		p.expr(e, lCall)
	default:
		p.expr(e, lCall)
	}
}

func hasCall(e estree.Expression) bool {
	for {
		switch n := e.(type) {
		case *estree.CallExpression:
			return true
		case *estree.MemberExpression:
			e = n.Object
		default:
			return false
		}
	}
}

func (p *printer) args(args []estree.Expression) {
	p.write("(")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		p.expr(a, lAssign)
	}
	p.write(")")
}

func (p *printer) binary(op string, left, right estree.Expression, prec level) {
	lvl, ok := binaryLevels[op]
	if !ok {
		panic(fmt.Sprintf("printer: unknown binary operator %q", op))
	}
	p.wrap(prec > lvl, func() {
		leftLevel, rightLevel := lvl, lvl+1
		if op == "**" {
			leftLevel, rightLevel = lvl+1, lvl
		}
		// ?? cannot be mixed with || or && without parentheses.
		if op == "??" {
			leftLevel, rightLevel = lBitwiseOr, lBitwiseOr
		}
		p.expr(left, leftLevel)
		p.write(" " + op + " ")
		p.expr(right, rightLevel)
	})
}

func isWordOperator(op string) bool {
	return op == "typeof" || op == "void" || op == "delete"
}

// startsWithSameSign guards against printing "- -x" as "--x".
func startsWithSameSign(op string, arg estree.Expression) bool {
	if op != "-" && op != "+" {
		return false
	}
	switch a := arg.(type) {
	case *estree.UnaryExpression:
		return a.Operator == op
	case *estree.UpdateExpression:
		return a.Prefix && a.Operator[:1] == op
	}
	return false
}

func (p *printer) arrow(fn *estree.ArrowFunctionExpression) {
	if fn.Async {
		p.write("async ")
	}
	p.params(fn.Params)
	p.write(" => ")
	if fn.Body != nil {
		p.block(fn.Body)
		return
	}
	if startsAmbiguously(fn.ExprBody) {
		if _, isObj := leftmost(fn.ExprBody).(*estree.ObjectExpression); isObj {
			p.write("(")
			p.expr(fn.ExprBody, lLowest)
			p.write(")")
			return
		}
	}
	p.expr(fn.ExprBody, lAssign)
}

func leftmost(e estree.Expression) estree.Expression {
	for {
		switch n := e.(type) {
		case *estree.CallExpression:
			e = n.Callee
		case *estree.MemberExpression:
			e = n.Object
		case *estree.BinaryExpression:
			e = n.Left
		case *estree.LogicalExpression:
			e = n.Left
		case *estree.ConditionalExpression:
			e = n.Test
		default:
			return e
		}
	}
}

func (p *printer) object(o *estree.ObjectExpression) {
	if len(o.Properties) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	for i, m := range o.Properties {
		if i > 0 {
			p.write(", ")
		}
		p.objectMember(m)
	}
	p.write("}")
}

func (p *printer) objectMember(m estree.ObjectMember) {
	switch m := m.(type) {
	case *estree.Property:
		p.property(m)
	case *estree.SpreadElement:
		p.write("...")
		p.expr(m.Argument, lAssign)
	case *estree.RestElement:
		p.write("...")
		p.pattern(m.Argument)
	default:
		panic(fmt.Sprintf("printer: unknown object member %T", m))
	}
}

func (p *printer) property(prop *estree.Property) {
	if fn, ok := prop.Value.(*estree.FunctionExpression); ok && (prop.Method || prop.PropKind == "get" || prop.PropKind == "set") {
		if fn.Async {
			p.write("async ")
		}
		if fn.Generator {
			p.write("*")
		}
		if prop.PropKind == "get" || prop.PropKind == "set" {
			p.write(prop.PropKind + " ")
		}
		p.propertyKey(prop.Key, prop.Computed)
		p.params(fn.Params)
		p.write(" ")
		p.block(fn.Body)
		return
	}
	if prop.Shorthand {
		switch v := prop.Value.(type) {
		case *estree.AssignmentPattern:
			p.pattern(v)
			return
		case *estree.Identifier:
			p.write(v.Name)
			return
		case *estree.Raw:
			p.write(v.Text)
			return
		}
	}
	p.propertyKey(prop.Key, prop.Computed)
	p.write(": ")
	switch v := prop.Value.(type) {
	case estree.Expression:
		// Identifier, MemberExpression and Raw are both patterns and
		// expressions; printing them as expressions is equivalent.
		p.expr(v, lAssign)
	case estree.Pattern:
		p.pattern(v)
	default:
		panic(fmt.Sprintf("printer: unknown property value %T", v))
	}
}

func (p *printer) propertyKey(key estree.Expression, computed bool) {
	if computed {
		p.write("[")
		p.expr(key, lAssign)
		p.write("]")
		return
	}
	switch k := key.(type) {
	case *estree.Identifier:
		p.write(k.Name)
	case *estree.Literal:
		p.literal(k)
	default:
		p.expr(key, lAssign)
	}
}

// ---- patterns ----

func (p *printer) pattern(pat estree.Pattern) {
	switch pat := pat.(type) {
	case *estree.Identifier:
		p.write(pat.Name)
	case *estree.MemberExpression:
		p.expr(pat, lMember)
	case *estree.ObjectPattern:
		if len(pat.Properties) == 0 {
			p.write("{}")
			return
		}
		p.write("{")
		for i, m := range pat.Properties {
			if i > 0 {
				p.write(", ")
			}
			p.objectMember(m)
		}
		p.write("}")
	case *estree.ArrayPattern:
		p.write("[")
		for i, el := range pat.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el != nil {
				p.pattern(el)
			}
		}
		if n := len(pat.Elements); n > 0 && pat.Elements[n-1] == nil {
			p.write(",")
		}
		p.write("]")
	case *estree.AssignmentPattern:
		p.pattern(pat.Left)
		p.write(" = ")
		p.expr(pat.Right, lAssign)
	case *estree.RestElement:
		p.write("...")
		p.pattern(pat.Argument)
	case *estree.Raw:
		p.write(pat.Text)
	default:
		panic(fmt.Sprintf("printer: unknown pattern %T", pat))
	}
}

// ---- literals ----

func (p *printer) literal(l *estree.Literal) {
	if l.Raw != "" {
		p.write(l.Raw)
		return
	}
	switch v := l.Value.(type) {
	case nil:
		p.write("null")
	case bool:
		p.write(strconv.FormatBool(v))
	case string:
		p.write(Quote(v))
	case float64:
		p.write(formatNumber(v))
	case int:
		p.write(strconv.Itoa(v))
	default:
		panic(fmt.Sprintf("printer: unknown literal value %T", v))
	}
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Quote returns s as a double-quoted JavaScript string literal.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\u2028':
			sb.WriteString(`\u2028`)
		case '\u2029':
			sb.WriteString(`\u2029`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\x%02x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// ---- JSX ----

func (p *printer) jsxElement(el *estree.JSXElement) {
	p.write("<")
	p.jsxName(el.OpeningElement.Name)
	for _, attr := range el.OpeningElement.Attributes {
		p.write(" ")
		switch a := attr.(type) {
		case *estree.JSXAttribute:
			p.jsxName(a.Name)
			if a.Value != nil {
				p.write("=")
				p.jsxAttrValue(a.Value)
			}
		case *estree.JSXSpreadAttribute:
			p.write("{...")
			p.expr(a.Argument, lAssign)
			p.write("}")
		}
	}
	if el.OpeningElement.SelfClosing || el.ClosingElement == nil {
		p.write(" />")
		return
	}
	p.write(">")
	p.jsxChildren(el.Children)
	p.write("</")
	p.jsxName(el.ClosingElement.Name)
	p.write(">")
}

func (p *printer) jsxAttrValue(v estree.Node) {
	switch v := v.(type) {
	case *estree.Literal:
		s, ok := v.Value.(string)
		if !ok {
			p.write("{")
			p.literal(v)
			p.write("}")
			return
		}
		// JSX attribute strings have no escapes; pick a quote that works.
		if strings.Contains(s, `"`) {
			p.write("'" + s + "'")
		} else {
			p.write(`"` + s + `"`)
		}
	case *estree.JSXExpressionContainer:
		p.write("{")
		p.expr(v.Expression, lAssign)
		p.write("}")
	case *estree.JSXElement:
		p.jsxElement(v)
	case *estree.JSXFragment:
		p.expr(v, lLowest)
	default:
		panic(fmt.Sprintf("printer: unknown JSX attribute value %T", v))
	}
}

func (p *printer) jsxChildren(children []estree.JSXChild) {
	for _, c := range children {
		switch c := c.(type) {
		case *estree.JSXText:
			p.write(c.Value)
		case *estree.JSXExpressionContainer:
			p.write("{")
			p.expr(c.Expression, lAssign)
			p.write("}")
		case *estree.JSXElement:
			p.jsxElement(c)
		case *estree.JSXFragment:
			p.expr(c, lLowest)
		}
	}
}

func (p *printer) jsxName(n estree.JSXName) {
	switch n := n.(type) {
	case *estree.JSXIdentifier, *estree.JSXMemberExpression, *estree.JSXNamespacedName:
		p.write(estree.JSXNameString(n))
	default:
		panic(fmt.Sprintf("printer: unknown JSX name %T", n))
	}
}
