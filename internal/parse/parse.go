// Package parse turns JavaScript + JSX source into estree trees using the
// tree-sitter JavaScript grammar.
//
// Constructs estree does not model (class fields, private members, regex
// flags beyond the raw text, and so on) are kept as estree.Raw nodes holding
// their source text. The rewriter cannot see into a Raw node, so JSX inside
// one fails the parse with ErrUnsupportedJSX instead of being skipped.
package parse

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/estree"
)

// ErrSyntax is returned when the source does not parse.
var ErrSyntax = errors.New("parse: syntax error")

// ErrUnsupportedJSX is returned when JSX appears inside a construct the
// parser keeps as raw text.
var ErrUnsupportedJSX = errors.New("parse: JSX inside unsupported construct")

// Parser converts source text to estree. A Parser is safe for concurrent use;
// each call creates its own tree-sitter parser.
type Parser struct {
	origin estree.Origin
	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithShorthand marks every parsed element as shorthand-derived instead of
// explicit markup. Use it for JSX generated from markdown, where <h1> stands
// for "# heading" and should be overridable.
func WithShorthand(shorthand bool) Option {
	return func(p *Parser) {
		if shorthand {
			p.origin = estree.OriginShorthand
		} else {
			p.origin = estree.OriginExplicit
		}
	}
}

// WithLogger sets the logger used for warnings about unmodelled constructs.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New returns a Parser. Elements are explicit unless WithShorthand is given.
func New(opts ...Option) *Parser {
	p := &Parser{origin: estree.OriginExplicit, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Source parses src with a Parser built from opts.
func Source(ctx context.Context, src []byte, opts ...Option) (*estree.Program, error) {
	return New(opts...).Parse(ctx, src)
}

// Parse converts src into a Program.
func (p *Parser) Parse(ctx context.Context, src []byte) (*estree.Program, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			pt := bad.StartPoint()
			return nil, fmt.Errorf("%w at %d:%d", ErrSyntax, pt.Row+1, pt.Column+1)
		}
		return nil, ErrSyntax
	}

	c := &converter{src: src, origin: p.origin, logger: p.logger}
	prog := &estree.Program{SourceType: "module"}
	for _, n := range named(root) {
		prog.Body = append(prog.Body, c.statement(n))
	}
	if c.err != nil {
		return nil, c.err
	}
	return prog, nil
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

// named returns n's named children without comments.
func named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "comment" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// hasToken reports whether n has a direct anonymous child of type tok.
func hasToken(n *sitter.Node, tok string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if !c.IsNamed() && c.Type() == tok {
			return true
		}
	}
	return false
}

type converter struct {
	src    []byte
	origin estree.Origin
	logger *zap.Logger
	err    error // first ErrUnsupportedJSX hit
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// raw keeps n as opaque source text. JSX inside n would escape the rewriter,
// so it records ErrUnsupportedJSX.
func (c *converter) raw(n *sitter.Node) *estree.Raw {
	if containsJSX(n) && c.err == nil {
		pt := n.StartPoint()
		c.logger.Debug("JSX inside unsupported construct",
			zap.String("construct", n.Type()),
			zap.Uint32("line", pt.Row+1),
			zap.Uint32("column", pt.Column+1),
		)
		c.err = fmt.Errorf("%w: %s at %d:%d", ErrUnsupportedJSX, n.Type(), pt.Row+1, pt.Column+1)
	}
	return &estree.Raw{Text: c.text(n)}
}

func containsJSX(n *sitter.Node) bool {
	switch n.Type() {
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return true
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if containsJSX(n.NamedChild(i)) {
			return true
		}
	}
	return false
}

// ---- statements ----

func (c *converter) statement(n *sitter.Node) estree.Statement {
	switch n.Type() {
	case "expression_statement":
		kids := named(n)
		if len(kids) == 0 {
			return &estree.EmptyStatement{}
		}
		return &estree.ExpressionStatement{Expression: c.expression(kids[0])}
	case "statement_block":
		return c.block(n)
	case "return_statement":
		ret := &estree.ReturnStatement{}
		if kids := named(n); len(kids) > 0 {
			ret.Argument = c.expression(kids[0])
		}
		return ret
	case "if_statement":
		stmt := &estree.IfStatement{
			Test:       c.expression(n.ChildByFieldName("condition")),
			Consequent: c.statement(n.ChildByFieldName("consequence")),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if kids := named(alt); len(kids) > 0 {
				stmt.Alternate = c.statement(kids[0])
			}
		}
		return stmt
	case "throw_statement":
		return &estree.ThrowStatement{Argument: c.expression(named(n)[0])}
	case "empty_statement":
		return &estree.EmptyStatement{}
	case "lexical_declaration", "variable_declaration":
		return c.variableDeclaration(n)
	case "function_declaration", "generator_function_declaration":
		return c.functionDeclaration(n)
	case "class_declaration":
		return &estree.ClassDeclaration{
			ID:         c.optionalIdent(n.ChildByFieldName("name")),
			SuperClass: c.superClass(n),
			Body:       c.classBody(n.ChildByFieldName("body")),
		}
	case "import_statement":
		return c.importStatement(n)
	case "export_statement":
		return c.exportStatement(n)
	case "for_statement":
		return c.forStatement(n)
	case "for_in_statement":
		return c.forInStatement(n)
	case "while_statement":
		return &estree.WhileStatement{
			Test: c.expression(n.ChildByFieldName("condition")),
			Body: c.statement(n.ChildByFieldName("body")),
		}
	case "do_statement":
		return &estree.DoWhileStatement{
			Body: c.statement(n.ChildByFieldName("body")),
			Test: c.expression(n.ChildByFieldName("condition")),
		}
	case "try_statement":
		return c.tryStatement(n)
	case "switch_statement":
		return c.switchStatement(n)
	case "labeled_statement":
		return &estree.LabeledStatement{
			Label: estree.Ident(c.text(n.ChildByFieldName("label"))),
			Body:  c.statement(n.ChildByFieldName("body")),
		}
	case "break_statement":
		return &estree.BreakStatement{Label: c.optionalIdent(n.ChildByFieldName("label"))}
	case "continue_statement":
		return &estree.ContinueStatement{Label: c.optionalIdent(n.ChildByFieldName("label"))}
	}
	return c.raw(n)
}

func (c *converter) forStatement(n *sitter.Node) *estree.ForStatement {
	loop := &estree.ForStatement{Body: c.statement(n.ChildByFieldName("body"))}
	if init := n.ChildByFieldName("initializer"); init != nil {
		switch init.Type() {
		case "lexical_declaration", "variable_declaration":
			loop.Init = c.variableDeclaration(init)
		default:
			if e := c.clauseExpression(init); e != nil {
				loop.Init = e
			}
		}
	}
	if cond := n.ChildByFieldName("condition"); cond != nil {
		loop.Test = c.clauseExpression(cond)
	}
	if inc := n.ChildByFieldName("increment"); inc != nil {
		loop.Update = c.expression(inc)
	}
	return loop
}

// clauseExpression converts the init or test clause of a for loop, which the
// grammar may wrap in an expression or empty statement. It returns nil for
// an empty clause.
func (c *converter) clauseExpression(n *sitter.Node) estree.Expression {
	switch n.Type() {
	case "empty_statement", ";":
		return nil
	case "expression_statement":
		kids := named(n)
		if len(kids) == 0 {
			return nil
		}
		return c.expression(kids[0])
	}
	return c.expression(n)
}

// forInStatement converts both for-in and for-of loops, which share a node
// type in the grammar.
func (c *converter) forInStatement(n *sitter.Node) estree.Statement {
	var left estree.Node
	leftNode := n.ChildByFieldName("left")
	if kind := n.ChildByFieldName("kind"); kind != nil {
		left = &estree.VariableDeclaration{
			Keyword:      c.text(kind),
			Declarations: []*estree.VariableDeclarator{{ID: c.pattern(leftNode)}},
		}
	} else {
		left = c.pattern(leftNode)
	}
	right := c.expression(n.ChildByFieldName("right"))
	body := c.statement(n.ChildByFieldName("body"))
	if op := n.ChildByFieldName("operator"); op != nil && c.text(op) == "of" {
		return &estree.ForOfStatement{Left: left, Right: right, Body: body, Await: hasToken(n, "await")}
	}
	return &estree.ForInStatement{Left: left, Right: right, Body: body}
}

func (c *converter) tryStatement(n *sitter.Node) *estree.TryStatement {
	try := &estree.TryStatement{Block: c.block(n.ChildByFieldName("body"))}
	if h := n.ChildByFieldName("handler"); h != nil {
		clause := &estree.CatchClause{Body: c.block(h.ChildByFieldName("body"))}
		if param := h.ChildByFieldName("parameter"); param != nil {
			clause.Param = c.pattern(param)
		}
		try.Handler = clause
	}
	if f := n.ChildByFieldName("finalizer"); f != nil {
		try.Finalizer = c.block(f.ChildByFieldName("body"))
	}
	return try
}

func (c *converter) switchStatement(n *sitter.Node) *estree.SwitchStatement {
	sw := &estree.SwitchStatement{Discriminant: c.expression(n.ChildByFieldName("value"))}
	body := n.ChildByFieldName("body")
	if body == nil {
		return sw
	}
	for _, k := range named(body) {
		sc := &estree.SwitchCase{}
		value := k.ChildByFieldName("value")
		if k.Type() == "switch_case" && value != nil {
			sc.Test = c.expression(value)
		}
		for _, st := range named(k) {
			if value != nil && st.Equal(value) {
				continue
			}
			sc.Consequent = append(sc.Consequent, c.statement(st))
		}
		sw.Cases = append(sw.Cases, sc)
	}
	return sw
}

func (c *converter) block(n *sitter.Node) *estree.BlockStatement {
	b := &estree.BlockStatement{}
	for _, s := range named(n) {
		b.Body = append(b.Body, c.statement(s))
	}
	return b
}

func (c *converter) variableDeclaration(n *sitter.Node) *estree.VariableDeclaration {
	keyword := "var"
	if n.Type() == "lexical_declaration" {
		keyword = n.Child(0).Type()
	}
	decl := &estree.VariableDeclaration{Keyword: keyword}
	for _, d := range named(n) {
		if d.Type() != "variable_declarator" {
			continue
		}
		vd := &estree.VariableDeclarator{ID: c.pattern(d.ChildByFieldName("name"))}
		if v := d.ChildByFieldName("value"); v != nil {
			vd.Init = c.expression(v)
		}
		decl.Declarations = append(decl.Declarations, vd)
	}
	return decl
}

func (c *converter) functionDeclaration(n *sitter.Node) *estree.FunctionDeclaration {
	return &estree.FunctionDeclaration{
		ID:        c.optionalIdent(n.ChildByFieldName("name")),
		Params:    c.params(n.ChildByFieldName("parameters")),
		Body:      c.block(n.ChildByFieldName("body")),
		Async:     hasToken(n, "async"),
		Generator: hasToken(n, "*"),
	}
}

func (c *converter) functionExpression(n *sitter.Node) *estree.FunctionExpression {
	return &estree.FunctionExpression{
		ID:        c.optionalIdent(n.ChildByFieldName("name")),
		Params:    c.params(n.ChildByFieldName("parameters")),
		Body:      c.block(n.ChildByFieldName("body")),
		Async:     hasToken(n, "async"),
		Generator: hasToken(n, "*"),
	}
}

func (c *converter) optionalIdent(n *sitter.Node) *estree.Identifier {
	if n == nil {
		return nil
	}
	return estree.Ident(c.text(n))
}

func (c *converter) superClass(n *sitter.Node) estree.Expression {
	for _, k := range named(n) {
		if k.Type() == "class_heritage" {
			if kids := named(k); len(kids) > 0 {
				return c.expression(kids[0])
			}
		}
	}
	return nil
}

func (c *converter) classBody(n *sitter.Node) []estree.ClassMember {
	if n == nil {
		return nil
	}
	var members []estree.ClassMember
	for _, m := range named(n) {
		if m.Type() != "method_definition" {
			members = append(members, c.raw(m))
			continue
		}
		key, computed := c.propertyKey(m.ChildByFieldName("name"))
		kind := "method"
		switch {
		case hasToken(m, "get"):
			kind = "get"
		case hasToken(m, "set"):
			kind = "set"
		case !computed && isConstructorKey(key):
			kind = "constructor"
		}
		members = append(members, &estree.MethodDefinition{
			Key:        key,
			Value:      c.methodFunction(m),
			MethodKind: kind,
			Static:     hasToken(m, "static"),
			Computed:   computed,
		})
	}
	return members
}

func isConstructorKey(key estree.Expression) bool {
	id, ok := key.(*estree.Identifier)
	return ok && id.Name == "constructor"
}

func (c *converter) methodFunction(m *sitter.Node) *estree.FunctionExpression {
	return &estree.FunctionExpression{
		Params:    c.params(m.ChildByFieldName("parameters")),
		Body:      c.block(m.ChildByFieldName("body")),
		Async:     hasToken(m, "async"),
		Generator: hasToken(m, "*"),
	}
}

func (c *converter) importStatement(n *sitter.Node) *estree.ImportDeclaration {
	imp := &estree.ImportDeclaration{Source: c.stringLiteral(n.ChildByFieldName("source"))}
	for _, k := range named(n) {
		if k.Type() != "import_clause" {
			continue
		}
		for _, part := range named(k) {
			switch part.Type() {
			case "identifier":
				imp.Specifiers = append(imp.Specifiers, &estree.ImportDefaultSpecifier{Local: estree.Ident(c.text(part))})
			case "namespace_import":
				if ids := named(part); len(ids) > 0 {
					imp.Specifiers = append(imp.Specifiers, &estree.ImportNamespaceSpecifier{Local: estree.Ident(c.text(ids[0]))})
				}
			case "named_imports":
				for _, spec := range named(part) {
					if spec.Type() != "import_specifier" {
						continue
					}
					imported := c.moduleExportName(spec.ChildByFieldName("name"))
					local := imported
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						local = estree.Ident(c.text(alias))
					}
					imp.Specifiers = append(imp.Specifiers, &estree.ImportSpecifier{Imported: imported, Local: local})
				}
			}
		}
	}
	return imp
}

// moduleExportName reads a specifier name, which may be a string literal.
func (c *converter) moduleExportName(n *sitter.Node) *estree.Identifier {
	if n.Type() == "string" {
		return estree.Ident(unquote(c.text(n)))
	}
	return estree.Ident(c.text(n))
}

func (c *converter) exportStatement(n *sitter.Node) estree.Statement {
	isDefault := hasToken(n, "default")
	if decl := n.ChildByFieldName("declaration"); decl != nil {
		stmt := c.statement(decl)
		if isDefault {
			return &estree.ExportDefaultDeclaration{Declaration: stmt}
		}
		return &estree.ExportNamedDeclaration{Declaration: stmt}
	}
	if value := n.ChildByFieldName("value"); value != nil {
		return &estree.ExportDefaultDeclaration{Declaration: c.defaultValue(value)}
	}

	var source *estree.Literal
	if s := n.ChildByFieldName("source"); s != nil {
		source = c.stringLiteral(s)
	}
	for _, k := range named(n) {
		switch k.Type() {
		case "export_clause":
			exp := &estree.ExportNamedDeclaration{Source: source}
			for _, spec := range named(k) {
				if spec.Type() != "export_specifier" {
					continue
				}
				local := c.moduleExportName(spec.ChildByFieldName("name"))
				exported := local
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					exported = c.moduleExportName(alias)
				}
				exp.Specifiers = append(exp.Specifiers, &estree.ExportSpecifier{Local: local, Exported: exported})
			}
			return exp
		case "namespace_export":
			all := &estree.ExportAllDeclaration{Source: source}
			if ids := named(k); len(ids) > 0 {
				all.Exported = c.moduleExportName(ids[0])
			}
			return all
		}
	}
	if hasToken(n, "*") && source != nil {
		return &estree.ExportAllDeclaration{Source: source}
	}
	return c.raw(n)
}

// defaultValue converts the value of export default. Anonymous functions and
// classes become declarations without a name, as in ESTree.
func (c *converter) defaultValue(n *sitter.Node) estree.Node {
	switch n.Type() {
	case "function", "function_expression", "generator_function":
		fn := c.functionExpression(n)
		return &estree.FunctionDeclaration{ID: fn.ID, Params: fn.Params, Body: fn.Body, Async: fn.Async, Generator: fn.Generator}
	case "class":
		return &estree.ClassDeclaration{
			ID:         c.optionalIdent(n.ChildByFieldName("name")),
			SuperClass: c.superClass(n),
			Body:       c.classBody(n.ChildByFieldName("body")),
		}
	}
	return c.expression(n)
}

// ---- expressions ----

func (c *converter) expression(n *sitter.Node) estree.Expression {
	switch n.Type() {
	case "parenthesized_expression":
		if kids := named(n); len(kids) > 0 {
			return c.expression(kids[0])
		}
	case "identifier", "property_identifier", "shorthand_property_identifier":
		return estree.Ident(c.text(n))
	case "undefined":
		return estree.Ident("undefined")
	case "this":
		return &estree.ThisExpression{}
	case "true":
		return &estree.Literal{Value: true}
	case "false":
		return &estree.Literal{Value: false}
	case "null":
		return &estree.Literal{Value: nil, Raw: "null"}
	case "number":
		return c.number(n)
	case "string":
		return c.stringLiteral(n)
	case "regex":
		return &estree.Literal{Raw: c.text(n)}
	case "array":
		arr := &estree.ArrayExpression{}
		for _, el := range c.elements(n) {
			if el == nil {
				arr.Elements = append(arr.Elements, nil)
				continue
			}
			arr.Elements = append(arr.Elements, c.expression(el))
		}
		return arr
	case "object":
		return c.object(n)
	case "spread_element":
		return estree.Spread(c.expression(named(n)[0]))
	case "function", "function_expression", "generator_function":
		return c.functionExpression(n)
	case "arrow_function":
		return c.arrow(n)
	case "class":
		return &estree.ClassExpression{
			ID:         c.optionalIdent(n.ChildByFieldName("name")),
			SuperClass: c.superClass(n),
			Body:       c.classBody(n.ChildByFieldName("body")),
		}
	case "call_expression":
		args := n.ChildByFieldName("arguments")
		if args != nil && args.Type() == "template_string" {
			return &estree.TaggedTemplateExpression{
				Tag:   c.expression(n.ChildByFieldName("function")),
				Quasi: c.template(args),
			}
		}
		if args == nil || args.Type() != "arguments" {
			return c.raw(n)
		}
		return &estree.CallExpression{
			Callee:    c.expression(n.ChildByFieldName("function")),
			Arguments: c.arguments(args),
			Optional:  isOptional(n),
		}
	case "new_expression":
		ne := &estree.NewExpression{Callee: c.expression(n.ChildByFieldName("constructor"))}
		if args := n.ChildByFieldName("arguments"); args != nil {
			ne.Arguments = c.arguments(args)
		}
		return ne
	case "member_expression":
		prop := n.ChildByFieldName("property")
		if prop.Type() == "private_property_identifier" {
			return c.raw(n)
		}
		return &estree.MemberExpression{
			Object:   c.expression(n.ChildByFieldName("object")),
			Property: estree.Ident(c.text(prop)),
			Optional: isOptional(n),
		}
	case "subscript_expression":
		return &estree.MemberExpression{
			Object:   c.expression(n.ChildByFieldName("object")),
			Property: c.expression(n.ChildByFieldName("index")),
			Computed: true,
			Optional: isOptional(n),
		}
	case "ternary_expression":
		return &estree.ConditionalExpression{
			Test:       c.expression(n.ChildByFieldName("condition")),
			Consequent: c.expression(n.ChildByFieldName("consequence")),
			Alternate:  c.expression(n.ChildByFieldName("alternative")),
		}
	case "binary_expression":
		op := c.text(n.ChildByFieldName("operator"))
		left := c.expression(n.ChildByFieldName("left"))
		right := c.expression(n.ChildByFieldName("right"))
		switch op {
		case "&&", "||", "??":
			return &estree.LogicalExpression{Operator: op, Left: left, Right: right}
		}
		return &estree.BinaryExpression{Operator: op, Left: left, Right: right}
	case "unary_expression":
		return &estree.UnaryExpression{
			Operator: c.text(n.ChildByFieldName("operator")),
			Argument: c.expression(n.ChildByFieldName("argument")),
		}
	case "update_expression":
		first := n.Child(0)
		prefix := first.Type() == "++" || first.Type() == "--"
		return &estree.UpdateExpression{
			Operator: c.text(n.ChildByFieldName("operator")),
			Argument: c.expression(n.ChildByFieldName("argument")),
			Prefix:   prefix,
		}
	case "assignment_expression":
		return &estree.AssignmentExpression{
			Operator: "=",
			Left:     c.pattern(n.ChildByFieldName("left")),
			Right:    c.expression(n.ChildByFieldName("right")),
		}
	case "augmented_assignment_expression":
		return &estree.AssignmentExpression{
			Operator: c.text(n.ChildByFieldName("operator")),
			Left:     c.pattern(n.ChildByFieldName("left")),
			Right:    c.expression(n.ChildByFieldName("right")),
		}
	case "sequence_expression":
		seq := &estree.SequenceExpression{}
		c.flattenSequence(n, seq)
		return seq
	case "await_expression":
		return &estree.AwaitExpression{Argument: c.expression(named(n)[0])}
	case "yield_expression":
		y := &estree.YieldExpression{Delegate: hasToken(n, "*")}
		if kids := named(n); len(kids) > 0 {
			y.Argument = c.expression(kids[0])
		}
		return y
	case "template_string":
		return c.template(n)
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return c.jsx(n)
	}
	return c.raw(n)
}

// template splits a template string into the raw text around each
// substitution. Quasis are cut by byte offset so escape sequences and
// fragments stay exactly as written.
func (c *converter) template(n *sitter.Node) *estree.TemplateLiteral {
	tl := &estree.TemplateLiteral{}
	start := n.StartByte() + 1
	for _, k := range named(n) {
		if k.Type() != "template_substitution" {
			continue
		}
		tl.Quasis = append(tl.Quasis, &estree.TemplateElement{Raw: string(c.src[start:k.StartByte()])})
		if kids := named(k); len(kids) > 0 {
			tl.Expressions = append(tl.Expressions, c.expression(kids[0]))
		}
		start = k.EndByte()
	}
	tl.Quasis = append(tl.Quasis, &estree.TemplateElement{Raw: string(c.src[start : n.EndByte()-1]), Tail: true})
	return tl
}

func (c *converter) flattenSequence(n *sitter.Node, seq *estree.SequenceExpression) {
	for _, k := range named(n) {
		if k.Type() == "sequence_expression" {
			c.flattenSequence(k, seq)
			continue
		}
		seq.Expressions = append(seq.Expressions, c.expression(k))
	}
}

func isOptional(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		switch n.Child(i).Type() {
		case "optional_chain", "?.":
			return true
		}
	}
	return false
}

func (c *converter) arguments(n *sitter.Node) []estree.Expression {
	var args []estree.Expression
	for _, a := range named(n) {
		args = append(args, c.expression(a))
	}
	return args
}

// elements returns the entries of an array or array pattern, nil for holes.
func (c *converter) elements(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	pending := true
	for i := 0; i < int(n.ChildCount()); i++ {
		k := n.Child(i)
		switch {
		case k.Type() == ",":
			if pending {
				out = append(out, nil)
			}
			pending = true
		case k.IsNamed() && k.Type() != "comment":
			out = append(out, k)
			pending = false
		}
	}
	return out
}

func (c *converter) number(n *sitter.Node) *estree.Literal {
	raw := c.text(n)
	lit := &estree.Literal{Raw: raw}
	clean := strings.ReplaceAll(raw, "_", "")
	if strings.HasSuffix(clean, "n") {
		return lit
	}
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		lit.Value = float64(i)
		return lit
	}
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		lit.Value = f
	}
	return lit
}

func (c *converter) stringLiteral(n *sitter.Node) *estree.Literal {
	if n == nil {
		return nil
	}
	raw := c.text(n)
	return &estree.Literal{Value: unquote(raw), Raw: raw}
}

func (c *converter) object(n *sitter.Node) *estree.ObjectExpression {
	obj := &estree.ObjectExpression{}
	for _, k := range named(n) {
		switch k.Type() {
		case "pair":
			key, computed := c.propertyKey(k.ChildByFieldName("key"))
			obj.Properties = append(obj.Properties, &estree.Property{
				Key:      key,
				Value:    c.expression(k.ChildByFieldName("value")),
				PropKind: "init",
				Computed: computed,
			})
		case "shorthand_property_identifier":
			obj.Properties = append(obj.Properties, estree.ShorthandProp(c.text(k)))
		case "spread_element":
			obj.Properties = append(obj.Properties, estree.Spread(c.expression(named(k)[0])))
		case "method_definition":
			key, computed := c.propertyKey(k.ChildByFieldName("name"))
			kind := "init"
			if hasToken(k, "get") {
				kind = "get"
			} else if hasToken(k, "set") {
				kind = "set"
			}
			obj.Properties = append(obj.Properties, &estree.Property{
				Key:      key,
				Value:    c.methodFunction(k),
				PropKind: kind,
				Computed: computed,
				Method:   kind == "init",
			})
		default:
			obj.Properties = append(obj.Properties, &estree.Property{
				Key:       c.raw(k),
				Value:     c.raw(k),
				PropKind:  "init",
				Shorthand: true,
			})
		}
	}
	return obj
}

// propertyKey converts an object or class key and reports whether it is
// computed.
func (c *converter) propertyKey(n *sitter.Node) (estree.Expression, bool) {
	switch n.Type() {
	case "computed_property_name":
		return c.expression(named(n)[0]), true
	case "property_identifier", "identifier":
		return estree.Ident(c.text(n)), false
	case "string":
		return c.stringLiteral(n), false
	case "number":
		return c.number(n), false
	}
	return c.raw(n), false
}

func (c *converter) arrow(n *sitter.Node) *estree.ArrowFunctionExpression {
	fn := &estree.ArrowFunctionExpression{Async: hasToken(n, "async")}
	if p := n.ChildByFieldName("parameter"); p != nil {
		fn.Params = []estree.Pattern{c.pattern(p)}
	} else {
		fn.Params = c.params(n.ChildByFieldName("parameters"))
	}
	body := n.ChildByFieldName("body")
	if body.Type() == "statement_block" {
		fn.Body = c.block(body)
	} else {
		fn.ExprBody = c.expression(body)
	}
	return fn
}

// ---- patterns ----

func (c *converter) params(n *sitter.Node) []estree.Pattern {
	if n == nil {
		return nil
	}
	var ps []estree.Pattern
	for _, k := range named(n) {
		ps = append(ps, c.pattern(k))
	}
	return ps
}

func (c *converter) pattern(n *sitter.Node) estree.Pattern {
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		return estree.Ident(c.text(n))
	case "undefined":
		return estree.Ident("undefined")
	case "required_parameter", "optional_parameter":
		if p := n.ChildByFieldName("pattern"); p != nil {
			return c.pattern(p)
		}
	case "assignment_pattern":
		return &estree.AssignmentPattern{
			Left:  c.pattern(n.ChildByFieldName("left")),
			Right: c.expression(n.ChildByFieldName("right")),
		}
	case "rest_pattern":
		return &estree.RestElement{Argument: c.pattern(named(n)[0])}
	case "array_pattern":
		arr := &estree.ArrayPattern{}
		for _, el := range c.elements(n) {
			if el == nil {
				arr.Elements = append(arr.Elements, nil)
				continue
			}
			arr.Elements = append(arr.Elements, c.pattern(el))
		}
		return arr
	case "object_pattern":
		return c.objectPattern(n)
	case "member_expression", "subscript_expression":
		if me, ok := c.expression(n).(*estree.MemberExpression); ok {
			return me
		}
	case "parenthesized_expression":
		if kids := named(n); len(kids) > 0 {
			return c.pattern(kids[0])
		}
	}
	return c.raw(n)
}

func (c *converter) objectPattern(n *sitter.Node) *estree.ObjectPattern {
	pat := &estree.ObjectPattern{}
	for _, k := range named(n) {
		switch k.Type() {
		case "shorthand_property_identifier_pattern":
			pat.Properties = append(pat.Properties, estree.ShorthandProp(c.text(k)))
		case "pair_pattern":
			key, computed := c.propertyKey(k.ChildByFieldName("key"))
			pat.Properties = append(pat.Properties, &estree.Property{
				Key:      key,
				Value:    c.pattern(k.ChildByFieldName("value")),
				PropKind: "init",
				Computed: computed,
			})
		case "object_assignment_pattern":
			left := k.ChildByFieldName("left")
			def := &estree.AssignmentPattern{
				Left:  c.pattern(left),
				Right: c.expression(k.ChildByFieldName("right")),
			}
			prop := &estree.Property{Value: def, PropKind: "init"}
			if id, ok := def.Left.(*estree.Identifier); ok {
				prop.Key = estree.Ident(id.Name)
				prop.Shorthand = true
			} else {
				prop.Key = c.raw(left)
			}
			pat.Properties = append(pat.Properties, prop)
		case "rest_pattern":
			pat.Properties = append(pat.Properties, &estree.RestElement{Argument: c.pattern(named(k)[0])})
		}
	}
	return pat
}
