package estree

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedNode is returned when ESTree JSON contains a node type this
// package does not model.
var ErrUnsupportedNode = errors.New("estree: unsupported node type")

// explicitJSXKey is the field under a JSX element's "data" object that marks
// elements written as literal markup.
const explicitJSXKey = "_mdxExplicitJsx"

// DecodeJSON parses an ESTree Program from JSON.
func DecodeJSON(data []byte) (*Program, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("estree: decode: %w", err)
	}
	d := &decoder{}
	n := d.node(raw)
	if d.err != nil {
		return nil, d.err
	}
	prog, ok := n.(*Program)
	if !ok {
		return nil, fmt.Errorf("estree: decode: root is %v, want Program", kindOf(n))
	}
	return prog, nil
}

// EncodeJSON serializes a tree to ESTree JSON.
func EncodeJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(encode(n), "", "  ")
}

func kindOf(n Node) string {
	if n == nil {
		return "null"
	}
	return n.Kind().String()
}

// decoder converts generic JSON values into nodes. The first error sticks;
// later calls return zero values.
type decoder struct {
	err error
}

func (d *decoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("estree: decode: "+format, args...)
	}
}

func field(m map[string]any, key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

func str(m map[string]any, key string) string {
	s, _ := field(m, key).(string)
	return s
}

func boolean(m map[string]any, key string) bool {
	b, _ := field(m, key).(bool)
	return b
}

func (d *decoder) node(v any) Node {
	if d.err != nil || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.fail("expected node object, got %T", v)
		return nil
	}
	switch t := str(m, "type"); t {
	case "Program":
		return &Program{Body: d.stmts(m["body"]), SourceType: str(m, "sourceType")}
	case "ExpressionStatement":
		return &ExpressionStatement{Expression: d.expr(m["expression"])}
	case "BlockStatement":
		return d.block(m)
	case "ReturnStatement":
		return &ReturnStatement{Argument: d.expr(m["argument"])}
	case "IfStatement":
		return &IfStatement{Test: d.expr(m["test"]), Consequent: d.stmt(m["consequent"]), Alternate: d.stmt(m["alternate"])}
	case "ThrowStatement":
		return &ThrowStatement{Argument: d.expr(m["argument"])}
	case "EmptyStatement":
		return &EmptyStatement{}
	case "VariableDeclaration":
		decl := &VariableDeclaration{Keyword: str(m, "kind")}
		for _, dv := range list(m["declarations"]) {
			dm, _ := dv.(map[string]any)
			decl.Declarations = append(decl.Declarations, &VariableDeclarator{ID: d.pattern(field(dm, "id")), Init: d.expr(field(dm, "init"))})
		}
		return decl
	case "FunctionDeclaration":
		return &FunctionDeclaration{ID: d.ident(m["id"]), Params: d.patterns(m["params"]), Body: d.blockValue(m["body"]), Async: boolean(m, "async"), Generator: boolean(m, "generator")}
	case "ClassDeclaration":
		return &ClassDeclaration{ID: d.ident(m["id"]), SuperClass: d.expr(m["superClass"]), Body: d.classBody(m["body"])}
	case "ClassExpression":
		return &ClassExpression{ID: d.ident(m["id"]), SuperClass: d.expr(m["superClass"]), Body: d.classBody(m["body"])}
	case "ImportDeclaration":
		imp := &ImportDeclaration{Source: d.literal(m["source"])}
		for _, sv := range list(m["specifiers"]) {
			if s, ok := d.node(sv).(ModuleSpecifier); ok {
				imp.Specifiers = append(imp.Specifiers, s)
			}
		}
		return imp
	case "ImportSpecifier":
		return &ImportSpecifier{Imported: d.ident(m["imported"]), Local: d.ident(m["local"])}
	case "ImportDefaultSpecifier":
		return &ImportDefaultSpecifier{Local: d.ident(m["local"])}
	case "ImportNamespaceSpecifier":
		return &ImportNamespaceSpecifier{Local: d.ident(m["local"])}
	case "ExportNamedDeclaration":
		exp := &ExportNamedDeclaration{Declaration: d.stmt(m["declaration"]), Source: d.literal(m["source"])}
		for _, sv := range list(m["specifiers"]) {
			sm, _ := sv.(map[string]any)
			exp.Specifiers = append(exp.Specifiers, &ExportSpecifier{Local: d.ident(field(sm, "local")), Exported: d.ident(field(sm, "exported"))})
		}
		return exp
	case "ExportDefaultDeclaration":
		return &ExportDefaultDeclaration{Declaration: d.node(m["declaration"])}
	case "ExportAllDeclaration":
		return &ExportAllDeclaration{Exported: d.ident(m["exported"]), Source: d.literal(m["source"])}
	case "ForStatement":
		return &ForStatement{Init: d.forHead(m["init"]), Test: d.expr(m["test"]), Update: d.expr(m["update"]), Body: d.stmt(m["body"])}
	case "ForInStatement":
		return &ForInStatement{Left: d.forHead(m["left"]), Right: d.expr(m["right"]), Body: d.stmt(m["body"])}
	case "ForOfStatement":
		return &ForOfStatement{Left: d.forHead(m["left"]), Right: d.expr(m["right"]), Body: d.stmt(m["body"]), Await: boolean(m, "await")}
	case "WhileStatement":
		return &WhileStatement{Test: d.expr(m["test"]), Body: d.stmt(m["body"])}
	case "DoWhileStatement":
		return &DoWhileStatement{Body: d.stmt(m["body"]), Test: d.expr(m["test"])}
	case "TryStatement":
		try := &TryStatement{Block: d.blockValue(m["block"]), Finalizer: d.blockValue(m["finalizer"])}
		try.Handler, _ = d.node(m["handler"]).(*CatchClause)
		return try
	case "CatchClause":
		return &CatchClause{Param: d.pattern(m["param"]), Body: d.blockValue(m["body"])}
	case "SwitchStatement":
		sw := &SwitchStatement{Discriminant: d.expr(m["discriminant"])}
		for _, cv := range list(m["cases"]) {
			if sc, ok := d.node(cv).(*SwitchCase); ok {
				sw.Cases = append(sw.Cases, sc)
			}
		}
		return sw
	case "SwitchCase":
		return &SwitchCase{Test: d.expr(m["test"]), Consequent: d.stmts(m["consequent"])}
	case "LabeledStatement":
		return &LabeledStatement{Label: d.ident(m["label"]), Body: d.stmt(m["body"])}
	case "BreakStatement":
		return &BreakStatement{Label: d.ident(m["label"])}
	case "ContinueStatement":
		return &ContinueStatement{Label: d.ident(m["label"])}
	case "Identifier":
		return &Identifier{Name: str(m, "name")}
	case "Literal":
		lit := &Literal{Value: m["value"]}
		if _, isRegex := m["regex"]; isRegex {
			lit.Value = nil
			lit.Raw = str(m, "raw")
		}
		if _, isBig := m["bigint"]; isBig {
			lit.Value = nil
			lit.Raw = str(m, "raw")
		}
		return lit
	case "ThisExpression":
		return &ThisExpression{}
	case "ArrayExpression":
		arr := &ArrayExpression{}
		for _, ev := range list(m["elements"]) {
			arr.Elements = append(arr.Elements, d.expr(ev))
		}
		return arr
	case "ObjectExpression":
		return &ObjectExpression{Properties: d.members(m["properties"])}
	case "Property":
		return &Property{
			Key:       d.expr(m["key"]),
			Value:     d.node(m["value"]),
			PropKind:  str(m, "kind"),
			Computed:  boolean(m, "computed"),
			Shorthand: boolean(m, "shorthand"),
			Method:    boolean(m, "method"),
		}
	case "SpreadElement":
		return &SpreadElement{Argument: d.expr(m["argument"])}
	case "FunctionExpression":
		return &FunctionExpression{ID: d.ident(m["id"]), Params: d.patterns(m["params"]), Body: d.blockValue(m["body"]), Async: boolean(m, "async"), Generator: boolean(m, "generator")}
	case "ArrowFunctionExpression":
		fn := &ArrowFunctionExpression{Params: d.patterns(m["params"]), Async: boolean(m, "async")}
		if boolean(m, "expression") {
			fn.ExprBody = d.expr(m["body"])
		} else {
			fn.Body = d.blockValue(m["body"])
		}
		return fn
	case "CallExpression":
		return &CallExpression{Callee: d.expr(m["callee"]), Arguments: d.exprs(m["arguments"]), Optional: boolean(m, "optional")}
	case "NewExpression":
		return &NewExpression{Callee: d.expr(m["callee"]), Arguments: d.exprs(m["arguments"])}
	case "ChainExpression":
		return d.node(m["expression"])
	case "MemberExpression":
		return &MemberExpression{Object: d.expr(m["object"]), Property: d.expr(m["property"]), Computed: boolean(m, "computed"), Optional: boolean(m, "optional")}
	case "ConditionalExpression":
		return &ConditionalExpression{Test: d.expr(m["test"]), Consequent: d.expr(m["consequent"]), Alternate: d.expr(m["alternate"])}
	case "BinaryExpression":
		return &BinaryExpression{Operator: str(m, "operator"), Left: d.expr(m["left"]), Right: d.expr(m["right"])}
	case "LogicalExpression":
		return &LogicalExpression{Operator: str(m, "operator"), Left: d.expr(m["left"]), Right: d.expr(m["right"])}
	case "UnaryExpression":
		return &UnaryExpression{Operator: str(m, "operator"), Argument: d.expr(m["argument"])}
	case "UpdateExpression":
		return &UpdateExpression{Operator: str(m, "operator"), Argument: d.expr(m["argument"]), Prefix: boolean(m, "prefix")}
	case "AssignmentExpression":
		return &AssignmentExpression{Operator: str(m, "operator"), Left: d.pattern(m["left"]), Right: d.expr(m["right"])}
	case "SequenceExpression":
		return &SequenceExpression{Expressions: d.exprs(m["expressions"])}
	case "AwaitExpression":
		return &AwaitExpression{Argument: d.expr(m["argument"])}
	case "YieldExpression":
		return &YieldExpression{Argument: d.expr(m["argument"]), Delegate: boolean(m, "delegate")}
	case "TemplateLiteral":
		tl := &TemplateLiteral{Expressions: d.exprs(m["expressions"])}
		for _, qv := range list(m["quasis"]) {
			if q, ok := d.node(qv).(*TemplateElement); ok {
				tl.Quasis = append(tl.Quasis, q)
			}
		}
		return tl
	case "TemplateElement":
		value, _ := m["value"].(map[string]any)
		return &TemplateElement{Raw: str(value, "raw"), Tail: boolean(m, "tail")}
	case "TaggedTemplateExpression":
		tt := &TaggedTemplateExpression{Tag: d.expr(m["tag"])}
		tt.Quasi, _ = d.node(m["quasi"]).(*TemplateLiteral)
		return tt
	case "ObjectPattern":
		return &ObjectPattern{Properties: d.members(m["properties"])}
	case "ArrayPattern":
		arr := &ArrayPattern{}
		for _, ev := range list(m["elements"]) {
			arr.Elements = append(arr.Elements, d.pattern(ev))
		}
		return arr
	case "AssignmentPattern":
		return &AssignmentPattern{Left: d.pattern(m["left"]), Right: d.expr(m["right"])}
	case "RestElement":
		return &RestElement{Argument: d.pattern(m["argument"])}
	case "JSXElement":
		return d.jsxElement(m)
	case "JSXFragment":
		return &JSXFragment{Children: d.jsxChildren(m["children"])}
	case "JSXIdentifier":
		return &JSXIdentifier{Name: str(m, "name")}
	case "JSXMemberExpression":
		return &JSXMemberExpression{Object: d.jsxName(m["object"]), Property: d.jsxIdent(m["property"])}
	case "JSXNamespacedName":
		return &JSXNamespacedName{Namespace: d.jsxIdent(m["namespace"]), Name: d.jsxIdent(m["name"])}
	case "JSXAttribute":
		return &JSXAttribute{Name: d.jsxName(m["name"]), Value: d.node(m["value"])}
	case "JSXSpreadAttribute":
		return &JSXSpreadAttribute{Argument: d.expr(m["argument"])}
	case "JSXExpressionContainer":
		return &JSXExpressionContainer{Expression: d.expr(m["expression"])}
	case "JSXEmptyExpression":
		return &JSXEmptyExpression{}
	case "JSXText":
		return &JSXText{Value: str(m, "value")}
	case "Raw":
		return &Raw{Text: str(m, "text")}
	case "MethodDefinition":
		md := &MethodDefinition{Key: d.expr(m["key"]), MethodKind: str(m, "kind"), Static: boolean(m, "static"), Computed: boolean(m, "computed")}
		md.Value, _ = d.node(m["value"]).(*FunctionExpression)
		return md
	default:
		if d.err == nil {
			d.err = fmt.Errorf("%w: %q", ErrUnsupportedNode, t)
		}
		return nil
	}
}

func list(v any) []any {
	l, _ := v.([]any)
	return l
}

func (d *decoder) stmt(v any) Statement {
	n := d.node(v)
	if n == nil {
		return nil
	}
	s, ok := n.(Statement)
	if !ok {
		d.fail("%v is not a statement", n.Kind())
	}
	return s
}

func (d *decoder) stmts(v any) []Statement {
	var out []Statement
	for _, sv := range list(v) {
		if s := d.stmt(sv); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (d *decoder) expr(v any) Expression {
	n := d.node(v)
	if n == nil {
		return nil
	}
	e, ok := n.(Expression)
	if !ok {
		d.fail("%v is not an expression", n.Kind())
	}
	return e
}

func (d *decoder) exprs(v any) []Expression {
	var out []Expression
	for _, ev := range list(v) {
		out = append(out, d.expr(ev))
	}
	return out
}

func (d *decoder) pattern(v any) Pattern {
	n := d.node(v)
	if n == nil {
		return nil
	}
	p, ok := n.(Pattern)
	if !ok {
		d.fail("%v is not a pattern", n.Kind())
	}
	return p
}

func (d *decoder) patterns(v any) []Pattern {
	var out []Pattern
	for _, pv := range list(v) {
		out = append(out, d.pattern(pv))
	}
	return out
}

func (d *decoder) members(v any) []ObjectMember {
	var out []ObjectMember
	for _, mv := range list(v) {
		n := d.node(mv)
		if m, ok := n.(ObjectMember); ok {
			out = append(out, m)
		} else if n != nil {
			d.fail("%v is not an object member", n.Kind())
		}
	}
	return out
}

// forHead decodes the init of a for loop or the left side of for-in and
// for-of: a declaration, an expression or a pattern.
func (d *decoder) forHead(v any) Node {
	n := d.node(v)
	switch n.(type) {
	case nil, *VariableDeclaration, Expression, Pattern:
		return n
	}
	d.fail("%v cannot head a for loop", n.Kind())
	return nil
}

func (d *decoder) ident(v any) *Identifier {
	id, _ := d.node(v).(*Identifier)
	return id
}

func (d *decoder) literal(v any) *Literal {
	lit, _ := d.node(v).(*Literal)
	return lit
}

func (d *decoder) block(m map[string]any) *BlockStatement {
	return &BlockStatement{Body: d.stmts(m["body"])}
}

func (d *decoder) blockValue(v any) *BlockStatement {
	b, _ := d.node(v).(*BlockStatement)
	return b
}

func (d *decoder) classBody(v any) []ClassMember {
	m, _ := v.(map[string]any)
	var out []ClassMember
	for _, mv := range list(field(m, "body")) {
		mm, _ := mv.(map[string]any)
		if str(mm, "type") != "MethodDefinition" {
			// Fields, static blocks and accessors are kept opaque.
			out = append(out, &Raw{Text: "/* " + str(mm, "type") + " */"})
			continue
		}
		if md, ok := d.node(mv).(*MethodDefinition); ok {
			out = append(out, md)
		}
	}
	return out
}

func (d *decoder) jsxName(v any) JSXName {
	n := d.node(v)
	if n == nil {
		return nil
	}
	name, ok := n.(JSXName)
	if !ok {
		d.fail("%v is not a JSX name", n.Kind())
	}
	return name
}

func (d *decoder) jsxIdent(v any) *JSXIdentifier {
	id, _ := d.node(v).(*JSXIdentifier)
	return id
}

func (d *decoder) jsxChildren(v any) []JSXChild {
	var out []JSXChild
	for _, cv := range list(v) {
		n := d.node(cv)
		if c, ok := n.(JSXChild); ok {
			out = append(out, c)
		} else if n != nil {
			d.fail("%v is not a JSX child", n.Kind())
		}
	}
	return out
}

func (d *decoder) jsxElement(m map[string]any) *JSXElement {
	om, _ := m["openingElement"].(map[string]any)
	el := &JSXElement{
		OpeningElement: &JSXOpeningElement{
			Name:        d.jsxName(field(om, "name")),
			SelfClosing: boolean(om, "selfClosing"),
		},
		Children: d.jsxChildren(m["children"]),
	}
	for _, av := range list(field(om, "attributes")) {
		n := d.node(av)
		if a, ok := n.(JSXAttr); ok {
			el.OpeningElement.Attributes = append(el.OpeningElement.Attributes, a)
		}
	}
	if cm, ok := m["closingElement"].(map[string]any); ok {
		el.ClosingElement = &JSXClosingElement{Name: d.jsxName(cm["name"])}
	}
	if data, ok := m["data"].(map[string]any); ok && boolean(data, explicitJSXKey) {
		el.Origin = OriginExplicit
	}
	if loc, ok := m["loc"].(map[string]any); ok {
		if start, ok := loc["start"].(map[string]any); ok {
			line, _ := start["line"].(float64)
			col, _ := start["column"].(float64)
			el.Pos = Position{Line: int(line), Column: int(col)}
		}
	}
	return el
}

// ---- encoding ----

type obj = map[string]any

func encodeList[T Node](nodes []T) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, encode(n))
	}
	return out
}

func encode(n Node) any {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *Program:
		st := n.SourceType
		if st == "" {
			st = "module"
		}
		return obj{"type": "Program", "sourceType": st, "body": encodeList(n.Body)}
	case *ExpressionStatement:
		return obj{"type": "ExpressionStatement", "expression": encode(n.Expression)}
	case *BlockStatement:
		return obj{"type": "BlockStatement", "body": encodeList(n.Body)}
	case *ReturnStatement:
		return obj{"type": "ReturnStatement", "argument": encode(n.Argument)}
	case *IfStatement:
		return obj{"type": "IfStatement", "test": encode(n.Test), "consequent": encode(n.Consequent), "alternate": encode(n.Alternate)}
	case *ThrowStatement:
		return obj{"type": "ThrowStatement", "argument": encode(n.Argument)}
	case *EmptyStatement:
		return obj{"type": "EmptyStatement"}
	case *VariableDeclaration:
		decls := make([]any, 0, len(n.Declarations))
		for _, d := range n.Declarations {
			decls = append(decls, obj{"type": "VariableDeclarator", "id": encode(d.ID), "init": encode(d.Init)})
		}
		return obj{"type": "VariableDeclaration", "kind": n.Keyword, "declarations": decls}
	case *VariableDeclarator:
		return obj{"type": "VariableDeclarator", "id": encode(n.ID), "init": encode(n.Init)}
	case *FunctionDeclaration:
		return obj{"type": "FunctionDeclaration", "id": encodeIdent(n.ID), "params": encodeList(n.Params), "body": encodeBlock(n.Body), "async": n.Async, "generator": n.Generator}
	case *ClassDeclaration:
		return obj{"type": "ClassDeclaration", "id": encodeIdent(n.ID), "superClass": encode(n.SuperClass), "body": obj{"type": "ClassBody", "body": encodeList(n.Body)}}
	case *ClassExpression:
		return obj{"type": "ClassExpression", "id": encodeIdent(n.ID), "superClass": encode(n.SuperClass), "body": obj{"type": "ClassBody", "body": encodeList(n.Body)}}
	case *MethodDefinition:
		var value any
		if n.Value != nil {
			value = encode(n.Value)
		}
		return obj{"type": "MethodDefinition", "key": encode(n.Key), "value": value, "kind": n.MethodKind, "static": n.Static, "computed": n.Computed}
	case *ImportDeclaration:
		return obj{"type": "ImportDeclaration", "specifiers": encodeList(n.Specifiers), "source": encodeLiteral(n.Source)}
	case *ImportSpecifier:
		return obj{"type": "ImportSpecifier", "imported": encodeIdent(n.Imported), "local": encodeIdent(n.Local)}
	case *ImportDefaultSpecifier:
		return obj{"type": "ImportDefaultSpecifier", "local": encodeIdent(n.Local)}
	case *ImportNamespaceSpecifier:
		return obj{"type": "ImportNamespaceSpecifier", "local": encodeIdent(n.Local)}
	case *ExportNamedDeclaration:
		return obj{"type": "ExportNamedDeclaration", "declaration": encode(n.Declaration), "specifiers": encodeList(n.Specifiers), "source": encodeLiteral(n.Source)}
	case *ExportSpecifier:
		return obj{"type": "ExportSpecifier", "local": encodeIdent(n.Local), "exported": encodeIdent(n.Exported)}
	case *ExportDefaultDeclaration:
		return obj{"type": "ExportDefaultDeclaration", "declaration": encode(n.Declaration)}
	case *ExportAllDeclaration:
		return obj{"type": "ExportAllDeclaration", "exported": encodeIdent(n.Exported), "source": encodeLiteral(n.Source)}
	case *ForStatement:
		return obj{"type": "ForStatement", "init": encode(n.Init), "test": encode(n.Test), "update": encode(n.Update), "body": encode(n.Body)}
	case *ForInStatement:
		return obj{"type": "ForInStatement", "left": encode(n.Left), "right": encode(n.Right), "body": encode(n.Body)}
	case *ForOfStatement:
		return obj{"type": "ForOfStatement", "left": encode(n.Left), "right": encode(n.Right), "body": encode(n.Body), "await": n.Await}
	case *WhileStatement:
		return obj{"type": "WhileStatement", "test": encode(n.Test), "body": encode(n.Body)}
	case *DoWhileStatement:
		return obj{"type": "DoWhileStatement", "body": encode(n.Body), "test": encode(n.Test)}
	case *TryStatement:
		var handler any
		if n.Handler != nil {
			handler = encode(n.Handler)
		}
		return obj{"type": "TryStatement", "block": encodeBlock(n.Block), "handler": handler, "finalizer": encodeBlock(n.Finalizer)}
	case *CatchClause:
		return obj{"type": "CatchClause", "param": encode(n.Param), "body": encodeBlock(n.Body)}
	case *SwitchStatement:
		return obj{"type": "SwitchStatement", "discriminant": encode(n.Discriminant), "cases": encodeList(n.Cases)}
	case *SwitchCase:
		return obj{"type": "SwitchCase", "test": encode(n.Test), "consequent": encodeList(n.Consequent)}
	case *LabeledStatement:
		return obj{"type": "LabeledStatement", "label": encodeIdent(n.Label), "body": encode(n.Body)}
	case *BreakStatement:
		return obj{"type": "BreakStatement", "label": encodeIdent(n.Label)}
	case *ContinueStatement:
		return obj{"type": "ContinueStatement", "label": encodeIdent(n.Label)}
	case *Identifier:
		return obj{"type": "Identifier", "name": n.Name}
	case *Literal:
		o := obj{"type": "Literal", "value": n.Value}
		if n.Raw != "" {
			o["raw"] = n.Raw
		}
		return o
	case *ThisExpression:
		return obj{"type": "ThisExpression"}
	case *ArrayExpression:
		return obj{"type": "ArrayExpression", "elements": encodeList(n.Elements)}
	case *ObjectExpression:
		return obj{"type": "ObjectExpression", "properties": encodeList(n.Properties)}
	case *Property:
		kind := n.PropKind
		if kind == "" {
			kind = "init"
		}
		return obj{"type": "Property", "key": encode(n.Key), "value": encode(n.Value), "kind": kind, "computed": n.Computed, "shorthand": n.Shorthand, "method": n.Method}
	case *SpreadElement:
		return obj{"type": "SpreadElement", "argument": encode(n.Argument)}
	case *FunctionExpression:
		return obj{"type": "FunctionExpression", "id": encodeIdent(n.ID), "params": encodeList(n.Params), "body": encodeBlock(n.Body), "async": n.Async, "generator": n.Generator}
	case *ArrowFunctionExpression:
		o := obj{"type": "ArrowFunctionExpression", "params": encodeList(n.Params), "async": n.Async, "expression": n.ExprBody != nil}
		if n.ExprBody != nil {
			o["body"] = encode(n.ExprBody)
		} else {
			o["body"] = encodeBlock(n.Body)
		}
		return o
	case *CallExpression:
		return obj{"type": "CallExpression", "callee": encode(n.Callee), "arguments": encodeList(n.Arguments), "optional": n.Optional}
	case *NewExpression:
		return obj{"type": "NewExpression", "callee": encode(n.Callee), "arguments": encodeList(n.Arguments)}
	case *MemberExpression:
		return obj{"type": "MemberExpression", "object": encode(n.Object), "property": encode(n.Property), "computed": n.Computed, "optional": n.Optional}
	case *ConditionalExpression:
		return obj{"type": "ConditionalExpression", "test": encode(n.Test), "consequent": encode(n.Consequent), "alternate": encode(n.Alternate)}
	case *BinaryExpression:
		return obj{"type": "BinaryExpression", "operator": n.Operator, "left": encode(n.Left), "right": encode(n.Right)}
	case *LogicalExpression:
		return obj{"type": "LogicalExpression", "operator": n.Operator, "left": encode(n.Left), "right": encode(n.Right)}
	case *UnaryExpression:
		return obj{"type": "UnaryExpression", "operator": n.Operator, "prefix": true, "argument": encode(n.Argument)}
	case *UpdateExpression:
		return obj{"type": "UpdateExpression", "operator": n.Operator, "prefix": n.Prefix, "argument": encode(n.Argument)}
	case *AssignmentExpression:
		return obj{"type": "AssignmentExpression", "operator": n.Operator, "left": encode(n.Left), "right": encode(n.Right)}
	case *SequenceExpression:
		return obj{"type": "SequenceExpression", "expressions": encodeList(n.Expressions)}
	case *AwaitExpression:
		return obj{"type": "AwaitExpression", "argument": encode(n.Argument)}
	case *YieldExpression:
		return obj{"type": "YieldExpression", "argument": encode(n.Argument), "delegate": n.Delegate}
	case *TemplateLiteral:
		return obj{"type": "TemplateLiteral", "quasis": encodeList(n.Quasis), "expressions": encodeList(n.Expressions)}
	case *TemplateElement:
		// cooked is left null when the raw text holds escapes; decoding
		// only reads raw.
		var cooked any
		if !strings.Contains(n.Raw, `\`) {
			cooked = n.Raw
		}
		return obj{"type": "TemplateElement", "value": obj{"raw": n.Raw, "cooked": cooked}, "tail": n.Tail}
	case *TaggedTemplateExpression:
		var quasi any
		if n.Quasi != nil {
			quasi = encode(n.Quasi)
		}
		return obj{"type": "TaggedTemplateExpression", "tag": encode(n.Tag), "quasi": quasi}
	case *ObjectPattern:
		return obj{"type": "ObjectPattern", "properties": encodeList(n.Properties)}
	case *ArrayPattern:
		return obj{"type": "ArrayPattern", "elements": encodeList(n.Elements)}
	case *AssignmentPattern:
		return obj{"type": "AssignmentPattern", "left": encode(n.Left), "right": encode(n.Right)}
	case *RestElement:
		return obj{"type": "RestElement", "argument": encode(n.Argument)}
	case *JSXElement:
		open := obj{"type": "JSXOpeningElement", "name": encode(n.OpeningElement.Name), "attributes": encodeList(n.OpeningElement.Attributes), "selfClosing": n.OpeningElement.SelfClosing}
		o := obj{"type": "JSXElement", "openingElement": open, "closingElement": nil, "children": encodeList(n.Children)}
		if n.ClosingElement != nil {
			o["closingElement"] = obj{"type": "JSXClosingElement", "name": encode(n.ClosingElement.Name)}
		}
		if n.Origin == OriginExplicit {
			o["data"] = obj{explicitJSXKey: true}
		}
		return o
	case *JSXOpeningElement:
		return obj{"type": "JSXOpeningElement", "name": encode(n.Name), "attributes": encodeList(n.Attributes), "selfClosing": n.SelfClosing}
	case *JSXClosingElement:
		return obj{"type": "JSXClosingElement", "name": encode(n.Name)}
	case *JSXFragment:
		return obj{
			"type":            "JSXFragment",
			"openingFragment": obj{"type": "JSXOpeningFragment"},
			"closingFragment": obj{"type": "JSXClosingFragment"},
			"children":        encodeList(n.Children),
		}
	case *JSXIdentifier:
		return obj{"type": "JSXIdentifier", "name": n.Name}
	case *JSXMemberExpression:
		return obj{"type": "JSXMemberExpression", "object": encode(n.Object), "property": encode(n.Property)}
	case *JSXNamespacedName:
		return obj{"type": "JSXNamespacedName", "namespace": encode(n.Namespace), "name": encode(n.Name)}
	case *JSXAttribute:
		return obj{"type": "JSXAttribute", "name": encode(n.Name), "value": encode(n.Value)}
	case *JSXSpreadAttribute:
		return obj{"type": "JSXSpreadAttribute", "argument": encode(n.Argument)}
	case *JSXExpressionContainer:
		return obj{"type": "JSXExpressionContainer", "expression": encode(n.Expression)}
	case *JSXEmptyExpression:
		return obj{"type": "JSXEmptyExpression"}
	case *JSXText:
		return obj{"type": "JSXText", "value": n.Value, "raw": n.Value}
	case *Raw:
		return obj{"type": "Raw", "text": n.Text}
	}
	panic(fmt.Sprintf("estree: cannot encode %T", n))
}

func encodeIdent(id *Identifier) any {
	if id == nil {
		return nil
	}
	return encode(id)
}

func encodeLiteral(l *Literal) any {
	if l == nil {
		return nil
	}
	return encode(l)
}

func encodeBlock(b *BlockStatement) any {
	if b == nil {
		return nil
	}
	return encode(b)
}
