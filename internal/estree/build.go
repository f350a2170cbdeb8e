package estree

import "strings"

// Constructors for nodes synthesized by passes. They keep generated trees
// short to write and consistent in shape.

// Ident returns an identifier reference.
func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

// Str returns a string literal.
func Str(value string) *Literal {
	return &Literal{Value: value}
}

// Num returns a numeric literal.
func Num(value float64) *Literal {
	return &Literal{Value: value}
}

// Member builds a dotted member access from a path: Member("props",
// "components") is props.components. It panics on an empty path.
func Member(path ...string) Expression {
	if len(path) == 0 {
		panic("estree: Member needs at least one name")
	}
	var expr Expression = Ident(path[0])
	for _, name := range path[1:] {
		expr = &MemberExpression{Object: expr, Property: Ident(name)}
	}
	return expr
}

// Index returns obj[index].
func Index(obj Expression, index Expression) *MemberExpression {
	return &MemberExpression{Object: obj, Property: index, Computed: true}
}

// Call returns callee(args...).
func Call(callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args}
}

// Object returns an object literal with the given members.
func Object(members ...ObjectMember) *ObjectExpression {
	return &ObjectExpression{Properties: members}
}

// Prop returns a key: value property. The key is an identifier when key is a
// valid identifier name and a string literal otherwise.
func Prop(key string, value Node) *Property {
	return &Property{Key: PropertyKey(key), Value: value, PropKind: "init"}
}

// ShorthandProp returns the property {name}, usable in literals and patterns.
func ShorthandProp(name string) *Property {
	return &Property{Key: Ident(name), Value: Ident(name), PropKind: "init", Shorthand: true}
}

// Spread returns ...arg.
func Spread(arg Expression) *SpreadElement {
	return &SpreadElement{Argument: arg}
}

// PropertyKey returns the key node for a property named key.
func PropertyKey(key string) Expression {
	if IsIdentifierName(key) {
		return Ident(key)
	}
	return Str(key)
}

// Const returns const id = init.
func Const(id Pattern, init Expression) *VariableDeclaration {
	return &VariableDeclaration{
		Keyword:      "const",
		Declarations: []*VariableDeclarator{{ID: id, Init: init}},
	}
}

// ObjectPatternOf returns {members...} as a binding pattern.
func ObjectPatternOf(members ...ObjectMember) *ObjectPattern {
	return &ObjectPattern{Properties: members}
}

// Return returns return arg.
func Return(arg Expression) *ReturnStatement {
	return &ReturnStatement{Argument: arg}
}

// Block returns a block statement.
func Block(body ...Statement) *BlockStatement {
	return &BlockStatement{Body: body}
}

// Throw returns throw arg.
func Throw(arg Expression) *ThrowStatement {
	return &ThrowStatement{Argument: arg}
}

// New returns new callee(args...).
func New(callee Expression, args ...Expression) *NewExpression {
	return &NewExpression{Callee: callee, Arguments: args}
}

// Concat folds parts into a left-associative chain of + expressions.
func Concat(parts ...Expression) Expression {
	if len(parts) == 0 {
		return Str("")
	}
	expr := parts[0]
	for _, p := range parts[1:] {
		expr = &BinaryExpression{Operator: "+", Left: expr, Right: p}
	}
	return expr
}

// JSXNameOf parses a dotted or namespaced element name into its JSX form:
// "a.b.c" becomes a JSXMemberExpression chain, "ns:tag" a JSXNamespacedName.
func JSXNameOf(name string) JSXName {
	if ns, local, ok := strings.Cut(name, ":"); ok {
		return &JSXNamespacedName{
			Namespace: &JSXIdentifier{Name: ns},
			Name:      &JSXIdentifier{Name: local},
		}
	}
	parts := strings.Split(name, ".")
	var n JSXName = &JSXIdentifier{Name: parts[0]}
	for _, p := range parts[1:] {
		n = &JSXMemberExpression{Object: n, Property: &JSXIdentifier{Name: p}}
	}
	return n
}

// Element returns a JSX element named name with the given origin. A nil
// children slice produces a self-closing element.
func Element(name string, origin Origin, children ...JSXChild) *JSXElement {
	el := &JSXElement{
		OpeningElement: &JSXOpeningElement{Name: JSXNameOf(name)},
		Children:       children,
		Origin:         origin,
	}
	if children == nil {
		el.OpeningElement.SelfClosing = true
	} else {
		el.ClosingElement = &JSXClosingElement{Name: JSXNameOf(name)}
	}
	return el
}

// Text returns a JSX text child.
func Text(value string) *JSXText {
	return &JSXText{Value: value}
}

// JSXNameString renders a JSX name back to its source form.
func JSXNameString(n JSXName) string {
	switch n := n.(type) {
	case *JSXIdentifier:
		return n.Name
	case *JSXMemberExpression:
		return JSXNameString(n.Object) + "." + n.Property.Name
	case *JSXNamespacedName:
		return n.Namespace.Name + ":" + n.Name.Name
	}
	return ""
}
