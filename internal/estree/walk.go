package estree

import "fmt"

// Visitor receives nodes during Walk. Enter runs when a node is reached on
// the way down, before its children are listed, so Enter may replace fields
// of the node it is given. Leave runs on the way up, after all children.
// Either callback may be nil.
type Visitor struct {
	Enter func(n, parent Node)
	Leave func(n, parent Node)
}

// Walk traverses the tree rooted at root depth-first. Nodes inserted by
// Leave into an already visited subtree are not visited.
func Walk(root Node, v Visitor) {
	walk(root, nil, v)
}

func walk(n, parent Node, v Visitor) {
	if v.Enter != nil {
		v.Enter(n, parent)
	}
	for _, child := range Children(n) {
		walk(child, n, v)
	}
	if v.Leave != nil {
		v.Leave(n, parent)
	}
}

// childList accumulates non-nil children. Interface fields holding typed nil
// pointers are filtered by the typed helpers below.
type childList []Node

func (c *childList) add(n Node) {
	if n != nil {
		*c = append(*c, n)
	}
}

func (c *childList) ident(id *Identifier) {
	if id != nil {
		*c = append(*c, id)
	}
}

func (c *childList) lit(l *Literal) {
	if l != nil {
		*c = append(*c, l)
	}
}

func (c *childList) block(b *BlockStatement) {
	if b != nil {
		*c = append(*c, b)
	}
}

func (c *childList) patterns(ps []Pattern) {
	for _, p := range ps {
		c.add(p)
	}
}

func (c *childList) exprs(es []Expression) {
	for _, e := range es {
		c.add(e)
	}
}

func (c *childList) members(ms []ObjectMember) {
	for _, m := range ms {
		c.add(m)
	}
}

// template lists quasis and substitutions interleaved, as they appear in the
// source.
func (c *childList) template(t *TemplateLiteral) {
	for i, q := range t.Quasis {
		if q != nil {
			*c = append(*c, q)
		}
		if i < len(t.Expressions) {
			c.add(t.Expressions[i])
		}
	}
}

// Children returns the direct children of n in source order. It panics on a
// node type outside the closed set, which can only come from a programming
// error.
func Children(n Node) []Node {
	var c childList
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			c.add(s)
		}
	case *ExpressionStatement:
		c.add(n.Expression)
	case *BlockStatement:
		for _, s := range n.Body {
			c.add(s)
		}
	case *ReturnStatement:
		c.add(n.Argument)
	case *IfStatement:
		c.add(n.Test)
		c.add(n.Consequent)
		c.add(n.Alternate)
	case *ThrowStatement:
		c.add(n.Argument)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if d != nil {
				c = append(c, d)
			}
		}
	case *VariableDeclarator:
		c.add(n.ID)
		c.add(n.Init)
	case *FunctionDeclaration:
		c.ident(n.ID)
		c.patterns(n.Params)
		c.block(n.Body)
	case *ClassDeclaration:
		c.ident(n.ID)
		c.add(n.SuperClass)
		for _, m := range n.Body {
			c.add(m)
		}
	case *ClassExpression:
		c.ident(n.ID)
		c.add(n.SuperClass)
		for _, m := range n.Body {
			c.add(m)
		}
	case *MethodDefinition:
		c.add(n.Key)
		if n.Value != nil {
			c = append(c, n.Value)
		}
	case *ImportDeclaration:
		for _, s := range n.Specifiers {
			c.add(s)
		}
		c.lit(n.Source)
	case *ImportSpecifier:
		c.ident(n.Imported)
		c.ident(n.Local)
	case *ImportDefaultSpecifier:
		c.ident(n.Local)
	case *ImportNamespaceSpecifier:
		c.ident(n.Local)
	case *ExportNamedDeclaration:
		c.add(n.Declaration)
		for _, s := range n.Specifiers {
			if s != nil {
				c = append(c, s)
			}
		}
		c.lit(n.Source)
	case *ExportSpecifier:
		c.ident(n.Local)
		c.ident(n.Exported)
	case *ExportDefaultDeclaration:
		c.add(n.Declaration)
	case *ExportAllDeclaration:
		c.ident(n.Exported)
		c.lit(n.Source)
	case *ForStatement:
		c.add(n.Init)
		c.add(n.Test)
		c.add(n.Update)
		c.add(n.Body)
	case *ForInStatement:
		c.add(n.Left)
		c.add(n.Right)
		c.add(n.Body)
	case *ForOfStatement:
		c.add(n.Left)
		c.add(n.Right)
		c.add(n.Body)
	case *WhileStatement:
		c.add(n.Test)
		c.add(n.Body)
	case *DoWhileStatement:
		c.add(n.Body)
		c.add(n.Test)
	case *TryStatement:
		c.block(n.Block)
		if n.Handler != nil {
			c = append(c, n.Handler)
		}
		c.block(n.Finalizer)
	case *CatchClause:
		c.add(n.Param)
		c.block(n.Body)
	case *SwitchStatement:
		c.add(n.Discriminant)
		for _, sc := range n.Cases {
			if sc != nil {
				c = append(c, sc)
			}
		}
	case *SwitchCase:
		c.add(n.Test)
		for _, s := range n.Consequent {
			c.add(s)
		}
	case *LabeledStatement:
		c.ident(n.Label)
		c.add(n.Body)
	case *BreakStatement:
		c.ident(n.Label)
	case *ContinueStatement:
		c.ident(n.Label)
	case *ArrayExpression:
		c.exprs(n.Elements)
	case *ObjectExpression:
		c.members(n.Properties)
	case *Property:
		c.add(n.Key)
		if !n.Shorthand {
			c.add(n.Value)
		}
	case *SpreadElement:
		c.add(n.Argument)
	case *FunctionExpression:
		c.ident(n.ID)
		c.patterns(n.Params)
		c.block(n.Body)
	case *ArrowFunctionExpression:
		c.patterns(n.Params)
		c.block(n.Body)
		c.add(n.ExprBody)
	case *CallExpression:
		c.add(n.Callee)
		c.exprs(n.Arguments)
	case *NewExpression:
		c.add(n.Callee)
		c.exprs(n.Arguments)
	case *MemberExpression:
		c.add(n.Object)
		c.add(n.Property)
	case *ConditionalExpression:
		c.add(n.Test)
		c.add(n.Consequent)
		c.add(n.Alternate)
	case *BinaryExpression:
		c.add(n.Left)
		c.add(n.Right)
	case *LogicalExpression:
		c.add(n.Left)
		c.add(n.Right)
	case *UnaryExpression:
		c.add(n.Argument)
	case *UpdateExpression:
		c.add(n.Argument)
	case *AssignmentExpression:
		c.add(n.Left)
		c.add(n.Right)
	case *SequenceExpression:
		c.exprs(n.Expressions)
	case *AwaitExpression:
		c.add(n.Argument)
	case *YieldExpression:
		c.add(n.Argument)
	case *TemplateLiteral:
		c.template(n)
	case *TaggedTemplateExpression:
		c.add(n.Tag)
		if n.Quasi != nil {
			c = append(c, n.Quasi)
		}
	case *ObjectPattern:
		c.members(n.Properties)
	case *ArrayPattern:
		c.patterns(n.Elements)
	case *AssignmentPattern:
		c.add(n.Left)
		c.add(n.Right)
	case *RestElement:
		c.add(n.Argument)
	case *JSXElement:
		if n.OpeningElement != nil {
			c = append(c, n.OpeningElement)
		}
		for _, ch := range n.Children {
			c.add(ch)
		}
		if n.ClosingElement != nil {
			c = append(c, n.ClosingElement)
		}
	case *JSXOpeningElement:
		c.add(n.Name)
		for _, a := range n.Attributes {
			c.add(a)
		}
	case *JSXClosingElement:
		c.add(n.Name)
	case *JSXFragment:
		for _, ch := range n.Children {
			c.add(ch)
		}
	case *JSXMemberExpression:
		c.add(n.Object)
		if n.Property != nil {
			c = append(c, n.Property)
		}
	case *JSXNamespacedName:
		if n.Namespace != nil {
			c = append(c, n.Namespace)
		}
		if n.Name != nil {
			c = append(c, n.Name)
		}
	case *JSXAttribute:
		c.add(n.Name)
		c.add(n.Value)
	case *JSXSpreadAttribute:
		c.add(n.Argument)
	case *JSXExpressionContainer:
		c.add(n.Expression)
	case *EmptyStatement, *Identifier, *Literal, *ThisExpression, *TemplateElement,
		*JSXIdentifier, *JSXEmptyExpression, *JSXText, *Raw:
		// leaves
	default:
		panic(fmt.Sprintf("estree: unknown node type %T", n))
	}
	return c
}
