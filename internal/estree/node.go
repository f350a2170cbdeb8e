// Package estree defines the closed set of JavaScript + JSX syntax-tree nodes
// the rewriter operates on. Node shapes follow ESTree so trees can be
// exchanged with JS-side tooling as JSON (see json.go), but every node kind is
// a concrete Go struct and every position in the tree is typed by one of the
// marker interfaces below.
//
// Trees are mutable: passes rewrite fields and splice statement slices in
// place.
package estree

// Kind identifies the concrete type of a Node.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindProgram

	// Statements and declarations.
	KindExpressionStatement
	KindBlockStatement
	KindReturnStatement
	KindIfStatement
	KindThrowStatement
	KindEmptyStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindClassDeclaration
	KindMethodDefinition
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindExportAllDeclaration
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindTryStatement
	KindCatchClause
	KindSwitchStatement
	KindSwitchCase
	KindLabeledStatement
	KindBreakStatement
	KindContinueStatement

	// Expressions.
	KindIdentifier
	KindLiteral
	KindThisExpression
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindSpreadElement
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindConditionalExpression
	KindBinaryExpression
	KindLogicalExpression
	KindUnaryExpression
	KindUpdateExpression
	KindAssignmentExpression
	KindSequenceExpression
	KindAwaitExpression
	KindYieldExpression
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression

	// Patterns.
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement

	// JSX.
	KindJSXElement
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXFragment
	KindJSXIdentifier
	KindJSXMemberExpression
	KindJSXNamespacedName
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXExpressionContainer
	KindJSXEmptyExpression
	KindJSXText

	// Source text the frontend does not model.
	KindRaw
)

var kindNames = [...]string{
	KindInvalid:                  "Invalid",
	KindProgram:                  "Program",
	KindExpressionStatement:      "ExpressionStatement",
	KindBlockStatement:           "BlockStatement",
	KindReturnStatement:          "ReturnStatement",
	KindIfStatement:              "IfStatement",
	KindThrowStatement:           "ThrowStatement",
	KindEmptyStatement:           "EmptyStatement",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindClassDeclaration:         "ClassDeclaration",
	KindMethodDefinition:         "MethodDefinition",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportSpecifier:          "ExportSpecifier",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindExportAllDeclaration:     "ExportAllDeclaration",
	KindForStatement:             "ForStatement",
	KindForInStatement:           "ForInStatement",
	KindForOfStatement:           "ForOfStatement",
	KindWhileStatement:           "WhileStatement",
	KindDoWhileStatement:         "DoWhileStatement",
	KindTryStatement:             "TryStatement",
	KindCatchClause:              "CatchClause",
	KindSwitchStatement:          "SwitchStatement",
	KindSwitchCase:               "SwitchCase",
	KindLabeledStatement:         "LabeledStatement",
	KindBreakStatement:           "BreakStatement",
	KindContinueStatement:        "ContinueStatement",
	KindIdentifier:               "Identifier",
	KindLiteral:                  "Literal",
	KindThisExpression:           "ThisExpression",
	KindArrayExpression:          "ArrayExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindSpreadElement:            "SpreadElement",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindClassExpression:          "ClassExpression",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindMemberExpression:         "MemberExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindSequenceExpression:       "SequenceExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindYieldExpression:          "YieldExpression",
	KindTemplateLiteral:          "TemplateLiteral",
	KindTemplateElement:          "TemplateElement",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindObjectPattern:            "ObjectPattern",
	KindArrayPattern:             "ArrayPattern",
	KindAssignmentPattern:        "AssignmentPattern",
	KindRestElement:              "RestElement",
	KindJSXElement:               "JSXElement",
	KindJSXOpeningElement:        "JSXOpeningElement",
	KindJSXClosingElement:        "JSXClosingElement",
	KindJSXFragment:              "JSXFragment",
	KindJSXIdentifier:            "JSXIdentifier",
	KindJSXMemberExpression:      "JSXMemberExpression",
	KindJSXNamespacedName:        "JSXNamespacedName",
	KindJSXAttribute:             "JSXAttribute",
	KindJSXSpreadAttribute:       "JSXSpreadAttribute",
	KindJSXExpressionContainer:   "JSXExpressionContainer",
	KindJSXEmptyExpression:       "JSXEmptyExpression",
	KindJSXText:                  "JSXText",
	KindRaw:                      "Raw",
}

// String returns the ESTree type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid"
}

// Node is implemented by every syntax-tree node.
type Node interface {
	Kind() Kind
}

// Statement is a node allowed in a statement list.
type Statement interface {
	Node
	isStatement()
}

// Expression is a node allowed in expression position.
type Expression interface {
	Node
	isExpression()
}

// Pattern is a binding or assignment target.
type Pattern interface {
	Node
	isPattern()
}

// ObjectMember is a member of an object literal or object pattern:
// *Property, *SpreadElement (literals) or *RestElement (patterns).
type ObjectMember interface {
	Node
	isObjectMember()
}

// ModuleSpecifier is one of the import specifier kinds.
type ModuleSpecifier interface {
	Node
	isModuleSpecifier()
}

// ClassMember is a member of a class body.
type ClassMember interface {
	Node
	isClassMember()
}

// JSXName is the name of a JSX element or attribute.
type JSXName interface {
	Node
	isJSXName()
}

// JSXChild is a node allowed among JSX children.
type JSXChild interface {
	Node
	isJSXChild()
}

// JSXAttr is an attribute of a JSX opening element.
type JSXAttr interface {
	Node
	isJSXAttr()
}

// Function is implemented by the three function node kinds. They are the
// scope boundaries the rewriter tracks.
type Function interface {
	Node
	Parameters() []Pattern
	isFunction()
}

// Origin records how the parser produced a JSX element.
type Origin uint8

const (
	// OriginShorthand marks elements synthesized from shorthand syntax
	// (for example markdown headings lowered to <h1>).
	OriginShorthand Origin = iota
	// OriginExplicit marks elements the author wrote as literal markup.
	OriginExplicit
)

func (o Origin) String() string {
	if o == OriginExplicit {
		return "explicit"
	}
	return "shorthand"
}

// Position is a 1-based line and 0-based column in the source text.
type Position struct {
	Line   int
	Column int
}

// ---- Program ----

type Program struct {
	Body       []Statement
	SourceType string // "module" or "script"
}

// ---- Statements ----

type ExpressionStatement struct {
	Expression Expression
}

type BlockStatement struct {
	Body []Statement
}

type ReturnStatement struct {
	Argument Expression // nil for a bare return
}

type IfStatement struct {
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil when there is no else
}

type ThrowStatement struct {
	Argument Expression
}

type EmptyStatement struct{}

type VariableDeclaration struct {
	Keyword      string // "var", "let" or "const"
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	ID   Pattern
	Init Expression // may be nil
}

type FunctionDeclaration struct {
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Async     bool
	Generator bool
}

type ClassDeclaration struct {
	ID         *Identifier
	SuperClass Expression
	Body       []ClassMember
}

type MethodDefinition struct {
	Key        Expression
	Value      *FunctionExpression
	MethodKind string // "method", "get", "set" or "constructor"
	Static     bool
	Computed   bool
}

type ImportDeclaration struct {
	Specifiers []ModuleSpecifier
	Source     *Literal
}

type ImportSpecifier struct {
	Imported *Identifier
	Local    *Identifier
}

type ImportDefaultSpecifier struct {
	Local *Identifier
}

type ImportNamespaceSpecifier struct {
	Local *Identifier
}

type ExportNamedDeclaration struct {
	Declaration Statement // nil when Specifiers are used
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

type ExportSpecifier struct {
	Local    *Identifier
	Exported *Identifier
}

// ExportDefaultDeclaration holds a *FunctionDeclaration, a *ClassDeclaration
// or an Expression.
type ExportDefaultDeclaration struct {
	Declaration Node
}

type ExportAllDeclaration struct {
	Exported *Identifier // nil for a bare export *
	Source   *Literal
}

// ForStatement.Init is a *VariableDeclaration, an Expression or nil.
type ForStatement struct {
	Init   Node
	Test   Expression // nil for an endless loop
	Update Expression
	Body   Statement
}

// ForInStatement.Left is a *VariableDeclaration with one declarator and no
// initializer, or a Pattern. ForOfStatement.Left has the same shape.
type ForInStatement struct {
	Left  Node
	Right Expression
	Body  Statement
}

type ForOfStatement struct {
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

type WhileStatement struct {
	Test Expression
	Body Statement
}

type DoWhileStatement struct {
	Body Statement
	Test Expression
}

// TryStatement has a Handler, a Finalizer, or both.
type TryStatement struct {
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

type CatchClause struct {
	Param Pattern // nil for catch without a binding
	Body  *BlockStatement
}

type SwitchStatement struct {
	Discriminant Expression
	Cases        []*SwitchCase
}

type SwitchCase struct {
	Test       Expression // nil for default
	Consequent []Statement
}

type LabeledStatement struct {
	Label *Identifier
	Body  Statement
}

type BreakStatement struct {
	Label *Identifier
}

type ContinueStatement struct {
	Label *Identifier
}

// ---- Expressions ----

type Identifier struct {
	Name string
}

// Literal holds a string, float64, bool or nil value. Raw, when set, is the
// exact source text and takes precedence when printing (regular expressions
// and non-decimal numbers only have a Raw form).
type Literal struct {
	Value any
	Raw   string
}

type ThisExpression struct{}

type ArrayExpression struct {
	Elements []Expression // nil entries are holes
}

type ObjectExpression struct {
	Properties []ObjectMember
}

// Property is a key/value entry of an object literal or object pattern. In
// patterns Value is a Pattern; in literals it is an Expression.
type Property struct {
	Key       Expression
	Value     Node
	PropKind  string // "init", "get" or "set"; empty means "init"
	Computed  bool
	Shorthand bool
	Method    bool
}

type SpreadElement struct {
	Argument Expression
}

type FunctionExpression struct {
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// ArrowFunctionExpression has either a block Body or an implicit-return
// ExprBody, never both.
type ArrowFunctionExpression struct {
	Params   []Pattern
	Body     *BlockStatement
	ExprBody Expression
	Async    bool
}

type ClassExpression struct {
	ID         *Identifier
	SuperClass Expression
	Body       []ClassMember
}

type CallExpression struct {
	Callee    Expression
	Arguments []Expression
	Optional  bool
}

type NewExpression struct {
	Callee    Expression
	Arguments []Expression
}

type MemberExpression struct {
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

type ConditionalExpression struct {
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type BinaryExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

type LogicalExpression struct {
	Operator string // "&&", "||" or "??"
	Left     Expression
	Right    Expression
}

type UnaryExpression struct {
	Operator string
	Argument Expression
}

type UpdateExpression struct {
	Operator string
	Argument Expression
	Prefix   bool
}

type AssignmentExpression struct {
	Operator string
	Left     Pattern
	Right    Expression
}

type SequenceExpression struct {
	Expressions []Expression
}

type AwaitExpression struct {
	Argument Expression
}

type YieldExpression struct {
	Argument Expression // nil for a bare yield
	Delegate bool
}

// TemplateLiteral has one more quasi than it has expressions.
type TemplateLiteral struct {
	Quasis      []*TemplateElement
	Expressions []Expression
}

// TemplateElement.Raw is the source text between substitutions, escapes
// included.
type TemplateElement struct {
	Raw  string
	Tail bool
}

type TaggedTemplateExpression struct {
	Tag   Expression
	Quasi *TemplateLiteral
}

// ---- Patterns ----

type ObjectPattern struct {
	Properties []ObjectMember // *Property with Pattern values, or *RestElement
}

type ArrayPattern struct {
	Elements []Pattern // nil entries are holes
}

type AssignmentPattern struct {
	Left  Pattern
	Right Expression
}

type RestElement struct {
	Argument Pattern
}

// ---- JSX ----

type JSXElement struct {
	OpeningElement *JSXOpeningElement
	ClosingElement *JSXClosingElement // nil when self-closing
	Children       []JSXChild
	Origin         Origin
	Pos            Position
}

type JSXOpeningElement struct {
	Name        JSXName
	Attributes  []JSXAttr
	SelfClosing bool
}

type JSXClosingElement struct {
	Name JSXName
}

type JSXFragment struct {
	Children []JSXChild
}

type JSXIdentifier struct {
	Name string
}

type JSXMemberExpression struct {
	Object   JSXName // *JSXIdentifier or *JSXMemberExpression
	Property *JSXIdentifier
}

type JSXNamespacedName struct {
	Namespace *JSXIdentifier
	Name      *JSXIdentifier
}

// JSXAttribute.Value is nil, *Literal, *JSXExpressionContainer, *JSXElement
// or *JSXFragment.
type JSXAttribute struct {
	Name  JSXName
	Value Node
}

type JSXSpreadAttribute struct {
	Argument Expression
}

type JSXExpressionContainer struct {
	Expression Expression // *JSXEmptyExpression for {}
}

type JSXEmptyExpression struct{}

type JSXText struct {
	Value string
}

// Raw is source text kept verbatim. It can stand in any position.
type Raw struct {
	Text string
}

// ---- Kind ----

func (*Program) Kind() Kind                  { return KindProgram }
func (*ExpressionStatement) Kind() Kind      { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind           { return KindBlockStatement }
func (*ReturnStatement) Kind() Kind          { return KindReturnStatement }
func (*IfStatement) Kind() Kind              { return KindIfStatement }
func (*ThrowStatement) Kind() Kind           { return KindThrowStatement }
func (*EmptyStatement) Kind() Kind           { return KindEmptyStatement }
func (*VariableDeclaration) Kind() Kind      { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind       { return KindVariableDeclarator }
func (*FunctionDeclaration) Kind() Kind      { return KindFunctionDeclaration }
func (*ClassDeclaration) Kind() Kind         { return KindClassDeclaration }
func (*MethodDefinition) Kind() Kind         { return KindMethodDefinition }
func (*ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind          { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind   { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }
func (*ExportNamedDeclaration) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportSpecifier) Kind() Kind          { return KindExportSpecifier }
func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }
func (*ExportAllDeclaration) Kind() Kind     { return KindExportAllDeclaration }
func (*ForStatement) Kind() Kind             { return KindForStatement }
func (*ForInStatement) Kind() Kind           { return KindForInStatement }
func (*ForOfStatement) Kind() Kind           { return KindForOfStatement }
func (*WhileStatement) Kind() Kind           { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind         { return KindDoWhileStatement }
func (*TryStatement) Kind() Kind             { return KindTryStatement }
func (*CatchClause) Kind() Kind              { return KindCatchClause }
func (*SwitchStatement) Kind() Kind          { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind               { return KindSwitchCase }
func (*LabeledStatement) Kind() Kind         { return KindLabeledStatement }
func (*BreakStatement) Kind() Kind           { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind        { return KindContinueStatement }
func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*Literal) Kind() Kind                  { return KindLiteral }
func (*ThisExpression) Kind() Kind           { return KindThisExpression }
func (*ArrayExpression) Kind() Kind          { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind         { return KindObjectExpression }
func (*Property) Kind() Kind                 { return KindProperty }
func (*SpreadElement) Kind() Kind            { return KindSpreadElement }
func (*FunctionExpression) Kind() Kind       { return KindFunctionExpression }
func (*ArrowFunctionExpression) Kind() Kind  { return KindArrowFunctionExpression }
func (*ClassExpression) Kind() Kind          { return KindClassExpression }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*MemberExpression) Kind() Kind         { return KindMemberExpression }
func (*ConditionalExpression) Kind() Kind    { return KindConditionalExpression }
func (*BinaryExpression) Kind() Kind         { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind        { return KindLogicalExpression }
func (*UnaryExpression) Kind() Kind          { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind         { return KindUpdateExpression }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*SequenceExpression) Kind() Kind       { return KindSequenceExpression }
func (*AwaitExpression) Kind() Kind          { return KindAwaitExpression }
func (*YieldExpression) Kind() Kind          { return KindYieldExpression }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*TemplateElement) Kind() Kind          { return KindTemplateElement }
func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }
func (*ObjectPattern) Kind() Kind            { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind             { return KindArrayPattern }
func (*AssignmentPattern) Kind() Kind        { return KindAssignmentPattern }
func (*RestElement) Kind() Kind              { return KindRestElement }
func (*JSXElement) Kind() Kind               { return KindJSXElement }
func (*JSXOpeningElement) Kind() Kind        { return KindJSXOpeningElement }
func (*JSXClosingElement) Kind() Kind        { return KindJSXClosingElement }
func (*JSXFragment) Kind() Kind              { return KindJSXFragment }
func (*JSXIdentifier) Kind() Kind            { return KindJSXIdentifier }
func (*JSXMemberExpression) Kind() Kind      { return KindJSXMemberExpression }
func (*JSXNamespacedName) Kind() Kind        { return KindJSXNamespacedName }
func (*JSXAttribute) Kind() Kind             { return KindJSXAttribute }
func (*JSXSpreadAttribute) Kind() Kind       { return KindJSXSpreadAttribute }
func (*JSXExpressionContainer) Kind() Kind   { return KindJSXExpressionContainer }
func (*JSXEmptyExpression) Kind() Kind       { return KindJSXEmptyExpression }
func (*JSXText) Kind() Kind                  { return KindJSXText }
func (*Raw) Kind() Kind                      { return KindRaw }

// ---- Markers ----

func (*ExpressionStatement) isStatement()      {}
func (*BlockStatement) isStatement()           {}
func (*ReturnStatement) isStatement()          {}
func (*IfStatement) isStatement()              {}
func (*ThrowStatement) isStatement()           {}
func (*EmptyStatement) isStatement()           {}
func (*VariableDeclaration) isStatement()      {}
func (*FunctionDeclaration) isStatement()      {}
func (*ClassDeclaration) isStatement()         {}
func (*ImportDeclaration) isStatement()        {}
func (*ExportNamedDeclaration) isStatement()   {}
func (*ExportDefaultDeclaration) isStatement() {}
func (*ExportAllDeclaration) isStatement()     {}
func (*ForStatement) isStatement()             {}
func (*ForInStatement) isStatement()           {}
func (*ForOfStatement) isStatement()           {}
func (*WhileStatement) isStatement()           {}
func (*DoWhileStatement) isStatement()         {}
func (*TryStatement) isStatement()             {}
func (*SwitchStatement) isStatement()          {}
func (*LabeledStatement) isStatement()         {}
func (*BreakStatement) isStatement()           {}
func (*ContinueStatement) isStatement()        {}
func (*Raw) isStatement()                      {}

func (*Identifier) isExpression()               {}
func (*Literal) isExpression()                  {}
func (*ThisExpression) isExpression()           {}
func (*ArrayExpression) isExpression()          {}
func (*ObjectExpression) isExpression()         {}
func (*SpreadElement) isExpression()            {}
func (*FunctionExpression) isExpression()       {}
func (*ArrowFunctionExpression) isExpression()  {}
func (*ClassExpression) isExpression()          {}
func (*CallExpression) isExpression()           {}
func (*NewExpression) isExpression()            {}
func (*MemberExpression) isExpression()         {}
func (*ConditionalExpression) isExpression()    {}
func (*BinaryExpression) isExpression()         {}
func (*LogicalExpression) isExpression()        {}
func (*UnaryExpression) isExpression()          {}
func (*UpdateExpression) isExpression()         {}
func (*AssignmentExpression) isExpression()     {}
func (*SequenceExpression) isExpression()       {}
func (*AwaitExpression) isExpression()          {}
func (*YieldExpression) isExpression()          {}
func (*TemplateLiteral) isExpression()          {}
func (*TaggedTemplateExpression) isExpression() {}
func (*JSXElement) isExpression()               {}
func (*JSXFragment) isExpression()              {}
func (*JSXEmptyExpression) isExpression()       {}
func (*Raw) isExpression()                      {}

func (*Identifier) isPattern()        {}
func (*MemberExpression) isPattern()  {}
func (*ObjectPattern) isPattern()     {}
func (*ArrayPattern) isPattern()      {}
func (*AssignmentPattern) isPattern() {}
func (*RestElement) isPattern()       {}
func (*Raw) isPattern()               {}

func (*Property) isObjectMember()      {}
func (*SpreadElement) isObjectMember() {}
func (*RestElement) isObjectMember()   {}

func (*ImportSpecifier) isModuleSpecifier()          {}
func (*ImportDefaultSpecifier) isModuleSpecifier()   {}
func (*ImportNamespaceSpecifier) isModuleSpecifier() {}

func (*MethodDefinition) isClassMember() {}
func (*Raw) isClassMember()              {}

func (*JSXIdentifier) isJSXName()       {}
func (*JSXMemberExpression) isJSXName() {}
func (*JSXNamespacedName) isJSXName()   {}

func (*JSXElement) isJSXChild()             {}
func (*JSXFragment) isJSXChild()            {}
func (*JSXText) isJSXChild()                {}
func (*JSXExpressionContainer) isJSXChild() {}

func (*JSXAttribute) isJSXAttr()       {}
func (*JSXSpreadAttribute) isJSXAttr() {}

func (f *FunctionDeclaration) Parameters() []Pattern     { return f.Params }
func (f *FunctionExpression) Parameters() []Pattern      { return f.Params }
func (f *ArrowFunctionExpression) Parameters() []Pattern { return f.Params }

func (*FunctionDeclaration) isFunction()     {}
func (*FunctionExpression) isFunction()      {}
func (*ArrowFunctionExpression) isFunction() {}
