package jsxrewrite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/estree"
)

// synthesize injects the _components declarations into f's function. It does
// nothing when the frame tracked no names.
func (p *pass) synthesize(f *frame) *FunctionReport {
	if f.empty() {
		return nil
	}

	var defaults []estree.ObjectMember
	for _, tag := range f.tags.values() {
		defaults = append(defaults, estree.Prop(tag, estree.Str(tag)))
	}
	for _, c := range f.components.values() {
		if c == layoutName {
			continue
		}
		defaults = append(defaults, estree.Prop(c, estree.Call(estree.Ident(missingHelper), estree.Str(c))))
	}

	var actual []estree.ObjectMember
	for _, c := range f.components.values() {
		if c == layoutName {
			actual = append(actual, estree.Prop(layoutKey, estree.Ident(layoutName)))
			continue
		}
		actual = append(actual, estree.ShorthandProp(c))
	}
	for _, o := range f.objects.values() {
		actual = append(actual, estree.ShorthandProp(o))
	}
	for _, tag := range f.aliasList {
		actual = append(actual, estree.Prop(tag, estree.Ident(f.aliases[tag])))
	}

	var prologue []estree.Statement
	initializer := defaults
	if p.opts.ProviderImportSource != "" {
		initializer = append(initializer, estree.Spread(estree.Call(estree.Ident(providerLocal))))
		p.needsProvider = true
	}
	entry := isEntry(f)
	if entry {
		param, destructure := propsParam(f.fn)
		if destructure != nil {
			prologue = append(prologue, destructure)
		}
		initializer = append(initializer, estree.Spread(estree.Member(param, "components")))
	}

	prologue = append(prologue, estree.Const(estree.Ident(componentsID), estree.Object(initializer...)))
	if len(actual) > 0 {
		prologue = append(prologue, estree.Const(estree.ObjectPatternOf(actual...), estree.Ident(componentsID)))
	}

	body := functionBody(f.fn)
	body.Body = append(prologue, body.Body...)

	report := &FunctionReport{
		Name:       functionName(f),
		Tags:       append([]string(nil), f.tags.values()...),
		Components: append([]string(nil), f.components.values()...),
		Objects:    append([]string(nil), f.objects.values()...),
		Entry:      entry,
	}
	p.logger.Debug("injected components",
		zap.String("function", report.Name),
		zap.Strings("tags", report.Tags),
		zap.Strings("components", report.Components),
		zap.Strings("objects", report.Objects),
		zap.Bool("entry", entry),
	)
	return report
}

// functionBody returns the block of fn, first converting an arrow's
// expression body into { return expr; }.
func functionBody(fn estree.Function) *estree.BlockStatement {
	switch fn := fn.(type) {
	case *estree.FunctionDeclaration:
		return fn.Body
	case *estree.FunctionExpression:
		return fn.Body
	case *estree.ArrowFunctionExpression:
		if fn.Body == nil {
			fn.Body = estree.Block(estree.Return(fn.ExprBody))
			fn.ExprBody = nil
		}
		return fn.Body
	}
	panic(fmt.Sprintf("jsxrewrite: unexpected function %T", fn))
}

// isEntry reports whether f is the MDXContent function: a declaration or
// named function expression called MDXContent, or a function assigned to a
// variable of that name.
func isEntry(f *frame) bool {
	return functionName(f) == entryName
}

func functionName(f *frame) string {
	switch fn := f.fn.(type) {
	case *estree.FunctionDeclaration:
		if fn.ID != nil {
			return fn.ID.Name
		}
	case *estree.FunctionExpression:
		if fn.ID != nil {
			return fn.ID.Name
		}
	}
	if d, ok := f.parent.(*estree.VariableDeclarator); ok {
		if id, ok := d.ID.(*estree.Identifier); ok {
			return id.Name
		}
	}
	return ""
}

// propsParam returns the binding that holds the entry function's props,
// adding or renaming the first parameter when it has no plain name. A
// destructured first parameter is moved into a declaration returned as
// destructure.
func propsParam(fn estree.Function) (name string, destructure estree.Statement) {
	params := fn.Parameters()
	if len(params) == 0 {
		setParams(fn, []estree.Pattern{estree.Ident("props")})
		return "props", nil
	}
	switch first := params[0].(type) {
	case *estree.Identifier:
		return first.Name, nil
	case *estree.AssignmentPattern:
		if id, ok := first.Left.(*estree.Identifier); ok {
			return id.Name, nil
		}
		pattern := first.Left
		first.Left = estree.Ident("_props")
		return "_props", estree.Const(pattern, estree.Ident("_props"))
	default:
		params[0] = estree.Ident("_props")
		return "_props", estree.Const(first, estree.Ident("_props"))
	}
}

func setParams(fn estree.Function, params []estree.Pattern) {
	switch fn := fn.(type) {
	case *estree.FunctionDeclaration:
		fn.Params = params
	case *estree.FunctionExpression:
		fn.Params = params
	case *estree.ArrowFunctionExpression:
		fn.Params = params
	default:
		panic(fmt.Sprintf("jsxrewrite: unexpected function %T", fn))
	}
}
