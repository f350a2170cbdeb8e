package jsxrewrite

import (
	"fmt"

	"github.com/jward/jsxrewrite/internal/estree"
)

// missingComponentDeclaration builds
//
//	function _missingComponent(name) {
//	  return function () {
//	    throw new Error("Component `" + name + "` was not imported, exported, or given");
//	  };
//	}
//
// The error is raised when a missing component renders, not when it is
// looked up.
func missingComponentDeclaration() *estree.FunctionDeclaration {
	msg := estree.Concat(
		estree.Str("Component `"),
		estree.Ident("name"),
		estree.Str("` was not imported, exported, or given"),
	)
	return &estree.FunctionDeclaration{
		ID:     estree.Ident(missingHelper),
		Params: []estree.Pattern{estree.Ident("name")},
		Body: estree.Block(estree.Return(&estree.FunctionExpression{
			Body: estree.Block(estree.Throw(estree.New(estree.Ident("Error"), msg))),
		})),
	}
}

// providerDeclaration brings the provider accessor into scope as
// _provideComponents.
func providerDeclaration(format OutputFormat, source string) estree.Statement {
	switch format {
	case FormatProgram, "":
		return &estree.ImportDeclaration{
			Specifiers: []estree.ModuleSpecifier{&estree.ImportSpecifier{
				Imported: estree.Ident(providerName),
				Local:    estree.Ident(providerLocal),
			}},
			Source: estree.Str(source),
		}
	case FormatFunctionBody:
		return estree.Const(
			estree.ObjectPatternOf(estree.Prop(providerName, estree.Ident(providerLocal))),
			estree.Index(estree.Ident("arguments"), estree.Num(0)),
		)
	}
	panic(fmt.Sprintf("jsxrewrite: unknown output format %q", format))
}
