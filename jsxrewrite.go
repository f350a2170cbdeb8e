// Package jsxrewrite routes JSX element references in compiled MDX through an
// injected _components object, so renderers can be supplied at runtime.
package jsxrewrite

// Names the pass reads from or writes into generated code.
const (
	componentsID  = "_components"
	layoutName    = "MDXLayout"
	layoutKey     = "wrapper"
	entryName     = "MDXContent"
	missingHelper = "_missingComponent"
	providerLocal = "_provideComponents"
	providerName  = "useMDXComponents"
)
