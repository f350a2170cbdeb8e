// Package jsxrewrite rewrites the JSX in a compiled MDX program so that every
// element is looked up through a single injected _components object instead
// of the identifier the author wrote. Components that are never defined get a
// stand-in that throws a descriptive error when rendered.
//
// # Pass
//
// [Rewriter.Rewrite] walks an [estree.Program] once. Each top-level function
// opens a frame that collects three sets of names from every element inside
// it, including elements in nested functions:
//
//   - objects: the root of member names, Foo in <Foo.Bar />
//   - components: identifiers not starting with a-z, <Foo />
//   - tags: everything else that was not written as explicit markup, <h1>
//
// Tags are renamed in place to <_components.h1>. When the function closes, it
// receives
//
//	const _components = {h1: "h1", Foo: _missingComponent("Foo"), ...props.components};
//	const {Foo} = _components;
//
// The provider spread (..._provideComponents()) is added when a provider
// import source is configured, and the props spread only in MDXContent.
// MDXLayout is destructured as wrapper and never receives a fallback. Names
// bound at the top level of the program are never collected.
//
// After the walk the provider import and the _missingComponent helper are
// prepended to the program, in that order, when used.
//
// The pass is not idempotent: running it on its own output rewrites
// _components.h1 again. Run it once per tree.
//
// # Usage
//
//	prog, err := parse.Source(ctx, src)
//	if err != nil { ... }
//	res := jsxrewrite.New(jsxrewrite.WithProviderImportSource("@mdx-js/react")).Rewrite(prog)
//	out := printer.Print(prog)
//
// # Batch rewriting
//
// [Engine] rewrites whole directories, caching content hashes and the names
// each file uses in SQLite so unchanged files are skipped and missing
// components can be reported across a project with [Report].
package jsxrewrite
