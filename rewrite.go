package jsxrewrite

import (
	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/estree"
	"github.com/jward/jsxrewrite/internal/topscope"
)

// Rewriter holds pass configuration. It keeps no per-tree state and may be
// shared between goroutines.
type Rewriter struct {
	opts     Options
	topScope TopScopeFunc
	logger   *zap.Logger
}

// New returns a Rewriter configured by opts.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{
		opts:     Options{OutputFormat: FormatProgram},
		topScope: topscope.Compute,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Options returns the Rewriter's configuration.
func (r *Rewriter) Options() Options {
	return r.opts
}

// Result describes what one Rewrite call discovered and injected.
type Result struct {
	// Functions has one entry per top-level function that received a
	// _components declaration, in the order they were closed.
	Functions []FunctionReport
	// Unscoped lists element names found outside every function. They are
	// not rewritten.
	Unscoped []string
	// NeedsHelper is set when _missingComponent was prepended.
	NeedsHelper bool
	// NeedsProvider is set when the provider import was prepended.
	NeedsProvider bool
}

// FunctionReport lists the names tracked for one function.
type FunctionReport struct {
	Name       string
	Tags       []string
	Components []string
	Objects    []string
	Entry      bool
}

// MissingComponents returns the components for which a throwing fallback was
// generated, across all functions.
func (res *Result) MissingComponents() []string {
	var out []string
	for _, fn := range res.Functions {
		for _, c := range fn.Components {
			if c != layoutName {
				out = append(out, c)
			}
		}
	}
	return out
}

// pass is the state of one Rewrite call.
type pass struct {
	opts   Options
	top    topscope.Set
	logger *zap.Logger

	stack         scopeStack
	needsHelper   bool
	needsProvider bool
	result        *Result
}

// Rewrite mutates prog in place and reports what it did. Applying Rewrite to
// its own output is not supported.
func (r *Rewriter) Rewrite(prog *estree.Program) *Result {
	p := &pass{
		opts:   r.opts,
		top:    r.topScope(prog),
		logger: r.logger,
		result: &Result{},
	}

	estree.Walk(prog, estree.Visitor{Enter: p.enter, Leave: p.leave})

	var prelude []estree.Statement
	if p.needsProvider {
		prelude = append(prelude, providerDeclaration(r.opts.OutputFormat, r.opts.ProviderImportSource))
	}
	if p.needsHelper {
		prelude = append(prelude, missingComponentDeclaration())
	}
	if len(prelude) > 0 {
		prog.Body = append(prelude, prog.Body...)
	}

	p.result.NeedsHelper = p.needsHelper
	p.result.NeedsProvider = p.needsProvider
	return p.result
}

// Rewrite runs a single pass over prog with a Rewriter built from opts.
func Rewrite(prog *estree.Program, opts ...Option) *Result {
	return New(opts...).Rewrite(prog)
}

func (p *pass) enter(n, parent estree.Node) {
	switch n := n.(type) {
	case estree.Function:
		p.stack.push(n, parent)
	case *estree.JSXElement:
		p.classify(n)
	}
}

func (p *pass) leave(n, _ estree.Node) {
	if _, ok := n.(estree.Function); !ok {
		return
	}
	f, outermost := p.stack.pop()
	if !outermost {
		return
	}
	if report := p.synthesize(f); report != nil {
		p.result.Functions = append(p.result.Functions, *report)
	}
}
