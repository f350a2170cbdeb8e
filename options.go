package jsxrewrite

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/estree"
	"github.com/jward/jsxrewrite/internal/topscope"
)

// OutputFormat selects how the provider accessor is brought into scope.
type OutputFormat string

const (
	// FormatProgram emits an ES module import of the provider accessor.
	FormatProgram OutputFormat = "program"
	// FormatFunctionBody destructures the accessor from arguments[0], for
	// trees evaluated as the body of a function.
	FormatFunctionBody OutputFormat = "function-body"
)

// ErrInvalidOutputFormat is returned for output formats other than
// "program" and "function-body".
var ErrInvalidOutputFormat = errors.New("jsxrewrite: invalid output format")

// ParseOutputFormat converts s into an OutputFormat. The empty string maps
// to FormatProgram.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatProgram:
		return FormatProgram, nil
	case FormatFunctionBody:
		return FormatFunctionBody, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOutputFormat, s)
}

// Options is the configuration recognized by the rewrite pass.
type Options struct {
	OutputFormat OutputFormat
	// ProviderImportSource, when set, merges the result of the provider
	// accessor into every injected components object and names the module
	// the accessor is imported from in FormatProgram.
	ProviderImportSource string
}

// Validate reports configuration the pass cannot act on.
func (o Options) Validate() error {
	if _, err := ParseOutputFormat(string(o.OutputFormat)); err != nil {
		return err
	}
	return nil
}

// TopScopeFunc returns the names bound at the outermost level of prog.
type TopScopeFunc func(prog *estree.Program) topscope.Set

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithOutputFormat sets the provider import shape. Default FormatProgram.
func WithOutputFormat(f OutputFormat) Option {
	return func(r *Rewriter) {
		r.opts.OutputFormat = f
	}
}

// WithProviderImportSource enables provider merging, importing the accessor
// from source.
func WithProviderImportSource(source string) Option {
	return func(r *Rewriter) {
		r.opts.ProviderImportSource = source
	}
}

// WithOptions replaces the whole Options value.
func WithOptions(o Options) Option {
	return func(r *Rewriter) {
		r.opts = o
	}
}

// WithTopScope replaces the scope catalog. The default is topscope.Compute.
func WithTopScope(fn TopScopeFunc) Option {
	return func(r *Rewriter) {
		r.topScope = fn
	}
}

// WithLogger sets the logger for classification and injection events.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Rewriter) {
		r.logger = logger
	}
}
