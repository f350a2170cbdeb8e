package runtime

import (
	"context"
	"fmt"

	"github.com/risor-io/risor/object"
	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/estree"
)

// buildGlobals constructs the full set of globals exposed to scope scripts.
func (r *Runtime) buildGlobals(extra map[string]any) map[string]any {
	globals := map[string]any{
		"is_identifier": makeIsIdentifierFn(),
		"is_component":  makeIsComponentFn(),
		"log":           mustProxy(&logObject{logger: r.logger}),
	}
	for k, v := range extra {
		globals[k] = v
	}
	return globals
}

// makeIsIdentifierFn creates "is_identifier".
//
// is_identifier(name) → bool
func makeIsIdentifierFn() *object.Builtin {
	return object.NewBuiltin("is_identifier", func(ctx context.Context, args ...object.Object) object.Object {
		name, err := stringArg("is_identifier", args)
		if err != nil {
			return err
		}
		return object.NewBool(estree.IsIdentifierName(name))
	})
}

// makeIsComponentFn creates "is_component", true for names the rewriter
// treats as components rather than tags.
//
// is_component(name) → bool
func makeIsComponentFn() *object.Builtin {
	return object.NewBuiltin("is_component", func(ctx context.Context, args ...object.Object) object.Object {
		name, err := stringArg("is_component", args)
		if err != nil {
			return err
		}
		lower := name != "" && name[0] >= 'a' && name[0] <= 'z'
		return object.NewBool(estree.IsIdentifierName(name) && !lower)
	})
}

func stringArg(fn string, args []object.Object) (string, *object.Error) {
	if len(args) != 1 {
		return "", object.NewArgsError(fn, 1, len(args))
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return "", object.Errorf("%s: name must be a string, got %s", fn, args[0].Type())
	}
	return s.Value(), nil
}

// logObject provides log.info/warn/error methods for scope scripts.
type logObject struct {
	logger *zap.Logger
}

func (l *logObject) Info(msg string) {
	l.logger.Info(msg, zap.String("source", "scope_script"))
}

func (l *logObject) Warn(msg string) {
	l.logger.Warn(msg, zap.String("source", "scope_script"))
}

func (l *logObject) Error(msg string) {
	l.logger.Error(msg, zap.String("source", "scope_script"))
}

func mustProxy(v any) object.Object {
	p, err := object.NewProxy(v)
	if err != nil {
		panic(fmt.Sprintf("runtime: proxy error: %v", err))
	}
	return p
}
