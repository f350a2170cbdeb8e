// Package runtime embeds a Risor VM for project-supplied scope scripts.
//
// A scope script is evaluated once per file before rewriting. It sees the
// names bound at the top level of the file and returns a list of extra names
// the rewriter must treat as bound, for example globals injected by a bundler.
//
//	names := ["Icon"]
//	if file_path.has_suffix("/blog.jsx") { names.append("Byline") }
//	names
package runtime

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/importer"
	"github.com/risor-io/risor/object"
	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/topscope"
)

// ErrResultType is returned when a scope script evaluates to something other
// than a list of strings.
var ErrResultType = errors.New("runtime: scope script must return a list of strings")

// Runtime evaluates scope scripts.
type Runtime struct {
	scriptsDir string
	fsys       fs.FS
	logger     *zap.Logger
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithRuntimeFS configures the Runtime to load scripts from an fs.FS instead
// of from disk. Risor import statements resolve against the same FS.
func WithRuntimeFS(fsys fs.FS) RuntimeOption {
	return func(r *Runtime) {
		r.fsys = fsys
	}
}

// WithRuntimeLogger sets the logger behind the log global.
func WithRuntimeLogger(logger *zap.Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// NewRuntime creates a Runtime that resolves relative script paths against
// scriptsDir.
func NewRuntime(scriptsDir string, opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		scriptsDir: scriptsDir,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ScopeScript is a loaded script bound to a Runtime.
type ScopeScript struct {
	rt     *Runtime
	label  string
	source string
}

// LoadScopeScript reads the script at path once so it can be evaluated for
// many files.
func (r *Runtime) LoadScopeScript(path string) (*ScopeScript, error) {
	src, err := r.LoadScript(path)
	if err != nil {
		return nil, err
	}
	return &ScopeScript{rt: r, label: path, source: src}, nil
}

// ScopeSource wraps inline Risor source as a ScopeScript.
func (r *Runtime) ScopeSource(source string) *ScopeScript {
	return &ScopeScript{rt: r, label: "<inline>", source: source}
}

// Hash returns the hex SHA-256 of the script source, for cache keys.
func (s *ScopeScript) Hash() string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(s.source)))
}

// Names evaluates the script for one file and returns the extra names it
// produced. A nil result means no extra names.
func (s *ScopeScript) Names(ctx context.Context, filePath string, top topscope.Set) ([]string, error) {
	names := top.Names()
	items := make([]object.Object, len(names))
	for i, n := range names {
		items[i] = object.NewString(n)
	}
	result, err := s.rt.eval(ctx, s.source, s.label, map[string]any{
		"top_scope": object.NewList(items),
		"file_path": object.NewString(filePath),
	})
	if err != nil {
		return nil, err
	}
	return stringList(result, s.label)
}

// Extend returns top plus the names the script produced for filePath. top is
// not modified.
func (s *ScopeScript) Extend(ctx context.Context, filePath string, top topscope.Set) (topscope.Set, error) {
	extra, err := s.Names(ctx, filePath, top)
	if err != nil {
		return nil, err
	}
	out := make(topscope.Set, len(top)+len(extra))
	for name := range top {
		out.Add(name)
	}
	for _, name := range extra {
		out.Add(name)
	}
	s.rt.logger.Debug("scope script applied",
		zap.String("file", filePath),
		zap.Strings("extra", extra))
	return out, nil
}

func stringList(obj object.Object, label string) ([]string, error) {
	if obj == nil || obj == object.Nil {
		return nil, nil
	}
	list, ok := obj.(*object.List)
	if !ok {
		return nil, fmt.Errorf("%w: script %s returned %s", ErrResultType, label, obj.Type())
	}
	var out []string
	for i, item := range list.Value() {
		str, ok := item.(*object.String)
		if !ok {
			return nil, fmt.Errorf("%w: script %s item %d is %s", ErrResultType, label, i, item.Type())
		}
		out = append(out, str.Value())
	}
	return out, nil
}

func (r *Runtime) eval(ctx context.Context, source, label string, extraGlobals map[string]any) (object.Object, error) {
	globals := r.buildGlobals(extraGlobals)

	var opts []risor.Option
	for name, val := range globals {
		opts = append(opts, risor.WithGlobal(name, val))
	}

	if imp := r.buildImporter(globals); imp != nil {
		opts = append(opts, risor.WithImporter(imp))
	}

	result, err := risor.Eval(ctx, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("runtime: script %s: %w", label, err)
	}
	return result, nil
}

// buildImporter returns a Risor importer configured for the Runtime's script
// source. Returns nil if neither fs.FS nor scriptsDir is configured.
func (r *Runtime) buildImporter(globals map[string]any) importer.Importer {
	globalNames := make([]string, 0, len(globals))
	for name := range globals {
		globalNames = append(globalNames, name)
	}

	if r.fsys != nil {
		return importer.NewFSImporter(importer.FSImporterOptions{
			GlobalNames: globalNames,
			SourceFS:    r.fsys,
			Extensions:  []string{".risor"},
		})
	}
	if r.scriptsDir != "" {
		return importer.NewLocalImporter(importer.LocalImporterOptions{
			GlobalNames: globalNames,
			SourceDir:   r.scriptsDir,
			Extensions:  []string{".risor"},
		})
	}
	return nil
}

// LoadScript reads a .risor file and returns its source code.
func (r *Runtime) LoadScript(path string) (string, error) {
	if r.fsys != nil {
		fsPath := strings.TrimPrefix(filepath.ToSlash(path), "/")
		data, err := fs.ReadFile(r.fsys, fsPath)
		if err != nil {
			return "", fmt.Errorf("runtime: loading script %s from fs: %w", fsPath, err)
		}
		return string(data), nil
	}

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(r.scriptsDir, path)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("runtime: loading script %s: %w", fullPath, err)
	}
	return string(data), nil
}
