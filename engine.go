package jsxrewrite

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/estree"
	"github.com/jward/jsxrewrite/internal/parse"
	"github.com/jward/jsxrewrite/internal/printer"
	jsxrt "github.com/jward/jsxrewrite/internal/runtime"
	"github.com/jward/jsxrewrite/internal/store"
	"github.com/jward/jsxrewrite/internal/topscope"
)

// optionsHashKey is the metadata key holding the fingerprint of the last
// completed run.
const optionsHashKey = "options_hash"

// formatVersion is folded into the options fingerprint. Bump it when the
// printed output changes for identical input so caches are invalidated.
const formatVersion = "1"

// Engine rewrites files in batches: file discovery, change detection,
// parse, rewrite, print, and a SQLite record of what each file uses.
type Engine struct {
	store   *store.Store
	opts    Options
	logger  *zap.Logger
	baseDir string
	outDir  string

	shorthand  bool
	input      string          // "" means decide by extension
	extensions map[string]bool // nil means every extension the parser knows

	scopeScriptPath string
	scopeScriptFS   fs.FS
	scope           *jsxrt.ScopeScript
	optionsHash     string

	force       bool
	useParallel bool
	workers     int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRewriteOptions sets the options passed to the rewriter for every file.
func WithRewriteOptions(o Options) EngineOption {
	return func(e *Engine) {
		e.opts = o
	}
}

// WithOutDir sets the directory outputs are written to, mirroring each
// input's path relative to the base directory. Empty disables writing.
func WithOutDir(dir string) EngineOption {
	return func(e *Engine) {
		e.outDir = dir
	}
}

// WithBaseDir sets the directory input paths are made relative to for
// output mirroring. Default is the working directory.
// RewriteDirectory uses its root instead.
func WithBaseDir(dir string) EngineOption {
	return func(e *Engine) {
		e.baseDir = dir
	}
}

// WithShorthand marks parsed JSX as shorthand-derived.
func WithShorthand(shorthand bool) EngineOption {
	return func(e *Engine) {
		e.shorthand = shorthand
	}
}

// WithInput forces every file to be read as the given input kind
// (parse.InputJSX or parse.InputESTree).
func WithInput(kind string) EngineOption {
	return func(e *Engine) {
		e.input = kind
	}
}

// WithExtensions restricts which file extensions the Engine will process.
func WithExtensions(exts ...string) EngineOption {
	return func(e *Engine) {
		e.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			e.extensions[strings.ToLower(ext)] = true
		}
	}
}

// WithScopeScript evaluates the Risor script at path for every file and adds
// the names it returns to the file's top scope.
func WithScopeScript(path string) EngineOption {
	return func(e *Engine) {
		e.scopeScriptPath = path
	}
}

// WithScopeScriptFS loads the scope script from fsys instead of disk.
func WithScopeScriptFS(fsys fs.FS) EngineOption {
	return func(e *Engine) {
		e.scopeScriptFS = fsys
	}
}

// WithForce rewrites every file even when its content and options are
// unchanged.
func WithForce(force bool) EngineOption {
	return func(e *Engine) {
		e.force = force
	}
}

// WithParallel controls the worker pool. When true (default), parsing,
// rewriting and printing run concurrently and records are committed to
// SQLite in a single batch. Set to false for serial mode.
func WithParallel(parallel bool) EngineOption {
	return func(e *Engine) {
		e.useParallel = parallel
	}
}

// WithWorkers caps the worker pool size. Zero or less means runtime.NumCPU.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithEngineLogger sets the logger for run and per-file events. It is also
// handed to the rewriter, the parser and the scope script runtime.
func WithEngineLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an Engine backed by a SQLite database at dbPath.
func NewEngine(dbPath string, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		opts:        Options{OutputFormat: FormatProgram},
		logger:      zap.NewNop(),
		useParallel: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.opts.Validate(); err != nil {
		return nil, fmt.Errorf("jsxrewrite: %w", err)
	}
	switch e.input {
	case "", parse.InputJSX, parse.InputESTree:
	default:
		return nil, fmt.Errorf("jsxrewrite: unknown input kind %q", e.input)
	}
	if e.workers <= 0 {
		e.workers = runtime.NumCPU()
	}

	if e.scopeScriptPath != "" {
		var rtOpts []jsxrt.RuntimeOption
		if e.scopeScriptFS != nil {
			rtOpts = append(rtOpts, jsxrt.WithRuntimeFS(e.scopeScriptFS))
		}
		rtOpts = append(rtOpts, jsxrt.WithRuntimeLogger(e.logger))
		// Imports inside the script resolve next to it.
		dir, name := filepath.Dir(e.scopeScriptPath), filepath.Base(e.scopeScriptPath)
		if e.scopeScriptFS != nil {
			dir, name = "", e.scopeScriptPath
		}
		rt := jsxrt.NewRuntime(dir, rtOpts...)
		script, err := rt.LoadScopeScript(name)
		if err != nil {
			return nil, fmt.Errorf("jsxrewrite: scope script: %w", err)
		}
		e.scope = script
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("jsxrewrite: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("jsxrewrite: migrate: %w", err)
	}
	e.store = s
	e.optionsHash = e.computeOptionsHash()
	return e, nil
}

// Close releases the Engine's database resources.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Store returns the underlying Store for direct access.
func (e *Engine) Store() *Store {
	return e.store
}

// computeOptionsHash fingerprints every setting that changes output.
func (e *Engine) computeOptionsHash() string {
	settings := map[string]string{
		"version":                formatVersion,
		"output_format":          string(e.opts.OutputFormat),
		"provider_import_source": e.opts.ProviderImportSource,
		"shorthand":              strconv.FormatBool(e.shorthand),
		"input":                  e.input,
	}
	if e.scope != nil {
		settings["scope_script"] = e.scope.Hash()
	}
	return store.ComputeOptionsHash(settings)
}

// OptionsChanged reports whether the settings differ from those of the last
// completed run. Returns true on a fresh database. Changed settings make every
// file stale; the per-file check picks that up without a reset.
func (e *Engine) OptionsChanged() bool {
	stored, err := e.store.GetMetadata(optionsHashKey)
	if err != nil || stored == "" {
		return true
	}
	return stored != e.optionsHash
}

// Report returns a Report over the Engine's cache.
func (e *Engine) Report() *Report {
	return &Report{store: e.store}
}

// RunSummary describes one RewriteFiles or RewriteDirectory call.
type RunSummary struct {
	ID        string
	Rewritten []FileOutcome
	Skipped   int
	Errors    []error
}

// FileOutcome is one rewritten file.
type FileOutcome struct {
	Path       string
	OutputPath string
	Missing    []string
}

// RewriteFiles rewrites the given paths. Unchanged files (same content hash
// and options fingerprint, output still present) are skipped unless
// WithForce is set.
//
// Errors on individual files are collected and processing continues; the
// returned error wraps the first one. The summary is returned either way.
func (e *Engine) RewriteFiles(ctx context.Context, paths []string) (*RunSummary, error) {
	base := e.baseDir
	if base == "" {
		base = "."
	}
	return e.run(ctx, base, paths)
}

func (e *Engine) run(ctx context.Context, base string, paths []string) (*RunSummary, error) {
	sum := &RunSummary{ID: uuid.NewString()}
	started := time.Now().UTC()
	if err := e.store.InsertRun(sum.ID, started); err != nil {
		return nil, fmt.Errorf("jsxrewrite: %w", err)
	}
	e.logger.Info("run started",
		zap.String("run", sum.ID),
		zap.Int("files", len(paths)),
		zap.Bool("parallel", e.useParallel))

	if e.useParallel {
		e.rewriteParallel(ctx, base, paths, sum)
	} else {
		e.rewriteSerial(ctx, base, paths, sum)
	}

	if err := e.store.FinishRun(sum.ID, time.Now().UTC(), len(sum.Rewritten), len(sum.Errors)); err != nil {
		sum.Errors = append(sum.Errors, fmt.Errorf("finish run: %w", err))
	}
	if len(sum.Errors) == 0 {
		if err := e.store.SetMetadata(optionsHashKey, e.optionsHash); err != nil {
			sum.Errors = append(sum.Errors, fmt.Errorf("record options fingerprint: %w", err))
		}
	}

	e.logger.Info("run finished",
		zap.String("run", sum.ID),
		zap.Int("rewritten", len(sum.Rewritten)),
		zap.Int("skipped", sum.Skipped),
		zap.Int("errors", len(sum.Errors)),
		zap.Duration("elapsed", time.Since(started)))

	if len(sum.Errors) > 0 {
		for _, err := range sum.Errors {
			e.logger.Warn("rewrite failed", zap.Error(err))
		}
		return sum, fmt.Errorf("rewriting had %d error(s): %w", len(sum.Errors), sum.Errors[0])
	}
	return sum, nil
}

func (e *Engine) rewriteSerial(ctx context.Context, base string, paths []string, sum *RunSummary) {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			sum.Errors = append(sum.Errors, err)
			return
		}
		item, skip, err := e.prepareFile(base, path)
		if err != nil {
			sum.Errors = append(sum.Errors, fmt.Errorf("prepare %s: %w", path, err))
			continue
		}
		if skip {
			sum.Skipped++
			continue
		}
		outcome, err := e.rewriteFile(ctx, item, e.store)
		if err != nil {
			sum.Errors = append(sum.Errors, fmt.Errorf("rewrite %s: %w", path, err))
			continue
		}
		sum.Rewritten = append(sum.Rewritten, outcome)
	}
}

// workItem holds everything a worker needs to rewrite one file.
type workItem struct {
	path    string
	kind    string
	outPath string
	hash    string
	content []byte
}

// prepareFile reads a file and decides whether it needs rewriting. skip=true
// means the extension is filtered out or the file is unchanged.
func (e *Engine) prepareFile(base, path string) (workItem, bool, error) {
	kind, ok := e.inputKind(path)
	if !ok {
		return workItem{}, true, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return workItem{}, false, fmt.Errorf("read file: %w", err)
	}
	hash := store.HashContent(content)
	outPath := e.outputPath(base, path)

	if !e.force {
		existing, err := e.store.FileByPath(path)
		if err != nil {
			return workItem{}, false, fmt.Errorf("lookup file: %w", err)
		}
		if existing != nil && existing.Hash == hash && existing.OptionsHash == e.optionsHash && outputPresent(outPath) {
			e.logger.Debug("unchanged", zap.String("file", path))
			return workItem{}, true, nil
		}
	}

	return workItem{path: path, kind: kind, outPath: outPath, hash: hash, content: content}, false, nil
}

func (e *Engine) inputKind(path string) (string, bool) {
	kind, known := parse.InputForFile(path)
	if e.extensions != nil {
		if !e.extensions[strings.ToLower(filepath.Ext(path))] {
			return "", false
		}
	} else if !known {
		return "", false
	}
	if e.input != "" {
		return e.input, true
	}
	return kind, known
}

// outputPath mirrors path under outDir with a .js extension. ".mdx.json"
// becomes ".mdx.js".
func (e *Engine) outputPath(base, path string) string {
	if e.outDir == "" {
		return ""
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".js"
	return filepath.Join(e.outDir, rel)
}

func outputPresent(outPath string) bool {
	if outPath == "" {
		return true
	}
	_, err := os.Stat(outPath)
	return err == nil
}

// rewriteFile parses, rewrites and prints one file, writes the output and
// records the discoveries in ds.
func (e *Engine) rewriteFile(ctx context.Context, item workItem, ds store.DataStore) (FileOutcome, error) {
	parser := parse.New(parse.WithShorthand(e.shorthand), parse.WithLogger(e.logger.With(zap.String("file", item.path))))
	prog, err := parser.As(ctx, item.kind, item.path, item.content)
	if err != nil {
		return FileOutcome{}, err
	}

	top := topscope.Compute(prog)
	if e.scope != nil {
		top, err = e.scope.Extend(ctx, item.path, top)
		if err != nil {
			return FileOutcome{}, err
		}
	}

	rw := New(
		WithOptions(e.opts),
		WithLogger(e.logger),
		WithTopScope(func(*estree.Program) topscope.Set { return top }),
	)
	res := rw.Rewrite(prog)
	out := printer.Print(prog)

	if item.outPath != "" {
		if err := os.MkdirAll(filepath.Dir(item.outPath), 0755); err != nil {
			return FileOutcome{}, fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(item.outPath, []byte(out), 0644); err != nil {
			return FileOutcome{}, fmt.Errorf("write output: %w", err)
		}
	}

	rec := &store.FileRecord{
		File: store.File{
			Path:          item.path,
			Hash:          item.hash,
			OptionsHash:   e.optionsHash,
			OutputPath:    item.outPath,
			LastRewritten: time.Now().UTC(),
		},
		Discoveries: discoveries(res),
	}
	if err := ds.RecordFile(rec); err != nil {
		return FileOutcome{}, fmt.Errorf("record file: %w", err)
	}

	missing := res.MissingComponents()
	e.logger.Info("rewrote",
		zap.String("file", item.path),
		zap.String("output", item.outPath),
		zap.Int("functions", len(res.Functions)),
		zap.Strings("missing", missing))
	if len(res.Unscoped) > 0 {
		e.logger.Warn("elements outside any function were left alone",
			zap.String("file", item.path),
			zap.Strings("names", res.Unscoped))
	}
	return FileOutcome{Path: item.path, OutputPath: item.outPath, Missing: missing}, nil
}

// discoveries flattens a rewrite result into store rows.
func discoveries(res *Result) []store.Discovery {
	var ds []store.Discovery
	for _, fn := range res.Functions {
		for _, kind := range []struct {
			kind  string
			names []string
		}{
			{store.KindTag, fn.Tags},
			{store.KindComponent, fn.Components},
			{store.KindObject, fn.Objects},
		} {
			for _, name := range kind.names {
				ds = append(ds, store.Discovery{FunctionName: fn.Name, Kind: kind.kind, Name: name})
			}
		}
	}
	return ds
}

// skipDirs lists directories excluded from the filesystem walk.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
}

// RewriteDirectory rewrites every supported file under root, mirroring
// paths relative to root into the output directory. If root is inside a git
// repository, git ls-files is used to respect .gitignore. Falls back to a
// filesystem walk (skipping hidden dirs, node_modules, vendor, dist).
//
// Cached files under root that no longer exist are dropped from the store.
func (e *Engine) RewriteDirectory(ctx context.Context, root string) (*RunSummary, error) {
	paths, err := e.gitListFiles(root)
	if err != nil {
		e.logger.Debug("git ls-files unavailable, walking", zap.String("root", root), zap.Error(err))
		paths, err = e.walkListFiles(root)
		if err != nil {
			return nil, err
		}
	}
	paths = e.excludeOutDir(paths)
	if err := e.pruneMissing(root, paths); err != nil {
		return nil, fmt.Errorf("jsxrewrite: prune: %w", err)
	}
	return e.run(ctx, root, paths)
}

// excludeOutDir drops paths inside the output directory so a second run
// does not rewrite its own output.
func (e *Engine) excludeOutDir(paths []string) []string {
	if e.outDir == "" {
		return paths
	}
	out, err := filepath.Abs(e.outDir)
	if err != nil {
		return paths
	}
	kept := paths[:0]
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err == nil && (abs == out || strings.HasPrefix(abs, out+string(filepath.Separator))) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func (e *Engine) pruneMissing(root string, present []string) error {
	seen := make(map[string]bool, len(present))
	for _, p := range present {
		seen[p] = true
	}
	files, err := e.store.Files()
	if err != nil {
		return err
	}
	root = filepath.Clean(root)
	under := func(p string) bool {
		if root == "." {
			return !filepath.IsAbs(p) && !strings.HasPrefix(p, "..")
		}
		return strings.HasPrefix(p, root+string(filepath.Separator))
	}
	var stale []int64
	for _, f := range files {
		if under(f.Path) && !seen[f.Path] {
			stale = append(stale, f.ID)
			e.logger.Debug("dropping vanished file", zap.String("file", f.Path))
		}
	}
	return e.store.DeleteFiles(stale)
}

// gitListFiles uses git ls-files to discover tracked and untracked (but not
// ignored) files under root, filtered to supported inputs.
func (e *Engine) gitListFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git ls-files: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	var paths []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		path := filepath.Join(root, line)
		if _, ok := e.inputKind(path); ok {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// walkListFiles discovers files by walking the filesystem, used as a fallback
// when git is not available.
func (e *Engine) walkListFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := e.inputKind(path); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	return paths, nil
}
