package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jward/jsxrewrite"
	"github.com/jward/jsxrewrite/internal/config"
	"github.com/jward/jsxrewrite/internal/watch"
)

var (
	flagOut     string
	flagDB      string
	flagForce   bool
	flagSerial  bool
	flagWorkers int
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Rewrite every input under a directory",
	Long:  "Rewrites every supported file under dir into the output directory. Files whose content and settings are unchanged since the last run are skipped.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Build, then rebuild whenever inputs change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	for _, c := range []*cobra.Command{buildCmd, watchCmd} {
		c.Flags().StringVar(&flagOut, "out", "", "output directory (overrides config)")
		c.Flags().StringVar(&flagDB, "db", "", "cache database path (overrides config)")
		c.Flags().BoolVar(&flagForce, "force", false, "rewrite every file even if unchanged")
		c.Flags().BoolVar(&flagSerial, "serial", false, "disable the worker pool")
		c.Flags().IntVar(&flagWorkers, "workers", 0, "worker pool size (default: config, then CPU count)")
	}
}

// openEngine loads the config for dir, applies the build flags and opens an
// Engine.
func openEngine(cmd *cobra.Command, dir string) (*jsxrewrite.Engine, *config.Config, string, error) {
	cfg, root, err := loadConfig(cmd, dir)
	if err != nil {
		return nil, nil, "", err
	}
	if flagOut != "" {
		cfg.OutDir = flagOut
	}
	if flagDB != "" {
		cfg.DB = flagDB
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}

	opts, err := engineOptions(cfg, root)
	if err != nil {
		return nil, nil, "", err
	}
	opts = append(opts, jsxrewrite.WithForce(flagForce), jsxrewrite.WithParallel(!flagSerial))

	dbPath := under(root, cfg.DB)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, nil, "", fmt.Errorf("creating %s: %w", filepath.Dir(dbPath), err)
	}
	e, err := jsxrewrite.NewEngine(dbPath, opts...)
	if err != nil {
		return nil, nil, "", fmt.Errorf("creating engine: %w", err)
	}
	return e, cfg, root, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()
	dir, err := resolveTargetDir(args)
	if err != nil {
		return outputError("build", err)
	}
	e, _, _, err := openEngine(cmd, dir)
	if err != nil {
		return outputError("build", err)
	}
	defer e.Close()

	sum, runErr := e.RewriteDirectory(cmd.Context(), dir)
	if sum == nil {
		return outputError("build", runErr)
	}
	if err := outputResult(cmd, CLIResult{Command: "build", Results: buildToCLI(sum, time.Since(start))}); err != nil {
		return err
	}
	if runErr != nil {
		// Per-file errors are already listed in the result.
		errorHandled = true
		return runErr
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir, err := resolveTargetDir(args)
	if err != nil {
		return err
	}
	e, cfg, root, err := openEngine(cmd, dir)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outDir := ""
	if cfg.OutDir != "" {
		outDir = filepath.Clean(under(root, cfg.OutDir))
	}
	w, err := watch.New(dir,
		watch.WithLogger(logger),
		watch.WithSkip(func(d string) bool {
			name := filepath.Base(d)
			return strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor" || d == outDir
		}))
	if err != nil {
		return err
	}
	defer w.Close()

	build := func(ctx context.Context) {
		start := time.Now()
		sum, err := e.RewriteDirectory(ctx, dir)
		if sum != nil {
			if oerr := outputResult(cmd, CLIResult{Command: "build", Results: buildToCLI(sum, time.Since(start))}); oerr != nil {
				logger.Warn("writing result", zap.Error(oerr))
			}
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("build failed", zap.Error(err))
		}
	}

	build(ctx)
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s\n", dir)
	err = w.Run(ctx, func(ctx context.Context, paths []string) {
		logger.Debug("inputs changed", zap.Strings("paths", paths))
		build(ctx)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func buildToCLI(sum *jsxrewrite.RunSummary, elapsed time.Duration) CLIBuild {
	b := CLIBuild{
		RunID:     sum.ID,
		Rewritten: make([]CLIRewritten, 0, len(sum.Rewritten)),
		Skipped:   sum.Skipped,
		ElapsedMS: elapsed.Milliseconds(),
	}
	for _, o := range sum.Rewritten {
		b.Rewritten = append(b.Rewritten, CLIRewritten{File: o.Path, Output: o.OutputPath, Missing: o.Missing})
	}
	for _, err := range sum.Errors {
		b.Errors = append(b.Errors, err.Error())
	}
	return b
}
