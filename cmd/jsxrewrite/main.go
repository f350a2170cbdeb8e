package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jward/jsxrewrite"
	"github.com/jward/jsxrewrite/internal/config"
)

var (
	flagConfig               string
	flagFormat               string
	flagVerbose              bool
	flagOutputFormat         string
	flagProviderImportSource string
	flagShorthand            bool
	flagInput                string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

// logger is built in PersistentPreRunE and synced in PersistentPostRun.
var logger = zap.NewNop()

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "jsxrewrite",
	Short:         "Make JSX components overridable at render time",
	Long:          "jsxrewrite rewrites compiled JSX so every element it can safely redirect resolves through a per-function _components object, with throwing stand-ins for components nobody supplied.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		l, err := newLogger(flagVerbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: "+config.FileName+" in the project root)")
	pf.StringVar(&flagFormat, "format", "text", "result format: json|text")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&flagOutputFormat, "output-format", "", "program|function-body (overrides config)")
	pf.StringVar(&flagProviderImportSource, "provider-import-source", "", "module the provider accessor is imported from (overrides config)")
	pf.BoolVar(&flagShorthand, "shorthand", false, "treat parsed JSX as shorthand-derived so tags are rewritten (overrides config)")
	pf.StringVar(&flagInput, "input", "", "jsx|estree (default: by file extension)")

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(reportCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return l, nil
}

// loadConfig reads --config, or the project config found from dir, and
// applies the global flags that were set explicitly.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, string, error) {
	var (
		cfg  *config.Config
		root string
		err  error
	)
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
		root = filepath.Dir(flagConfig)
	} else {
		root = findProjectRoot(dir)
		cfg, err = config.Find(root)
	}
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("output-format") {
		cfg.OutputFormat = flagOutputFormat
	}
	if flags.Changed("provider-import-source") {
		cfg.ProviderImportSource = flagProviderImportSource
	}
	if flags.Changed("shorthand") {
		cfg.Shorthand = flagShorthand
	}
	if flags.Changed("input") {
		cfg.Input = flagInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

// engineOptions maps a config onto Engine options. Relative paths in cfg are
// taken relative to root.
func engineOptions(cfg *config.Config, root string) ([]jsxrewrite.EngineOption, error) {
	ropts, err := cfg.RewriteOptions()
	if err != nil {
		return nil, err
	}
	opts := []jsxrewrite.EngineOption{
		jsxrewrite.WithRewriteOptions(ropts),
		jsxrewrite.WithShorthand(cfg.Shorthand),
		jsxrewrite.WithInput(cfg.Input),
		jsxrewrite.WithWorkers(cfg.Workers),
		jsxrewrite.WithEngineLogger(logger),
	}
	if cfg.OutDir != "" {
		opts = append(opts, jsxrewrite.WithOutDir(under(root, cfg.OutDir)))
	}
	if len(cfg.Extensions) > 0 {
		opts = append(opts, jsxrewrite.WithExtensions(cfg.Extensions...))
	}
	if cfg.ScopeScript != "" {
		opts = append(opts, jsxrewrite.WithScopeScript(cfg.ScopeScript))
	}
	return opts, nil
}

// under joins p onto root unless p is already absolute.
func under(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// resolveTargetDir returns the absolute path of the directory argument, or
// of the working directory.
func resolveTargetDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("directory not found: %s", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", abs)
	}
	return abs, nil
}

// findProjectRoot walks up from startDir looking for a config file or a .git
// directory. Returns startDir if neither is found.
func findProjectRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
			return dir
		}
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return startDir
		}
		dir = parent
	}
}
