package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jward/jsxrewrite"
	"github.com/jward/jsxrewrite/internal/estree"
	"github.com/jward/jsxrewrite/internal/parse"
	"github.com/jward/jsxrewrite/internal/printer"
	jsxrt "github.com/jward/jsxrewrite/internal/runtime"
	"github.com/jward/jsxrewrite/internal/topscope"
)

var (
	flagEmit   string
	flagOutput string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file]",
	Short: "Rewrite one file and print the result",
	Long:  "Parses a JSX or ESTree JSON file (or stdin when no file or \"-\" is given), rewrites it and prints JavaScript or ESTree JSON. Nothing is cached.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVar(&flagEmit, "emit", "js", "what to print: js|estree")
	rewriteCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write to this file instead of stdout")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	if flagEmit != "js" && flagEmit != "estree" {
		return fmt.Errorf("invalid --emit %q: must be js or estree", flagEmit)
	}

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	src, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(cmd, wd)
	if err != nil {
		return err
	}
	opts, err := cfg.RewriteOptions()
	if err != nil {
		return err
	}

	kind := cfg.Input
	if kind == "" {
		kind = parse.InputJSX
		if k, ok := parse.InputForFile(path); ok {
			kind = k
		}
	}
	ctx := cmd.Context()
	parser := parse.New(parse.WithShorthand(cfg.Shorthand), parse.WithLogger(logger))
	prog, err := parser.As(ctx, kind, path, src)
	if err != nil {
		return err
	}

	top := topscope.Compute(prog)
	if cfg.ScopeScript != "" {
		rt := jsxrt.NewRuntime(filepath.Dir(cfg.ScopeScript), jsxrt.WithRuntimeLogger(logger))
		script, err := rt.LoadScopeScript(filepath.Base(cfg.ScopeScript))
		if err != nil {
			return err
		}
		if top, err = script.Extend(ctx, path, top); err != nil {
			return err
		}
	}

	res := jsxrewrite.New(
		jsxrewrite.WithOptions(opts),
		jsxrewrite.WithLogger(logger),
		jsxrewrite.WithTopScope(func(*estree.Program) topscope.Set { return top }),
	).Rewrite(prog)
	for _, name := range res.MissingComponents() {
		logger.Sugar().Infof("%s: component %s has no binding and falls back to a throwing stand-in", path, name)
	}

	var out []byte
	if flagEmit == "estree" {
		if out, err = estree.EncodeJSON(prog); err != nil {
			return err
		}
		out = append(out, '\n')
	} else {
		out = []byte(printer.Print(prog))
	}

	if flagOutput != "" {
		return os.WriteFile(flagOutput, out, 0o644)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
