package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jward/jsxrewrite"
)

var flagLimit int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Answer questions from the rewrite cache",
	Long:  "Reads the cache written by build. Results are JSON with --format json, aligned text otherwise.",
}

var reportMissingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Components that fall back to a throwing stand-in, with the files using them",
	Args:  cobra.NoArgs,
	RunE:  runReportMissing,
}

var reportFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "Cached files and where their output went",
	Args:  cobra.NoArgs,
	RunE:  runReportFiles,
}

var reportFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Names collected from one file",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportFile,
}

var reportUsesCmd = &cobra.Command{
	Use:   "uses <name>",
	Short: "Files that use a component or tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportUses,
}

var reportRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Recent build runs",
	Args:  cobra.NoArgs,
	RunE:  runReportRuns,
}

func init() {
	reportCmd.PersistentFlags().StringVar(&flagDB, "db", "", "cache database path (overrides config)")
	reportRunsCmd.Flags().IntVar(&flagLimit, "limit", 10, "maximum runs to show (0 for all)")

	reportCmd.AddCommand(reportMissingCmd)
	reportCmd.AddCommand(reportFilesCmd)
	reportCmd.AddCommand(reportFileCmd)
	reportCmd.AddCommand(reportUsesCmd)
	reportCmd.AddCommand(reportRunsCmd)
}

// openReport opens the cache for the project containing the working
// directory. The database must already exist.
func openReport(cmd *cobra.Command) (*jsxrewrite.Engine, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, root, err := loadConfig(cmd, wd)
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.DB = flagDB
	}
	dbPath := under(root, cfg.DB)
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("no cache at %s; run 'jsxrewrite build' first", dbPath)
	}
	return jsxrewrite.NewEngine(dbPath, jsxrewrite.WithEngineLogger(logger))
}

func runReportMissing(cmd *cobra.Command, args []string) error {
	e, err := openReport(cmd)
	if err != nil {
		return outputError("report missing", err)
	}
	defer e.Close()

	uses, err := e.Report().MissingComponents()
	if err != nil {
		return outputError("report missing", err)
	}
	out := make([]CLIComponentUse, 0, len(uses))
	for _, u := range uses {
		out = append(out, CLIComponentUse{Name: u.Name, Files: u.Paths})
	}
	return outputResult(cmd, CLIResult{Command: "report missing", Results: out})
}

func runReportFiles(cmd *cobra.Command, args []string) error {
	e, err := openReport(cmd)
	if err != nil {
		return outputError("report files", err)
	}
	defer e.Close()

	files, err := e.Report().Files()
	if err != nil {
		return outputError("report files", err)
	}
	out := make([]CLIFile, 0, len(files))
	for _, f := range files {
		out = append(out, fileToCLI(f))
	}
	return outputResult(cmd, CLIResult{Command: "report files", Results: out})
}

func runReportFile(cmd *cobra.Command, args []string) error {
	e, err := openReport(cmd)
	if err != nil {
		return outputError("report file", err)
	}
	defer e.Close()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return outputError("report file", err)
	}
	ds, err := e.Report().FileDiscoveries(path)
	if err != nil {
		return outputError("report file", err)
	}
	out := make([]CLIDiscovery, 0, len(ds))
	for _, d := range ds {
		out = append(out, CLIDiscovery{Function: d.FunctionName, Kind: d.Kind, Name: d.Name})
	}
	return outputResult(cmd, CLIResult{Command: "report file", Results: out})
}

func runReportUses(cmd *cobra.Command, args []string) error {
	e, err := openReport(cmd)
	if err != nil {
		return outputError("report uses", err)
	}
	defer e.Close()

	paths, err := e.Report().FilesUsing(args[0])
	if err != nil {
		return outputError("report uses", err)
	}
	if paths == nil {
		paths = []string{}
	}
	return outputResult(cmd, CLIResult{Command: "report uses", Results: paths})
}

func runReportRuns(cmd *cobra.Command, args []string) error {
	e, err := openReport(cmd)
	if err != nil {
		return outputError("report runs", err)
	}
	defer e.Close()

	runs, err := e.Report().Runs(flagLimit)
	if err != nil {
		return outputError("report runs", err)
	}
	out := make([]CLIRun, 0, len(runs))
	for _, r := range runs {
		out = append(out, runToCLI(r))
	}
	return outputResult(cmd, CLIResult{Command: "report runs", Results: out})
}
