package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// formatBuildText prints a build summary: one line per rewritten file, then
// totals and errors.
func formatBuildText(w io.Writer, b CLIBuild) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range b.Rewritten {
		missing := "-"
		if len(r.Missing) > 0 {
			missing = strings.Join(r.Missing, ",")
		}
		fmt.Fprintf(tw, "%s\t-> %s\tmissing: %s\n", r.File, r.Output, missing)
	}
	tw.Flush()
	fmt.Fprintf(w, "Rewrote %d, skipped %d, %d error(s) in %dms\n",
		len(b.Rewritten), b.Skipped, len(b.Errors), b.ElapsedMS)
	for _, e := range b.Errors {
		fmt.Fprintf(w, "  error: %s\n", e)
	}
}

// formatComponentUsesText prints each missing component with its files.
func formatComponentUsesText(w io.Writer, uses []CLIComponentUse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPONENT\tFILES")
	for _, u := range uses {
		fmt.Fprintf(tw, "%s\t%s\n", u.Name, strings.Join(u.Files, ", "))
	}
	tw.Flush()
}

func formatFilesText(w io.Writer, files []CLIFile) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPATH\tOUTPUT\tREWRITTEN")
	for _, f := range files {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", f.ID, f.Path, f.Output, f.LastRewritten)
	}
	tw.Flush()
}

func formatDiscoveriesText(w io.Writer, ds []CLIDiscovery) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tKIND\tNAME")
	for _, d := range ds {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Function, d.Kind, d.Name)
	}
	tw.Flush()
}

func formatRunsText(w io.Writer, runs []CLIRun) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tFINISHED\tFILES\tERRORS")
	for _, r := range runs {
		finished := r.FinishedAt
		if finished == "" {
			finished = "(running)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.ID, r.StartedAt, finished, r.FileCount, r.ErrorCount)
	}
	tw.Flush()
}

// outputResultText dispatches to the text formatter for the result type.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case CLIBuild:
		formatBuildText(w, v)
	case []CLIComponentUse:
		formatComponentUsesText(w, v)
	case []CLIFile:
		formatFilesText(w, v)
	case []CLIDiscovery:
		formatDiscoveriesText(w, v)
	case []CLIRun:
		formatRunsText(w, v)
	case []string:
		for _, s := range v {
			fmt.Fprintln(w, s)
		}
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// outputResult writes a CLIResult to the command's stdout in the selected
// format.
func outputResult(cmd *cobra.Command, result CLIResult) error {
	w := cmd.OutOrStdout()
	if flagFormat == "text" {
		return outputResultText(w, result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	enc := json.NewEncoder(rootCmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(CLIResult{Command: command, Error: err.Error()})
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --format %q: must be one of %s", format, strings.Join(validFormats, ", "))
}
