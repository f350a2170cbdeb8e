package main

import (
	"time"

	"github.com/jward/jsxrewrite"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIBuild summarizes one build.
type CLIBuild struct {
	RunID     string         `json:"run_id"`
	Rewritten []CLIRewritten `json:"rewritten"`
	Skipped   int            `json:"skipped"`
	Errors    []string       `json:"errors,omitempty"`
	ElapsedMS int64          `json:"elapsed_ms"`
}

// CLIRewritten is one file written by a build.
type CLIRewritten struct {
	File    string   `json:"file"`
	Output  string   `json:"output,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// CLIComponentUse is a missing component and the files that use it.
type CLIComponentUse struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// CLIFile is a JSON-friendly cached file.
type CLIFile struct {
	ID            int64  `json:"id"`
	Path          string `json:"path"`
	Output        string `json:"output,omitempty"`
	Hash          string `json:"hash"`
	LastRewritten string `json:"last_rewritten"`
}

// CLIDiscovery is one name a function used.
type CLIDiscovery struct {
	Function string `json:"function"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
}

// CLIRun is one recorded build run.
type CLIRun struct {
	ID         string `json:"id"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at,omitempty"`
	FileCount  int    `json:"file_count"`
	ErrorCount int    `json:"error_count"`
}

func fileToCLI(f *jsxrewrite.File) CLIFile {
	return CLIFile{
		ID:            f.ID,
		Path:          f.Path,
		Output:        f.OutputPath,
		Hash:          f.Hash,
		LastRewritten: f.LastRewritten.Format(time.RFC3339),
	}
}

func runToCLI(r *jsxrewrite.Run) CLIRun {
	c := CLIRun{
		ID:         r.ID,
		StartedAt:  r.StartedAt.Format(time.RFC3339),
		FileCount:  r.FileCount,
		ErrorCount: r.ErrorCount,
	}
	if r.FinishedAt != nil {
		c.FinishedAt = r.FinishedAt.Format(time.RFC3339)
	}
	return c
}
