package store

import "time"

// Discovery kinds.
const (
	KindTag       = "tag"
	KindComponent = "component"
	KindObject    = "object"
)

// File is a source file the cache has rewritten.
type File struct {
	ID            int64
	Path          string
	Hash          string
	OptionsHash   string
	OutputPath    string
	LastRewritten time.Time
}

// Discovery is one name a function used, as collected by the rewriter.
type Discovery struct {
	ID           int64
	FileID       int64
	FunctionName string
	Kind         string
	Name         string
}

// ComponentUse lists the files whose output falls back to the missing
// component stand-in for Name unless a provider supplies it.
type ComponentUse struct {
	Name  string
	Paths []string
}

// Run is one batch invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	FileCount  int
	ErrorCount int
}

// FileRecord is everything stored for one rewritten file.
type FileRecord struct {
	File        File
	Discoveries []Discovery
}
