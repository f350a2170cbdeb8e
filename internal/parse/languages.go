package parse

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jward/jsxrewrite/internal/estree"
)

// Input kinds accepted by File.
const (
	InputJSX    = "jsx"
	InputESTree = "estree"
)

// extToInput maps file extensions to input kinds.
var extToInput = map[string]string{
	".js":   InputJSX,
	".jsx":  InputJSX,
	".mjs":  InputJSX,
	".json": InputESTree,
}

// InputForFile returns the input kind for a file path based on its
// extension. Returns ("", false) if the extension is not recognized.
func InputForFile(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := extToInput[ext]
	return kind, ok
}

// File parses src according to the kind of path. ESTree JSON carries its own
// origin markers, so the shorthand option only affects JSX sources.
func (p *Parser) File(ctx context.Context, path string, src []byte) (*estree.Program, error) {
	kind, ok := InputForFile(path)
	if !ok {
		return nil, fmt.Errorf("parse: unsupported file type %q", filepath.Ext(path))
	}
	return p.As(ctx, kind, path, src)
}

// As parses src as the given input kind regardless of the file extension.
// path is only used in error messages.
func (p *Parser) As(ctx context.Context, kind, path string, src []byte) (*estree.Program, error) {
	switch kind {
	case InputESTree:
		prog, err := estree.DecodeJSON(src)
		if err != nil {
			return nil, fmt.Errorf("parse: %s: %w", path, err)
		}
		return prog, nil
	case InputJSX:
		prog, err := p.Parse(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return prog, nil
	}
	return nil, fmt.Errorf("parse: unknown input kind %q", kind)
}
