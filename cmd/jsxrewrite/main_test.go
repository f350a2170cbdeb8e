package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/jsxrewrite/internal/config"
)

const page = `export default function MDXContent(props) {
  return <><h1>Hi</h1><Foo /></>;
}
`

// resetFlags restores every flag to its default so commands can be executed
// repeatedly in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	errorHandled = false
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeProject(t *testing.T, cfg string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if cfg != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(cfg), 0o644))
	}
	for rel, body := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func TestFindProjectRoot_DirectGitDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	assert.Equal(t, root, findProjectRoot(root))
}

func TestFindProjectRoot_ConfigInAncestor(t *testing.T) {
	root := writeProject(t, "shorthand: true\n", nil)
	deep := filepath.Join(root, "sub", "deep")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	assert.Equal(t, root, findProjectRoot(deep))
}

func TestFindProjectRoot_NoMarker(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, findProjectRoot(dir))
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
}

func TestRewrite_Stdin(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, page, "rewrite", "--shorthand")
	require.NoError(t, err)
	assert.Contains(t, out, `const _components = {h1: "h1", Foo: _missingComponent("Foo"), ...props.components};`)
	assert.True(t, strings.HasPrefix(out, "function _missingComponent(name) {"))
}

func TestRewrite_UsesProjectConfig(t *testing.T) {
	dir := writeProject(t, "provider_import_source: \"@mdx-js/react\"\noutput_format: function-body\n",
		map[string]string{"page.jsx": page})
	t.Chdir(dir)

	out, err := execute(t, "", "rewrite", "page.jsx")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "const {useMDXComponents: _provideComponents} = arguments[0];\n"))

	// Flags beat the config file.
	out, err = execute(t, "", "rewrite", "page.jsx", "--output-format", "program")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `import {useMDXComponents as _provideComponents} from "@mdx-js/react";`))
}

func TestRewrite_EmitESTree(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, page, "rewrite", "--emit", "estree")
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "Program", tree["type"])
}

func TestRewrite_OutputFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dest := filepath.Join(dir, "out.js")
	out, err := execute(t, page, "rewrite", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "_missingComponent")
}

func TestRewrite_InvalidEmit(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, page, "rewrite", "--emit", "wasm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --emit")
}

func TestRewrite_BadFormatFlag(t *testing.T) {
	_, err := execute(t, page, "--format", "yaml", "rewrite")
	require.Error(t, err)
}

func TestBuildThenReport(t *testing.T) {
	dir := writeProject(t, "out_dir: public\n", map[string]string{
		"index.jsx":      page,
		"docs/guide.jsx": strings.Replace(page, "Foo", "Bar", 1),
	})
	t.Chdir(dir)

	out, err := execute(t, "", "build", dir, "--format", "json")
	require.NoError(t, err)
	var res struct {
		Command string   `json:"command"`
		Results CLIBuild `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "build", res.Command)
	assert.Len(t, res.Results.Rewritten, 2)
	assert.NotEmpty(t, res.Results.RunID)
	assert.FileExists(t, filepath.Join(dir, "public", "docs", "guide.js"))
	assert.FileExists(t, filepath.Join(dir, config.Default().DB))

	// Nothing changed, so the second build skips both files.
	out, err = execute(t, "", "build", dir, "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Results.Rewritten)
	assert.Equal(t, 2, res.Results.Skipped)

	out, err = execute(t, "", "report", "missing", "--format", "json")
	require.NoError(t, err)
	var missing struct {
		Results []CLIComponentUse `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &missing))
	assert.Equal(t, []CLIComponentUse{
		{Name: "Bar", Files: []string{filepath.Join(dir, "docs", "guide.jsx")}},
		{Name: "Foo", Files: []string{filepath.Join(dir, "index.jsx")}},
	}, missing.Results)

	out, err = execute(t, "", "report", "file", "index.jsx")
	require.NoError(t, err)
	assert.Contains(t, out, "FUNCTION")
	assert.Contains(t, out, "MDXContent")
	assert.Contains(t, out, "Foo")

	out, err = execute(t, "", "report", "uses", "Bar")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "docs", "guide.jsx")+"\n", out)

	out, err = execute(t, "", "report", "runs", "--limit", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2, "header plus one run")

	out, err = execute(t, "", "report", "files")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "public", "index.js"))
}

func TestBuild_TextSummaryWithErrors(t *testing.T) {
	dir := writeProject(t, "", map[string]string{
		"ok.jsx":  page,
		"bad.jsx": "export default function MDXContent( {\n",
	})
	t.Chdir(dir)

	out, err := execute(t, "", "build", "--serial")
	require.Error(t, err)
	assert.Contains(t, out, "Rewrote 1, skipped 0, 1 error(s)")
	assert.Contains(t, out, "bad.jsx")
}

func TestBuild_NotADirectory(t *testing.T) {
	dir := writeProject(t, "", map[string]string{"page.jsx": page})
	_, err := execute(t, "", "build", filepath.Join(dir, "page.jsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestReport_WithoutCache(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "", "report", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'jsxrewrite build' first")
}
