package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/jsxrewrite"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
output_format: function-body
provider_import_source: "@mdx-js/react"
shorthand: true
out_dir: build
scope_script: scripts/scope.risor
extensions: [".jsx"]
workers: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "function-body", cfg.OutputFormat)
	assert.Equal(t, "@mdx-js/react", cfg.ProviderImportSource)
	assert.True(t, cfg.Shorthand)
	assert.Equal(t, "build", cfg.OutDir)
	assert.Equal(t, filepath.Join(dir, "scripts", "scope.risor"), cfg.ScopeScript)
	assert.Equal(t, []string{".jsx"}, cfg.Extensions)
	assert.Equal(t, 2, cfg.Workers)
	// Unset keys keep their defaults.
	assert.Equal(t, ".jsxrewrite.db", cfg.DB)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "workers: [1, 2")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestFind_FallsBackToDefaults(t *testing.T) {
	cfg, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().OutDir, cfg.OutDir)
	assert.Equal(t, string(jsxrewrite.FormatProgram), cfg.OutputFormat)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JSXREWRITE_DB", "/tmp/cache.db")
	t.Setenv("JSXREWRITE_PROVIDER_IMPORT_SOURCE", "@mdx-js/preact")
	cfg, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cache.db", cfg.DB)
	assert.Equal(t, "@mdx-js/preact", cfg.ProviderImportSource)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad format", func(c *Config) { c.OutputFormat = "commonjs" }, "invalid output format"},
		{"bad input", func(c *Config) { c.Input = "markdown" }, "invalid input"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"extension without dot", func(c *Config) { c.Extensions = []string{"jsx"} }, "must start with a dot"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestValidate_FormatIsSentinel(t *testing.T) {
	cfg := Default()
	cfg.OutputFormat = "esm"
	assert.ErrorIs(t, cfg.Validate(), jsxrewrite.ErrInvalidOutputFormat)
}

func TestRewriteOptions(t *testing.T) {
	cfg := Default()
	cfg.OutputFormat = "function-body"
	cfg.ProviderImportSource = "@mdx-js/react"
	opts, err := cfg.RewriteOptions()
	require.NoError(t, err)
	assert.Equal(t, jsxrewrite.FormatFunctionBody, opts.OutputFormat)
	assert.Equal(t, "@mdx-js/react", opts.ProviderImportSource)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", FileName)
	cfg := Default()
	cfg.OutDir = "public"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "public", loaded.OutDir)
}
