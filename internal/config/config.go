// Package config loads .jsxrewrite.yaml project files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jward/jsxrewrite"
	"github.com/jward/jsxrewrite/internal/parse"
)

// FileName is the project config file looked up by Find.
const FileName = ".jsxrewrite.yaml"

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config: file not found")

// Config is the project configuration. Zero values mean "use the default".
type Config struct {
	// OutputFormat is "program" or "function-body".
	OutputFormat string `yaml:"output_format"`
	// ProviderImportSource enables the provider hook when non-empty.
	ProviderImportSource string `yaml:"provider_import_source,omitempty"`
	// Input forces the input kind ("jsx" or "estree") instead of deciding
	// by file extension.
	Input string `yaml:"input,omitempty"`
	// Shorthand marks parsed JSX as shorthand-derived.
	Shorthand bool `yaml:"shorthand"`

	OutDir      string   `yaml:"out_dir"`
	DB          string   `yaml:"db"`
	ScopeScript string   `yaml:"scope_script,omitempty"`
	Extensions  []string `yaml:"extensions"`
	Workers     int      `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputFormat: string(jsxrewrite.FormatProgram),
		OutDir:       "dist",
		DB:           ".jsxrewrite.db",
		Extensions:   []string{".jsx", ".js", ".json"},
		Workers:      runtime.NumCPU(),
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Find loads FileName from dir, falling back to the defaults when there is
// none.
func Find(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, ErrNotFound) {
		cfg = Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	return cfg, err
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JSXREWRITE_DB"); v != "" {
		c.DB = v
	}
	if v := os.Getenv("JSXREWRITE_PROVIDER_IMPORT_SOURCE"); v != "" {
		c.ProviderImportSource = v
	}
}

// resolve makes the scope script path relative to the config file's
// directory. Output and database paths stay relative to the working
// directory.
func (c *Config) resolve(dir string) {
	if c.ScopeScript != "" && !filepath.IsAbs(c.ScopeScript) {
		c.ScopeScript = filepath.Join(dir, c.ScopeScript)
	}
}

// Validate checks enumerated fields and numeric ranges.
func (c *Config) Validate() error {
	if _, err := jsxrewrite.ParseOutputFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Input {
	case "", parse.InputJSX, parse.InputESTree:
	default:
		return fmt.Errorf("config: invalid input %q (valid: %s, %s)", c.Input, parse.InputJSX, parse.InputESTree)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("config: extension %q must start with a dot", ext)
		}
	}
	return nil
}

// RewriteOptions converts the configuration to rewriter options.
func (c *Config) RewriteOptions() (jsxrewrite.Options, error) {
	format, err := jsxrewrite.ParseOutputFormat(c.OutputFormat)
	if err != nil {
		return jsxrewrite.Options{}, fmt.Errorf("config: %w", err)
	}
	return jsxrewrite.Options{
		OutputFormat:         format,
		ProviderImportSource: c.ProviderImportSource,
	}, nil
}
