// Package config loads and validates the texpress configuration document.
//
// The fmt and lint scenarios run tools.formatter and tools.linter in
// tools.dir. The defaults (gofmt and go vet in the working directory) only
// do useful work when tools.dir points at a texpress source checkout; in a
// plain LaTeX project configure both commands and the directory explicitly.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
)

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = "configurations.json"

// Config is the validated configuration record. It is loaded once per process
// and passed by pointer to every component; nothing mutates it after Load.
type Config struct {
	SourceDir    string         `json:"src" yaml:"src"`
	OutputDir    string         `json:"out" yaml:"out"`
	Preprint     string         `json:"pdf" yaml:"pdf"`
	Projects     []Project      `json:"tex" yaml:"tex"`
	ReleaseDir   string         `json:"release,omitempty" yaml:"release,omitempty"`
	ArchiveDir   string         `json:"archive,omitempty" yaml:"archive,omitempty"`
	FallbackName string         `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Compiler     CompilerConfig `json:"compiler" yaml:"compiler"`
	Tools        ToolsConfig    `json:"tools" yaml:"tools"`
	Open         OpenConfig     `json:"open" yaml:"open"`
	MetricsFile  string         `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty"`
}

// Project describes one document: the name its pressed artifact carries and
// the entry file relative to SourceDir.
type Project struct {
	Name string `json:"name" yaml:"name"`
	Main string `json:"main" yaml:"main"`
}

// CompilerConfig describes the external typesetting command.
type CompilerConfig struct {
	Command   string   `json:"command,omitempty" yaml:"command,omitempty"`
	Engine    string   `json:"engine,omitempty" yaml:"engine,omitempty"`
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty"`
}

// ToolsConfig holds the formatter and linter command lines run by fmt and lint.
// Dir defaults to the working directory.
type ToolsConfig struct {
	Formatter []string `json:"formatter,omitempty" yaml:"formatter,omitempty"`
	Linter    []string `json:"linter,omitempty" yaml:"linter,omitempty"`
	Dir       string   `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// OpenConfig controls where the opener resolves the preprint from.
type OpenConfig struct {
	RelativeTo OpenBase `json:"relative_to,omitempty" yaml:"relative_to,omitempty"`
}

// PreprintFile returns the file name of the freshly compiled artifact.
func (c *Config) PreprintFile() string {
	return c.Preprint + ".pdf"
}

// PreprintPath returns the artifact path relative to the working directory.
func (c *Config) PreprintPath() string {
	return c.OutputDir + "/" + c.PreprintFile()
}

// Primary returns the first configured project, the one single-project
// scenarios operate on. Validate guarantees it exists.
func (c *Config) Primary() Project {
	return c.Projects[0]
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, ferrors.ConfigError("configuration file not found").
			WithContext("path", configPath).
			Build()
	}

	// #nosec G304 - path comes from the --config flag
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(configPath, data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes, defaults and validates configuration bytes. Only ${VAR}
// references are expanded; a bare "$" is kept literally. The format is
// picked from the file extension: .yaml/.yml as YAML, anything else as JSON
// with comments and trailing commas allowed.
func Parse(name string, data []byte) (*Config, error) {
	expanded := expandEnv(data)

	var cfg Config
	if err := decode(name, expanded, &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			WithContext("path", name).
			Build()
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		SourceDir: "./tex/",
		OutputDir: "build",
		Preprint:  "main",
		Projects: []Project{
			{Name: "paper", Main: "main.tex"},
		},
	}
	applyDefaults(&example)

	var (
		data []byte
		err  error
	)
	if isYAML(configPath) {
		data, err = yaml.Marshal(&example)
	} else {
		data, err = json.MarshalIndent(&example, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
