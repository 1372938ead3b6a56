package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
)

const validJSON = `{
  // entry points
  "src": "./tex/",
  "out": "out",
  "pdf": "main",
  "tex": [
    {"name": "paper", "main": "main.tex"},
    {"name": "slides", "main": "slides.tex"},
  ],
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSONCWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "configurations.json", validJSON))
	require.NoError(t, err)

	assert.Equal(t, "./tex/", cfg.SourceDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "main.pdf", cfg.PreprintFile())
	assert.Equal(t, "out/main.pdf", cfg.PreprintPath())
	require.Len(t, cfg.Projects, 2)
	assert.Equal(t, Project{Name: "paper", Main: "main.tex"}, cfg.Primary())
	assert.Equal(t, "slides", cfg.Projects[1].Name)

	assert.Equal(t, DefaultReleaseDir, cfg.ReleaseDir)
	assert.Equal(t, DefaultArchiveDir, cfg.ArchiveDir)
	assert.Equal(t, DefaultFallbackName, cfg.FallbackName)
	assert.Equal(t, DefaultCompiler, cfg.Compiler.Command)
	assert.Equal(t, DefaultEngine, cfg.Compiler.Engine)
	assert.Equal(t, OpenBaseExecutable, cfg.Open.RelativeTo)
	assert.NotEmpty(t, cfg.Tools.Formatter)
	assert.NotEmpty(t, cfg.Tools.Linter)
}

func TestLoad_YAML(t *testing.T) {
	content := `src: ./tex/
out: out
pdf: main
release: stable
open:
  relative_to: workdir
tex:
  - name: paper
    main: main.tex
`
	cfg, err := Load(writeConfig(t, "texpress.yaml", content))
	require.NoError(t, err)
	assert.Equal(t, "stable", cfg.ReleaseDir)
	assert.Equal(t, OpenBaseWorkdir, cfg.Open.RelativeTo)
	assert.Equal(t, "paper", cfg.Primary().Name)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEXPRESS_TEST_OUT", "dist")
	content := `{"src": "./", "out": "${TEXPRESS_TEST_OUT}", "pdf": "main", "tex": [{"name": "a", "main": "a.tex"}]}`

	cfg, err := Load(writeConfig(t, "c.json", content))
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.OutputDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "bad.json", `{"src": `))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoad_NonStringProjectName(t *testing.T) {
	content := `{"src": "./", "out": "out", "pdf": "main", "tex": [{"name": 5, "main": "a.tex"}]}`
	_, err := Load(writeConfig(t, "c.json", content))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SourceDir: "./",
			OutputDir: "out",
			Preprint:  "main",
			Projects:  []Project{{Name: "paper", Main: "main.tex"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"missing src", func(c *Config) { c.SourceDir = "" }, "missing required configuration field"},
		{"missing out", func(c *Config) { c.OutputDir = "" }, "missing required configuration field"},
		{"missing pdf", func(c *Config) { c.Preprint = "" }, "missing required configuration field"},
		{"no projects", func(c *Config) { c.Projects = nil }, "Specify at least one project!"},
		{"no name", func(c *Config) { c.Projects[0].Name = "" }, "Specify project name!"},
		{"no main", func(c *Config) { c.Projects[0].Main = "" }, "Specify main file!"},
		{"only first project is checked", func(c *Config) {
			c.Projects = append(c.Projects, Project{})
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.message == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			classified, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, ferrors.CategoryConfig, classified.Category())
			assert.Equal(t, tt.message, classified.Message())
			assert.True(t, classified.IsFatal())
		})
	}
}

func TestInit(t *testing.T) {
	for _, name := range []string{"configurations.json", "texpress.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Init(path, false))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "paper", cfg.Primary().Name)

			err = Init(path, false)
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

			require.NoError(t, Init(path, true))
		})
	}
}

func TestParseOpenBase(t *testing.T) {
	base, err := ParseOpenBase(" WorkDir ")
	require.NoError(t, err)
	assert.Equal(t, OpenBaseWorkdir, base)

	base, err = ParseOpenBase("cwd")
	require.NoError(t, err)
	assert.Equal(t, OpenBaseWorkdir, base)

	_, err = ParseOpenBase("nonsense")
	require.Error(t, err)
}

func TestLoad_OpenBaseAlias(t *testing.T) {
	content := `{"src": "./", "out": "out", "pdf": "main", "tex": [{"name": "a", "main": "a.tex"}], "open": {"relative_to": "CWD"}}`
	cfg, err := Load(writeConfig(t, "c.json", content))
	require.NoError(t, err)
	assert.Equal(t, OpenBaseWorkdir, cfg.Open.RelativeTo)
}

func TestLoad_UnknownOpenBase(t *testing.T) {
	content := `{"src": "./", "out": "out", "pdf": "main", "tex": [{"name": "a", "main": "a.tex"}], "open": {"relative_to": "home"}}`
	_, err := Load(writeConfig(t, "c.json", content))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	assert.Contains(t, err.Error(), "invalid open.relative_to")
}

func TestLoad_OnlyBracedReferencesExpand(t *testing.T) {
	t.Setenv("TEXPRESS_TEST_NAME", "thesis")
	content := `{"src": "./", "out": "out", "pdf": "main", "tex": [{"name": "${TEXPRESS_TEST_NAME}", "main": "a$b.tex"}]}`

	cfg, err := Load(writeConfig(t, "c.json", content))
	require.NoError(t, err)
	assert.Equal(t, Project{Name: "thesis", Main: "a$b.tex"}, cfg.Primary())
}

func TestLoad_ToolsDefaultToWorkingDirectory(t *testing.T) {
	content := `{"src": "./", "out": "out", "pdf": "main", "tex": [{"name": "a", "main": "a.tex"}],
	  "tools": {"formatter": ["latexindent", "-w", "a.tex"], "dir": "tex"}}`

	cfg, err := Load(writeConfig(t, "c.json", content))
	require.NoError(t, err)
	assert.Equal(t, []string{"latexindent", "-w", "a.tex"}, cfg.Tools.Formatter)
	assert.Equal(t, "tex", cfg.Tools.Dir)
	assert.Equal(t, []string{"go", "vet", "./..."}, cfg.Tools.Linter)

	defaults, err := Parse("d.json", []byte(`{"src": "./", "out": "out", "pdf": "main", "tex": [{"name": "a", "main": "a.tex"}]}`))
	require.NoError(t, err)
	assert.Equal(t, ".", defaults.Tools.Dir)
}
