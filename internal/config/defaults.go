package config

import (
	"log/slog"

	"git.home.luguber.info/inful/texpress/internal/foundation"
)

// Default values applied when the configuration omits a field.
const (
	DefaultReleaseDir   = "release"
	DefaultArchiveDir   = "archive"
	DefaultFallbackName = "main.pdf"
	DefaultCompiler     = "latexmk"
	DefaultEngine       = "-xelatex"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config)
	Domain() string
}

var defaultAppliers = []DefaultApplier{
	&pressDefaultApplier{},
	&compilerDefaultApplier{},
	&toolsDefaultApplier{},
	&openDefaultApplier{},
}

func applyDefaults(cfg *Config) {
	for _, applier := range defaultAppliers {
		applier.ApplyDefaults(cfg)
		slog.Debug("Applied configuration defaults", "domain", applier.Domain())
	}
}

type pressDefaultApplier struct{}

func (p *pressDefaultApplier) Domain() string { return "press" }

func (p *pressDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.ReleaseDir == "" {
		cfg.ReleaseDir = DefaultReleaseDir
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = DefaultArchiveDir
	}
	if cfg.FallbackName == "" {
		cfg.FallbackName = DefaultFallbackName
	}
}

type compilerDefaultApplier struct{}

func (c *compilerDefaultApplier) Domain() string { return "compiler" }

func (c *compilerDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.Compiler.Command == "" {
		cfg.Compiler.Command = DefaultCompiler
	}
	if cfg.Compiler.Engine == "" {
		cfg.Compiler.Engine = DefaultEngine
	}
}

type toolsDefaultApplier struct{}

func (t *toolsDefaultApplier) Domain() string { return "tools" }

func (t *toolsDefaultApplier) ApplyDefaults(cfg *Config) {
	if len(cfg.Tools.Formatter) == 0 {
		cfg.Tools.Formatter = []string{"gofmt", "-l", "-w", "."}
	}
	if len(cfg.Tools.Linter) == 0 {
		cfg.Tools.Linter = []string{"go", "vet", "./..."}
	}
	if cfg.Tools.Dir == "" {
		cfg.Tools.Dir = "."
	}
}

type openDefaultApplier struct{}

func (o *openDefaultApplier) Domain() string { return "open" }

// ApplyDefaults canonicalizes aliases such as "cwd"; unknown values are left
// for validation to reject.
func (o *openDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.Open.RelativeTo == "" {
		cfg.Open.RelativeTo = OpenBaseExecutable
		return
	}
	if base, err := ParseOpenBase(string(cfg.Open.RelativeTo)); err == nil {
		cfg.Open.RelativeTo = base
	}
}

// OpenBase selects the directory the opener resolves the preprint against.
type OpenBase string

const (
	OpenBaseExecutable OpenBase = "executable"
	OpenBaseWorkdir    OpenBase = "workdir"
)

var openBases = foundation.NewNormalizer(map[string]OpenBase{
	string(OpenBaseExecutable): OpenBaseExecutable,
	"exe":                      OpenBaseExecutable,
	string(OpenBaseWorkdir):    OpenBaseWorkdir,
	"cwd":                      OpenBaseWorkdir,
}, OpenBaseExecutable)

// ParseOpenBase accepts only known OpenBase spellings.
func ParseOpenBase(raw string) (OpenBase, error) {
	return openBases.Strict(raw)
}
