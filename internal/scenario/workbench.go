package scenario

import (
	"context"
	"time"

	"git.home.luguber.info/inful/texpress/internal/analyze"
	"git.home.luguber.info/inful/texpress/internal/artifact"
	"git.home.luguber.info/inful/texpress/internal/cleaner"
	"git.home.luguber.info/inful/texpress/internal/config"
	"git.home.luguber.info/inful/texpress/internal/latex"
	"git.home.luguber.info/inful/texpress/internal/opener"
	"git.home.luguber.info/inful/texpress/internal/platform"
	"git.home.luguber.info/inful/texpress/internal/process"
)

// Workbench implements Operations on the real working directory.
type Workbench struct {
	cfg      *config.Config
	compiler *latex.Compiler
	press    *artifact.Press
	remover  *artifact.Remover
	cleaner  *cleaner.Cleaner
	opener   *opener.Opener
	analyzer *analyze.Analyzer
}

// WorkbenchOptions carries the environment a Workbench is bound to.
type WorkbenchOptions struct {
	// Workdir is the directory configured paths are relative to.
	Workdir string
	// OpenBase is the directory the opener resolves artifacts against.
	OpenBase string
	Platform platform.Platform
	Runner   process.Runner
	// Clock stamps archive names; nil means time.Now.
	Clock func() time.Time
}

// NewWorkbench composes the compiler, press, cleaner, opener and analyzer.
func NewWorkbench(cfg *config.Config, opts WorkbenchOptions) *Workbench {
	c := cleaner.New(opts.Workdir)
	return &Workbench{
		cfg:      cfg,
		compiler: latex.NewCompiler(cfg, opts.Workdir, opts.Runner),
		press:    artifact.NewPress(cfg, opts.Workdir).WithClock(opts.Clock),
		remover:  artifact.NewRemover(cfg, opts.Workdir, c),
		cleaner:  c,
		opener:   opener.New(opts.Platform, opts.OpenBase, opts.Runner),
		analyzer: analyze.New(cfg, opts.Runner),
	}
}

func (w *Workbench) Build(ctx context.Context, project config.Project) error {
	return w.compiler.Build(ctx, latex.Job{
		Main:      project.Main,
		SourceDir: w.cfg.SourceDir,
		JobName:   w.cfg.Preprint,
		OutputDir: w.cfg.OutputDir,
	})
}

func (w *Workbench) Press(ctx context.Context, dest artifact.Destination, name string) error {
	_, err := w.press.Press(ctx, dest, name)
	return err
}

func (w *Workbench) Clean(ctx context.Context) error {
	_, err := w.cleaner.Clean(ctx, "")
	return err
}

func (w *Workbench) Remove(ctx context.Context) error {
	return w.remover.Remove(ctx)
}

func (w *Workbench) Open(ctx context.Context) error {
	return w.opener.Open(ctx, w.cfg.PreprintFile(), w.cfg.OutputDir)
}

func (w *Workbench) Format(ctx context.Context) error {
	return w.analyzer.Run(ctx, analyze.Formatter)
}

func (w *Workbench) Lint(ctx context.Context) error {
	return w.analyzer.Run(ctx, analyze.Linter)
}
