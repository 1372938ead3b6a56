package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/texpress/internal/config"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
	"git.home.luguber.info/inful/texpress/internal/metrics"
	"git.home.luguber.info/inful/texpress/internal/opener"
	"git.home.luguber.info/inful/texpress/internal/scenario"
)

// RunCmd implements the default command: one scenario keyword.
type RunCmd struct {
	Scenario string `arg:"" optional:"" help:"Scenario keyword (default: build)"`
}

func (r *RunCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	workdir := g.Workdir
	if workdir == "" {
		if workdir, err = os.Getwd(); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryRuntime, "cannot determine working directory").Fatal().Build()
		}
	}
	base, err := opener.ResolveBase(cfg.Open.RelativeTo, workdir)
	if err != nil {
		return err
	}

	workbench := scenario.NewWorkbench(cfg, scenario.WorkbenchOptions{
		Workdir:  workdir,
		OpenBase: base,
		Platform: g.Platform,
		Runner:   g.Runner,
	})
	dispatcher := scenario.NewDispatcher(cfg, workbench)

	var recorder *metrics.PrometheusRecorder
	if cfg.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(nil)
		dispatcher.WithRecorder(recorder)
	}

	runErr := dispatcher.Run(context.Background(), r.Scenario)

	if recorder != nil {
		path := cfg.MetricsFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(workdir, path)
		}
		if err := recorder.WriteTextfile(path); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(path), logfields.Error(err))
		}
	}
	return runErr
}
