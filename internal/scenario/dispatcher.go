package scenario

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/texpress/internal/artifact"
	"git.home.luguber.info/inful/texpress/internal/config"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
	"git.home.luguber.info/inful/texpress/internal/metrics"
)

// DefaultKeyword is used when no scenario is named on the command line.
const DefaultKeyword = "build"

// keywords lists every scenario in the order diagnostics present them.
var keywords = []string{
	"build", "clean", "rm", "press", "release", "all", "tmp", "archive", "open", "dev", "fmt", "lint",
}

// Keywords returns the valid scenario keywords.
func Keywords() []string {
	return append([]string(nil), keywords...)
}

// Dispatcher holds the fixed keyword table.
type Dispatcher struct {
	scenarios map[string][]Step
	recorder  metrics.Recorder
	newRunID  func() string
}

// NewDispatcher wires the keyword table against ops. Single-project
// scenarios act on the first configured project.
func NewDispatcher(cfg *config.Config, ops Operations) *Dispatcher {
	primary := cfg.Primary()
	release := artifact.Release(cfg.ReleaseDir)
	generator := NewGenerator(ops)

	build := Step{Name: "build", Run: func(ctx context.Context) error { return ops.Build(ctx, primary) }}
	clean := Step{Name: "clean", Run: ops.Clean}
	remove := Step{Name: "remove", Run: ops.Remove}
	open := Step{Name: "open", Run: ops.Open}
	pressRelease := Step{Name: "press", Run: func(ctx context.Context) error {
		return ops.Press(ctx, release, primary.Name)
	}}
	pressArchive := Step{Name: "press-archive", Run: func(ctx context.Context) error {
		return ops.Press(ctx, artifact.Archive, primary.Name)
	}}
	generate := Step{Name: "generate", Run: func(ctx context.Context) error {
		return generator.GenerateAll(ctx, cfg.Projects, release)
	}}
	archive := []Step{build, pressArchive, clean}

	return &Dispatcher{
		scenarios: map[string][]Step{
			"build":   {build},
			"clean":   {clean},
			"rm":      {remove},
			"press":   {pressRelease},
			"release": {build, pressRelease, clean},
			"all":     {generate},
			"tmp":     archive,
			"archive": archive,
			"open":    {open},
			"dev":     {build, open},
			"fmt":     {{Name: "fmt", Run: ops.Format}},
			"lint":    {{Name: "lint", Run: ops.Lint}},
		},
		recorder: metrics.NoopRecorder{},
		newRunID: uuid.NewString,
	}
}

// WithRecorder injects a metrics recorder.
func (d *Dispatcher) WithRecorder(r metrics.Recorder) *Dispatcher {
	if r != nil {
		d.recorder = r
	}
	return d
}

// Steps returns the step names keyword runs, in order.
func (d *Dispatcher) Steps(keyword string) ([]string, error) {
	steps, err := d.lookup(keyword)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names, nil
}

// Run executes every step of keyword strictly in sequence. An empty keyword
// means DefaultKeyword.
func (d *Dispatcher) Run(ctx context.Context, keyword string) error {
	if keyword == "" {
		keyword = DefaultKeyword
	}
	steps, err := d.lookup(keyword)
	if err != nil {
		return err
	}

	logger := slog.With(logfields.RunID(d.newRunID()), logfields.Scenario(keyword))
	logger.Info("Running scenario", "steps", len(steps))

	started := time.Now()
	err = d.runSteps(ctx, logger, steps)
	d.recorder.ObserveScenarioDuration(keyword, time.Since(started))
	d.recorder.IncScenarioOutcome(keyword, metrics.ResultFor(err))
	if err != nil {
		return err
	}

	logger.Info("Scenario finished", logfields.DurationMS(float64(time.Since(started).Milliseconds())))
	return nil
}

func (d *Dispatcher) runSteps(ctx context.Context, logger *slog.Logger, steps []Step) error {
	for _, step := range steps {
		logger.Debug("Starting step", logfields.Step(step.Name))
		start := time.Now()
		err := step.Run(ctx)
		elapsed := time.Since(start)

		d.recorder.ObserveStepDuration(step.Name, elapsed)
		d.recorder.IncStepResult(step.Name, metrics.ResultFor(err))
		if err != nil {
			logger.Debug("Step failed",
				logfields.Step(step.Name),
				"category", ferrors.GetCategory(err),
				"severity", ferrors.GetSeverity(err),
				logfields.Error(err))
			return err
		}
		logger.Debug("Step finished", logfields.Step(step.Name), logfields.DurationMS(float64(elapsed.Milliseconds())))
	}
	return nil
}

func (d *Dispatcher) lookup(keyword string) ([]Step, error) {
	steps, ok := d.scenarios[keyword]
	if !ok {
		return nil, ferrors.ValidationError("Use one argument: " + strings.Join(keywords, ", ")).
			WithContext("scenario", keyword).
			Build()
	}
	return steps, nil
}
