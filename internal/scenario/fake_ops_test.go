package scenario

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/texpress/internal/artifact"
	"git.home.luguber.info/inful/texpress/internal/config"
)

// recordingOps records each call as a short string and can fail on a chosen one.
type recordingOps struct {
	calls  []string
	failOn string
	err    error
}

func (r *recordingOps) record(call string) error {
	r.calls = append(r.calls, call)
	if r.failOn != "" && call == r.failOn {
		return r.err
	}
	return nil
}

func (r *recordingOps) Build(_ context.Context, p config.Project) error {
	return r.record("build:" + p.Main)
}

func (r *recordingOps) Press(_ context.Context, dest artifact.Destination, name string) error {
	return r.record(fmt.Sprintf("press:%s:%s", dest, name))
}

func (r *recordingOps) Clean(context.Context) error  { return r.record("clean") }
func (r *recordingOps) Remove(context.Context) error { return r.record("remove") }
func (r *recordingOps) Open(context.Context) error   { return r.record("open") }
func (r *recordingOps) Format(context.Context) error { return r.record("fmt") }
func (r *recordingOps) Lint(context.Context) error   { return r.record("lint") }

func testConfig() *config.Config {
	return &config.Config{
		SourceDir:    "./",
		OutputDir:    "out",
		Preprint:     "main",
		ReleaseDir:   "release",
		ArchiveDir:   "archive",
		FallbackName: "main.pdf",
		Projects: []config.Project{
			{Name: "paper", Main: "main.tex"},
			{Name: "slides", Main: "slides.tex"},
			{Name: "poster", Main: "poster.tex"},
		},
	}
}
