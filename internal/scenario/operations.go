package scenario

import (
	"context"

	"git.home.luguber.info/inful/texpress/internal/artifact"
	"git.home.luguber.info/inful/texpress/internal/config"
)

// Operations is everything a scenario can do. Workbench is the production
// implementation; tests substitute a recorder.
type Operations interface {
	Build(ctx context.Context, project config.Project) error
	Press(ctx context.Context, dest artifact.Destination, name string) error
	Clean(ctx context.Context) error
	Remove(ctx context.Context) error
	Open(ctx context.Context) error
	Format(ctx context.Context) error
	Lint(ctx context.Context) error
}

// Step is one named, argument-free operation inside a scenario.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}
