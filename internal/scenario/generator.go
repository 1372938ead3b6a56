package scenario

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/texpress/internal/artifact"
	"git.home.luguber.info/inful/texpress/internal/config"
	"git.home.luguber.info/inful/texpress/internal/logfields"
)

// Generator builds, presses and cleans every configured project in order.
type Generator struct {
	ops Operations
}

// NewGenerator creates a Generator over ops.
func NewGenerator(ops Operations) *Generator {
	return &Generator{ops: ops}
}

// GenerateAll runs Build, Press and Clean for each project. The first failure
// stops the batch; projects after it are not touched.
func (g *Generator) GenerateAll(ctx context.Context, projects []config.Project, dest artifact.Destination) error {
	for i, project := range projects {
		slog.Info("Generating project",
			logfields.Project(project.Name),
			logfields.File(project.Main),
			"index", i+1,
			"total", len(projects))

		if err := g.ops.Build(ctx, project); err != nil {
			return err
		}
		if err := g.ops.Press(ctx, dest, project.Name); err != nil {
			return err
		}
		if err := g.ops.Clean(ctx); err != nil {
			return err
		}
	}
	return nil
}
