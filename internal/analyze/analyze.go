// Package analyze runs the configured formatter and linter over texpress's
// own sources.
package analyze

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/texpress/internal/config"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
	"git.home.luguber.info/inful/texpress/internal/process"
)

// Tool names a source analysis program.
type Tool string

const (
	Formatter Tool = "formatter"
	Linter    Tool = "linter"
)

// Analyzer maps tools onto configured command lines.
type Analyzer struct {
	commands map[Tool][]string
	dir      string
	runner   process.Runner
}

// New creates an Analyzer from the tools section of the configuration.
func New(cfg *config.Config, runner process.Runner) *Analyzer {
	return &Analyzer{
		commands: map[Tool][]string{
			Formatter: cfg.Tools.Formatter,
			Linter:    cfg.Tools.Linter,
		},
		dir:    cfg.Tools.Dir,
		runner: runner,
	}
}

// Command returns the invocation for tool.
func (a *Analyzer) Command(tool Tool) (process.Command, error) {
	argv := a.commands[tool]
	if len(argv) == 0 {
		return process.Command{}, ferrors.ConfigError("no command configured for tool").
			WithContext("tool", string(tool)).
			Build()
	}
	return process.Command{Name: argv[0], Args: argv[1:], Dir: a.dir}, nil
}

// Run executes tool and echoes its report. Findings are reported, not
// treated as failures; an error means the tool could not be started.
func (a *Analyzer) Run(ctx context.Context, tool Tool) error {
	cmd, err := a.Command(tool)
	if err != nil {
		return err
	}

	slog.Info("Running "+string(tool), logfields.Command(cmd.String()), logfields.Path(cmd.Dir))
	out, err := a.runner.Run(ctx, cmd)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to run "+string(tool)).
			Fatal().
			WithContext("command", cmd.Name).
			Build()
	}

	if out.Stdout != "" {
		slog.Info(string(tool)+" report", "output", out.Stdout)
	}
	if out.ExitCode != 0 {
		slog.Warn(string(tool)+" reported issues", "exit_code", out.ExitCode, "stderr", out.Stderr)
	}
	return nil
}
