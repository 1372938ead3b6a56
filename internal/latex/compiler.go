// Package latex invokes the external typesetting toolchain.
package latex

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/texpress/internal/config"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
	"git.home.luguber.info/inful/texpress/internal/process"
)

// Job describes one compilation: the entry file, where sources live, the
// base name of the produced PDF and the directory it is written to.
type Job struct {
	Main      string
	SourceDir string
	JobName   string
	OutputDir string
}

// SourcePath strips the entry file extension and prefixes the source
// directory. The two are concatenated as-is, so SourceDir carries its own
// trailing separator ("./tex/").
func (j Job) SourcePath() string {
	stem := strings.TrimSuffix(j.Main, filepath.Ext(j.Main))
	return j.SourceDir + stem
}

// Compiler builds the configured latexmk command line and runs it.
type Compiler struct {
	command   string
	engine    string
	extraArgs []string
	workdir   string
	runner    process.Runner
}

// NewCompiler creates a compiler from the configuration. workdir is where the
// process runs; paths in the job are relative to it.
func NewCompiler(cfg *config.Config, workdir string, runner process.Runner) *Compiler {
	return &Compiler{
		command:   cfg.Compiler.Command,
		engine:    cfg.Compiler.Engine,
		extraArgs: cfg.Compiler.ExtraArgs,
		workdir:   workdir,
		runner:    runner,
	}
}

// Command returns the invocation for job without running it.
func (c *Compiler) Command(job Job) process.Command {
	args := []string{
		c.engine,
		"-synctex=1",
		"-interaction=nonstopmode",
		"-jobname=" + job.JobName,
		"-output-directory=" + job.OutputDir,
	}
	args = append(args, c.extraArgs...)
	args = append(args, job.SourcePath())
	return process.Command{Name: c.command, Args: args, Dir: c.workdir}
}

// Build runs the compiler for job. A compiler that runs but fails is only
// logged: the missing artifact is detected by whoever consumes it next. An
// error is returned only when the compiler could not be started.
func (c *Compiler) Build(ctx context.Context, job Job) error {
	cmd := c.Command(job)
	slog.Info("Compiling document",
		logfields.File(job.Main),
		logfields.Command(cmd.String()))

	out, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return ferrors.BuildError("failed to start compiler").
			WithCause(err).
			WithContext("command", cmd.Name).
			Build()
	}

	if out.ExitCode != 0 {
		slog.Warn("Compiler exited with errors",
			logfields.File(job.Main),
			"exit_code", out.ExitCode,
			"stderr", lastLines(out.Stderr, 20))
		return nil
	}

	slog.Info("Compilation finished", logfields.File(job.Main), logfields.Path(job.OutputDir))
	return nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
