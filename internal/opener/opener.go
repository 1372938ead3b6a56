// Package opener shows a compiled artifact with the host's default PDF viewer.
package opener

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/texpress/internal/config"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/logfields"
	"git.home.luguber.info/inful/texpress/internal/platform"
	"git.home.luguber.info/inful/texpress/internal/process"
)

// Opener resolves an artifact below a base directory and hands it to the
// platform's open action.
type Opener struct {
	platform platform.Platform
	base     string
	runner   process.Runner
}

// New creates an Opener. base is the directory artifact paths are resolved
// against (see ResolveBase).
func New(p platform.Platform, base string, runner process.Runner) *Opener {
	return &Opener{platform: p, base: base, runner: runner}
}

// ResolveBase picks the directory the preprint is looked up in: the directory
// of the running executable, or workdir when configured so.
func ResolveBase(mode config.OpenBase, workdir string) (string, error) {
	if mode == config.OpenBaseWorkdir {
		return filepath.Abs(workdir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRuntime, "cannot locate executable").Fatal().Build()
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Path returns the absolute location of preprintFile inside outputDir.
func (o *Opener) Path(preprintFile, outputDir string) string {
	return filepath.Join(o.base, outputDir, preprintFile)
}

// Open checks that the artifact exists and launches the viewer. Nothing is
// dispatched when the file is missing.
func (o *Opener) Open(ctx context.Context, preprintFile, outputDir string) error {
	path := o.Path(preprintFile, outputDir)
	if _, err := os.Stat(path); err != nil {
		return ferrors.NotFoundError("PDF output not found").
			WithCause(err).
			WithContext("path", path).
			Build()
	}

	cmd, err := o.command(path)
	if err != nil {
		return err
	}

	slog.Info("Opening artifact", logfields.Path(path), logfields.Platform(o.platform.Name))
	out, err := o.runner.Run(ctx, cmd)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to launch viewer").
			Fatal().
			WithContext("command", cmd.Name).
			Build()
	}
	if out.ExitCode != 0 {
		slog.Warn("Viewer exited with errors", logfields.Command(cmd.Name), "exit_code", out.ExitCode)
	}
	return nil
}

// command builds the platform-specific open action for path.
func (o *Opener) command(path string) (process.Command, error) {
	if !o.platform.Supported() {
		return process.Command{}, ferrors.RuntimeError("Unknown operating system \"" + o.platform.Name + "\"").
			WithContext("platform", o.platform.Name).
			Build()
	}
	switch o.platform.Kind {
	case platform.MacOS:
		return process.Command{Name: "open", Args: []string{path}}, nil
	case platform.Windows:
		return process.Command{Name: "rundll32", Args: []string{"url.dll,FileProtocolHandler", path}}, nil
	default:
		return process.Command{Name: "xdg-open", Args: []string{path}}, nil
	}
}
