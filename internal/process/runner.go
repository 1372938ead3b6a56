// Package process runs the external programs texpress orchestrates: the
// typesetting toolchain, the platform opener and the formatter/linter.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"git.home.luguber.info/inful/texpress/internal/logfields"
)

// ErrBinaryNotFound is returned when the requested program is not on PATH.
var ErrBinaryNotFound = errors.New("binary not found")

// Command is a single external program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command line for logs and diagnostics.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output is what a finished process left behind.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner abstracts how external programs are executed so callers can be
// tested without spawning processes.
//
// Run returns a nil error whenever the program started, even if it exited
// non-zero; the exit code is reported in Output. An error means the program
// could not be run at all.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Output, error)
}

// ExecRunner invokes programs through os/exec.
type ExecRunner struct{}

// NewExecRunner returns the production Runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, c Command) (Output, error) {
	if _, err := exec.LookPath(c.Name); err != nil {
		return Output{}, fmt.Errorf("%w: %s: %w", ErrBinaryNotFound, c.Name, err)
	}

	// #nosec G204 - command lines come from the validated configuration
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Running external command", logfields.Command(c.String()), logfields.Path(c.Dir))
	err := cmd.Run()

	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if out.Stdout != "" {
		slog.Debug("command stdout", logfields.Command(c.Name), "output", out.Stdout)
	}
	if out.Stderr != "" {
		slog.Debug("command stderr", logfields.Command(c.Name), "error_output", out.Stderr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, fmt.Errorf("run %s: %w", c.Name, err)
	}
	return out, nil
}

// RecordingRunner records every command instead of running it. It is used by
// tests across packages and by callers that want a dry run.
type RecordingRunner struct {
	Commands []Command
	// Result, when set, decides the outcome of each command.
	Result func(Command) (Output, error)
}

func (r *RecordingRunner) Run(_ context.Context, c Command) (Output, error) {
	r.Commands = append(r.Commands, c)
	if r.Result != nil {
		return r.Result(c)
	}
	return Output{}, nil
}
