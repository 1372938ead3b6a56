package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/texpress/internal/config"
	"git.home.luguber.info/inful/texpress/internal/foundation"
	"git.home.luguber.info/inful/texpress/internal/platform"
	"git.home.luguber.info/inful/texpress/internal/process"
)

// Global carries process-wide collaborators resolved once at startup.
type Global struct {
	Logger   *slog.Logger
	Platform platform.Platform
	Runner   process.Runner
	// Workdir overrides the current directory; empty means os.Getwd.
	Workdir string
}

// NewGlobal resolves the host platform and the real process runner.
func NewGlobal() *Global {
	return &Global{
		Logger:   slog.Default(),
		Platform: platform.Current(),
		Runner:   process.NewExecRunner(),
	}
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"${config_path}"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run  RunCmd  `cmd:"" default:"withargs" help:"Run a scenario: ${scenarios}"`
	Init InitCmd `cmd:"" help:"Write an example configuration file"`
}

// Vars returns the interpolation variables the CLI struct tags refer to.
func Vars(versionLine string, scenarios []string) kong.Vars {
	return kong.Vars{
		"version":     versionLine,
		"config_path": config.DefaultPath,
		"scenarios":   strings.Join(scenarios, ", "),
	}
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

var logLevels = foundation.NewNormalizer(map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}, slog.LevelInfo)

// parseLogLevel honors --verbose first, then TEXPRESS_LOG_LEVEL.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return logLevels.Normalize(os.Getenv("TEXPRESS_LOG_LEVEL"))
}
