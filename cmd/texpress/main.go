// Command texpress compiles LaTeX sources with latexmk and presses the
// resulting PDF into release or archive directories.
package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/texpress/cmd/texpress/commands"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/scenario"
	"git.home.luguber.info/inful/texpress/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("texpress"),
		kong.Description("Build, open, press and clean LaTeX documents."),
		kong.UsageOnError(),
		commands.Vars(version.String(), scenario.Keywords()),
	)

	err := ctx.Run(commands.NewGlobal())
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
