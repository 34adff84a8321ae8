package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/listingproc/cmd/listingproc/commands"
	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], commands.NewGlobal()))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, g *commands.Global) int {
	var cli commands.CLI
	parser, err := kong.New(&cli,
		kong.Name("listingproc"),
		kong.Description("Render annotated source files as LaTeX listings."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Writers(g.Stdout, g.Stderr),
		kong.Bind(g),
	)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).WithOutput(g.Stderr).Handle(
			ferrors.WrapError(err, ferrors.CategoryInternal, "could not build command line").Build())
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	if err := kctx.Run(&cli); err != nil {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, g.Logger).WithOutput(g.Stderr).Handle(err)
	}
	return 0
}
