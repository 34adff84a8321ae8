package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/listingproc/internal/config"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	fmt.Fprintf(g.Stdout, "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	g.Logger.Info("Initialized configuration", logfields.Path(root.Config), slog.Bool("force", i.Force))
	return nil
}
