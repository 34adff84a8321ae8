package commands

import (
	"context"
	"fmt"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/refqueue"
)

// HeaderCmd implements the 'header' command.
type HeaderCmd struct {
	Request string `arg:"" help:"Header request of the form 'left|right'; the left caption wins unless blank"`
}

func (h *HeaderCmd) Run(g *Global, root *CLI) (err error) {
	rt, err := newRuntime(g, root)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	line, ok, err := rt.queue.Drain(context.Background(), refqueue.ParseHeaderRequest(h.Request))
	if err != nil || !ok {
		return err
	}
	if _, err := fmt.Fprintln(g.Stdout, line); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "could not write output").Build()
	}
	return nil
}
