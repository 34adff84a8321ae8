package commands

import (
	"context"
	"io"
	"os"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/language"
	"git.home.luguber.info/inful/listingproc/internal/listing"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
)

// ProcessCmd implements the 'process' command.
type ProcessCmd struct {
	Input    string `short:"i" help:"Source file to read (default: stdin)" type:"path"`
	Output   string `short:"o" help:"File to write markup to (default: stdout)" type:"path"`
	Language string `short:"l" help:"Input language (default: extension of --input)"`
	Caption  string `short:"c" help:"Listing caption (default: file name of --input)"`
}

func (p *ProcessCmd) Run(g *Global, root *CLI) (err error) {
	lang := p.Language
	if lang == "" && p.Input != "" {
		lang = language.FromPath(p.Input)
	}
	if lang == "" {
		return ferrors.ValidationError("--language is required when reading from stdin").Build()
	}
	spec, err := language.Lookup(lang)
	if err != nil {
		return err
	}

	caption := p.Caption
	if caption == "" {
		caption = language.CaptionFromPath(p.Input)
	}

	src := g.Stdin
	if p.Input != "" {
		f, openErr := os.Open(p.Input)
		if openErr != nil {
			return ferrors.WrapError(openErr, ferrors.CategoryInput, "could not open source").
				WithContext(logfields.KeyPath, p.Input).
				Build()
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	rt, err := newRuntime(g, root)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var out io.Writer = g.Stdout
	if p.Output != "" {
		file := &lazyFile{path: p.Output}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = ferrors.WrapError(cerr, ferrors.CategoryFileSystem, "could not close output").
					WithContext(logfields.KeyPath, p.Output).
					Build()
			}
		}()
		out = file
	}

	proc := listing.NewProcessor(rt.resolver, rt.queue,
		listing.WithRecorder(rt.recorder),
		listing.WithLogger(rt.logger))
	_, err = proc.Process(context.Background(), listing.Unit{
		Caption:  caption,
		Language: spec,
		Source:   src,
	}, out)
	return err
}

// lazyFile creates its file on the first write, so a unit that fails before
// anything is rendered leaves an existing output file untouched.
type lazyFile struct {
	path string
	file *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.file == nil {
		f, err := os.Create(l.path)
		if err != nil {
			return 0, err
		}
		l.file = f
	}
	return l.file.Write(p)
}

func (l *lazyFile) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
