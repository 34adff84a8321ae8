// Package listing runs one source unit through parsing, rendering and the
// reference queue.
package listing

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/listingproc/internal/annotation"
	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/language"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
	"git.home.luguber.info/inful/listingproc/internal/metrics"
	"git.home.luguber.info/inful/listingproc/internal/refqueue"
	"git.home.luguber.info/inful/listingproc/internal/render"
)

// Unit is one source file to process.
type Unit struct {
	Caption  string
	Language language.Spec
	Source   io.Reader
}

// Processor renders units and records successful ones in the queue.
type Processor struct {
	hasher   annotation.RegionHasher
	queue    *refqueue.Queue
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithRecorder reports unit outcomes to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(p *Processor) { p.recorder = rec }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) { p.logger = l }
}

// NewProcessor creates a processor hashing regions with hasher and queueing
// references in queue.
func NewProcessor(hasher annotation.RegionHasher, queue *refqueue.Queue, opts ...Option) *Processor {
	p := &Processor{
		hasher:   hasher,
		queue:    queue,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process renders unit to out.
//
// Problems in the unit itself are written as a diagnostic line and do not
// produce an error. An error is returned only when hashing fails, in which
// case nothing is written, or when out or the queue cannot be written. The
// queue is appended to only after the listing was written in full.
func (p *Processor) Process(ctx context.Context, unit Unit, out io.Writer) (metrics.Outcome, error) {
	start := time.Now()
	log := p.logger.With(logfields.Caption(unit.Caption), logfields.Language(unit.Language.Name))
	log.Info("Processing listing")

	var (
		outcome metrics.Outcome
		err     error
	)
	switch unit.Language.Mode {
	case language.ModeRaw:
		outcome, err = p.processRaw(ctx, unit, out)
	default:
		outcome, err = p.processAnnotated(ctx, unit, out, log)
	}
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	p.recorder.IncUnitOutcome(outcome)
	log.Debug("Processed listing", slog.String("outcome", string(outcome)), logfields.Duration(time.Since(start)))
	return outcome, err
}

func (p *Processor) processAnnotated(ctx context.Context, unit Unit, out io.Writer, log *slog.Logger) (metrics.Outcome, error) {
	parser := annotation.NewParser(unit.Language.HashDialect, p.hasher)
	res, err := parser.Parse(ctx, unit.Source)
	if err != nil {
		return "", wrapUnit(err, unit)
	}

	if perr := res.Err(); perr != nil {
		if classified, ok := ferrors.AsClassified(perr); !ok || !classified.IsUnitError() {
			return "", wrapUnit(perr, unit)
		}
		log.Warn("Listing has errors", logfields.Error(perr))
		return metrics.OutcomeDiagnostic, writeLines(out, render.Diagnostic(unit.Caption, res.DiagnosticText()))
	}

	log.Debug("Parsed listing",
		logfields.Lines(res.LineCount()),
		logfields.Includes(len(res.Includes)))
	lines := render.Listing(unit.Caption, res, unit.Language.ListingLanguage)
	if err := writeLines(out, lines); err != nil {
		return "", err
	}
	return metrics.OutcomeRendered, p.queue.Add(ctx, render.Reference(unit.Caption))
}

func (p *Processor) processRaw(ctx context.Context, unit Unit, out io.Writer) (metrics.Outcome, error) {
	data, err := io.ReadAll(unit.Source)
	if err != nil {
		return metrics.OutcomeDiagnostic, writeLines(out, render.ReadFailure())
	}

	source := strings.TrimSpace(string(data))
	if err := writeLines(out, render.Raw(unit.Caption, source, unit.Language.ListingLanguage)); err != nil {
		return "", err
	}
	return metrics.OutcomeRaw, p.queue.Add(ctx, render.Reference(unit.Caption))
}

func writeLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, line := range lines {
		_, _ = w.WriteString(line)
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "could not write output").Build()
	}
	return nil
}

func wrapUnit(err error, unit Unit) error {
	if classified, ok := ferrors.AsClassified(err); ok {
		return classified.WithContext(logfields.KeyCaption, unit.Caption)
	}
	return err
}
