package refqueue

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
	"git.home.luguber.info/inful/listingproc/internal/metrics"
)

// Queue is the reference queue over an injected Store. Entries and targets
// are compared in NFC so captions typed on different systems still match.
type Queue struct {
	store    Store
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Queue.
type Option func(*Queue)

// WithRecorder reports drain sizes to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(q *Queue) { q.recorder = rec }
}

// WithLogger sets the logger used for drain records.
func WithLogger(l *slog.Logger) Option {
	return func(q *Queue) { q.logger = l }
}

// New creates a queue over store.
func New(store Store, opts ...Option) *Queue {
	q := &Queue{store: store, recorder: metrics.NoopRecorder{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Add appends a reference to the end of the queue.
func (q *Queue) Add(ctx context.Context, reference string) error {
	entry := normalize(reference)
	if err := q.store.Append(ctx, entry); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryStore, "could not append to reference queue").
			WithContext(logfields.KeyCaption, entry).
			Build()
	}
	return nil
}

// Entries returns the queue contents in order.
func (q *Queue) Entries(ctx context.Context) ([]string, error) {
	entries, err := q.store.ReadAll(ctx)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryStore, "could not read reference queue").Build()
	}
	return entries, nil
}

// Drain serves a header request. When the target is queued, every entry up
// to and including its first occurrence is removed and their display names
// are returned joined by DisplaySeparator. ok is false when there is nothing
// to print: an empty request or a target not in the queue.
func (q *Queue) Drain(ctx context.Context, req HeaderRequest) (line string, ok bool, err error) {
	if req.Empty() {
		return "", false, nil
	}
	target := normalize(req.Target)

	entries, err := q.Entries(ctx)
	if err != nil {
		return "", false, err
	}
	for i := range entries {
		entries[i] = normalize(entries[i])
	}

	idx := slices.Index(entries, target)
	if idx < 0 {
		q.logger.Debug("Header target not queued", logfields.Target(target), logfields.Remaining(len(entries)))
		return "", false, nil
	}

	drained, rest := entries[:idx+1], entries[idx+1:]
	if err := q.store.ReplaceAll(ctx, rest); err != nil {
		return "", false, ferrors.WrapError(err, ferrors.CategoryStore, "could not rewrite reference queue").
			WithContext(logfields.KeyTarget, target).
			Build()
	}

	names := make([]string, len(drained))
	for i, entry := range drained {
		names[i] = DisplayName(entry)
	}

	q.recorder.ObserveQueueDrain(len(drained), len(rest))
	q.logger.Info("Drained reference queue",
		logfields.Target(target),
		logfields.Drained(len(drained)),
		logfields.Remaining(len(rest)))
	return strings.Join(names, DisplaySeparator), true, nil
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
