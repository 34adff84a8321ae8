// Package hashing computes the digests embedded into hash regions of a
// listing. The digest routine is an injected Func so the resolver can be
// exercised without spawning processes.
package hashing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/logfields"
	"git.home.luguber.info/inful/listingproc/internal/metrics"
)

// Func produces the raw output of a hashing routine for region text in the
// given dialect. Only the first whitespace-delimited token is used.
type Func func(ctx context.Context, dialect string, region []byte) (string, error)

// Resolver turns hash region text into a digest.
type Resolver struct {
	fn       Func
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRecorder reports hash durations to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Resolver) { r.recorder = rec }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a resolver backed by fn.
func NewResolver(fn Func, opts ...Option) *Resolver {
	r := &Resolver{fn: fn, recorder: metrics.NoopRecorder{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve hashes one closed region. Every failure is a hash-category error.
func (r *Resolver) Resolve(ctx context.Context, dialect, region string) (string, error) {
	start := time.Now()
	out, err := r.fn(ctx, dialect, []byte(region))
	elapsed := time.Since(start)
	if err != nil {
		r.recorder.ObserveHashDuration(dialect, elapsed, false)
		return "", ferrors.WrapError(err, ferrors.CategoryHash, "hashing failed").
			WithContext(logfields.KeyDialect, dialect).
			Build()
	}

	fields := strings.Fields(out)
	if len(fields) == 0 {
		r.recorder.ObserveHashDuration(dialect, elapsed, false)
		return "", ferrors.HashError("hashing produced no digest").
			WithContext(logfields.KeyDialect, dialect).
			Build()
	}

	r.recorder.ObserveHashDuration(dialect, elapsed, true)
	r.logger.Debug("Hashed region",
		logfields.Dialect(dialect),
		slog.String("digest", fields[0]),
		logfields.Duration(elapsed))
	return fields[0], nil
}
