package metrics

import "time"

// Outcome enumerates how a single source unit ended.
type Outcome string

const (
	OutcomeRendered   Outcome = "rendered"
	OutcomeRaw        Outcome = "raw"
	OutcomeDiagnostic Outcome = "diagnostic"
	OutcomeFailed     Outcome = "failed"
)

// Recorder defines observability hooks for units, hash calls and queue drains.
type Recorder interface {
	IncUnitOutcome(outcome Outcome)
	ObserveHashDuration(dialect string, d time.Duration, success bool)
	ObserveQueueDrain(drained, remaining int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncUnitOutcome(Outcome)                          {}
func (NoopRecorder) ObserveHashDuration(string, time.Duration, bool) {}
func (NoopRecorder) ObserveQueueDrain(int, int)                      {}
