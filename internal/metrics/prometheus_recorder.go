package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	unitOutcomes *prom.CounterVec
	hashDuration *prom.HistogramVec
	hashResults  *prom.CounterVec
	drainedTotal prom.Counter
	queueLength  prom.Gauge
}

// NewPrometheusRecorder constructs and registers the listing metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		unitOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "listingproc",
			Name:      "unit_outcomes_total",
			Help:      "Processed source units by outcome",
		}, []string{"outcome"}),
		hashDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "listingproc",
			Name:      "hash_duration_seconds",
			Help:      "Duration of hash region digests",
			Buckets:   prom.DefBuckets,
		}, []string{"dialect"}),
		hashResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "listingproc",
			Name:      "hash_results_total",
			Help:      "Hash region digests by dialect and result",
		}, []string{"dialect", "result"}),
		drainedTotal: prom.NewCounter(prom.CounterOpts{
			Namespace: "listingproc",
			Name:      "queue_drained_entries_total",
			Help:      "Reference queue entries flushed into headers",
		}),
		queueLength: prom.NewGauge(prom.GaugeOpts{
			Namespace: "listingproc",
			Name:      "queue_entries",
			Help:      "Reference queue entries left after the last drain",
		}),
	}
	reg.MustRegister(pr.unitOutcomes, pr.hashDuration, pr.hashResults, pr.drainedTotal, pr.queueLength)
	return pr
}

func (p *PrometheusRecorder) IncUnitOutcome(outcome Outcome) {
	if p == nil {
		return
	}
	p.unitOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveHashDuration(dialect string, d time.Duration, success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.hashDuration.WithLabelValues(dialect).Observe(d.Seconds())
	p.hashResults.WithLabelValues(dialect, res).Inc()
}

func (p *PrometheusRecorder) ObserveQueueDrain(drained, remaining int) {
	if p == nil {
		return
	}
	p.drainedTotal.Add(float64(drained))
	p.queueLength.Set(float64(remaining))
}

// WriteTextfile writes every metric gathered from g to path in the Prometheus
// text exposition format.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
