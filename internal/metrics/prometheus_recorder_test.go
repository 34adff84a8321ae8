package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncUnitOutcome(OutcomeRendered)
	pr.IncUnitOutcome(OutcomeRendered)
	pr.IncUnitOutcome(OutcomeDiagnostic)
	pr.ObserveHashDuration("hash-cpp", 15*time.Millisecond, true)
	pr.ObserveHashDuration("hash-cpp", time.Second, false)
	pr.ObserveQueueDrain(3, 1)

	require.InDelta(t, 2, testutil.ToFloat64(pr.unitOutcomes.WithLabelValues("rendered")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.unitOutcomes.WithLabelValues("diagnostic")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.hashResults.WithLabelValues("hash-cpp", "failed")), 0)
	require.InDelta(t, 3, testutil.ToFloat64(pr.drainedTotal), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.queueLength), 0)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncUnitOutcome(OutcomeRaw)
	pr.ObserveHashDuration("hash", time.Millisecond, true)
	pr.ObserveQueueDrain(1, 0)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncUnitOutcome(OutcomeRaw)

	path := filepath.Join(t.TempDir(), "listingproc.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `listingproc_unit_outcomes_total{outcome="raw"} 1`)
}
