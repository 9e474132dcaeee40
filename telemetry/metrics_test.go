package telemetry_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stave/telemetry"
)

// TestMetrics_NilReceiver verifies the no-op contract: every method is
// safe on a nil bundle.
func TestMetrics_NilReceiver(t *testing.T) {
	var m *telemetry.Metrics
	assert.NotPanics(t, func() {
		m.SystemProcessed(time.Second)
		m.SystemFailed()
		m.AddEvaluated(3)
		m.AddCompounds(1)
		m.AddRepairs(1)
		m.AddLedgers(4)
		m.AddDeletions(2)
	}, "a nil bundle must swallow every call")
}

// TestMetrics_Registration verifies every instrument lands in the
// registry and records what the methods report.
func TestMetrics_Registration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.New(reg)

	m.SystemProcessed(50 * time.Millisecond)
	m.SystemProcessed(70 * time.Millisecond)
	m.SystemFailed()
	m.AddEvaluated(3)
	m.AddLedgers(4)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, fam := range families {
		metric := fam.GetMetric()[0]
		switch {
		case metric.GetCounter() != nil:
			values[fam.GetName()] = metric.GetCounter().GetValue()
		case metric.GetHistogram() != nil:
			values[fam.GetName()] = float64(metric.GetHistogram().GetSampleCount())
		}
	}

	assert.Len(t, families, 8, "all instruments registered")
	assert.Equal(t, 2.0, values["stave_systems_processed_total"])
	assert.Equal(t, 1.0, values["stave_systems_failed_total"])
	assert.Equal(t, 3.0, values["stave_glyphs_evaluated_total"])
	assert.Equal(t, 4.0, values["stave_ledgers_accepted_total"])
	assert.Equal(t, 0.0, values["stave_compounds_built_total"], "untouched counters stay at zero")
	assert.Equal(t, 2.0, values["stave_system_duration_seconds"], "one observation per processed system")
}
