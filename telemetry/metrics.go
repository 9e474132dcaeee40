package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the Prometheus instruments of sheet processing.
// A nil *Metrics is a valid no-op receiver, so instrumentation never
// becomes a hard dependency of the pipeline.
type Metrics struct {
	systemsProcessed prometheus.Counter
	systemsFailed    prometheus.Counter
	glyphsEvaluated  prometheus.Counter
	compoundsBuilt   prometheus.Counter
	alterRepairs     prometheus.Counter
	ledgersAccepted  prometheus.Counter
	exclusionDrops   prometheus.Counter
	systemDuration   prometheus.Histogram
}

// New registers the instruments with reg and reports the bundle.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		systemsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "stave_systems_processed_total",
			Help: "Systems whose processing ran to completion",
		}),
		systemsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "stave_systems_failed_total",
			Help: "Systems whose processing was aborted by a recovered failure",
		}),
		glyphsEvaluated: factory.NewCounter(prometheus.CounterOpts{
			Name: "stave_glyphs_evaluated_total",
			Help: "Glyphs that received a shape from the evaluator",
		}),
		compoundsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "stave_compounds_built_total",
			Help: "Compound glyphs accepted by the compound builder",
		}),
		alterRepairs: factory.NewCounter(prometheus.CounterOpts{
			Name: "stave_alter_repairs_total",
			Help: "Close stem pairs rebuilt as alteration signs",
		}),
		ledgersAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "stave_ledgers_accepted_total",
			Help: "Ledger interpretations surviving exclusion reduction",
		}),
		exclusionDrops: factory.NewCounter(prometheus.CounterOpts{
			Name: "stave_exclusion_deletions_total",
			Help: "Interpretations deleted by exclusion reduction",
		}),
		systemDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stave_system_duration_seconds",
			Help:    "Wall time of one system's processing",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// SystemProcessed records one completed system and its duration.
func (m *Metrics) SystemProcessed(d time.Duration) {
	if m == nil {
		return
	}
	m.systemsProcessed.Inc()
	m.systemDuration.Observe(d.Seconds())
}

// SystemFailed records one recovered system failure.
func (m *Metrics) SystemFailed() {
	if m == nil {
		return
	}
	m.systemsFailed.Inc()
}

// AddEvaluated records n evaluator-assigned shapes.
func (m *Metrics) AddEvaluated(n int) {
	if m == nil {
		return
	}
	m.glyphsEvaluated.Add(float64(n))
}

// AddCompounds records n accepted compounds.
func (m *Metrics) AddCompounds(n int) {
	if m == nil {
		return
	}
	m.compoundsBuilt.Add(float64(n))
}

// AddRepairs records n successful alter-sign repairs.
func (m *Metrics) AddRepairs(n int) {
	if m == nil {
		return
	}
	m.alterRepairs.Add(float64(n))
}

// AddLedgers records n accepted ledger interpretations.
func (m *Metrics) AddLedgers(n int) {
	if m == nil {
		return
	}
	m.ledgersAccepted.Add(float64(n))
}

// AddDeletions records n exclusion-reduction deletions.
func (m *Metrics) AddDeletions(n int) {
	if m == nil {
		return
	}
	m.exclusionDrops.Add(float64(n))
}
