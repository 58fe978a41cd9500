package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for MutationsTotal.
const (
	OutcomeOK         = "ok"
	OutcomeNoop       = "noop"
	OutcomeOutOfRange = "out_of_range"
	OutcomeFailed     = "failed"
	OutcomeCancelled  = "cancelled"
)

// Metrics provides observability for the record store.
type Metrics struct {
	// Mutations by operation and outcome
	MutationsTotal *prometheus.CounterVec

	// Whole-collection write latency
	PersistDuration prometheus.Histogram

	// Records currently held in memory
	Records prometheus.Gauge

	LoadFailures    prometheus.Counter
	PublishFailures prometheus.Counter
}

// New registers the record store metrics with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MutationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mealog_record_mutations_total",
			Help: "Record store mutations by operation and outcome",
		}, []string{"op", "outcome"}),

		PersistDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mealog_record_persist_duration_seconds",
			Help:    "Duration of persisting the whole record collection",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		Records: f.NewGauge(prometheus.GaugeOpts{
			Name: "mealog_records",
			Help: "Number of dated records in the committed collection",
		}),

		LoadFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "mealog_record_load_failures_total",
			Help: "Initial loads that fell back to an empty collection",
		}),

		PublishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "mealog_record_publish_failures_total",
			Help: "Change events that could not be published",
		}),
	}
}

func (m *Metrics) IncrementMutation(op, outcome string) {
	if m != nil {
		m.MutationsTotal.WithLabelValues(op, outcome).Inc()
	}
}

func (m *Metrics) ObservePersist(d time.Duration) {
	if m != nil {
		m.PersistDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) SetRecords(n int) {
	if m != nil {
		m.Records.Set(float64(n))
	}
}

func (m *Metrics) IncrementLoadFailure() {
	if m != nil {
		m.LoadFailures.Inc()
	}
}

func (m *Metrics) IncrementPublishFailure() {
	if m != nil {
		m.PublishFailures.Inc()
	}
}
