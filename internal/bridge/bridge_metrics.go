package bridge

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the bridge subsystem. A nil *Metrics
// is valid and records nothing, which keeps test wiring minimal.
type Metrics struct {
	AlertsTotal         *prometheus.CounterVec
	AssembleDuration    *prometheus.HistogramVec
	ObservablesPerAlert *prometheus.HistogramVec
	LookupDuration      prometheus.Histogram
	CaseCreateDuration  *prometheus.HistogramVec
}

// NewMetrics registers and returns bridge metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AlertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hivebridge_alerts_total",
			Help: "Total alerts processed by source and outcome.",
		}, []string{"source", "outcome"}),
		AssembleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hivebridge_assemble_duration_seconds",
			Help:    "Duration of payload normalization and submission in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms .. ~40s
		}, []string{"source"}),
		ObservablesPerAlert: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hivebridge_observables_per_alert",
			Help:    "Observables attached per assembled alert.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 .. 512
		}, []string{"source"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hivebridge_pattern_lookup_duration_seconds",
			Help:    "Duration of technique pattern resolution per incident in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms .. ~25s
		}),
		CaseCreateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hivebridge_case_create_duration_seconds",
			Help:    "Duration of case API alert creation calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms .. ~25s
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.AlertsTotal,
		m.AssembleDuration,
		m.ObservablesPerAlert,
		m.LookupDuration,
		m.CaseCreateDuration,
	)

	return m
}

func (m *Metrics) observeAlert(source, outcome string, dur float64, observables int) {
	if m == nil {
		return
	}
	m.AlertsTotal.WithLabelValues(source, outcome).Inc()
	m.AssembleDuration.WithLabelValues(source).Observe(dur)
	if outcome == "success" {
		m.ObservablesPerAlert.WithLabelValues(source).Observe(float64(observables))
	}
}

func (m *Metrics) observeLookup(dur float64) {
	if m == nil {
		return
	}
	m.LookupDuration.Observe(dur)
}

func (m *Metrics) observeCaseCreate(outcome string, dur float64) {
	if m == nil {
		return
	}
	m.CaseCreateDuration.WithLabelValues(outcome).Observe(dur)
}
