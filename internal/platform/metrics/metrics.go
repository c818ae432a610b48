package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application-level Prometheus metrics.
type Metrics struct {
	RunsSubmitted   prometheus.Counter
	RunsTerminal    *prometheus.CounterVec
	StageDuration   *prometheus.HistogramVec
	IntegrityChecks *prometheus.CounterVec
}

// New creates and registers all application metrics.
func New() *Metrics {
	return &Metrics{
		RunsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "velos_runs_submitted_total",
			Help: "Total candidate runs submitted",
		}),
		RunsTerminal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "velos_runs_terminal_total",
			Help: "Total candidate runs that reached a terminal status",
		}, []string{"status"}),
		StageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "velos_stage_duration_seconds",
			Help:    "Stage execution latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		IntegrityChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "velos_integrity_checks_total",
			Help: "Ledger verification outcomes",
		}, []string{"outcome"}),
	}
}

// IncrementSubmitted records a new run submission.
func (m *Metrics) IncrementSubmitted() {
	if m != nil {
		m.RunsSubmitted.Inc()
	}
}

// IncrementTerminal records a run reaching a terminal status.
func (m *Metrics) IncrementTerminal(status string) {
	if m != nil {
		m.RunsTerminal.WithLabelValues(status).Inc()
	}
}

// ObserveStage records one stage execution duration in seconds.
func (m *Metrics) ObserveStage(stage string, seconds float64) {
	if m != nil {
		m.StageDuration.WithLabelValues(stage).Observe(seconds)
	}
}

// IncrementIntegrityCheck records a ledger verification outcome.
func (m *Metrics) IncrementIntegrityCheck(outcome string) {
	if m != nil {
		m.IntegrityChecks.WithLabelValues(outcome).Inc()
	}
}
