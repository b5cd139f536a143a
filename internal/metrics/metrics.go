// Package metrics holds the Prometheus instruments used across userform.
// All collectors are registered with the global registry, so importing this
// package is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for SubmissionsTotal.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userform_submissions_total",
			Help: "Submit attempts, by outcome.",
		}, []string{"outcome"})

	FieldErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userform_field_errors_total",
			Help: "Validation failures reported per field on rejected submits.",
		}, []string{"field"})

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "userform_sessions_active",
			Help: "Visitor form sessions currently held in memory.",
		})

	SessionEvictTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "userform_session_evict_total",
			Help: "Cumulative number of sessions expired for inactivity.",
		})
)

func init() {
	prometheus.MustRegister(
		SubmissionsTotal,
		FieldErrorsTotal,
		ActiveSessions,
		SessionEvictTotal,
	)
}

// ObserveSubmit records one submit attempt.  fields lists the failing field
// names; it is empty for an accepted submission.
func ObserveSubmit(fields []string) {
	if len(fields) == 0 {
		SubmissionsTotal.WithLabelValues(OutcomeAccepted).Inc()
		return
	}
	SubmissionsTotal.WithLabelValues(OutcomeRejected).Inc()
	for _, f := range fields {
		FieldErrorsTotal.WithLabelValues(f).Inc()
	}
}
