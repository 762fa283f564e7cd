package metrics

import (
	"time"

	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Transition outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// TransitionMetrics records status transitions (memo close, ledger post, sell).
type TransitionMetrics struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewTransitionMetrics registers the transition metrics on the provided registerer.
func NewTransitionMetrics(reg prometheus.Registerer) *TransitionMetrics {
	if reg == nil {
		return &TransitionMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lotflow_transition_duration_seconds",
		Help:    "Duration of status transitions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lotflow_transitions_total",
		Help: "Status transitions by entity and outcome.",
	}, []string{"entity", "outcome"})
	reg.MustRegister(duration, total)
	return &TransitionMetrics{
		duration: duration,
		total:    total,
	}
}

// ObserveDuration records how long a transition on the entity took.
func (m *TransitionMetrics) ObserveDuration(entity string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(entity)).Observe(duration.Seconds())
}

// Inc counts a transition outcome for the entity.
func (m *TransitionMetrics) Inc(entity, outcome string) {
	if m == nil || m.total == nil {
		return
	}
	m.total.WithLabelValues(normalizeLabel(entity), normalizeLabel(outcome)).Inc()
}

// Track observes the elapsed time since start and counts the outcome.
func (m *TransitionMetrics) Track(entity string, start time.Time, outcome string) {
	m.ObserveDuration(entity, time.Since(start))
	m.Inc(entity, outcome)
}

// OutcomeOf classifies a transition error by its API error code.
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch pkgerrors.As(err).Code() {
	case pkgerrors.CodeConflict:
		return OutcomeConflict
	case pkgerrors.CodeNotFound:
		return OutcomeNotFound
	}
	return OutcomeError
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
