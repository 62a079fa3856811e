package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datagate7000",
		Subsystem: "validation",
		Name:      "requests_total",
		Help:      "Count of compute request validations.",
	}, []string{"status"})
	validationRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "datagate7000",
		Subsystem: "validation",
		Name:      "request_duration_seconds",
		Help:      "Duration of compute request validations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	validationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datagate7000",
		Subsystem: "validation",
		Name:      "failures_total",
		Help:      "Count of validation failures by stage and kind.",
	}, []string{"stage", "kind"})
)

// Validation tracks metrics for the compute request validation pipeline.
type Validation struct{}

// NewValidation creates a Validation metrics collector.
func NewValidation() *Validation {
	return &Validation{}
}

// ObserveRequest records a full pipeline run.
func (m Validation) ObserveRequest(failed bool, started time.Time) {
	status := "accepted"
	if failed {
		status = "rejected"
	}

	validationRequestsTotal.WithLabelValues(status).Inc()
	validationRequestDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveFailure records a single failure by stage and kind.
func (m Validation) ObserveFailure(stage, kind string) {
	validationFailuresTotal.WithLabelValues(stage, kind).Inc()
}
