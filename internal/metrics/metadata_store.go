package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metadataStoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datagate7000",
		Subsystem: "metadata_store",
		Name:      "operations_total",
		Help:      "Count of metadata store requests.",
	}, []string{"operation", "status"})
	metadataStoreRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "datagate7000",
		Subsystem: "metadata_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of metadata store requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// MetadataStore tracks metrics for metadata store lookups.
type MetadataStore struct{}

// NewMetadataStore creates a MetadataStore metrics collector.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{}
}

// Observe records a metadata store request outcome and duration.
func (m MetadataStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	metadataStoreRequestsTotal.WithLabelValues(operation, status).Inc()
	metadataStoreRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
