package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for incident ingestion.
type Metrics struct {
	// Ingestion outcomes by initial status and spoof category
	IngestOutcome *prometheus.CounterVec

	// Full ingestion latency including evidence gathering
	IngestLatency prometheus.Histogram
}

// New creates a new Metrics instance with all ingestion metrics registered.
func New() *Metrics {
	return &Metrics{
		IngestOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cora_incident_ingest_total",
			Help: "Total ingested incidents by initial status and spoof category",
		}, []string{"status", "category"}),

		IngestLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cora_incident_ingest_duration_seconds",
			Help:    "Duration of incident ingestion including asset and trust resolution",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// IncrementIngest records an ingestion outcome.
func (m *Metrics) IncrementIngest(status, category string) {
	if m != nil {
		m.IngestOutcome.WithLabelValues(status, category).Inc()
	}
}

// ObserveIngestLatency records the total ingestion duration.
func (m *Metrics) ObserveIngestLatency(d time.Duration) {
	if m != nil {
		m.IngestLatency.Observe(d.Seconds())
	}
}
