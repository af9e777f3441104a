package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the asset registry module.
type Metrics struct {
	// Registrations by asset type
	Registered *prometheus.CounterVec

	// Standalone marker generations via the marker endpoint
	MarkersGenerated prometheus.Counter
}

// New creates a new Metrics instance with all registry metrics registered.
func New() *Metrics {
	return &Metrics{
		Registered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cora_assets_registered_total",
			Help: "Total assets registered by asset type",
		}, []string{"type"}),

		MarkersGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cora_markers_generated_total",
			Help: "Total standalone marker generations",
		}),
	}
}

// IncrementRegistered records a completed asset registration.
func (m *Metrics) IncrementRegistered(assetType string) {
	if m != nil {
		m.Registered.WithLabelValues(assetType).Inc()
	}
}

// IncrementMarkersGenerated records a standalone marker generation.
func (m *Metrics) IncrementMarkersGenerated() {
	if m != nil {
		m.MarkersGenerated.Inc()
	}
}
