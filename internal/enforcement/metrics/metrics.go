package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for reviewer decisions.
type Metrics struct {
	// Decisions by action and outcome (applied / rejected)
	Decisions *prometheus.CounterVec
}

// New creates a new Metrics instance with all decision metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cora_enforcement_decisions_total",
			Help: "Total reviewer decisions by action and outcome",
		}, []string{"action", "outcome"}),
	}
}

// IncrementDecision records one decision attempt.
func (m *Metrics) IncrementDecision(action, outcome string) {
	if m != nil {
		m.Decisions.WithLabelValues(action, outcome).Inc()
	}
}
