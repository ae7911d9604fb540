package dynmst

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mstkit/core"
)

// Metrics collects Prometheus metrics for MST adjustments.
//
// Metrics exposed (all namespaced with "dynmst_"):
//
//  1. adjustments_total (counter): successful calls. Labels: case (none, cycle, split).
//  2. errors_total (counter): failed calls. Labels: kind
//     (bad_weight, invalid_edge, edge_not_found, inconsistent_state, other).
//  3. search_visits (histogram): nodes touched by the cycle or partition search.
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	adj := dynmst.New[string](dynmst.WithMetrics(dynmst.NewMetrics(registry)))
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	adjustments *prometheus.CounterVec
	failures    *prometheus.CounterVec
	visits      prometheus.Histogram
}

// NewMetrics creates and registers the adjustment collectors with registry.
// A nil registry falls back to prometheus.DefaultRegisterer.
// Registering twice on the same registry panics, as promauto does.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		adjustments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dynmst",
			Name:      "adjustments_total",
			Help:      "Completed MST adjustments by the branch that ran",
		}, []string{"case"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dynmst",
			Name:      "errors_total",
			Help:      "MST adjustments rejected or aborted, by error kind",
		}, []string{"kind"}),
		visits: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dynmst",
			Name:      "search_visits",
			Help:      "Nodes touched by the cycle or partition search of one adjustment",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		}),
	}
}

func (m *Metrics) observe(c Case, visited int) {
	if m == nil {
		return
	}
	m.adjustments.WithLabelValues(c.String()).Inc()
	if c != CaseNone {
		m.visits.Observe(float64(visited))
	}
}

func (m *Metrics) observeError(err error) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(errorKind(err)).Inc()
}

// errorKind maps err to its errors_total label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInconsistentState):
		return "inconsistent_state"
	case errors.Is(err, core.ErrBadWeight):
		return "bad_weight"
	case errors.Is(err, core.ErrInvalidEdge):
		return "invalid_edge"
	case errors.Is(err, core.ErrEdgeNotFound):
		return "edge_not_found"
	default:
		return "other"
	}
}
