package dynmst

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/core"
)

// TestMetrics_Counters drives one call down each branch plus one failure.
func TestMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	g, tr := spider(t)
	adj := New[string](WithMetrics(m))

	_, err := adj.Adjust(g, tr, "A", "B", 0.5) // tree edge cheaper
	require.NoError(t, err)
	_, err = adj.Adjust(g, tr, "A", "D", 3) // cycle
	require.NoError(t, err)
	_, err = adj.Adjust(g, tr, "A", "E", 30) // split
	require.NoError(t, err)
	_, err = adj.Adjust(g, tr, "A", "C", 1) // not adjacent
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.adjustments.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.adjustments.WithLabelValues("cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.adjustments.WithLabelValues("split")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("edge_not_found")))
	n, err := testutil.GatherAndCount(registry)
	require.NoError(t, err)
	assert.Equal(t, 5, n) // three case series, one error series, one histogram
}

// TestMetrics_Nil: a nil collector is a no-op.
func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe(CaseCycle, 3)
		m.observeError(ErrInconsistentState)
	})
}

// TestErrorKind maps wrapped errors to labels, inconsistent_state first.
func TestErrorKind(t *testing.T) {
	g, _ := spider(t)
	_, err := New[string](WithValidation()).Adjust(g, core.Tree[string]{}, "A", "B", 2)
	require.Error(t, err)

	assert.Equal(t, "inconsistent_state", errorKind(err))
	assert.Equal(t, "invalid_edge", errorKind(core.ErrInvalidEdge))
	assert.Equal(t, "bad_weight", errorKind(core.ErrBadWeight))
	assert.Equal(t, "other", errorKind(assert.AnError))
}
