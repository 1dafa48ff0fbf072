package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "test")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families, "metrics register on first use")

	m.RecordPassDuration(0.002)
	m.RecordSkippedPass(SkipMoving)
	m.RecordSkippedPass(SkipMoving)
	m.RecordSkippedPass(SkipDetached)
	m.RecordCollisions(2)
	m.RecordCollisions(1)
	m.RecordMarkerChanges(3, 5, 1)
	m.RecordMarkerChanges(1, 0, 2)
	m.RecordRematches(4)
	m.RecordDisplayedMarkers(8)
	m.RecordDisplayedMarkers(6)

	require.InDelta(t, 2.0, testutil.ToFloat64(m.skippedPasses.WithLabelValues(SkipMoving)), 1e-9)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.skippedPasses.WithLabelValues(SkipDetached)), 1e-9)
	require.InDelta(t, 3.0, testutil.ToFloat64(m.collisions), 1e-9)
	require.InDelta(t, 4.0, testutil.ToFloat64(m.markerChanges.WithLabelValues("created")), 1e-9)
	require.InDelta(t, 5.0, testutil.ToFloat64(m.markerChanges.WithLabelValues("reused")), 1e-9)
	require.InDelta(t, 3.0, testutil.ToFloat64(m.markerChanges.WithLabelValues("removed")), 1e-9)
	require.InDelta(t, 4.0, testutil.ToFloat64(m.rematches), 1e-9)
	require.InDelta(t, 6.0, testutil.ToFloat64(m.displayed), 1e-9)
	require.Equal(t, 1, testutil.CollectAndCount(m.passDuration))

	families, err = reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "test_overlay_pass_duration_seconds")
	require.Contains(t, names, "test_markers_displayed")
}

func TestNewPrometheus_Defaults(t *testing.T) {
	m := NewPrometheus(nil, "")

	require.Equal(t, prometheus.DefaultRegisterer, m.reg)
	require.Equal(t, "prunecluster", m.namespace)
}
