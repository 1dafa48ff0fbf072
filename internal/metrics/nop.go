// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/arloliu/prunecluster/types"

// NopMetrics discards every metric. It is the overlay default.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a collector that discards all metrics.
//
// Example:
//
//	ov, _ := prunecluster.NewOverlay(cfg, src, prunecluster.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PassMetrics implementation

func (n *NopMetrics) RecordPassDuration(_ /* seconds */ float64) {}

func (n *NopMetrics) RecordSkippedPass(_ /* reason */ string) {}

func (n *NopMetrics) RecordCollisions(_ /* count */ int) {}

// MarkerMetrics implementation

func (n *NopMetrics) RecordMarkerChanges(_ /* created */, _ /* reused */, _ /* removed */ int) {}

func (n *NopMetrics) RecordRematches(_ /* count */ int) {}

func (n *NopMetrics) RecordDisplayedMarkers(_ /* count */ int) {}
