package metrics

import (
	"sync"

	"github.com/arloliu/prunecluster/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Skipped pass reasons.
const (
	SkipDetached = "detached"
	SkipMoving   = "moving"
	SkipZooming  = "zooming"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are registered lazily on first use, so constructing one that is never
// exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	passDuration  prometheus.Histogram
	skippedPasses *prometheus.CounterVec
	collisions    prometheus.Counter
	markerChanges *prometheus.CounterVec
	rematches     prometheus.Counter
	displayed     prometheus.Gauge
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace ("prunecluster" if empty)
//
// Returns:
//   - *PrometheusCollector: Collector registering its metrics on first use
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "prunecluster"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.passDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "overlay",
			Name:      "pass_duration_seconds",
			Help:      "Duration of reconciliation passes in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs .. ~0.8s
		})

		p.skippedPasses = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "overlay",
			Name:      "skipped_passes_total",
			Help:      "Pass requests that did not run, by reason (detached, moving, zooming).",
		}, []string{"reason"})

		p.collisions = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "overlay",
			Name:      "collisions_total",
			Help:      "Clusters folded into a neighbor by the anti-collapse merger.",
		})

		p.markerChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "markers",
			Name:      "changes_total",
			Help:      "Marker outcomes of passes by kind (created, reused, removed).",
		}, []string{"kind"})

		p.rematches = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "markers",
			Name:      "rematches_total",
			Help:      "Orphaned markers kept by the rematcher.",
		})

		p.displayed = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "markers",
			Name:      "displayed",
			Help:      "Markers displayed after the last pass.",
		})

		p.reg.MustRegister(p.passDuration)
		p.reg.MustRegister(p.skippedPasses)
		p.reg.MustRegister(p.collisions)
		p.reg.MustRegister(p.markerChanges)
		p.reg.MustRegister(p.rematches)
		p.reg.MustRegister(p.displayed)
	})
}

// PassMetrics implementation

// RecordPassDuration observes the duration of one pass.
func (p *PrometheusCollector) RecordPassDuration(seconds float64) {
	p.ensureRegistered()
	p.passDuration.Observe(seconds)
}

// RecordSkippedPass increments the skipped pass counter for reason.
func (p *PrometheusCollector) RecordSkippedPass(reason string) {
	p.ensureRegistered()
	p.skippedPasses.WithLabelValues(reason).Inc()
}

// RecordCollisions adds count to the collision counter.
func (p *PrometheusCollector) RecordCollisions(count int) {
	p.ensureRegistered()
	p.collisions.Add(float64(count))
}

// MarkerMetrics implementation

// RecordMarkerChanges adds the marker outcome of one pass.
func (p *PrometheusCollector) RecordMarkerChanges(created, reused, removed int) {
	p.ensureRegistered()
	p.markerChanges.WithLabelValues("created").Add(float64(created))
	p.markerChanges.WithLabelValues("reused").Add(float64(reused))
	p.markerChanges.WithLabelValues("removed").Add(float64(removed))
}

// RecordRematches adds count to the rematch counter.
func (p *PrometheusCollector) RecordRematches(count int) {
	p.ensureRegistered()
	p.rematches.Add(float64(count))
}

// RecordDisplayedMarkers sets the displayed marker gauge.
func (p *PrometheusCollector) RecordDisplayedMarkers(count int) {
	p.ensureRegistered()
	p.displayed.Set(float64(count))
}
