package types

// MetricsCollector defines methods for recording overlay metrics.
//
// Implementations should be non-blocking. Methods are called with the overlay lock held,
// once per pass, and must be safe for use by several overlays at the same time.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PassMetrics
	MarkerMetrics
}

// PassMetrics defines metrics for reconciliation passes.
type PassMetrics interface {
	// RecordPassDuration records the time taken by one pass.
	//
	// Parameters:
	//   - seconds: Pass duration in seconds
	RecordPassDuration(seconds float64)

	// RecordSkippedPass records a pass request that did not run.
	//
	// Parameters:
	//   - reason: "detached", "moving" or "zooming"
	RecordSkippedPass(reason string)

	// RecordCollisions records clusters folded into a neighbor during one pass.
	RecordCollisions(count int)
}

// MarkerMetrics defines metrics for marker churn.
type MarkerMetrics interface {
	// RecordMarkerChanges records the marker outcome of one pass.
	//
	// Parameters:
	//   - created: New markers
	//   - reused: Markers kept in place (reconciler and rematcher)
	//   - removed: Markers scheduled for detach
	RecordMarkerChanges(created, reused, removed int)

	// RecordRematches records orphaned markers rescued by the rematcher.
	RecordRematches(count int)

	// RecordDisplayedMarkers sets the displayed marker count (gauge metric).
	RecordDisplayedMarkers(count int)
}
