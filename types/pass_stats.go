package types

import "time"

// PassStats summarizes one reconciliation pass.
type PassStats struct {
	// Zoom is the surface zoom the pass ran at.
	Zoom int

	// Clusters is the number of clusters returned by the source.
	Clusters int

	// Collided is the number of clusters folded into a neighbor.
	Collided int

	// Skipped is the number of malformed clusters dropped.
	Skipped int

	// Reused is the number of markers kept by the reconciler.
	Reused int

	// Rematched is the number of orphaned markers kept by the rematcher.
	Rematched int

	// Created is the number of new markers.
	Created int

	// Removed is the number of markers scheduled for detach.
	Removed int

	// Displayed is the size of the displayed set after the pass.
	Displayed int

	// Hard reports whether the pass followed a discontinuous view jump.
	Hard bool

	// Duration is the wall time of the pass.
	Duration time.Duration
}
