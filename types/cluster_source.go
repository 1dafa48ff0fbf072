package types

// ClusterSource groups registered points into clusters for a viewport.
//
// The overlay calls Clusters once per view update, so implementations must be cheap to
// call repeatedly. The returned slice must be ordered as a left-to-right sweep (ascending
// longitude); the collision merger relies on that order to prune its working list.
//
// Implementations:
//   - source.Registry: in-memory registry, one cluster per point
//   - Custom: grid or tree based engines
type ClusterSource interface {
	// Clusters returns the clusters covering the viewport.
	//
	// Every cluster must carry a non-empty Key that is unique within the returned slice;
	// the overlay keeps one persistent record per key. Clusters with an empty or repeated
	// key are skipped as malformed (the first occurrence of a key wins).
	//
	// Parameters:
	//   - view: Visible area
	//   - zoom: Current zoom level of the surface
	//
	// Returns:
	//   - []Cluster: Clusters ordered by ascending longitude
	Clusters(view Bounds, zoom int) []Cluster

	// BoundsOf computes the envelope of the given points.
	//
	// Returns:
	//   - Bounds: Envelope of the points
	//   - bool: false when points is empty
	BoundsOf(points []Point) (Bounds, bool)

	// GlobalBounds returns the envelope of every registered point.
	//
	// Returns:
	//   - Bounds: Envelope of all points
	//   - bool: false when no point is registered
	GlobalBounds() (Bounds, bool)

	// PointsInArea returns the registered points inside b.
	PointsInArea(b Bounds) []Point

	// RegisterPoints adds or replaces points by ID.
	RegisterPoints(points ...Point)

	// RemovePoints removes points by ID. Unknown IDs are ignored.
	RemovePoints(points ...Point)

	// Points returns every registered point.
	Points() []Point

	// Reset drops any per-view state the source keeps between calls.
	Reset()
}
