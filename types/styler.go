package types

// Styler derives marker appearance.
//
// This is the styling extension point of the overlay. Appearance may depend on zoom,
// which is why single-point markers are re-derived when reused at a different zoom.
type Styler interface {
	// ClusterIcon builds the icon for a multi-point cluster.
	ClusterIcon(c Cluster, zoom int) Icon

	// PointIcon builds the icon for a single point.
	PointIcon(p Point, zoom int) Icon
}
