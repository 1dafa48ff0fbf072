package types

import "fmt"

// Point is a single registered map point.
//
// Points are owned by the ClusterSource. The overlay never mutates them; it only
// hands them to the Styler when a single-point marker needs its appearance derived.
type Point struct {
	// ID uniquely identifies the point. It feeds the content hash of every cluster
	// the point belongs to, so it must be stable for the life of the point.
	ID string `json:"id" yaml:"id"`

	// Position is the point location.
	Position LatLng `json:"position" yaml:"position"`

	// Category is a free-form classification used by stylers (0 = uncategorized).
	Category int `json:"category" yaml:"category"`

	// Weight is the relative importance of the point (0 is treated as 1).
	Weight int `json:"weight" yaml:"weight"`

	// Data carries caller payload for styling.
	Data any `json:"-" yaml:"-"`
}

// EffectiveWeight returns Weight, treating zero as one.
func (p Point) EffectiveWeight() int {
	if p.Weight <= 0 {
		return 1
	}

	return p.Weight
}

// Cluster is a group of one or more nearby points rendered as one marker.
//
// Clusters are values produced fresh for every view update. Anything that must survive
// between updates is kept in the overlay's per-cluster records, keyed by Key.
type Cluster struct {
	// Key is the stable identity the overlay attaches its persistent record to.
	Key string

	// Population is the number of points represented (>= 1).
	Population int

	// Position is the population-weighted average position.
	Position LatLng

	// Bounds is the area the source computed the cluster over. Its extent drives the
	// collision margin, so it is usually the grid cell rather than the member envelope.
	Bounds Bounds

	// Hash summarizes member identity; equal hashes mean "same members".
	Hash uint64

	// Point is the underlying point when Population is 1, and the last member otherwise.
	Point *Point

	// TotalWeight is the sum of member weights.
	TotalWeight int

	// Categories counts members per Point.Category.
	Categories map[int]int
}

// Validate checks the source contract for a cluster.
//
// Returns:
//   - error: ErrMalformedCluster wrapped with the reason, nil if the cluster is usable
func (c Cluster) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: cluster has an empty key", ErrMalformedCluster)
	}
	if c.Population < 1 {
		return fmt.Errorf("%w: cluster %q has population %d", ErrMalformedCluster, c.Key, c.Population)
	}
	if !c.Bounds.Valid() {
		return fmt.Errorf("%w: cluster %q has inverted bounds", ErrMalformedCluster, c.Key)
	}

	return nil
}

// IsSingle reports whether the cluster represents exactly one point.
func (c Cluster) IsSingle() bool {
	return c.Population == 1
}
