// Package style provides built-in marker stylers.
//
// A Styler decides how clusters and single points look. The overlay calls it whenever a
// marker is created and whenever a reused marker needs its appearance refreshed
// (population or content changed, or a single point is shown at a new zoom).
package style

import (
	"strconv"

	"github.com/arloliu/prunecluster/types"
)

// Population thresholds of the Default styler.
const (
	MediumThreshold = 10
	LargeThreshold  = 100
)

// Default is the built-in styler.
//
// Clusters fall into three buckets by population: small (< 10), medium (< 100) and
// large. Single points use the "prunecluster-point" class, with the point category
// appended when set.
type Default struct {
	// ClassPrefix prefixes every class name ("prunecluster" if empty).
	ClassPrefix string
}

var _ types.Styler = Default{}

// ClusterIcon returns the bucketed cluster icon labelled with the population.
func (d Default) ClusterIcon(c types.Cluster, _ int) types.Icon {
	bucket, size := "small", 38
	switch {
	case c.Population >= LargeThreshold:
		bucket, size = "large", 44
	case c.Population >= MediumThreshold:
		bucket, size = "medium", 40
	}

	return types.Icon{
		ClassName: d.prefix() + "-cluster " + d.prefix() + "-cluster-" + bucket,
		Label:     strconv.Itoa(c.Population),
		Size:      size,
	}
}

// PointIcon returns the single point icon.
func (d Default) PointIcon(p types.Point, _ int) types.Icon {
	class := d.prefix() + "-point"
	if p.Category != 0 {
		class += " " + d.prefix() + "-category-" + strconv.Itoa(p.Category)
	}

	return types.Icon{ClassName: class}
}

func (d Default) prefix() string {
	if d.ClassPrefix == "" {
		return "prunecluster"
	}

	return d.ClassPrefix
}

// Func adapts plain functions to a Styler. Nil functions fall back to Default.
type Func struct {
	Cluster func(c types.Cluster, zoom int) types.Icon
	Point   func(p types.Point, zoom int) types.Icon
}

var _ types.Styler = Func{}

// ClusterIcon calls f.Cluster.
func (f Func) ClusterIcon(c types.Cluster, zoom int) types.Icon {
	if f.Cluster == nil {
		return Default{}.ClusterIcon(c, zoom)
	}

	return f.Cluster(c, zoom)
}

// PointIcon calls f.Point.
func (f Func) PointIcon(p types.Point, zoom int) types.Icon {
	if f.Point == nil {
		return Default{}.PointIcon(p, zoom)
	}

	return f.Point(p, zoom)
}
