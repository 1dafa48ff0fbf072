package source

import (
	"github.com/arloliu/prunecluster/internal/hash"
	"github.com/arloliu/prunecluster/types"
)

// Compose builds the cluster of a group of points.
//
// The position is the unweighted mean of the member positions, the hash covers
// the member IDs and Point is the last member. An empty group yields a cluster with
// population 0, which the overlay rejects as malformed.
//
// Parameters:
//   - key: Identity of the cluster
//   - area: Area the cluster covers (drives the collision margin)
//   - points: Members
//
// Returns:
//   - types.Cluster: Cluster of the members
func Compose(key string, area types.Bounds, points ...types.Point) types.Cluster {
	c := types.Cluster{Key: key, Bounds: area}
	if len(points) == 0 {
		return c
	}

	content := hash.NewContent(0)
	var lat, lng float64
	for i := range points {
		p := points[i]
		content.Add(p.ID)
		lat += p.Position.Lat
		lng += p.Position.Lng
		c.TotalWeight += p.EffectiveWeight()
		if p.Category != 0 {
			if c.Categories == nil {
				c.Categories = make(map[int]int)
			}
			c.Categories[p.Category]++
		}
	}

	n := float64(len(points))
	last := points[len(points)-1]
	c.Population = len(points)
	c.Position = types.LatLng{Lat: lat / n, Lng: lng / n}
	c.Hash = content.Sum()
	c.Point = &last

	return c
}
