package reconcile

import (
	"maps"

	"github.com/arloliu/prunecluster/internal/hash"
	"github.com/arloliu/prunecluster/types"
)

// Merge folds every cluster whose marker would overlap an earlier one into it.
//
// Clusters are swept in source order against an open list. Open entries that end
// before the current cluster starts (in longitude) leave the list. The first open
// entry within the margin absorbs the cluster and the cluster's record is flagged as
// collided; otherwise the cluster joins the open list. The result depends on source
// order.
func (p *Pass) Merge() {
	ratio := p.opts.MarginRatio
	p.open = p.open[:0]

	for i := range p.clusters {
		c := &p.clusters[i]
		latMargin, lngMargin := margins(c.Bounds, ratio)

		merged := false
		open := p.open[:0]
		for k, j := range p.open {
			if merged {
				// entries after the absorbing one are kept unexamined
				open = append(open, p.open[k:]...)
				break
			}

			o := &p.clusters[j]
			if o.Bounds.MaxLng < c.Bounds.MinLng {
				continue
			}
			open = append(open, j)

			if o.Position.Lng+lngMargin > c.Position.Lng-lngMargin &&
				o.Position.Lat+latMargin > c.Position.Lat-latMargin &&
				o.Position.Lat-latMargin < c.Position.Lat+latMargin {
				Absorb(o, c)
				p.opts.Records.Get(c.Key).Collided = true
				p.stats.Collided++
				merged = true
			}
		}
		p.open = open

		if !merged {
			p.open = append(p.open, i)
		}
	}
}

// Absorb accumulates src into dst: populations add up, the position becomes the
// population-weighted average, hashes combine and bounds grow to cover both.
func Absorb(dst, src *types.Cluster) {
	total := dst.Population + src.Population
	dw := float64(dst.Population) / float64(total)
	sw := float64(src.Population) / float64(total)

	dst.Position = types.LatLng{
		Lat: dst.Position.Lat*dw + src.Position.Lat*sw,
		Lng: dst.Position.Lng*dw + src.Position.Lng*sw,
	}
	dst.Population = total
	dst.Hash = hash.Combine(dst.Hash, src.Hash)
	dst.Bounds.Union(src.Bounds)
	dst.TotalWeight += src.TotalWeight
	if src.Point != nil {
		dst.Point = src.Point
	}

	if len(src.Categories) > 0 {
		categories := maps.Clone(dst.Categories)
		if categories == nil {
			categories = make(map[int]int, len(src.Categories))
		}
		for k, n := range src.Categories {
			categories[k] += n
		}
		dst.Categories = categories
	}
}
