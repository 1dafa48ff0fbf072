package reconcile

import "github.com/arloliu/prunecluster/types"

// Match reuses the previous marker of every surviving cluster where possible.
//
// A collided cluster only has its record reset. Otherwise the record's marker is
// kept when:
//   - both the cluster and the record are single points with the same hash, or
//   - both are multi-point clusters and the marker either was placed at this zoom
//     or already stands at the cluster position.
//
// Everything else goes to the creation queue, with the record updated right away.
func (p *Pass) Match() {
	zoom := p.opts.Zoom

	for i := range p.clusters {
		c := &p.clusters[i]
		rec := p.opts.Records.Get(c.Key)

		if rec.Collided {
			rec.Collided = false
			rec.OldPopulation = 0
			rec.OldHash = 0

			continue
		}

		if v := rec.Visual; v != nil && p.reuse(v, rec, c) {
			rec.Position = c.Position
			rec.HasPosition = true
			v.Claim(rec, c, zoom)
			p.keep(v)
			p.stats.Reused++

			continue
		}

		p.creation = append(p.creation, Candidate{Cluster: c, Record: rec})
		rec.remember(c)
	}
}

func (p *Pass) reuse(v *Visual, rec *Record, c *types.Cluster) bool {
	zoom := p.opts.Zoom

	switch {
	case c.Population == 1 && rec.OldPopulation == 1 && c.Hash == v.Hash:
		if v.Zoom != zoom {
			v.Marker.SetIcon(Icon(p.opts.Styler, c, zoom))
		}
		v.Marker.SetPosition(c.Position)

		return true

	case c.Population > 1 && rec.OldPopulation > 1 &&
		(v.Zoom == zoom || (rec.HasPosition && rec.Position.Equal(c.Position))):
		v.Marker.SetPosition(c.Position)
		if c.Population != rec.OldPopulation || c.Hash != rec.OldHash {
			v.Marker.SetIcon(Icon(p.opts.Styler, c, zoom))
		}
		rec.OldPopulation = c.Population
		rec.OldHash = c.Hash

		return true
	}

	return false
}
