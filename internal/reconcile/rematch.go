package reconcile

// Rematch gives every marker still flagged for removal a second chance.
//
// Only markers placed at the current zoom are considered. The margin comes from the
// area of the cluster the marker last stood for. The first queued cluster within the
// margin that matches wins:
//   - both single points with equal hashes,
//   - both multi-point clusters, or
//   - the cluster carries the identity the marker currently stands for and only its
//     population class (single point or cluster) changed.
//
// A matched cluster leaves the creation queue and its record takes over the marker.
// Unmatched markers are released from their records and end up in Removal.
func (p *Pass) Rematch() {
	zoom := p.opts.Zoom

	for _, v := range p.displayed {
		if !v.PendingRemoval {
			continue
		}

		if v.Zoom == zoom && p.rematch(v) {
			p.stats.Rematched++

			continue
		}

		v.Release()
		p.removal = append(p.removal, v)
	}
}

func (p *Pass) rematch(v *Visual) bool {
	zoom := p.opts.Zoom
	latMargin, lngMargin := margins(v.Bounds, p.opts.MarginRatio)
	pa := v.Position

	for j, cand := range p.creation {
		c := cand.Cluster
		pb := c.Position

		if !(pa.Lng+lngMargin > pb.Lng-lngMargin && pa.Lng-lngMargin < pb.Lng+lngMargin &&
			pa.Lat+latMargin > pb.Lat-latMargin && pa.Lat-latMargin < pb.Lat+latMargin) {
			continue
		}

		switch {
		case v.Population == 1 && c.Population == 1 && v.Hash == c.Hash:
			v.Marker.SetIcon(Icon(p.opts.Styler, c, zoom))
		case v.Population > 1 && c.Population > 1:
			v.Marker.SetIcon(Icon(p.opts.Styler, c, zoom))
		case v.Owner != nil && v.Owner.Key == c.Key && (v.Population == 1) != (c.Population == 1):
			v.Marker.SetIcon(Icon(p.opts.Styler, c, zoom))
		default:
			continue
		}

		v.Marker.SetPosition(cand.Record.Position)
		cand.Record.remember(c)
		v.Claim(cand.Record, c, zoom)
		p.keep(v)
		p.creation = append(p.creation[:j], p.creation[j+1:]...)

		return true
	}

	return false
}
