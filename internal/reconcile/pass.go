// Package reconcile implements the reconciliation pass that maps a fresh cluster list
// onto the markers already displayed.
//
// A pass runs in four phases over a Pass value that owns all scratch state:
//
//  1. Begin flags every displayed marker for removal.
//  2. Merge folds clusters whose markers would visually overlap into a neighbor.
//  3. Match reuses the marker each surviving cluster had in the previous pass, or queues
//     the cluster for creation.
//  4. Rematch gives markers still flagged for removal a second chance against the
//     creation queue.
//
// Creating and removing markers is left to the caller (see internal/lifecycle).
package reconcile

import (
	"fmt"

	"github.com/arloliu/prunecluster/types"
)

// Options configures a Pass.
type Options struct {
	// Zoom is the surface zoom of this pass.
	Zoom int

	// MarginRatio is ClusterMargin / ClusterSize.
	MarginRatio float64

	// Records is the persistent record store of the overlay.
	Records *Records

	// Styler derives marker icons.
	Styler types.Styler

	// Logger receives malformed-cluster warnings.
	Logger types.Logger

	// Strict panics on malformed clusters instead of skipping them.
	Strict bool
}

// Candidate is a cluster waiting for a new marker.
type Candidate struct {
	Cluster *types.Cluster
	Record  *Record
}

// Pass holds the scratch state of one reconciliation pass.
type Pass struct {
	opts Options

	clusters  []types.Cluster
	displayed []*Visual
	open      []int
	creation  []Candidate
	next      []*Visual
	removal   []*Visual
	stats     types.PassStats
}

// NewPass creates a pass for the given clusters and previously displayed markers.
//
// The pass takes ownership of clusters; the merger mutates them in place.
//
// Parameters:
//   - opts: Pass options (Records and Styler are required)
//   - clusters: Clusters from the source, in sweep (longitude) order
//   - displayed: Markers displayed by the previous pass
//
// Returns:
//   - *Pass: Pass ready to Run
func NewPass(opts Options, clusters []types.Cluster, displayed []*Visual) *Pass {
	return &Pass{
		opts:      opts,
		clusters:  clusters,
		displayed: displayed,
		stats:     types.PassStats{Zoom: opts.Zoom, Clusters: len(clusters)},
	}
}

// Run executes every phase in order.
func (p *Pass) Run() {
	p.Begin()
	p.Sanitize()
	p.Merge()
	p.Match()
	p.Rematch()
}

// Begin flags every displayed marker for removal.
func (p *Pass) Begin() {
	for _, v := range p.displayed {
		v.PendingRemoval = true
	}
}

// Sanitize drops clusters that break the source contract: an empty key, a population
// below one, inverted bounds, or a key already used by an earlier cluster of the pass.
func (p *Pass) Sanitize() {
	kept := p.clusters[:0]
	seen := make(map[string]struct{}, len(p.clusters))
	for _, c := range p.clusters {
		err := c.Validate()
		if err == nil {
			if _, dup := seen[c.Key]; dup {
				err = fmt.Errorf("%w: duplicate cluster key %q", types.ErrMalformedCluster, c.Key)
			}
		}
		if err != nil {
			if p.opts.Strict {
				panic(fmt.Sprintf("reconcile: %v", err))
			}
			if p.opts.Logger != nil {
				p.opts.Logger.Warn("skipping malformed cluster", "key", c.Key, "error", err)
			}
			p.stats.Skipped++

			continue
		}
		seen[c.Key] = struct{}{}
		kept = append(kept, c)
	}
	p.clusters = kept
}

// Creation returns the clusters queued for new markers, in queue order.
func (p *Pass) Creation() []Candidate {
	return p.creation
}

// Next returns the markers kept by the pass.
func (p *Pass) Next() []*Visual {
	return p.next
}

// Removal returns the markers no cluster claimed.
func (p *Pass) Removal() []*Visual {
	return p.removal
}

// Clusters returns the clusters after sanitizing and merging.
func (p *Pass) Clusters() []types.Cluster {
	return p.clusters
}

// Stats returns the counters gathered so far.
func (p *Pass) Stats() types.PassStats {
	return p.stats
}

// Zoom returns the zoom of the pass.
func (p *Pass) Zoom() int {
	return p.opts.Zoom
}

func (p *Pass) keep(v *Visual) {
	if v.State != types.MarkerCreating {
		v.State = types.MarkerActive
	}
	p.next = append(p.next, v)
}

// margins returns the collision margins of a cluster area.
func margins(b types.Bounds, ratio float64) (lat, lng float64) {
	latSpan, lngSpan := b.Span()

	return latSpan * ratio, lngSpan * ratio
}

// Icon derives the icon of c at zoom: the point icon for a single point, the
// cluster icon otherwise.
func Icon(s types.Styler, c *types.Cluster, zoom int) types.Icon {
	if c.Population == 1 && c.Point != nil {
		return s.PointIcon(*c.Point, zoom)
	}

	return s.ClusterIcon(*c, zoom)
}
