package source

import (
	"sync"

	"github.com/arloliu/prunecluster/types"
)

// Static serves a fixed cluster list.
//
// Points are kept in an embedded Registry so fit and expand operations keep working.
// Static is useful for tests and for clusterings computed ahead of time.
type Static struct {
	*Registry

	mu       sync.RWMutex
	clusters []types.Cluster
}

var _ types.ClusterSource = (*Static)(nil)

// NewStatic creates a static source.
//
// Parameters:
//   - clusters: Clusters returned for every view
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Cluster{
//	    source.Compose("depot", depotArea, trucks...),
//	})
//	ov, err := prunecluster.NewOverlay(cfg, src)
func NewStatic(clusters []types.Cluster) *Static {
	s := &Static{Registry: NewRegistry()}
	s.Update(clusters)

	return s
}

// Clusters returns a copy of the clusters intersecting view, in sweep order.
func (s *Static) Clusters(view types.Bounds, _ int) []types.Cluster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Cluster, 0, len(s.clusters))
	for _, c := range s.clusters {
		if c.Bounds.Intersects(view) {
			out = append(out, c)
		}
	}

	return out
}

// Update replaces the cluster list.
//
// This simulates a clustering engine producing a new result, which is useful for
// testing reconciliation across updates.
func (s *Static) Update(clusters []types.Cluster) {
	sorted := make([]types.Cluster, len(clusters))
	copy(sorted, clusters)
	SortClusters(sorted)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clusters = sorted
}
