package source

import (
	"sort"

	"github.com/arloliu/prunecluster/internal/hash"
	"github.com/arloliu/prunecluster/internal/mercator"
	"github.com/arloliu/prunecluster/types"
	"github.com/puzpuzpuz/xsync/v4"
)

// DefaultCellSize is the default pixel size of the area a point cluster covers.
const DefaultCellSize = 120

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithCellSize sets the pixel size of the area each cluster covers.
//
// The overlay derives its collision margin from that area, so this normally matches
// Config.ClusterSize.
func WithCellSize(px int) RegistryOption {
	return func(r *Registry) {
		if px > 0 {
			r.cellSize = float64(px)
		}
	}
}

// WithTileSize sets the Web Mercator tile size in pixels.
func WithTileSize(px int) RegistryOption {
	return func(r *Registry) {
		if px > 0 {
			r.tileSize = px
		}
	}
}

// Registry is an in-memory point registry that yields one cluster per point.
//
// Each cluster is keyed by its point ID and covers a square cell of the configured
// pixel size around the point at the requested zoom. Registration is safe for
// concurrent use, so feed goroutines may update points while the overlay reconciles.
type Registry struct {
	points   *xsync.Map[string, types.Point]
	cellSize float64
	tileSize int
}

var _ types.ClusterSource = (*Registry)(nil)

// NewRegistry creates an empty registry.
//
// Parameters:
//   - opts: Optional cell and tile sizes
//
// Returns:
//   - *Registry: Empty registry
//
// Example:
//
//	reg := source.NewRegistry(source.WithCellSize(cfg.ClusterSize))
//	reg.RegisterPoints(types.Point{ID: "bus-12", Position: types.LatLng{Lat: 48.85, Lng: 2.35}})
//	ov, err := prunecluster.NewOverlay(cfg, reg)
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		points:   xsync.NewMap[string, types.Point](),
		cellSize: DefaultCellSize,
		tileSize: mercator.DefaultTileSize,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Clusters returns one cluster per point whose cell intersects view, ordered by
// ascending longitude (then latitude, then ID).
func (r *Registry) Clusters(view types.Bounds, zoom int) []types.Cluster {
	clusters := make([]types.Cluster, 0, r.points.Size())

	r.points.Range(func(id string, p types.Point) bool {
		cell := mercator.Cell(p.Position, zoom, r.cellSize, r.tileSize)
		if !cell.Intersects(view) {
			return true
		}

		pt := p
		c := types.Cluster{
			Key:         id,
			Population:  1,
			Position:    p.Position,
			Bounds:      cell,
			Hash:        hash.Point(id),
			Point:       &pt,
			TotalWeight: p.EffectiveWeight(),
		}
		if p.Category != 0 {
			c.Categories = map[int]int{p.Category: 1}
		}
		clusters = append(clusters, c)

		return true
	})

	SortClusters(clusters)

	return clusters
}

// BoundsOf returns the envelope of points.
func (r *Registry) BoundsOf(points []types.Point) (types.Bounds, bool) {
	return envelope(points)
}

// GlobalBounds returns the envelope of every registered point.
func (r *Registry) GlobalBounds() (types.Bounds, bool) {
	b := types.EmptyBounds()
	found := false

	r.points.Range(func(_ string, p types.Point) bool {
		b.Extend(p.Position)
		found = true

		return true
	})

	return b, found
}

// PointsInArea returns the registered points inside b, ordered by ID.
func (r *Registry) PointsInArea(b types.Bounds) []types.Point {
	var out []types.Point

	r.points.Range(func(_ string, p types.Point) bool {
		if b.Contains(p.Position) {
			out = append(out, p)
		}

		return true
	})
	sortPoints(out)

	return out
}

// RegisterPoints adds points, replacing any point with the same ID.
func (r *Registry) RegisterPoints(points ...types.Point) {
	for _, p := range points {
		r.points.Store(p.ID, p)
	}
}

// RemovePoints removes points by ID.
func (r *Registry) RemovePoints(points ...types.Point) {
	for _, p := range points {
		r.points.Delete(p.ID)
	}
}

// Points returns every registered point, ordered by ID.
func (r *Registry) Points() []types.Point {
	out := make([]types.Point, 0, r.points.Size())

	r.points.Range(func(_ string, p types.Point) bool {
		out = append(out, p)

		return true
	})
	sortPoints(out)

	return out
}

// Len returns the number of registered points.
func (r *Registry) Len() int {
	return r.points.Size()
}

// Reset is a no-op: the registry keeps no state between views.
func (r *Registry) Reset() {}

// Clear removes every point.
func (r *Registry) Clear() {
	r.points.Clear()
}

// SortClusters orders clusters for the collision sweep: ascending longitude, then
// latitude, then key.
func SortClusters(clusters []types.Cluster) {
	sort.SliceStable(clusters, func(i, j int) bool {
		a, b := clusters[i].Position, clusters[j].Position
		if a.Lng != b.Lng {
			return a.Lng < b.Lng
		}
		if a.Lat != b.Lat {
			return a.Lat < b.Lat
		}

		return clusters[i].Key < clusters[j].Key
	})
}

func sortPoints(points []types.Point) {
	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })
}

func envelope(points []types.Point) (types.Bounds, bool) {
	if len(points) == 0 {
		return types.Bounds{}, false
	}

	b := types.EmptyBounds()
	for _, p := range points {
		b.Extend(p.Position)
	}

	return b, true
}
