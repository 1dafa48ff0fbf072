package reconcile

import "github.com/arloliu/prunecluster/types"

// Record is the state kept for one cluster identity across passes.
type Record struct {
	// Key is the cluster identity this record belongs to.
	Key string

	// Visual is the marker currently standing for this identity, nil if none.
	Visual *Visual

	// Collided is set by the merger and cleared by the reconciler in the same pass.
	Collided bool

	// OldPopulation and OldHash describe what the record last represented.
	// A collided record has both reset to zero.
	OldPopulation int
	OldHash       uint64

	// Position is the placement decided for this identity in the last pass it was seen.
	Position    types.LatLng
	HasPosition bool
}

func (r *Record) remember(c *types.Cluster) {
	r.Position = c.Position
	r.HasPosition = true
	r.OldPopulation = c.Population
	r.OldHash = c.Hash
}

// Records stores the per-identity records of one overlay.
//
// Records is not safe for concurrent use; the overlay lock guards it.
type Records struct {
	m map[string]*Record
}

// NewRecords creates an empty record store.
func NewRecords() *Records {
	return &Records{m: make(map[string]*Record)}
}

// Get returns the record for key, creating it the first time the key is seen.
func (r *Records) Get(key string) *Record {
	rec, ok := r.m[key]
	if !ok {
		rec = &Record{Key: key}
		r.m[key] = rec
	}

	return rec
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.m)
}

// Reset drops every record.
func (r *Records) Reset() {
	clear(r.m)
}

// Visual is a marker the overlay has placed on the surface.
type Visual struct {
	// Marker is the surface handle.
	Marker types.Marker

	// Owner is the record the marker currently stands for.
	Owner *Record

	// Zoom, Hash and Population describe the cluster last represented.
	Zoom       int
	Hash       uint64
	Population int

	// Position and Bounds are the last placement and cluster area, used by the rematcher.
	Position types.LatLng
	Bounds   types.Bounds

	// PendingRemoval is true between the start of a pass and the moment a cluster claims
	// the marker.
	PendingRemoval bool

	// State is the lifecycle state.
	State types.MarkerState
}

// Claim attaches the visual to rec and refreshes it from c.
func (v *Visual) Claim(rec *Record, c *types.Cluster, zoom int) {
	if v.Owner != nil && v.Owner != rec && v.Owner.Visual == v {
		v.Owner.Visual = nil
	}
	v.Owner = rec
	rec.Visual = v

	v.Zoom = zoom
	v.Hash = c.Hash
	v.Population = c.Population
	v.Position = c.Position
	v.Bounds = c.Bounds
	v.PendingRemoval = false
}

// Release detaches the visual from its owner record.
func (v *Visual) Release() {
	if v.Owner != nil && v.Owner.Visual == v {
		v.Owner.Visual = nil
	}
	v.Owner = nil
}

// Prune drops records that no marker stands for. Such records carry no state a later
// pass could use, since a fresh record is identical to a reset one.
//
// Returns:
//   - int: Number of records dropped
func (r *Records) Prune() int {
	n := 0
	for key, rec := range r.m {
		if rec.Visual == nil && !rec.Collided {
			delete(r.m, key)
			n++
		}
	}

	return n
}
