package reconcile

import (
	"strconv"

	"github.com/arloliu/prunecluster/internal/hash"
	"github.com/arloliu/prunecluster/types"
)

type fakeMarker struct {
	id        uint64
	position  types.LatLng
	icon      types.Icon
	iconCalls int
}

var markerSeq uint64

func newFakeMarker(pos types.LatLng, icon types.Icon) *fakeMarker {
	markerSeq++

	return &fakeMarker{id: markerSeq, position: pos, icon: icon}
}

func (m *fakeMarker) ID() uint64                   { return m.id }
func (m *fakeMarker) SetPosition(pos types.LatLng) { m.position = pos }
func (m *fakeMarker) SetIcon(icon types.Icon)      { m.icon = icon; m.iconCalls++ }
func (m *fakeMarker) SetOpacity(float64)           {}
func (m *fakeMarker) SetEntranceSuppressed(bool)   {}

type fakeStyler struct{}

func (fakeStyler) ClusterIcon(c types.Cluster, _ int) types.Icon {
	return types.Icon{ClassName: "cluster", Label: strconv.Itoa(c.Population)}
}

func (fakeStyler) PointIcon(p types.Point, _ int) types.Icon {
	return types.Icon{ClassName: "point", Label: p.ID}
}

// box returns bounds of half-size r around (lat, lng).
func box(lat, lng, r float64) types.Bounds {
	return types.Bounds{MinLat: lat - r, MinLng: lng - r, MaxLat: lat + r, MaxLng: lng + r}
}

func single(key, id string, lat, lng float64) types.Cluster {
	pt := &types.Point{ID: id, Position: types.LatLng{Lat: lat, Lng: lng}}

	return types.Cluster{
		Key:         key,
		Population:  1,
		Position:    pt.Position,
		Bounds:      box(lat, lng, 1),
		Hash:        hash.Point(id),
		Point:       pt,
		TotalWeight: 1,
	}
}

func group(key string, lat, lng float64, ids ...string) types.Cluster {
	return types.Cluster{
		Key:         key,
		Population:  len(ids),
		Position:    types.LatLng{Lat: lat, Lng: lng},
		Bounds:      box(lat, lng, 1),
		Hash:        hash.Of(ids...),
		TotalWeight: len(ids),
	}
}

func newOptions(records *Records, zoom int) Options {
	return Options{
		Zoom:        zoom,
		MarginRatio: 0.25,
		Records:     records,
		Styler:      fakeStyler{},
	}
}

// run executes a full pass and creates markers for the creation queue the way the
// lifecycle scheduler does, returning the new displayed set.
func run(records *Records, zoom int, displayed []*Visual, clusters ...types.Cluster) (*Pass, []*Visual) {
	p := NewPass(newOptions(records, zoom), clusters, displayed)
	p.Run()

	next := append([]*Visual(nil), p.Next()...)
	for _, cand := range p.Creation() {
		v := &Visual{
			Marker: newFakeMarker(cand.Record.Position, Icon(fakeStyler{}, cand.Cluster, zoom)),
			State:  types.MarkerActive,
		}
		v.Claim(cand.Record, cand.Cluster, zoom)
		next = append(next, v)
	}

	return p, next
}

func markerOf(v *Visual) *fakeMarker {
	return v.Marker.(*fakeMarker)
}
