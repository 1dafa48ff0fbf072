package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundsExtend(t *testing.T) {
	b := EmptyBounds()
	require.False(t, b.Valid())

	b.Extend(LatLng{Lat: 10, Lng: 20})
	require.True(t, b.Valid())
	require.Equal(t, Bounds{MinLat: 10, MinLng: 20, MaxLat: 10, MaxLng: 20}, b)

	b.Extend(LatLng{Lat: -5, Lng: 25})
	require.Equal(t, Bounds{MinLat: -5, MinLng: 20, MaxLat: 10, MaxLng: 25}, b)
	require.Equal(t, LatLng{Lat: 2.5, Lng: 22.5}, b.Center())

	lat, lng := b.Span()
	require.InDelta(t, 15.0, lat, 1e-12)
	require.InDelta(t, 5.0, lng, 1e-12)
}

func TestBoundsUnionAndContains(t *testing.T) {
	b := Bounds{MinLat: 0, MinLng: 0, MaxLat: 1, MaxLng: 1}
	b.Union(Bounds{MinLat: 2, MinLng: -1, MaxLat: 3, MaxLng: 0.5})

	require.Equal(t, Bounds{MinLat: 0, MinLng: -1, MaxLat: 3, MaxLng: 1}, b)
	require.True(t, b.Contains(LatLng{Lat: 3, Lng: -1}))
	require.False(t, b.Contains(LatLng{Lat: 3.1, Lng: 0}))
}

func TestClusterValidate(t *testing.T) {
	valid := Cluster{Key: "a", Population: 1, Bounds: Bounds{MaxLat: 1, MaxLng: 1}}
	require.NoError(t, valid.Validate())
	require.True(t, valid.IsSingle())

	empty := valid
	empty.Population = 0
	require.ErrorIs(t, empty.Validate(), ErrMalformedCluster)

	inverted := valid
	inverted.Bounds = Bounds{MinLat: 2, MaxLat: 1}
	require.ErrorIs(t, inverted.Validate(), ErrMalformedCluster)

	anonymous := valid
	anonymous.Key = ""
	require.ErrorIs(t, anonymous.Validate(), ErrMalformedCluster)
}

func TestPointEffectiveWeight(t *testing.T) {
	require.Equal(t, 1, Point{}.EffectiveWeight())
	require.Equal(t, 7, Point{Weight: 7}.EffectiveWeight())
}

func TestBoundsIntersects(t *testing.T) {
	a := Bounds{MinLat: 0, MinLng: 0, MaxLat: 1, MaxLng: 1}

	require.True(t, a.Intersects(Bounds{MinLat: 0.5, MinLng: 0.5, MaxLat: 2, MaxLng: 2}))
	require.True(t, a.Intersects(Bounds{MinLat: 1, MinLng: 1, MaxLat: 2, MaxLng: 2}), "touching edges")
	require.False(t, a.Intersects(Bounds{MinLat: 0, MinLng: 1.5, MaxLat: 1, MaxLng: 2}))
	require.False(t, a.Intersects(Bounds{MinLat: -2, MinLng: 0, MaxLat: -1, MaxLng: 1}))
}
