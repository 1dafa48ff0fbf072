package source

import (
	"testing"

	"github.com/arloliu/prunecluster/internal/hash"
	"github.com/arloliu/prunecluster/types"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	area := types.Bounds{MinLat: 0, MinLng: 0, MaxLat: 2, MaxLng: 2}

	c := Compose("depot", area,
		types.Point{ID: "a", Position: types.LatLng{Lat: 0, Lng: 0}, Category: 1},
		types.Point{ID: "b", Position: types.LatLng{Lat: 1, Lng: 2}, Category: 1, Weight: 3},
		types.Point{ID: "c", Position: types.LatLng{Lat: 2, Lng: 1}},
	)

	require.Equal(t, "depot", c.Key)
	require.Equal(t, 3, c.Population)
	require.Equal(t, types.LatLng{Lat: 1, Lng: 1}, c.Position)
	require.Equal(t, hash.Of("c", "b", "a"), c.Hash)
	require.Equal(t, "c", c.Point.ID)
	require.Equal(t, 5, c.TotalWeight)
	require.Equal(t, map[int]int{1: 2}, c.Categories)
	require.Equal(t, area, c.Bounds)
	require.NoError(t, c.Validate())

	empty := Compose("none", area)
	require.ErrorIs(t, empty.Validate(), types.ErrMalformedCluster)
}

func TestStatic(t *testing.T) {
	east := Compose("east", types.Bounds{MinLat: 0, MinLng: 10, MaxLat: 1, MaxLng: 11},
		types.Point{ID: "e", Position: types.LatLng{Lat: 0.5, Lng: 10.5}})
	west := Compose("west", types.Bounds{MinLat: 0, MinLng: -11, MaxLat: 1, MaxLng: -10},
		types.Point{ID: "w", Position: types.LatLng{Lat: 0.5, Lng: -10.5}})

	s := NewStatic([]types.Cluster{east, west})

	all := s.Clusters(world, 5)
	require.Len(t, all, 2)
	require.Equal(t, "west", all[0].Key, "clusters are served in sweep order")

	view := types.Bounds{MinLat: -1, MinLng: 0, MaxLat: 2, MaxLng: 20}
	visible := s.Clusters(view, 5)
	require.Len(t, visible, 1)
	require.Equal(t, "east", visible[0].Key)

	visible[0].Population = 99
	require.Equal(t, 1, s.Clusters(view, 5)[0].Population, "callers get copies")

	s.Update(nil)
	require.Empty(t, s.Clusters(world, 5))

	s.RegisterPoints(types.Point{ID: "e", Position: types.LatLng{Lat: 0.5, Lng: 10.5}})
	b, ok := s.GlobalBounds()
	require.True(t, ok)
	require.Equal(t, 10.5, b.MinLng)
}
