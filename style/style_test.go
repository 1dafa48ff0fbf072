package style

import (
	"testing"

	"github.com/arloliu/prunecluster/types"
	"github.com/stretchr/testify/require"
)

func TestDefault_ClusterIcon(t *testing.T) {
	tests := []struct {
		population int
		class      string
		size       int
	}{
		{2, "prunecluster-cluster prunecluster-cluster-small", 38},
		{9, "prunecluster-cluster prunecluster-cluster-small", 38},
		{10, "prunecluster-cluster prunecluster-cluster-medium", 40},
		{99, "prunecluster-cluster prunecluster-cluster-medium", 40},
		{100, "prunecluster-cluster prunecluster-cluster-large", 44},
	}

	for _, tt := range tests {
		icon := Default{}.ClusterIcon(types.Cluster{Population: tt.population}, 5)

		require.Equal(t, tt.class, icon.ClassName, "population %d", tt.population)
		require.Equal(t, tt.size, icon.Size, "population %d", tt.population)
	}

	icon := Default{}.ClusterIcon(types.Cluster{Population: 42}, 5)
	require.Equal(t, "42", icon.Label)
}

func TestDefault_PointIcon(t *testing.T) {
	require.Equal(t, "prunecluster-point", Default{}.PointIcon(types.Point{ID: "a"}, 5).ClassName)
	require.Equal(t, "map-point map-category-3", Default{ClassPrefix: "map"}.PointIcon(types.Point{Category: 3}, 5).ClassName)
}

func TestFunc(t *testing.T) {
	f := Func{
		Point: func(p types.Point, zoom int) types.Icon {
			return types.Icon{ClassName: "custom", Label: p.ID}
		},
	}

	require.Equal(t, types.Icon{ClassName: "custom", Label: "a"}, f.PointIcon(types.Point{ID: "a"}, 3))
	require.Equal(t, Default{}.ClusterIcon(types.Cluster{Population: 5}, 3), f.ClusterIcon(types.Cluster{Population: 5}, 3))
}
