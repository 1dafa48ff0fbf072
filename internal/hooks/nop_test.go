package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/arloliu/prunecluster/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()
	ctx := context.Background()

	require.NoError(t, hooks.OnPassCompleted(ctx, types.PassStats{Created: 1}))
	require.NoError(t, hooks.OnOverlappingMarkers(ctx, []types.Point{{ID: "p1"}}, types.LatLng{}))
	require.NoError(t, hooks.OnError(ctx, context.Canceled))
}

func TestFill(t *testing.T) {
	t.Run("nil hooks", func(t *testing.T) {
		hooks := Fill(nil)

		require.NotNil(t, hooks.OnPassCompleted)
		require.NotNil(t, hooks.OnOverlappingMarkers)
		require.NotNil(t, hooks.OnError)
	})

	t.Run("keeps user callbacks", func(t *testing.T) {
		errBoom := errors.New("boom")
		user := &types.Hooks{
			OnError: func(context.Context, error) error { return errBoom },
		}

		hooks := Fill(user)

		require.ErrorIs(t, hooks.OnError(context.Background(), nil), errBoom)
		require.NoError(t, hooks.OnPassCompleted(context.Background(), types.PassStats{}))
		require.Nil(t, user.OnPassCompleted, "user hooks must not be modified")
	})
}
