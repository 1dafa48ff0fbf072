// Package hooks provides the default Hooks of the overlay.
package hooks

import (
	"context"

	"github.com/arloliu/prunecluster/types"
)

// NopHooks implements every hook as a no-op, so callers never nil-check.
type NopHooks struct{}

var (
	_ func(context.Context, types.PassStats) error            = (*NopHooks)(nil).OnPassCompleted
	_ func(context.Context, []types.Point, types.LatLng) error = (*NopHooks)(nil).OnOverlappingMarkers
	_ func(context.Context, error) error                       = (*NopHooks)(nil).OnError
)

// NewNop creates hooks that do nothing.
//
// Returns:
//   - *types.Hooks: Hooks with every callback set
func NewNop() *types.Hooks {
	h := &NopHooks{}

	return &types.Hooks{
		OnPassCompleted:      h.OnPassCompleted,
		OnOverlappingMarkers: h.OnOverlappingMarkers,
		OnError:              h.OnError,
	}
}

// Fill returns a copy of h where every missing callback is a no-op.
//
// Parameters:
//   - h: User hooks, may be nil or partially set
//
// Returns:
//   - *types.Hooks: Hooks with every callback set
func Fill(h *types.Hooks) *types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}

	if h.OnPassCompleted != nil {
		out.OnPassCompleted = h.OnPassCompleted
	}
	if h.OnOverlappingMarkers != nil {
		out.OnOverlappingMarkers = h.OnOverlappingMarkers
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

func (h *NopHooks) OnPassCompleted(_ context.Context, _ types.PassStats) error {
	return nil
}

func (h *NopHooks) OnOverlappingMarkers(_ context.Context, _ []types.Point, _ types.LatLng) error {
	return nil
}

func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
