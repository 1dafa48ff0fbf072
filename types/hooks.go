package types

import "context"

// Hooks defines callbacks for overlay events.
//
// All hooks are optional. They are invoked synchronously after the overlay has released
// its lock, so a hook may call back into the overlay (for example to request another
// FitBounds). Hook errors are logged and never change the outcome of a pass.
//
// Example:
//
//	hooks := &prunecluster.Hooks{
//	    OnPassCompleted: func(ctx context.Context, stats prunecluster.PassStats) error {
//	        log.Printf("created=%d removed=%d", stats.Created, stats.Removed)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnPassCompleted is called after every reconciliation pass that ran.
	OnPassCompleted func(ctx context.Context, stats PassStats) error

	// OnOverlappingMarkers is called by ExpandCluster when the points of a cluster cannot
	// be separated by zooming in any further.
	// points: the points under the cluster; center: the cluster marker position
	OnOverlappingMarkers func(ctx context.Context, points []Point, center LatLng) error

	// OnError is called when a recoverable error occurs.
	OnError func(ctx context.Context, err error) error
}
