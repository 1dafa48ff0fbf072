package prunecluster

import "github.com/arloliu/prunecluster/types"

// Sentinel errors returned by the Overlay.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrSourceRequired is returned when the cluster source is nil.
	ErrSourceRequired = types.ErrSourceRequired

	// ErrSurfaceRequired is returned when Attach is called with a nil surface.
	ErrSurfaceRequired = types.ErrSurfaceRequired

	// ErrAlreadyAttached is returned when Attach is called on an attached overlay.
	ErrAlreadyAttached = types.ErrAlreadyAttached

	// ErrNotAttached is returned by operations that need an attached surface.
	ErrNotAttached = types.ErrNotAttached

	// ErrClusterNotDisplayed is returned by ExpandCluster for a key without a marker.
	ErrClusterNotDisplayed = types.ErrClusterNotDisplayed

	// ErrMalformedCluster is reported when a source returns an unusable cluster.
	ErrMalformedCluster = types.ErrMalformedCluster
)
