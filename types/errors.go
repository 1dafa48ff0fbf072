package types

import "errors"

// Sentinel errors for the prunecluster library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Components wrap them with context using fmt.Errorf("%s: %w", msg, err).

// Overlay errors - Public API errors returned by Overlay.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceRequired is returned when the cluster source is nil.
	ErrSourceRequired = errors.New("cluster source is required")

	// ErrSurfaceRequired is returned when Attach is called with a nil surface.
	ErrSurfaceRequired = errors.New("surface is required")

	// ErrAlreadyAttached is returned when Attach is called on an attached overlay.
	ErrAlreadyAttached = errors.New("overlay already attached")

	// ErrNotAttached is returned by operations that need an attached surface.
	ErrNotAttached = errors.New("overlay not attached")

	// ErrClusterNotDisplayed is returned when a cluster key has no displayed marker.
	ErrClusterNotDisplayed = errors.New("cluster not displayed")
)

// Source contract errors.
var (
	// ErrMalformedCluster is reported when a source returns a cluster with population
	// below one or inverted bounds.
	ErrMalformedCluster = errors.New("malformed cluster")
)
