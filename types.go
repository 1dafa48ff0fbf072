package prunecluster

import "github.com/arloliu/prunecluster/types"

// Re-export types from the types package.
//
// The types subpackage lets internal packages share definitions without importing the
// root package; the aliases below keep the public API flat (prunecluster.Cluster,
// prunecluster.Surface, ...).
type (
	LatLng      = types.LatLng
	Bounds      = types.Bounds
	Point       = types.Point
	Cluster     = types.Cluster
	Icon        = types.Icon
	PassStats   = types.PassStats
	MarkerState = types.MarkerState
)

// Re-export interfaces from the types package for convenience.
type (
	ClusterSource    = types.ClusterSource
	Surface          = types.Surface
	Marker           = types.Marker
	Styler           = types.Styler
	Scheduler        = types.Scheduler
	Task             = types.Task
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export MarkerState constants from the types package.
const (
	MarkerAbsent    = types.MarkerAbsent
	MarkerCreating  = types.MarkerCreating
	MarkerActive    = types.MarkerActive
	MarkerFadingOut = types.MarkerFadingOut
	MarkerRemoved   = types.MarkerRemoved
)
