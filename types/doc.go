// Package types provides core type definitions and interfaces for the prunecluster library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root prunecluster package and its internal implementations.
//
// Key types:
//   - LatLng, Bounds: Geographic primitives
//   - Point, Cluster: Source data, recomputed every view update
//   - ClusterSource: Clustering engine contract
//   - Surface, Marker: Rendering surface contract
//   - Scheduler, Task: Deferred, cancelable callbacks
//   - Styler: Marker appearance extension point
//   - Logger, MetricsCollector, Hooks: Observability
package types
