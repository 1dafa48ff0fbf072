// Package source provides built-in cluster source implementations.
//
// Cluster sources own the registered points and turn them into the per-view cluster
// list the overlay reconciles. The package includes:
//
//   - Registry: concurrent point registry producing one cluster per point
//   - Static: fixed cluster list, useful for tests and precomputed clusterings
//   - Compose: helper to build a multi-point cluster the way the overlay expects
//
// Custom sources (grid or tree based engines) can be implemented by satisfying the
// types.ClusterSource interface.
package source
