// Package prunecluster renders large, changing point sets as clustered map markers with
// as little visual churn as possible.
//
// An Overlay sits between a cluster source (which groups registered points for the
// current viewport) and a rendering surface (which owns marker primitives). Every time the
// view settles, the overlay runs a reconciliation pass: clusters whose markers would
// overlap are folded together, and each remaining cluster reuses the marker it had
// before whenever the data allows. Only genuinely new clusters get new markers, which
// fade in, and only orphaned markers are removed, fading out unless the view jumped.
//
// # Quick Start
//
//	import (
//	    "github.com/arloliu/prunecluster"
//	    "github.com/arloliu/prunecluster/source"
//	)
//
//	cfg := prunecluster.DefaultConfig()
//	src := source.NewRegistry(source.WithCellSize(cfg.ClusterSize))
//	src.RegisterPoints(points...)
//
//	ov, err := prunecluster.NewOverlay(&cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ov.Attach(mapSurface); err != nil {
//	    log.Fatal(err)
//	}
//	defer ov.Detach()
//
// The host forwards its gesture events:
//
//	ov.MoveStart()        // drag or pan begins
//	ov.MoveEnd(false)     // view settled (true after a discontinuous jump)
//	ov.ZoomStart()
//	ov.ZoomEnd()
//
// # Reconciliation
//
// A pass runs four steps over the clusters of the visible area:
//
//	merge → match → rematch → create/remove
//
// Merging is a first-fit sweep in source order. Matching reuses a cluster's previous
// marker when its population class and content still fit. Rematching gives orphaned
// markers at the same zoom a second chance against clusters queued for creation.
// Deferred fade steps run on a Scheduler and are cancelled when the overlay detaches.
//
// # Extension Points
//
//   - ClusterSource: the clustering engine (source.Registry, source.Static or custom)
//   - Surface and Marker: the rendering target
//   - Styler: marker appearance (style.Default, style.Func or custom)
//   - Scheduler: deferred callbacks (time.AfterFunc by default)
//   - Logger, MetricsCollector, Hooks: observability
//
// See the examples/ directory for complete working examples.
package prunecluster
