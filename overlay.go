package prunecluster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arloliu/prunecluster/internal/hooks"
	"github.com/arloliu/prunecluster/internal/lifecycle"
	"github.com/arloliu/prunecluster/internal/logger"
	"github.com/arloliu/prunecluster/internal/metrics"
	"github.com/arloliu/prunecluster/internal/reconcile"
	"github.com/arloliu/prunecluster/style"
	"github.com/google/uuid"
)

// Overlay keeps the markers of a surface in sync with a cluster source.
//
// All entry points (gesture notifications, passes, attach and detach, deferred fade
// callbacks) are serialized by one lock. Hooks run after the lock is released.
type Overlay struct {
	id        string
	cfg       Config
	source    ClusterSource
	styler    Styler
	scheduler Scheduler
	hooks     *Hooks
	metrics   MetricsCollector
	logger    Logger

	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	surface   Surface
	tasks     *lifecycle.TaskGroup
	life      *lifecycle.Scheduler
	records   *reconcile.Records
	displayed []*reconcile.Visual
	moving    bool
	zooming   bool
	hard      bool
	stats     PassStats
}

// DisplayedMarker describes one marker of the displayed set.
type DisplayedMarker struct {
	// Key is the identity of the cluster the marker stands for.
	Key string

	// MarkerID is the surface marker ID.
	MarkerID uint64

	// Population is the number of points the marker stands for.
	Population int

	// Hash is the content hash of the represented cluster.
	Hash uint64

	// Position is where the marker was last placed.
	Position LatLng

	// Zoom is the surface zoom of the pass that last placed the marker.
	Zoom int

	// State is the lifecycle state of the marker.
	State MarkerState
}

// NewOverlay creates an overlay for the given source.
//
// The overlay does nothing until it is attached to a surface.
//
// Parameters:
//   - cfg: Configuration (defaults are filled in place)
//   - source: Cluster source
//   - opts: Optional dependencies (logger, metrics, hooks, scheduler, styler)
//
// Returns:
//   - *Overlay: Detached overlay
//   - error: ErrInvalidConfig or ErrSourceRequired
//
// Example:
//
//	cfg := prunecluster.DefaultConfig()
//	src := source.NewRegistry(source.WithCellSize(cfg.ClusterSize))
//	ov, err := prunecluster.NewOverlay(&cfg, src, prunecluster.WithLogger(log))
//	if err != nil { /* handle */ }
//	_ = ov.Attach(surface)
func NewOverlay(cfg *Config, source ClusterSource, opts ...Option) (*Overlay, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if source == nil {
		return nil, ErrSourceRequired
	}

	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &overlayOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	scheduler := options.scheduler
	if scheduler == nil {
		scheduler = lifecycle.TimerScheduler{}
	}

	styler := options.styler
	if styler == nil {
		styler = style.Default{}
	}

	return &Overlay{
		id:        uuid.New().String()[:8],
		cfg:       *cfg,
		source:    source,
		styler:    styler,
		scheduler: scheduler,
		hooks:     hooks.Fill(options.hooks),
		metrics:   metricsCollector,
		logger:    loggerInstance,
		records:   reconcile.NewRecords(),
	}, nil
}

// ID returns the short random identifier used in log entries of this overlay.
func (o *Overlay) ID() string {
	return o.id
}

// Attach binds the overlay to a surface and runs the first pass.
//
// Parameters:
//   - surface: Rendering surface
//
// Returns:
//   - error: ErrSurfaceRequired or ErrAlreadyAttached
func (o *Overlay) Attach(surface Surface) error {
	if surface == nil {
		return ErrSurfaceRequired
	}

	stats, ran, err := o.attach(surface)
	if err != nil {
		return err
	}
	if ran {
		o.passCompleted(stats)
	}

	return nil
}

func (o *Overlay) attach(surface Surface) (PassStats, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.surface != nil {
		return PassStats{}, false, ErrAlreadyAttached
	}

	o.ctx, o.cancel = context.WithCancel(context.Background())
	o.surface = surface
	o.tasks = lifecycle.NewTaskGroup(o.scheduler, &o.mu)
	o.life = lifecycle.New(lifecycle.Options{
		Surface: surface,
		Styler:  o.styler,
		Tasks:   o.tasks,
		FadeIn:  o.cfg.FadeInDelay,
		FadeOut: o.cfg.FadeOutDelay,
	})
	o.moving, o.zooming, o.hard = false, false, false

	o.logger.Info("overlay attached", "overlay", o.id, "zoom", surface.Zoom())

	return o.processLocked()
}

// Detach removes every marker from the surface and forgets all per-cluster state.
//
// Pending fade callbacks are cancelled and never touch the surface afterwards.
//
// Returns:
//   - error: ErrNotAttached if the overlay is not attached
func (o *Overlay) Detach() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.surface == nil {
		return ErrNotAttached
	}

	removed := len(o.displayed)
	o.life.Clear(o.displayed)
	o.displayed = nil
	o.records.Reset()
	o.source.Reset()
	o.cancel()
	o.surface = nil
	o.tasks = nil
	o.life = nil
	o.stats = PassStats{}
	o.metrics.RecordDisplayedMarkers(0)

	o.logger.Info("overlay detached", "overlay", o.id, "removed", removed)

	return nil
}

// MoveStart suspends passes until MoveEnd.
func (o *Overlay) MoveStart() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.moving = true
}

// MoveEnd ends a move and runs a pass.
//
// Parameters:
//   - hard: true when the view jumped discontinuously; markers removed by the next pass
//     that runs are detached at once instead of fading out
func (o *Overlay) MoveEnd(hard bool) {
	o.mu.Lock()
	o.moving = false
	o.hard = hard
	stats, ran := o.processLocked()
	o.mu.Unlock()

	if ran {
		o.passCompleted(stats)
	}
}

// ZoomStart suspends passes until ZoomEnd.
func (o *Overlay) ZoomStart() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.zooming = true
}

// ZoomEnd ends a zoom and runs a pass.
func (o *Overlay) ZoomEnd() {
	o.mu.Lock()
	o.zooming = false
	stats, ran := o.processLocked()
	o.mu.Unlock()

	if ran {
		o.passCompleted(stats)
	}
}

// ProcessView runs a reconciliation pass for the current view.
//
// It is a silent no-op while detached or while a move or zoom is in progress. Hosts call
// it after changing the registered points.
func (o *Overlay) ProcessView() {
	stats, ran := o.process()
	if ran {
		o.passCompleted(stats)
	}
}

func (o *Overlay) process() (PassStats, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.processLocked()
}

func (o *Overlay) processLocked() (PassStats, bool) {
	switch {
	case o.surface == nil:
		o.metrics.RecordSkippedPass(metrics.SkipDetached)
		return PassStats{}, false
	case o.zooming:
		o.metrics.RecordSkippedPass(metrics.SkipZooming)
		return PassStats{}, false
	case o.moving:
		o.metrics.RecordSkippedPass(metrics.SkipMoving)
		return PassStats{}, false
	}

	start := time.Now()
	zoom := o.surface.Zoom()
	clusters := o.source.Clusters(o.surface.Bounds(), zoom)

	pass := reconcile.NewPass(reconcile.Options{
		Zoom:        zoom,
		MarginRatio: o.cfg.MarginRatio(),
		Records:     o.records,
		Styler:      o.styler,
		Logger:      o.logger,
		Strict:      o.cfg.StrictClusters,
	}, clusters, o.displayed)
	pass.Run()

	created := o.life.Create(zoom, pass.Creation())
	removal := pass.Removal()
	o.life.Remove(removal, o.hard)

	next := make([]*reconcile.Visual, 0, len(pass.Next())+len(created))
	next = append(next, pass.Next()...)
	next = append(next, created...)
	o.displayed = next
	o.records.Prune()

	stats := pass.Stats()
	stats.Created = len(created)
	stats.Removed = len(removal)
	stats.Displayed = len(next)
	stats.Hard = o.hard
	stats.Duration = time.Since(start)
	o.stats = stats
	o.hard = false

	o.metrics.RecordPassDuration(stats.Duration.Seconds())
	o.metrics.RecordCollisions(stats.Collided)
	o.metrics.RecordMarkerChanges(stats.Created, stats.Reused+stats.Rematched, stats.Removed)
	o.metrics.RecordRematches(stats.Rematched)
	o.metrics.RecordDisplayedMarkers(stats.Displayed)

	o.logger.Debug("pass completed",
		"overlay", o.id,
		"zoom", zoom,
		"clusters", stats.Clusters,
		"collided", stats.Collided,
		"reused", stats.Reused,
		"rematched", stats.Rematched,
		"created", stats.Created,
		"removed", stats.Removed,
		"hard", stats.Hard,
	)

	return stats, true
}

// FitBounds frames every registered point on the surface.
//
// Nothing happens when no point is registered.
//
// Returns:
//   - error: ErrNotAttached if the overlay is not attached
func (o *Overlay) FitBounds() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.surface == nil {
		return ErrNotAttached
	}

	b, ok := o.source.GlobalBounds()
	if !ok {
		return nil
	}
	o.surface.FitBounds(b, o.cfg.EffectivePadding())

	return nil
}

// ExpandCluster zooms in on the points of a displayed cluster.
//
// The points inside the cluster area are framed on the surface. When framing them
// would not change the zoom (the points overlap at every zoom the surface offers),
// the view is centered on the marker instead and Hooks.OnOverlappingMarkers receives
// the points.
//
// Parameters:
//   - key: Identity of a displayed cluster
//
// Returns:
//   - error: ErrNotAttached or ErrClusterNotDisplayed
func (o *Overlay) ExpandCluster(key string) error {
	points, center, overlapping, err := o.expand(key)
	if err != nil {
		return err
	}

	if overlapping {
		if herr := o.hooks.OnOverlappingMarkers(o.hookContext(), points, center); herr != nil {
			o.hookFailed("overlapping markers hook error", herr)
		}
	}

	return nil
}

func (o *Overlay) expand(key string) ([]Point, LatLng, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.surface == nil {
		return nil, LatLng{}, false, ErrNotAttached
	}

	var target *reconcile.Visual
	for _, v := range o.displayed {
		if v.Owner != nil && v.Owner.Key == key {
			target = v
			break
		}
	}
	if target == nil {
		return nil, LatLng{}, false, fmt.Errorf("%w: %q", ErrClusterNotDisplayed, key)
	}

	points := o.source.PointsInArea(target.Bounds)
	b, ok := o.source.BoundsOf(points)
	if !ok {
		return nil, LatLng{}, false, nil
	}

	before := o.surface.Zoom()
	after := o.surface.BoundsZoom(b, o.cfg.EffectivePadding())
	if after == before {
		o.surface.SetView(target.Position, after)
		return points, target.Position, true, nil
	}
	o.surface.FitBounds(b, o.cfg.EffectivePadding())

	return points, target.Position, false, nil
}

// RegisterPoints adds points to the source. Call ProcessView to display them.
func (o *Overlay) RegisterPoints(points ...Point) {
	o.source.RegisterPoints(points...)
}

// RemovePoints removes points from the source. Call ProcessView to update the view.
func (o *Overlay) RemovePoints(points ...Point) {
	o.source.RemovePoints(points...)
}

// Markers returns every registered point.
func (o *Overlay) Markers() []Point {
	return o.source.Points()
}

// DisplayedCount returns the size of the displayed set.
func (o *Overlay) DisplayedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.displayed)
}

// Displayed returns a snapshot of the displayed set in display order.
func (o *Overlay) Displayed() []DisplayedMarker {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]DisplayedMarker, 0, len(o.displayed))
	for _, v := range o.displayed {
		dm := DisplayedMarker{
			MarkerID:   v.Marker.ID(),
			Population: v.Population,
			Hash:       v.Hash,
			Position:   v.Position,
			Zoom:       v.Zoom,
			State:      v.State,
		}
		if v.Owner != nil {
			dm.Key = v.Owner.Key
		}
		out = append(out, dm)
	}

	return out
}

// Stats returns the statistics of the last pass that ran.
func (o *Overlay) Stats() PassStats {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.stats
}

// Attached reports whether the overlay is bound to a surface.
func (o *Overlay) Attached() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.surface != nil
}

func (o *Overlay) passCompleted(stats PassStats) {
	if err := o.hooks.OnPassCompleted(o.hookContext(), stats); err != nil {
		o.hookFailed("pass completed hook error", err)
	}
}

func (o *Overlay) hookFailed(msg string, err error) {
	o.logger.Error(msg, "overlay", o.id, "error", err)
	if herr := o.hooks.OnError(o.hookContext(), err); herr != nil {
		o.logger.Error("error hook failed", "overlay", o.id, "error", herr)
	}
}

func (o *Overlay) hookContext() context.Context {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ctx == nil {
		return context.Background()
	}

	return o.ctx
}
