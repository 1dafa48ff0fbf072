package prunecluster

// Option configures an Overlay with optional dependencies.
type Option func(*overlayOptions)

// overlayOptions holds optional Overlay configuration.
type overlayOptions struct {
	hooks     *Hooks
	metrics   MetricsCollector
	logger    Logger
	scheduler Scheduler
	styler    Styler
}

// WithHooks sets event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions (missing callbacks are no-ops)
//
// Returns:
//   - Option: Functional option for NewOverlay
//
// Example:
//
//	hooks := &prunecluster.Hooks{
//	    OnOverlappingMarkers: func(ctx context.Context, points []prunecluster.Point, center prunecluster.LatLng) error {
//	        return showSpiderfy(points, center)
//	    },
//	}
//	ov, err := prunecluster.NewOverlay(&cfg, src, prunecluster.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *overlayOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewOverlay
//
// Example:
//
//	m := prunecluster.NewPrometheusMetrics(prometheus.DefaultRegisterer, "maps")
//	ov, err := prunecluster.NewOverlay(&cfg, src, prunecluster.WithMetrics(m))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *overlayOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewOverlay
//
// Example:
//
//	ov, err := prunecluster.NewOverlay(&cfg, src,
//	    prunecluster.WithLogger(prunecluster.NewSlogLogger(slog.Default())))
func WithLogger(logger Logger) Option {
	return func(o *overlayOptions) {
		o.logger = logger
	}
}

// WithScheduler sets the scheduler running deferred fade steps.
//
// The default runs callbacks through time.AfterFunc. Tests usually inject the manual
// scheduler from the testing package to step through fades deterministically.
//
// Parameters:
//   - scheduler: Scheduler implementation
//
// Returns:
//   - Option: Functional option for NewOverlay
func WithScheduler(scheduler Scheduler) Option {
	return func(o *overlayOptions) {
		o.scheduler = scheduler
	}
}

// WithStyler sets the marker styler.
//
// Parameters:
//   - styler: Styler implementation (style.Default if not set)
//
// Returns:
//   - Option: Functional option for NewOverlay
//
// Example:
//
//	ov, err := prunecluster.NewOverlay(&cfg, src, prunecluster.WithStyler(style.Func{
//	    Point: func(p prunecluster.Point, _ int) prunecluster.Icon {
//	        return prunecluster.Icon{ClassName: "vehicle", Label: p.ID}
//	    },
//	}))
func WithStyler(styler Styler) Option {
	return func(o *overlayOptions) {
		o.styler = styler
	}
}
