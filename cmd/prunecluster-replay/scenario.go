package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arloliu/prunecluster"
	"github.com/arloliu/prunecluster/source"
	pctest "github.com/arloliu/prunecluster/testing"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of view and point changes.
type Scenario struct {
	Config prunecluster.Config  `yaml:"config"`
	View   View                 `yaml:"view"`
	Points []prunecluster.Point `yaml:"points"`
	Steps  []Step               `yaml:"steps"`
}

// View is the initial surface viewport.
type View struct {
	Center prunecluster.LatLng `yaml:"center"`
	Zoom   int                 `yaml:"zoom"`
	Width  int                 `yaml:"width"`
	Height int                 `yaml:"height"`
}

// Step is one user interaction. Pan, Zoom and Hard turn it into a gesture; otherwise
// the overlay is asked to process the view after the point changes.
type Step struct {
	Name     string               `yaml:"name"`
	Register []prunecluster.Point `yaml:"register"`
	Remove   []string             `yaml:"remove"`
	Pan      *prunecluster.LatLng `yaml:"pan"`
	Zoom     *int                 `yaml:"zoom"`
	Hard     bool                 `yaml:"hard"`
	Fit      bool                 `yaml:"fit"`
	Expand   string               `yaml:"expand"`

	// Advance moves the clock forward after the step so fades complete.
	Advance time.Duration `yaml:"advance"`
}

// ParseScenario decodes a YAML scenario. Missing config fields take their defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	sc := &Scenario{Config: prunecluster.DefaultConfig()}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if sc.View.Zoom < 0 {
		return nil, fmt.Errorf("invalid view zoom %d", sc.View.Zoom)
	}

	return sc, nil
}

// Replay runs sc and writes the surface operations of every step to w.
func Replay(w io.Writer, sc *Scenario, log prunecluster.Logger, metrics prunecluster.MetricsCollector) error {
	cfg := sc.Config
	reg := source.NewRegistry(source.WithCellSize(cfg.ClusterSize))
	reg.RegisterPoints(sc.Points...)

	var surfaceOpts []pctest.SurfaceOption
	if sc.View.Width > 0 && sc.View.Height > 0 {
		surfaceOpts = append(surfaceOpts, pctest.WithViewport(sc.View.Width, sc.View.Height))
	}
	surface := pctest.NewSurface(sc.View.Center, sc.View.Zoom, surfaceOpts...)
	sched := pctest.NewScheduler()

	hooks := &prunecluster.Hooks{
		OnOverlappingMarkers: func(_ context.Context, points []prunecluster.Point, center prunecluster.LatLng) error {
			_, err := fmt.Fprintf(w, "  overlapping %d points at %.5f,%.5f\n", len(points), center.Lat, center.Lng)
			return err
		},
	}

	ov, err := prunecluster.NewOverlay(&cfg, reg,
		prunecluster.WithScheduler(sched),
		prunecluster.WithLogger(log),
		prunecluster.WithMetrics(metrics),
		prunecluster.WithHooks(hooks),
	)
	if err != nil {
		return err
	}

	if err := ov.Attach(surface); err != nil {
		return err
	}
	sched.Advance(cfg.FadeInDelay)
	flush(w, "attach", surface, ov)

	for i, step := range sc.Steps {
		if err := apply(ov, reg, surface, step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		sched.Advance(step.Advance)

		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}
		flush(w, name, surface, ov)
	}

	return ov.Detach()
}

func apply(ov *prunecluster.Overlay, reg *source.Registry, surface *pctest.Surface, step Step) error {
	zooming := step.Zoom != nil
	moving := step.Pan != nil || step.Hard

	if zooming {
		ov.ZoomStart()
	}
	if moving {
		ov.MoveStart()
	}

	reg.RegisterPoints(step.Register...)
	for _, id := range step.Remove {
		reg.RemovePoints(prunecluster.Point{ID: id})
	}
	if step.Pan != nil {
		surface.Pan(*step.Pan)
	}
	if zooming {
		surface.SetZoom(*step.Zoom)
	}

	switch {
	case moving:
		ov.MoveEnd(step.Hard)
		if zooming {
			ov.ZoomEnd()
		}
	case zooming:
		ov.ZoomEnd()
	default:
		ov.ProcessView()
	}

	if step.Fit {
		if err := ov.FitBounds(); err != nil {
			return err
		}
	}
	if step.Expand != "" {
		if err := ov.ExpandCluster(step.Expand); err != nil {
			return err
		}
	}

	return nil
}

func flush(w io.Writer, name string, surface *pctest.Surface, ov *prunecluster.Overlay) {
	_, _ = fmt.Fprintf(w, "== %s\n", name)
	for _, op := range surface.Ops() {
		_, _ = fmt.Fprintf(w, "  %s\n", op)
	}
	surface.ResetOps()

	stats := ov.Stats()
	_, _ = fmt.Fprintf(w, "  zoom=%d displayed=%d created=%d reused=%d rematched=%d removed=%d collided=%d\n",
		stats.Zoom, stats.Displayed, stats.Created, stats.Reused, stats.Rematched, stats.Removed, stats.Collided)
}
