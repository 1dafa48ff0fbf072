// Package lifecycle creates and removes markers on a surface with deferred fade
// transitions.
//
// New markers are attached transparent with their entrance transition suppressed,
// then faded in by a deferred task. Removed markers either leave the surface at once
// (after a discontinuous view jump) or fade out and are detached by a deferred task.
// Every deferred task belongs to a TaskGroup so detaching the overlay cancels them.
package lifecycle

import (
	"time"

	"github.com/arloliu/prunecluster/internal/reconcile"
	"github.com/arloliu/prunecluster/types"
)

// Options configures a Scheduler.
type Options struct {
	Surface types.Surface
	Styler  types.Styler
	Tasks   *TaskGroup

	// FadeIn is the delay before created markers become visible.
	FadeIn time.Duration

	// FadeOut is the delay before soft-removed markers are detached.
	FadeOut time.Duration
}

// Scheduler applies the creation and removal decisions of a pass.
//
// Scheduler is not safe for concurrent use; it shares the lock of its TaskGroup.
type Scheduler struct {
	surface types.Surface
	styler  types.Styler
	tasks   *TaskGroup
	fadeIn  time.Duration
	fadeOut time.Duration

	fading map[*reconcile.Visual]struct{}
}

// New creates a lifecycle scheduler.
func New(opts Options) *Scheduler {
	return &Scheduler{
		surface: opts.Surface,
		styler:  opts.Styler,
		tasks:   opts.Tasks,
		fadeIn:  opts.FadeIn,
		fadeOut: opts.FadeOut,
		fading:  make(map[*reconcile.Visual]struct{}),
	}
}

// Create places one marker per candidate and schedules their fade-in.
//
// Parameters:
//   - zoom: Zoom of the pass
//   - candidates: Creation queue of the pass
//
// Returns:
//   - []*reconcile.Visual: Created markers, in queue order
func (s *Scheduler) Create(zoom int, candidates []reconcile.Candidate) []*reconcile.Visual {
	if len(candidates) == 0 {
		return nil
	}

	created := make([]*reconcile.Visual, 0, len(candidates))
	for _, cand := range candidates {
		pos := cand.Record.Position
		m := s.surface.CreateMarker(pos, reconcile.Icon(s.styler, cand.Cluster, zoom))
		m.SetEntranceSuppressed(true)
		m.SetOpacity(0)
		s.surface.Attach(m)

		v := &reconcile.Visual{Marker: m, State: types.MarkerCreating}
		v.Claim(cand.Record, cand.Cluster, zoom)
		v.Position = pos
		created = append(created, v)
	}

	s.tasks.After(s.fadeIn, func() {
		for _, v := range created {
			// markers removed before the fade-in stay transparent
			if v.State != types.MarkerCreating {
				continue
			}
			v.Marker.SetEntranceSuppressed(false)
			v.Marker.SetOpacity(1)
			v.State = types.MarkerActive
		}
	})

	return created
}

// Remove takes markers off the surface.
//
// A hard removal detaches at once without touching opacity. Otherwise markers turn
// transparent now and are detached after the fade-out delay.
func (s *Scheduler) Remove(visuals []*reconcile.Visual, hard bool) {
	if len(visuals) == 0 {
		return
	}

	if hard {
		for _, v := range visuals {
			s.detach(v)
		}

		return
	}

	batch := make([]*reconcile.Visual, 0, len(visuals))
	for _, v := range visuals {
		v.Marker.SetOpacity(0)
		v.State = types.MarkerFadingOut
		s.fading[v] = struct{}{}
		batch = append(batch, v)
	}

	s.tasks.After(s.fadeOut, func() {
		for _, v := range batch {
			if v.State == types.MarkerFadingOut {
				s.detach(v)
			}
		}
	})
}

// Clear cancels every pending task and detaches the given markers together with any
// marker still fading out.
func (s *Scheduler) Clear(displayed []*reconcile.Visual) {
	s.tasks.Cancel()

	for _, v := range displayed {
		v.Release()
		s.detach(v)
	}
	for v := range s.fading {
		s.detach(v)
	}
}

// Fading returns the number of markers waiting to be detached.
func (s *Scheduler) Fading() int {
	return len(s.fading)
}

func (s *Scheduler) detach(v *reconcile.Visual) {
	delete(s.fading, v)
	if v.State == types.MarkerRemoved {
		return
	}
	s.surface.Detach(v.Marker)
	v.State = types.MarkerRemoved
}
