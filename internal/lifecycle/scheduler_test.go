package lifecycle

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/arloliu/prunecluster/internal/reconcile"
	pctest "github.com/arloliu/prunecluster/testing"
	"github.com/arloliu/prunecluster/types"
	"github.com/stretchr/testify/require"
)

type labelStyler struct{}

func (labelStyler) ClusterIcon(c types.Cluster, _ int) types.Icon {
	return types.Icon{ClassName: "cluster", Label: strconv.Itoa(c.Population)}
}

func (labelStyler) PointIcon(p types.Point, _ int) types.Icon {
	return types.Icon{ClassName: "point", Label: p.ID}
}

type fixture struct {
	mu      sync.Mutex
	surface *pctest.Surface
	sched   *pctest.Scheduler
	tasks   *TaskGroup
	life    *Scheduler
	records *reconcile.Records
}

func newFixture() *fixture {
	f := &fixture{
		surface: pctest.NewSurface(types.LatLng{}, 5),
		sched:   pctest.NewScheduler(),
		records: reconcile.NewRecords(),
	}
	f.tasks = NewTaskGroup(f.sched, &f.mu)
	f.life = New(Options{
		Surface: f.surface,
		Styler:  labelStyler{},
		Tasks:   f.tasks,
		FadeIn:  time.Millisecond,
		FadeOut: 300 * time.Millisecond,
	})

	return f
}

func (f *fixture) create(keys ...string) []*reconcile.Visual {
	candidates := make([]reconcile.Candidate, 0, len(keys))
	for i, key := range keys {
		pt := &types.Point{ID: key, Position: types.LatLng{Lat: float64(i), Lng: float64(i)}}
		c := &types.Cluster{Key: key, Population: 1, Position: pt.Position, Point: pt, Hash: uint64(i + 1)}
		rec := f.records.Get(key)
		rec.Position = c.Position
		rec.HasPosition = true
		candidates = append(candidates, reconcile.Candidate{Cluster: c, Record: rec})
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.life.Create(5, candidates)
}

func (f *fixture) remove(visuals []*reconcile.Visual, hard bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range visuals {
		v.Release()
	}
	f.life.Remove(visuals, hard)
}

func TestScheduler_Create(t *testing.T) {
	f := newFixture()
	created := f.create("a", "b")

	require.Len(t, created, 2)
	for i, v := range created {
		m := f.surface.Marker(v.Marker.ID())
		require.True(t, m.Attached())
		require.Zero(t, m.Opacity())
		require.True(t, m.Suppressed())
		require.Equal(t, types.MarkerCreating, v.State)
		require.Equal(t, 5, v.Zoom)
		require.Equal(t, uint64(i+1), v.Hash)
		require.Equal(t, 1, v.Population)
		require.Same(t, v, f.records.Get(v.Owner.Key).Visual)
		require.Equal(t, "point", m.Icon().ClassName)
	}

	require.Equal(t, 1, f.sched.Advance(time.Millisecond))
	for _, v := range created {
		m := f.surface.Marker(v.Marker.ID())
		require.Equal(t, 1.0, m.Opacity())
		require.False(t, m.Suppressed())
		require.Equal(t, types.MarkerActive, v.State)
	}
}

func TestScheduler_CreateNothing(t *testing.T) {
	f := newFixture()

	require.Empty(t, f.create())
	require.Zero(t, f.sched.Pending())
}

func TestScheduler_SoftRemove(t *testing.T) {
	f := newFixture()
	created := f.create("a")
	f.sched.Advance(time.Millisecond)

	f.remove(created, false)
	m := f.surface.Marker(created[0].Marker.ID())

	require.True(t, m.Attached())
	require.Zero(t, m.Opacity())
	require.Equal(t, types.MarkerFadingOut, created[0].State)
	require.Equal(t, 1, f.life.Fading())

	f.sched.Advance(299 * time.Millisecond)
	require.True(t, m.Attached())

	f.sched.Advance(time.Millisecond)
	require.False(t, m.Attached())
	require.Equal(t, types.MarkerRemoved, created[0].State)
	require.Zero(t, f.life.Fading())
}

func TestScheduler_HardRemove(t *testing.T) {
	f := newFixture()
	created := f.create("a")
	f.sched.Advance(time.Millisecond)
	f.surface.ResetOps()

	f.remove(created, true)

	require.False(t, f.surface.Marker(created[0].Marker.ID()).Attached())
	require.Equal(t, types.MarkerRemoved, created[0].State)
	require.Empty(t, f.surface.OpsOf(pctest.OpOpacity))
	require.Zero(t, f.sched.Pending())
}

func TestScheduler_RemoveBeforeFadeIn(t *testing.T) {
	f := newFixture()
	created := f.create("a")
	f.remove(created, false)

	f.sched.Advance(time.Millisecond)
	m := f.surface.Marker(created[0].Marker.ID())
	require.Zero(t, m.Opacity(), "fade-in must not revive a fading marker")
	require.Equal(t, types.MarkerFadingOut, created[0].State)

	f.sched.Advance(time.Second)
	require.False(t, m.Attached())
}

func TestScheduler_Clear(t *testing.T) {
	f := newFixture()
	displayed := f.create("a", "b")
	fading := f.create("c")
	f.remove(fading, false)

	f.mu.Lock()
	f.life.Clear(displayed)
	require.Zero(t, f.tasks.Len())
	f.mu.Unlock()

	require.Empty(t, f.surface.Attached())
	require.Zero(t, f.sched.Advance(time.Minute), "cancelled tasks must not fire")
	for _, v := range append(displayed, fading...) {
		require.Equal(t, types.MarkerRemoved, v.State)
		require.Nil(t, v.Owner)
	}
	require.Nil(t, f.records.Get("a").Visual)
}
