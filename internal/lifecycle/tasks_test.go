package lifecycle

import (
	"sync"
	"testing"
	"time"

	pctest "github.com/arloliu/prunecluster/testing"
	"github.com/stretchr/testify/require"
)

func TestTaskGroup(t *testing.T) {
	t.Run("runs callbacks under the lock", func(t *testing.T) {
		var mu sync.Mutex
		sched := pctest.NewScheduler()
		g := NewTaskGroup(sched, &mu)

		ran := 0
		mu.Lock()
		g.After(time.Millisecond, func() {
			require.False(t, mu.TryLock(), "lock must be held by the callback")
			ran++
		})
		require.Equal(t, 1, g.Len())
		mu.Unlock()

		require.Equal(t, 1, sched.Advance(time.Millisecond))
		require.Equal(t, 1, ran)
		require.Zero(t, g.Len())
	})

	t.Run("cancelled tasks never run", func(t *testing.T) {
		var mu sync.Mutex
		sched := pctest.NewScheduler()
		g := NewTaskGroup(sched, &mu)

		ran := 0
		mu.Lock()
		g.After(time.Millisecond, func() { ran++ })
		g.After(time.Second, func() { ran++ })
		require.Equal(t, 2, g.Cancel())
		require.Zero(t, g.Cancel())
		mu.Unlock()

		sched.Advance(time.Minute)
		require.Zero(t, ran)
		require.Zero(t, sched.Pending())
	})

	t.Run("a task stopped after firing reports false", func(t *testing.T) {
		var mu sync.Mutex
		sched := pctest.NewScheduler()
		g := NewTaskGroup(sched, &mu)

		mu.Lock()
		task := g.After(time.Millisecond, func() {})
		mu.Unlock()

		sched.Advance(time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		require.False(t, task.Stop())
	})
}

func TestTimerScheduler(t *testing.T) {
	done := make(chan struct{})
	TimerScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timer did not fire")
	}

	stopped := TimerScheduler{}.AfterFunc(time.Hour, func() {})
	require.True(t, stopped.Stop())
}
