package lifecycle

import (
	"sync"
	"time"

	"github.com/arloliu/prunecluster/types"
)

// TimerScheduler is the default types.Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

var _ types.Scheduler = TimerScheduler{}

// AfterFunc runs fn in its own goroutine after d.
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) types.Task {
	return time.AfterFunc(d, fn)
}

// TaskGroup tracks deferred callbacks so they can be cancelled together.
//
// Callbacks run with lock held. After, Cancel, Len and Task.Stop must be called with
// lock held as well, so a callback either runs to completion before a cancel or never
// runs at all.
type TaskGroup struct {
	sched types.Scheduler
	lock  sync.Locker
	tasks map[*task]struct{}
}

// NewTaskGroup creates a task group.
//
// Parameters:
//   - sched: Scheduler that fires the callbacks
//   - lock: Lock shared with the callers of the group
//
// Returns:
//   - *TaskGroup: Empty task group
func NewTaskGroup(sched types.Scheduler, lock sync.Locker) *TaskGroup {
	return &TaskGroup{
		sched: sched,
		lock:  lock,
		tasks: make(map[*task]struct{}),
	}
}

// After schedules fn to run once after d.
func (g *TaskGroup) After(d time.Duration, fn func()) types.Task {
	t := &task{group: g, fn: fn}
	g.tasks[t] = struct{}{}
	t.inner = g.sched.AfterFunc(d, t.run)

	return t
}

// Cancel stops every pending task and returns how many were stopped.
func (g *TaskGroup) Cancel() int {
	n := 0
	for t := range g.tasks {
		if t.Stop() {
			n++
		}
	}

	return n
}

// Len returns the number of pending tasks.
func (g *TaskGroup) Len() int {
	return len(g.tasks)
}

type task struct {
	group *TaskGroup
	inner types.Task
	fn    func()
	done  bool
}

func (t *task) run() {
	t.group.lock.Lock()
	defer t.group.lock.Unlock()

	if t.done {
		return
	}
	t.done = true
	delete(t.group.tasks, t)

	t.fn()
}

func (t *task) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	delete(t.group.tasks, t)
	if t.inner != nil {
		t.inner.Stop()
	}

	return true
}
