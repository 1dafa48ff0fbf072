package testing

import (
	"sort"
	"sync"
	"time"

	"github.com/arloliu/prunecluster/types"
)

// Scheduler is a types.Scheduler driven by a manual clock.
//
// Callbacks never run on their own; Advance runs every callback that falls due, in due
// order, on the calling goroutine.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

var _ types.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a manual scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc registers fn to run once the clock has advanced by d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTask{sched: s, due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)

	return t
}

// Advance moves the clock forward by d and runs every callback that falls due.
//
// Callbacks scheduled by other callbacks run too if they fall due within d.
//
// Returns:
//   - int: Number of callbacks that ran
func (s *Scheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	ran := 0
	for {
		s.mu.Lock()
		t := s.popDue(target)
		if t == nil {
			s.now = target
			s.mu.Unlock()

			return ran
		}
		s.now = t.due
		s.mu.Unlock()

		t.fn()
		ran++
	}
}

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

// Now returns the elapsed manual time.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.now
}

func (s *Scheduler) popDue(target time.Duration) *manualTask {
	if len(s.tasks) == 0 {
		return nil
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}

		return s.tasks[i].seq < s.tasks[j].seq
	})

	t := s.tasks[0]
	if t.due > target {
		return nil
	}
	s.tasks = s.tasks[1:]

	return t
}

func (s *Scheduler) remove(t *manualTask) bool {
	for i, other := range s.tasks {
		if other == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

			return true
		}
	}

	return false
}

type manualTask struct {
	sched *Scheduler
	due   time.Duration
	seq   int
	fn    func()
}

func (t *manualTask) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	return t.sched.remove(t)
}
