package types

import "time"

// Task is a deferred callback that can be cancelled before it runs.
type Task interface {
	// Stop prevents the callback from running.
	//
	// Returns:
	//   - bool: true if the call stopped the task, false if it already ran or was stopped
	Stop() bool
}

// Scheduler runs one-shot deferred callbacks.
//
// The overlay uses it for marker fade-in and fade-out. The default implementation wraps
// time.AfterFunc; tests inject a manual scheduler to advance time deterministically.
type Scheduler interface {
	// AfterFunc runs fn once after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Task
}
