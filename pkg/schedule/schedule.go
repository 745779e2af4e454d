// Package schedule provides the timer abstraction behind debounce
// windows, toast lifecycles, and alert auto-hide.
//
// Features never touch the time package directly; they take a Scheduler
// so tests can drive timers with a Manual clock instead of waiting on
// wall time. The production Clock funnels every callback through an
// executor function, which sessions point at their event loop so timer
// callbacks run on the same goroutine as event handlers.
package schedule

import "time"

// Timer is a pending callback. Stop cancels it; stopping a timer that
// already fired or was already stopped reports false.
type Timer interface {
	Stop() bool
}

// Scheduler schedules a callback to run after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Clock is the wall-time scheduler.
//
// Callbacks are handed to the executor rather than run on the timer
// goroutine. Pages are single-threaded, so the executor must serialize
// callbacks with event dispatch; a session passes its event-loop enqueue
// here, and direct (testless, sessionless) use can pass nil to run
// callbacks inline.
type Clock struct {
	exec func(func())
}

// NewClock creates a wall-time scheduler delivering callbacks through
// exec. A nil exec runs callbacks directly on the timer goroutine.
func NewClock(exec func(func())) *Clock {
	if exec == nil {
		exec = func(fn func()) { fn() }
	}
	return &Clock{exec: exec}
}

// AfterFunc schedules fn to run after d.
func (c *Clock) AfterFunc(d time.Duration, fn func()) Timer {
	return clockTimer{time.AfterFunc(d, func() { c.exec(fn) })}
}

type clockTimer struct {
	t *time.Timer
}

func (ct clockTimer) Stop() bool {
	return ct.t.Stop()
}
