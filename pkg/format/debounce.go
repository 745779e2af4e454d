package format

import (
	"time"

	"github.com/glint-go/glint/pkg/schedule"
)

// Debounce wraps fn so that it runs once d has elapsed since the most
// recent call, with the most recent argument. Earlier pending calls are
// superseded.
//
// The returned function is meant for single-threaded page logic; it
// does not lock.
func Debounce[T any](s schedule.Scheduler, d time.Duration, fn func(T)) func(T) {
	var pending schedule.Timer
	return func(v T) {
		if pending != nil {
			pending.Stop()
		}
		pending = s.AfterFunc(d, func() {
			fn(v)
		})
	}
}

// DebounceFunc is Debounce for argument-less functions.
func DebounceFunc(s schedule.Scheduler, d time.Duration, fn func()) func() {
	inner := Debounce(s, d, func(struct{}) { fn() })
	return func() { inner(struct{}{}) }
}
