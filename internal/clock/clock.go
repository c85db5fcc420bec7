// Package clock abstracts deferred callbacks so hold timers can be driven by tests.
package clock

import "time"

// Timer is a pending deferred callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the timer.
	Stop() bool
}

// Clock schedules deferred callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules callbacks with the runtime timer.
type Real struct{}

// AfterFunc calls f in its own goroutine after d.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
