package format

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttle wraps fn so that the first call runs immediately and every call
// arriving within interval of the last run is dropped. Calls are never
// deferred to a trailing edge.
func Throttle[T any](fn func(T), interval time.Duration) func(T) {
	gate := &rate.Sometimes{Interval: interval}
	return func(v T) {
		gate.Do(func() { fn(v) })
	}
}
