// Package timer measures wall-clock intervals for throughput accounting.
package timer

import "time"

var base = time.Now()

// Ticks returns a monotonic tick count, one tick per nanosecond.
func Ticks() uint64 {
	return uint64(time.Since(base))
}

// IntervalSeconds converts the tick interval [t0, t1] to seconds.
func IntervalSeconds(t0, t1 uint64) float64 {
	return float64(t1-t0) * 1e-9
}
