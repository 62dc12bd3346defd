package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock is the time source used to compute elapsed time. Implementations
// must return readings that carry Go's monotonic clock component, so that
// Sub is not affected by wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now on every call.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// CoarseClock reads the cached value maintained by StartCoarseClock.
// It trades up to 500µs of precision for a cheaper read.
type CoarseClock struct{}

// Now starts the coarse clock if needed and returns its cached reading.
func (CoarseClock) Now() time.Time {
	StartCoarseClock()
	return CoarseNow()
}

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *coarseNow.Load()
}
