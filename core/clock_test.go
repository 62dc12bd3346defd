package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoarseNow(t *testing.T) {
	StartCoarseClock()
	// Allow the ticker to fire at least once
	time.Sleep(2 * time.Millisecond)

	diff := time.Since(CoarseNow())
	if diff < 0 {
		diff = -diff
	}

	// The cached time should be within 5ms of real time
	assert.Less(t, diff, 5*time.Millisecond)
}

func TestStartCoarseClockIdempotent(t *testing.T) {
	// Calling multiple times must not panic
	StartCoarseClock()
	StartCoarseClock()
	StartCoarseClock()

	assert.False(t, CoarseNow().IsZero())
}

func TestClocks_NonDecreasing(t *testing.T) {
	for name, c := range map[string]Clock{"system": SystemClock{}, "coarse": CoarseClock{}} {
		t.Run(name, func(t *testing.T) {
			start := c.Now()
			prev := time.Duration(0)
			for i := 0; i < 1000; i++ {
				d := c.Now().Sub(start)
				assert.GreaterOrEqual(t, d, prev)
				prev = d
			}
		})
	}
}
