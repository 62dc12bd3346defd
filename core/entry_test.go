package core

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	require.NotNil(t, e1)
	assert.Empty(t, e1.Message)

	e1.Message = append(e1.Message, "test"...)
	e1.Level = ErrorLevel
	e1.Goroutine = 7
	e1.Elapsed = time.Second
	PutEntry(e1)

	e2 := GetEntry()
	require.NotNil(t, e2)
	assert.Empty(t, e2.Message)
	assert.Equal(t, TraceLevel, e2.Level)
	assert.Zero(t, e2.Goroutine)
	assert.Zero(t, e2.Elapsed)

	PutEntry(nil)
}

func TestGoroutineID(t *testing.T) {
	id := GoroutineID()
	require.NotZero(t, id)
	assert.Equal(t, id, GoroutineID(), "id must be stable within a goroutine")

	const n = 8
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	var release sync.WaitGroup
	release.Add(1)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = GoroutineID()
			// keep every goroutine alive until all ids are taken
			release.Wait()
		}(i)
	}
	time.Sleep(10 * time.Millisecond)
	release.Done()
	wg.Wait()

	seen := map[uint64]bool{id: true}
	for _, got := range ids {
		require.NotZero(t, got)
		assert.False(t, seen[got], "duplicate goroutine id %d", got)
		seen[got] = true
	}
}
