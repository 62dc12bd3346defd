package core

import (
	"sync"
	"time"
)

// Entry represents a log line with all its metadata, before formatting
type Entry struct {
	Goroutine uint64
	Elapsed   time.Duration
	Level     Level
	Message   []byte
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Message: make([]byte, 0, 256),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Goroutine = 0
	e.Elapsed = 0
	e.Level = TraceLevel
	e.Message = e.Message[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	if cap(e.Message) > 64*1024 { // Don't keep very large messages
		return
	}
	e.Message = e.Message[:0]
	entryPool.Put(e)
}
