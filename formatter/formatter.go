package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/slug/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// FormatEntry appends the formatted entry, including the line
	// terminator, to buf.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc func(entry *core.Entry, buf *bytes.Buffer)

// FormatEntry calls f(entry, buf).
func (f FormatterFunc) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f(entry, buf)
}

// Config holds common formatter configuration
type Config struct {
	// IDWidth is the minimum width of the goroutine id column (default: 5)
	IDWidth int
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
