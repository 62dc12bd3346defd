package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/slug/core"
)

// TextFormatter formats log entries as
// "[<goroutine>, <seconds>.<millis>] <TAG><message>\n".
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.IDWidth <= 0 {
		cfg.IDWidth = 5
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry into a newly allocated slice
func (f *TextFormatter) Format(entry *core.Entry) []byte {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	var num [20]byte

	buf.WriteByte('[')
	id := strconv.AppendUint(num[:0], entry.Goroutine, 10)
	for i := len(id); i < f.IDWidth; i++ {
		buf.WriteByte(' ')
	}
	buf.Write(id)
	buf.WriteString(", ")
	buf.Write(AppendElapsed(num[:0], entry.Elapsed))
	buf.WriteString("] ")

	buf.WriteString(entry.Level.Tag())
	buf.Write(entry.Message)
	buf.WriteByte('\n')
}

// AppendElapsed appends d in seconds with exactly three fractional
// digits, truncated to the millisecond. Negative durations print as 0.000.
func AppendElapsed(dst []byte, d time.Duration) []byte {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	dst = strconv.AppendInt(dst, ms/1000, 10)
	frac := ms % 1000
	return append(dst, '.',
		byte('0'+frac/100),
		byte('0'+frac/10%10),
		byte('0'+frac%10))
}
