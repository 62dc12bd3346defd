// Package formatter defines how log entries are serialized into bytes.
//
// A Formatter appends one complete line, terminator included, to a
// caller-provided bytes.Buffer. The logger formats into a pooled buffer
// outside its sink lock and then hands the finished line to the sink in
// a single Write, so lines from concurrent goroutines never interleave.
//
// TextFormatter produces the only built-in layout:
//
//	[   17, 3.042] WARN:  disk almost full
//
// The goroutine id is right-aligned to Config.IDWidth columns, elapsed
// time is printed in seconds with exactly three fractional digits, and
// every level tag has the same width so messages line up.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
