package logger

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/slug/core"
	"github.com/philipp01105/slug/formatter"
	"github.com/philipp01105/slug/sink"
)

// Logger writes leveled lines to the sink it owns. It is safe for
// concurrent use.
type Logger struct {
	mu        sync.Mutex // serializes every access to sink
	sink      *sink.Sink
	formatter formatter.Formatter
	clock     core.Clock
	start     time.Time
	level     atomic.Int32
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level     core.Level
	sinkCfg   sink.Config
	formatter formatter.Formatter
	clock     core.Clock
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.DefaultLevel,
	}
}

// WithLevel sets the initial minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFile makes the logger start with a file destination
func (b *Builder) WithFile(path string) *Builder {
	b.sinkCfg.Path = path
	return b
}

// WithConsole sets the console writer (default: os.Stderr)
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.sinkCfg.Console = w
	return b
}

// WithCreateDirs creates missing parent directories when opening files
func (b *Builder) WithCreateDirs(enabled bool) *Builder {
	b.sinkCfg.CreateDirs = enabled
	return b
}

// WithFormatter sets the line formatter (default: TextFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithClock sets the time source used for elapsed time
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithCoarseClock switches to the cached 500µs clock
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	if enabled {
		b.clock = core.CoarseClock{}
	} else {
		b.clock = nil
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		sink:      sink.New(b.sinkCfg),
		formatter: b.formatter,
		clock:     b.clock,
	}
	if l.formatter == nil {
		l.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if l.clock == nil {
		l.clock = core.SystemClock{}
	}
	l.level.Store(int32(b.level))
	l.start = l.clock.Now()
	return l
}

// New creates a Logger writing to os.Stderr.
func New(level core.Level) *Logger {
	return NewBuilder().WithLevel(level).Build()
}

// NewWithFile creates a Logger appending to the file at path.
// If the file cannot be opened the logger starts in the failed state.
func NewWithFile(level core.Level, path string) *Logger {
	return NewBuilder().WithLevel(level).WithFile(path).Build()
}

// MinLogLevel returns the current minimum level
func (l *Logger) MinLogLevel() core.Level {
	return core.Level(l.level.Load())
}

// SetMinLogLevel changes the minimum level. Calls already past the level
// check are not affected.
func (l *Logger) SetMinLogLevel(level core.Level) *Logger {
	l.level.Store(int32(level))
	return l
}

// Enabled reports whether a line at level would currently be written
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(l.MinLogLevel())
}

// Log writes the concatenation of parts at the given level
func (l *Logger) Log(level core.Level, parts ...any) *Logger {
	// Level check before any allocation or locking
	if !level.Enabled(l.MinLogLevel()) {
		return l
	}
	l.log(level, parts)
	return l
}

// log is the internal logging method that takes the parts slice as is
func (l *Logger) log(level core.Level, parts []any) {
	entry := l.newEntry(level)
	entry.Message = core.AppendParts(entry.Message, parts...)
	l.emit(entry)
}

// Logf writes a formatted message at the given level
func (l *Logger) Logf(level core.Level, format string, args ...any) *Logger {
	if !level.Enabled(l.MinLogLevel()) {
		return l
	}
	entry := l.newEntry(level)
	entry.Message = fmt.Appendf(entry.Message, format, args...)
	l.emit(entry)
	return l
}

// newEntry returns a pooled entry stamped with the caller's goroutine
// and the elapsed time.
func (l *Logger) newEntry(level core.Level) *core.Entry {
	entry := core.GetEntry()
	entry.Goroutine = core.GoroutineID()
	entry.Elapsed = l.clock.Now().Sub(l.start)
	entry.Level = level
	return entry
}

// emit formats entry outside the lock and writes the whole line with a
// single Write followed by a Flush.
func (l *Logger) emit(entry *core.Entry) {
	buf := formatter.GetBuffer()
	l.formatter.FormatEntry(entry, buf)
	core.PutEntry(entry)

	l.mu.Lock()
	// Errors are kept on the sink; logging never fails the caller.
	if _, err := l.sink.Write(buf.Bytes()); err == nil {
		_ = l.sink.Flush()
	}
	l.mu.Unlock()

	formatter.PutBuffer(buf)
}

// Trace logs a trace message
func (l *Logger) Trace(parts ...any) *Logger {
	if core.TraceLevel < l.MinLogLevel() {
		return l
	}
	l.log(core.TraceLevel, parts)
	return l
}

// Info logs an info message
func (l *Logger) Info(parts ...any) *Logger {
	if core.InfoLevel < l.MinLogLevel() {
		return l
	}
	l.log(core.InfoLevel, parts)
	return l
}

// Warning logs a warning message
func (l *Logger) Warning(parts ...any) *Logger {
	if core.WarnLevel < l.MinLogLevel() {
		return l
	}
	l.log(core.WarnLevel, parts)
	return l
}

// Error logs an error message
func (l *Logger) Error(parts ...any) *Logger {
	if core.ErrorLevel < l.MinLogLevel() {
		return l
	}
	l.log(core.ErrorLevel, parts)
	return l
}

// Fatal logs a fatal message. It does not exit or panic.
func (l *Logger) Fatal(parts ...any) *Logger {
	if core.FatalLevel < l.MinLogLevel() {
		return l
	}
	l.log(core.FatalLevel, parts)
	return l
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...any) *Logger {
	return l.Logf(core.TraceLevel, format, args...)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) *Logger {
	return l.Logf(core.InfoLevel, format, args...)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...any) *Logger {
	return l.Logf(core.WarnLevel, format, args...)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) *Logger {
	return l.Logf(core.ErrorLevel, format, args...)
}

// Fatalf logs a fatal message with formatting. It does not exit or panic.
func (l *Logger) Fatalf(format string, args ...any) *Logger {
	return l.Logf(core.FatalLevel, format, args...)
}

// OpenFile redirects output to the file at path, appending to it.
// A previously open file is flushed and closed first.
func (l *Logger) OpenFile(path string) *Logger {
	l.mu.Lock()
	l.sink.Open(path)
	l.mu.Unlock()
	return l
}

// CloseFile closes the current file, if any, and reverts to the console.
func (l *Logger) CloseFile() *Logger {
	l.mu.Lock()
	l.sink.Close()
	l.mu.Unlock()
	return l
}

// IsOpen reports whether output currently goes to a file
func (l *Logger) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.IsOpen()
}

// Path returns the path of the open file, or "" for the console
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.Path()
}

// Failed reports whether the last OpenFile failed; output is dropped
// until the next successful OpenFile or CloseFile.
func (l *Logger) Failed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.Failed()
}

// Err returns the most recent error recorded by the sink
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.Err()
}

// Sync flushes the sink and commits an open file to stable storage
func (l *Logger) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.Sync()
}

// StartTime returns the time the logger was created
func (l *Logger) StartTime() time.Time {
	return l.start
}

// Elapsed returns the monotonic time since the logger was created
func (l *Logger) Elapsed() time.Duration {
	return l.clock.Now().Sub(l.start)
}

// Close flushes and closes the sink, reverting it to the console. It
// reports the close error together with a pending open failure, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var pending error
	if l.sink.Failed() {
		pending = l.sink.Err()
	}
	return multierr.Append(pending, l.sink.Close().Err())
}
