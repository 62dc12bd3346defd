// Package logger is the public API of slug. Most users only need to
// import this package.
//
// A Logger owns one sink.Sink (console or file), a minimum level that can
// be changed at any time, and the monotonic time at which it was created.
// Each leveled call checks the level with a single atomic load and returns
// immediately when the line is filtered out. A passing call renders
//
//	[<goroutine>, <elapsed seconds>.<millis>] <TAG><message parts>
//
// into a pooled buffer and then writes and flushes the whole line while
// holding the logger's sink mutex, so lines from concurrent goroutines are
// never interleaved. OpenFile and CloseFile take the same mutex; output is
// never redirected in the middle of a line.
//
//	log := logger.New(logger.WarnLevel)
//	log.Info("not shown")
//	log.Error("disk ", 3, " failed").Warning("retrying")
//
// Logging never panics or exits, Fatal included. A file that cannot be
// opened leaves the logger in a failed state that drops output; check
// Failed or Err when that matters.
//
// The package also keeps a lazily created default Logger for programs
// that want a process-wide instance. Install your own with SetDefault
// before first use and call Shutdown after the last one.
package logger
