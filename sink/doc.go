// Package sink provides Sink, the output destination owned by a Logger.
//
// A Sink writes either to a console writer (os.Stderr by default) or to a
// file opened in append mode. Open redirects output to a file, closing any
// file that was already open after flushing it. Close flushes, closes the
// file and reverts to the console, so a Sink is always writable.
//
// A failed Open does not return an error. The Sink enters a failed state
// instead: writes are dropped and report the stored error until the next
// successful Open or a Close. Callers that care check IsOpen, Failed or Err.
//
// Sink is not safe for concurrent use. Its owner serializes access; the
// logger package does this with a single mutex per Logger.
package sink
