// Package core defines the shared types used across slug.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log line before formatting, goroutine identity for
// the line prefix, the monotonic Clock used to compute elapsed time, and
// AppendPart, which renders arbitrary message parts into a byte slice.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must return it
// with PutEntry once it has been formatted. The Message slice keeps its
// capacity between uses.
//
// AppendPart has allocation-free paths for strings, byte slices, booleans,
// integers, floats, durations, errors, fmt.Stringer and
// encoding.TextAppender values. Anything else falls back to fmt's %v verb.
package core
