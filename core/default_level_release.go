//go:build release

package core

// DefaultLevel is the threshold used when none is configured.
const DefaultLevel = ErrorLevel
