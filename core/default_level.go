//go:build !release

package core

// DefaultLevel is the threshold used when none is configured.
// Builds with the release tag use ErrorLevel instead.
const DefaultLevel = InfoLevel
