package logger

import (
	"github.com/philipp01105/slug/core"
)

// Level is core.Level, re-exported with its constants so callers of this
// package need not import core.
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	NoneLevel  = core.NoneLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
