package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity level of a log line.
// Levels are ordered from most verbose to least verbose.
type Level int8

const (
	// TraceLevel for very verbose diagnostic output
	TraceLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. Logging at this level never exits.
	FatalLevel
	// NoneLevel suppresses everything when used as a threshold.
	NoneLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case NoneLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// TagWidth is the width of every tag returned by Level.Tag.
const TagWidth = 7

// pre-formatted tags, padded so that messages start in the same column
var levelTags = [...]string{
	TraceLevel: "TRACE: ",
	InfoLevel:  "INFO:  ",
	WarnLevel:  "WARN:  ",
	ErrorLevel: "ERROR: ",
	FatalLevel: "FATAL: ",
}

// Tag returns the fixed-width tag written in front of the message, or ""
// for NoneLevel and out-of-range values.
func (l Level) Tag() string {
	if l < 0 || int(l) >= len(levelTags) {
		return ""
	}
	return levelTags[l]
}

// Enabled reports whether a line at level l passes the given threshold.
// Only Trace through Fatal can pass; NoneLevel and out-of-range values never do.
func (l Level) Enabled(threshold Level) bool {
	return l >= TraceLevel && l < NoneLevel && l >= threshold
}

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "NONE", "OFF":
		return NoneLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if l < TraceLevel || l > NoneLevel {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
