package adapter

import (
	"context"
	"log/slog"
	"slices"

	"github.com/philipp01105/slug/core"
	"github.com/philipp01105/slug/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
type SlogHandler struct {
	logger *logger.Logger
	attrs  []byte // attributes from WithAttrs, already rendered
	group  string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler adapter writing through l.
// Level filtering follows l's current minimum level.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle renders the record's message and attributes as one line.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.Enabled(level) {
		return nil
	}

	msg := make([]byte, 0, len(record.Message)+len(s.attrs)+16*record.NumAttrs())
	msg = append(msg, record.Message...)
	msg = append(msg, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		msg = appendAttr(msg, s.group, a)
		return true
	})

	s.logger.Log(level, msg)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	rendered := slices.Clip(s.attrs)
	for _, a := range attrs {
		rendered = appendAttr(rendered, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  rendered,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders a, prefixing its key with group. Groups are
// flattened into dotted keys and empty attributes are skipped.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return appendKV(dst, key, a.Value.Any())
}
