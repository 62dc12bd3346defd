package adapter

import (
	"slices"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/slug/core"
	"github.com/philipp01105/slug/logger"
)

// zapCore implements zapcore.Core on top of a Logger.
type zapCore struct {
	logger *logger.Logger
	fields []byte // fields from With, already rendered
}

// NewZapCore returns a zapcore.Core writing through l, for use with
// zap.New. Level filtering follows l's current minimum level.
func NewZapCore(l *logger.Logger) zapcore.Core {
	return &zapCore{logger: l}
}

func (c *zapCore) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(zapLevelToCore(level))
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	return &zapCore{
		logger: c.logger,
		fields: appendZapFields(slices.Clip(c.fields), fields),
	}
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := make([]byte, 0, len(ent.LoggerName)+len(ent.Message)+len(c.fields)+16*len(fields))
	if ent.LoggerName != "" {
		msg = append(msg, ent.LoggerName...)
		msg = append(msg, ": "...)
	}
	msg = append(msg, ent.Message...)
	msg = append(msg, c.fields...)
	msg = appendZapFields(msg, fields)

	c.logger.Log(zapLevelToCore(ent.Level), msg)
	return nil
}

func (c *zapCore) Sync() error {
	return c.logger.Sync()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.FatalLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.TraceLevel
	}
}

// appendZapFields renders fields in order. Each field is encoded on its
// own so the output keeps the caller's field order.
func appendZapFields(dst []byte, fields []zapcore.Field) []byte {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)

		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = appendKV(dst, k, enc.Fields[k])
		}
	}
	return dst
}
