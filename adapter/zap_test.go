package adapter

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/slug/core"
	"github.com/philipp01105/slug/logger"
)

func TestZapCore_Basic(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)
	log := zap.New(NewZapCore(l))

	log.Info("hello", zap.String("user", "alice"), zap.Int("id", 7), zap.Duration("took", 3*time.Millisecond))

	lines := parse(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0].level)
	assert.Equal(t, "hello user=alice id=7 took=3ms", lines[0].message)
}

func TestZapCore_Levels(t *testing.T) {
	l, buf := newTestLogger(core.TraceLevel)
	log := zap.New(NewZapCore(l))

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")
	log.DPanic("dp") // development mode is off, so DPanic does not panic

	lines := parse(t, buf.String())
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"TRACE", "INFO", "WARN", "ERROR", "FATAL"},
		[]string{lines[0].level, lines[1].level, lines[2].level, lines[3].level, lines[4].level})
}

func TestZapCore_FollowsLoggerLevel(t *testing.T) {
	l, buf := newTestLogger(core.ErrorLevel)
	c := NewZapCore(l)
	log := zap.New(c)

	assert.False(t, c.Enabled(zapcore.WarnLevel))
	assert.True(t, c.Enabled(zapcore.ErrorLevel))

	log.Warn("hidden")
	assert.Empty(t, buf.String())
	assert.Nil(t, log.Check(zapcore.InfoLevel, "hidden"))

	l.SetMinLogLevel(core.TraceLevel)
	assert.True(t, c.Enabled(zapcore.DebugLevel))
}

func TestZapCore_WithAndNamed(t *testing.T) {
	l, buf := newTestLogger(core.InfoLevel)
	base := zap.New(NewZapCore(l)).With(zap.String("service", "api"))

	base.Named("db").Info("query", zap.Bool("cached", false), zap.Error(errors.New("timeout")))
	base.With(zap.String("extra", "x y")).Warn("second")
	base.Info("third")

	lines := parse(t, buf.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "db: query service=api cached=false error=timeout", lines[0].message)
	assert.Equal(t, `second service=api extra="x y"`, lines[1].message)
	assert.Equal(t, "third service=api", lines[2].message)
}

func TestZapCore_Sync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zap.log")
	l := logger.NewWithFile(core.InfoLevel, path)
	defer l.Close()

	log := zap.New(NewZapCore(l))
	log.Info("synced")
	require.NoError(t, log.Sync())
	assert.True(t, l.IsOpen())
}

func TestZapLevelToCore(t *testing.T) {
	assert.Equal(t, core.TraceLevel, zapLevelToCore(zapcore.DebugLevel))
	assert.Equal(t, core.InfoLevel, zapLevelToCore(zapcore.InfoLevel))
	assert.Equal(t, core.WarnLevel, zapLevelToCore(zapcore.WarnLevel))
	assert.Equal(t, core.ErrorLevel, zapLevelToCore(zapcore.ErrorLevel))
	assert.Equal(t, core.FatalLevel, zapLevelToCore(zapcore.PanicLevel))
	assert.Equal(t, core.FatalLevel, zapLevelToCore(zapcore.FatalLevel))
}
