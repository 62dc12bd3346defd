package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/slug/core"
)

func TestDefault_LazyAndReplaceable(t *testing.T) {
	prev := SetDefault(nil)
	t.Cleanup(func() { SetDefault(prev) })

	d := Default()
	require.NotNil(t, d)
	assert.Same(t, d, Default())
	assert.Equal(t, core.DefaultLevel, d.MinLogLevel())

	log, buf := newBufferLogger(TraceLevel)
	assert.Same(t, d, SetDefault(log))
	assert.Same(t, log, Default())

	Trace("t")
	Info("i")
	Warning("w")
	Error("e")
	Fatal("f")
	Tracef("%s", "tf")
	Infof("%s", "if")
	Warningf("%s", "wf")
	Errorf("%s", "ef")
	Fatalf("%s", "ff")

	lines := parseLines(t, buf.String())
	require.Len(t, lines, 10)
	assert.Equal(t, "t", lines[0].message)
	assert.Equal(t, "FATAL", lines[9].level)
	assert.Equal(t, "ff", lines[9].message)
}

func TestShutdown(t *testing.T) {
	prev := SetDefault(nil)
	t.Cleanup(func() { SetDefault(prev) })

	require.NoError(t, Shutdown(), "shutdown without a default is a no-op")

	log, _ := newBufferLogger(InfoLevel)
	SetDefault(log)
	require.NoError(t, Shutdown())

	fresh := Default()
	assert.NotSame(t, log, fresh)
}
