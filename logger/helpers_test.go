package logger

import (
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every reading, starting at base.
type stepClock struct {
	base  time.Time
	step  time.Duration
	reads atomic.Int64
}

func (c *stepClock) Now() time.Time {
	n := c.reads.Add(1) - 1
	return c.base.Add(time.Duration(n) * c.step)
}

var lineRE = regexp.MustCompile(`^\[ *(\d+), (\d+\.\d{3})\] (TRACE|INFO|WARN|ERROR|FATAL): +(.*)$`)

type parsedLine struct {
	goroutine uint64
	elapsed   float64
	level     string
	message   string
}

func parseLines(t *testing.T, out string) []parsedLine {
	t.Helper()
	if out == "" {
		return nil
	}
	require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline: %q", out)

	var lines []parsedLine
	for _, raw := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		m := lineRE.FindStringSubmatch(raw)
		require.NotNil(t, m, "malformed line %q", raw)
		id, err := strconv.ParseUint(m[1], 10, 64)
		require.NoError(t, err)
		elapsed, err := strconv.ParseFloat(m[2], 64)
		require.NoError(t, err)
		lines = append(lines, parsedLine{goroutine: id, elapsed: elapsed, level: m[3], message: m[4]})
	}
	return lines
}

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewBuilder().
		WithConsole(&buf).
		WithLevel(level).
		Build()
	return l, &buf
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
