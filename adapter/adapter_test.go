package adapter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/slug/core"
	"github.com/philipp01105/slug/logger"
)

var lineRE = regexp.MustCompile(`^\[ *\d+, \d+\.\d{3}\] (TRACE|INFO|WARN|ERROR|FATAL): +(.*)$`)

type line struct {
	level   string
	message string
}

func newTestLogger(level core.Level) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.NewBuilder().WithConsole(&buf).WithLevel(level).Build(), &buf
}

func parse(t *testing.T, out string) []line {
	t.Helper()
	if out == "" {
		return nil
	}
	var lines []line
	for _, raw := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		m := lineRE.FindStringSubmatch(raw)
		require.NotNil(t, m, "malformed line %q", raw)
		lines = append(lines, line{level: m[1], message: m[2]})
	}
	return lines
}
