package logger

import (
	"bytes"
	"io"

	"github.com/philipp01105/slug/core"
)

// levelWriter turns every Write into one line at a fixed level.
type levelWriter struct {
	logger *Logger
	level  core.Level
}

// Writer returns an io.Writer that logs each Write as a single line at
// level, without the trailing newline. It can be passed to log.SetOutput
// or exec.Cmd.Stderr. Write always reports len(p), nil.
func (l *Logger) Writer(level core.Level) io.Writer {
	return &levelWriter{logger: l, level: level}
}

func (w *levelWriter) Write(p []byte) (int, error) {
	if !w.logger.Enabled(w.level) {
		return len(p), nil
	}
	msg := bytes.TrimSuffix(p, []byte{'\n'})
	msg = bytes.TrimSuffix(msg, []byte{'\r'})
	w.logger.log(w.level, []any{msg})
	return len(p), nil
}
