package sink

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// Mode is the kind of destination a Sink currently writes to.
type Mode uint8

const (
	// ConsoleMode writes to the console writer
	ConsoleMode Mode = iota
	// FileMode writes to an open file
	FileMode
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ConsoleMode:
		return "console"
	case FileMode:
		return "file"
	default:
		return "unknown"
	}
}

// Config holds configuration for a Sink
type Config struct {
	// Console is the destination used in console mode (default: os.Stderr)
	Console io.Writer
	// Path opens a file destination at construction when non-empty
	Path string
	// Perm is the permission used when a file is created (default: 0644)
	Perm os.FileMode
	// CreateDirs creates missing parent directories before opening a file
	CreateDirs bool
	// BufferSize is the size of the write buffer (default: 4096)
	BufferSize int
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Console == nil {
		cfg.Console = os.Stderr
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
}

// noCopy makes go vet's copylocks check reject copies of a Sink.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Sink owns exactly one destination at a time: the console writer or a file.
type Sink struct {
	noCopy noCopy

	console    io.Writer
	perm       os.FileMode
	createDirs bool

	file   *os.File
	path   string
	out    *bufio.Writer
	err    error
	failed bool
}

var _ zapcore.WriteSyncer = (*Sink)(nil)

// New creates a Sink. It starts in console mode unless cfg.Path is set,
// in which case the file is opened as if by Open.
func New(cfg Config) *Sink {
	applyDefaults(&cfg)
	s := &Sink{
		console:    cfg.Console,
		perm:       cfg.Perm,
		createDirs: cfg.CreateDirs,
	}
	s.out = bufio.NewWriterSize(s.console, cfg.BufferSize)
	if cfg.Path != "" {
		s.Open(cfg.Path)
	}
	return s
}

// Open redirects output to the file at path, opened for appending and
// created if missing. An already open file is flushed and closed first.
// On failure the Sink enters the failed state; see Failed and Err.
// Errors from leaving the previous destination stay visible through Err
// after a successful Open.
func (s *Sink) Open(path string) *Sink {
	var prev error
	if s.file != nil {
		prev = s.Close().Err()
	}

	// Buffered console output belongs to the console.
	if !s.failed {
		prev = multierr.Append(prev, s.out.Flush())
	}

	if s.createDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			s.fail(multierr.Append(prev, err))
			return s
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, s.perm)
	if err != nil {
		s.fail(multierr.Append(prev, err))
		return s
	}

	s.file = file
	s.path = path
	s.out.Reset(file)
	s.failed = false
	s.err = prev
	return s
}

// fail puts the Sink into the failed state.
func (s *Sink) fail(err error) {
	s.out.Reset(s.console)
	s.path = ""
	s.failed = true
	s.err = err
}

// Close flushes buffered output and, if a file is open, syncs and closes it
// and reverts to console mode. Without an open file it only flushes.
// Close also clears the failed state. Errors are kept for Err.
func (s *Sink) Close() *Sink {
	if s.file == nil && !s.failed {
		if err := s.out.Flush(); err != nil {
			s.err = err
		}
		return s
	}

	var err error
	if s.file != nil {
		err = s.out.Flush()
		err = multierr.Append(err, s.file.Sync())
		err = multierr.Append(err, s.file.Close())
		s.file = nil
	}

	s.out.Reset(s.console)
	s.path = ""
	s.failed = false
	s.err = err
	return s
}

// IsOpen reports whether a file destination is active.
func (s *Sink) IsOpen() bool {
	return s.file != nil
}

// Mode reports the current destination kind.
func (s *Sink) Mode() Mode {
	if s.file != nil {
		return FileMode
	}
	return ConsoleMode
}

// Path returns the path of the open file, or "" in console mode.
func (s *Sink) Path() string {
	return s.path
}

// Failed reports whether the last Open failed. While failed, writes are
// dropped.
func (s *Sink) Failed() bool {
	return s.failed
}

// Err returns the most recent open, write, flush or close error.
func (s *Sink) Err() error {
	return s.err
}

// Write buffers p for the current destination. In the failed state it
// writes nothing and returns the stored error.
func (s *Sink) Write(p []byte) (int, error) {
	if s.failed {
		return 0, s.err
	}
	n, err := s.out.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Flush writes buffered output to the current destination.
func (s *Sink) Flush() error {
	if s.failed {
		return s.err
	}
	if err := s.out.Flush(); err != nil {
		s.err = err
		return err
	}
	return nil
}

// Sync flushes buffered output and commits an open file to stable storage.
func (s *Sink) Sync() error {
	err := s.Flush()
	if s.file != nil {
		err = multierr.Append(err, s.file.Sync())
	}
	return err
}

// Swap exchanges the destinations and state of two sinks.
func (s *Sink) Swap(other *Sink) {
	if s == other {
		return
	}
	s.console, other.console = other.console, s.console
	s.perm, other.perm = other.perm, s.perm
	s.createDirs, other.createDirs = other.createDirs, s.createDirs
	s.file, other.file = other.file, s.file
	s.path, other.path = other.path, s.path
	s.out, other.out = other.out, s.out
	s.err, other.err = other.err, s.err
	s.failed, other.failed = other.failed, s.failed
}
