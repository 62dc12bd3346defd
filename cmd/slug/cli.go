package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"go.uber.org/multierr"

	"github.com/philipp01105/slug/core"
	"github.com/philipp01105/slug/logger"
)

// CLI is the command line of slug.
type CLI struct {
	Level       core.Level `default:"${default_level}" help:"Minimum level that is written (trace, info, warn, error, fatal, none)." short:"l"`
	At          core.Level `default:"info"             help:"Level every input line is logged at."                                  short:"a"`
	File        string     `help:"Append to this file instead of writing to stderr." short:"f" type:"path"`
	CreateDirs  bool       `help:"Create missing parent directories of --file."`
	CoarseClock bool       `help:"Use the cached 500µs clock for elapsed time."`
}

// Run parses args and copies lines from stdin to a logger whose console
// is console. exit is called by kong for --help and usage errors.
func Run(stdin io.Reader, console io.Writer, exit func(code int), args ...string) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("slug"),
		kong.Description("Write each line from standard input as a leveled log line."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(console, console),
		kong.Vars{"default_level": core.DefaultLevel.String()},
	)
	if err != nil {
		return err
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	return cli.run(stdin, console)
}

func (c *CLI) run(stdin io.Reader, console io.Writer) error {
	b := logger.NewBuilder().
		WithLevel(c.Level).
		WithConsole(console).
		WithCreateDirs(c.CreateDirs).
		WithCoarseClock(c.CoarseClock)
	if c.File != "" {
		b = b.WithFile(c.File)
	}
	log := b.Build()

	if log.Failed() {
		return fmt.Errorf("log file: %w", log.Close())
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		log.Log(c.At, scanner.Bytes())
	}

	return multierr.Append(scanner.Err(), log.Close())
}
