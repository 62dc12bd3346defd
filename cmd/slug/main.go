// Command slug writes each line read from standard input as a log line.
//
//	make 2>&1 | slug --at=warn --file=build.log
package main

import (
	"os"

	"github.com/philipp01105/slug/core"
	"github.com/philipp01105/slug/logger"
)

func main() {
	if err := Run(os.Stdin, os.Stderr, os.Exit, os.Args[1:]...); err != nil {
		logger.New(core.ErrorLevel).Error("slug: ", err).Close()
		os.Exit(1)
	}
}
