package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/nametimeperiod/internal/config"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	paths, err := config.DefaultPaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; user config disabled\n", err)
	}

	app := newCLIApp(environment{paths: paths, now: time.Now})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		code := 1
		var exitErr cli.ExitCoder
		if stderrors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		os.Exit(code)
	}
}
