package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/nametimeperiod/internal/calendar"
	"github.com/hpungsan/nametimeperiod/internal/config"
	"github.com/hpungsan/nametimeperiod/internal/errors"
	"github.com/hpungsan/nametimeperiod/internal/logger"
	"github.com/hpungsan/nametimeperiod/internal/period"
)

// environment carries the process-level inputs the app depends on.
type environment struct {
	paths config.Paths
	now   func() time.Time
}

// newCLIApp creates the CLI application.
func newCLIApp(env environment) *cli.App {
	app := &cli.App{
		Name:    "nametimeperiod",
		Usage:   "Print the name of the configured time period a date falls in",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Date to evaluate (YYYY-MM-DD); defaults to today in UTC"},
			&cli.BoolFlag{Name: "init", Usage: "Force-regenerate the user config file and exit"},
			&cli.StringFlag{Name: "log-level", Value: logger.DefaultLevel, EnvVars: []string{"NAMETIMEPERIOD_LOG_LEVEL"}, Usage: "Log level: debug|info|warn|error"},
		},
		Before: func(c *cli.Context) error {
			if _, err := logger.Setup(c.String("log-level"), c.App.ErrWriter); err != nil {
				return outputError(errors.NewInvalidRequest(err.Error()))
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("init") {
				return runInit(c, env.paths.User)
			}

			date, err := queryDate(c.String("date"), env.now)
			if err != nil {
				return outputError(err)
			}

			bootstrapUserConfig(c.App.ErrWriter, env.paths.User)

			periods := config.LoadMerged(env.paths)
			if slog.Default().Enabled(c.Context, slog.LevelDebug) {
				for _, name := range period.Unresolved(periods, date.Year()) {
					slog.Debug("period anchor does not resolve", slog.String("period", name), slog.Int("year", date.Year()))
				}
			}

			result := period.Match(periods, date)
			slog.Debug("evaluated date", slog.String("date", date.Format(time.DateOnly)), slog.String("period", result))

			if _, err := fmt.Fprintln(c.App.Writer, result); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// runInit force-writes the bundled default to the user config path.
// Write failures are reported but do not fail the command.
func runInit(c *cli.Context, userPath string) error {
	if _, err := config.WriteDefault(userPath, true); err != nil {
		warnConfigWrite(c.App.ErrWriter, err)
		return nil
	}
	if _, err := fmt.Fprintf(c.App.Writer, "Default user config (force) written to %s\n", userPath); err != nil {
		return outputError(errors.NewInternal(err))
	}
	return nil
}

// bootstrapUserConfig writes the bundled default when no user config exists yet.
func bootstrapUserConfig(stderr io.Writer, userPath string) {
	if userPath == "" {
		return
	}
	written, err := config.WriteDefault(userPath, false)
	if err != nil {
		warnConfigWrite(stderr, err)
		return
	}
	if written {
		slog.Info("default user config written", slog.String("path", userPath))
	}
}

// warnConfigWrite reports a failed config write on stderr regardless of log level.
func warnConfigWrite(stderr io.Writer, err error) {
	fmt.Fprintf(stderr, "warning: %v\n", err)
	logDetails("could not write user config", err)
}

// queryDate parses a YYYY-MM-DD value, or returns today in UTC when empty.
func queryDate(value string, now func() time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return calendar.Day(now().UTC()), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errors.NewInvalidDate(value)
	}
	return t, nil
}

// outputError formats error for CLI.
func outputError(err error) error {
	var pErr *errors.PeriodError
	if stderrors.As(err, &pErr) {
		logDetails("command failed", err)
		return cli.Exit(fmt.Sprintf("[%s] %s", pErr.Code, pErr.Message), pErr.ExitCode)
	}
	return cli.Exit(err.Error(), 1)
}

// logDetails emits the structured details of a PeriodError at debug level.
func logDetails(msg string, err error) {
	var pErr *errors.PeriodError
	if !stderrors.As(err, &pErr) {
		slog.Debug(msg, slog.Any("error", err))
		return
	}
	args := []any{slog.String("code", string(pErr.Code))}
	for k, v := range pErr.Details {
		args = append(args, slog.Any(k, v))
	}
	if pErr.Err != nil {
		args = append(args, slog.Any("cause", pErr.Err))
	}
	slog.Debug(msg, args...)
}
