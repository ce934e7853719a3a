// Package logging builds the zerolog logger used by the kasane command.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Level maps a -v count to a log level.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup returns a console logger writing to w at the level selected by verbosity.
// Caller information is added from debug level on.
func Setup(verbosity int, w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}

	ctx := zerolog.New(console).Level(Level(verbosity)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}

	logger := ctx.Logger()
	logger.Debug().Int("verbosity", verbosity).Msg("logger initialized")
	return logger
}

// LogCommand logs a command execution with its arguments.
func LogCommand(logger zerolog.Logger, cmd string, args []string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("executing command")
}
