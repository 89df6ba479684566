package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// setupLogger configures the console logger used by interactive commands
func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

// setupStructuredLogger configures zerolog for batch commands
func setupStructuredLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
