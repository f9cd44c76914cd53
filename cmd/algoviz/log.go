package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting that filters messages
// at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLogger resolves the destination and level from the flags and config.
// The returned close func releases the log file, if one was opened.
func openLogger(path, configured string, verbose, quiet bool) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(configured)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = log.DebugLevel
	}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		return newLogger(f, level), f.Close, nil
	case quiet:
		return newLogger(io.Discard, level), func() error { return nil }, nil
	default:
		return newLogger(os.Stderr, level), func() error { return nil }, nil
	}
}
