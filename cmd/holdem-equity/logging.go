package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger. An empty or unknown level falls back
// to warn so that reports on stdout stay uncluttered.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil || level == "" {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
		Prefix:          "holdem-equity",
	})
}
