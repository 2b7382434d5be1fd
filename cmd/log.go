package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Commands log at info level by default
// and at debug level when --verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
