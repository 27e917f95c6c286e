// Package output provides terminal logging for crudgen.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance. It writes to stderr so stdout stays
// free for command results.
var Logger = newLogger(os.Stderr, false)

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(verbose bool) {
	Logger = newLogger(os.Stderr, verbose)
}

// SetOutput redirects the logger, keeping its level.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// ModuleLogger returns a child logger prefixed with a module name.
func ModuleLogger(module string) *log.Logger {
	return Logger.WithPrefix(module)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	Logger.Error(msg, keyvals...)
}
