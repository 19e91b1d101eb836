// Package logging builds the leveled diagnostic logger shared by the jot and
// journal commands. User facing output goes through pkg/printers; this
// logger writes to stderr and is quiet unless asked otherwise.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps routine debug chatter out of normal runs.
const DefaultLevel = "warn"

// DefaultFormat is the human readable formatter.
const DefaultFormat = "text"

// Options configures New.
type Options struct {
	Prefix    string
	Level     string
	Formatter string
	Out       io.Writer
}

// New returns a logger for the given options. Unknown levels fall back to
// DefaultLevel.
func New(o Options) *log.Logger {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	logger := log.NewWithOptions(out, log.Options{
		Prefix:          o.Prefix,
		Level:           ParseLevel(o.Level),
		Formatter:       ParseFormatter(o.Formatter),
		ReportTimestamp: false,
	})
	return logger
}

// ParseLevel maps a level name onto a log.Level.
func ParseLevel(level string) log.Level {
	l, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		l, _ = log.ParseLevel(DefaultLevel)
	}
	return l
}

// ParseFormatter maps text, json or logfmt onto a log.Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
