// Package logging holds the process-wide logrus logger and its option parsing.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// LevelOpt is the option key for the log level.
	LevelOpt = "level"
	// FormatOpt is the option key for the log format.
	FormatOpt = "format"

	// DefaultLogLevel is used when no valid level is configured.
	DefaultLogLevel = logrus.InfoLevel
	// DefaultLogFormat is used when no valid format is configured.
	DefaultLogFormat = LogFormatText
)

// LogFormat selects the logrus formatter.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// DefaultLogger is the base logger; packages derive subsystem loggers from it.
var DefaultLogger = initializeDefaultLogger()

func initializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(formatter(DefaultLogFormat))
	logger.SetLevel(DefaultLogLevel)
	return logger
}

// LogOptions maps option keys such as LevelOpt to their configured values.
type LogOptions map[string]string

// GetLogLevel returns the configured level, or DefaultLogLevel when unset or invalid.
func (o LogOptions) GetLogLevel() logrus.Level {
	level, ok := o[LevelOpt]
	if !ok {
		return DefaultLogLevel
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return DefaultLogLevel
	}
	return parsed
}

// GetLogFormat returns the configured format, or DefaultLogFormat when unset or invalid.
func (o LogOptions) GetLogFormat() LogFormat {
	switch LogFormat(strings.ToLower(o[FormatOpt])) {
	case LogFormatJSON:
		return LogFormatJSON
	case LogFormatText:
		return LogFormatText
	default:
		return DefaultLogFormat
	}
}

// SetLogLevel sets the level of DefaultLogger.
func SetLogLevel(level logrus.Level) {
	DefaultLogger.SetLevel(level)
}

// SetLogFormat sets the formatter of DefaultLogger.
func SetLogFormat(format LogFormat) {
	DefaultLogger.SetFormatter(formatter(format))
}

// SetupLogging applies opts to DefaultLogger and directs its output to w.
func SetupLogging(opts LogOptions, w io.Writer) {
	if w != nil {
		DefaultLogger.SetOutput(w)
	}
	SetLogLevel(opts.GetLogLevel())
	SetLogFormat(opts.GetLogFormat())
}

func formatter(format LogFormat) logrus.Formatter {
	if format == LogFormatJSON {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{DisableTimestamp: true}
}
