// Package logging constructs the leveled go-kit loggers used by hiero commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(lvl int) string {
	switch lvl {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLevel translates a case-insensitive level name to a log level enum
func ParseLevel(name string) (int, error) {
	for lvl := TraceLevel; lvl <= FatalLevel; lvl++ {
		if strings.EqualFold(name, LogLevelToString(lvl)) {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf("Unknown log level %q", name)
}

func filter(lvl int) level.Option {
	// go-kit has no trace or fatal levels
	switch lvl {
	case TraceLevel, DebugLevel:
		return level.AllowDebug()
	case InfoLevel:
		return level.AllowInfo()
	case WarnLevel:
		return level.AllowWarn()
	default:
		return level.AllowError()
	}
}

// NewLogger creates a logfmt Logger writing to w, which discards messages below the named level
func NewLogger(w io.Writer, levelName string) (log.Logger, error) {
	lvl, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, filter(lvl)), nil
}
