package logger

import (
	"strings"

	"github.com/philipp01105/tlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
