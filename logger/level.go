package logger

import (
	"strings"

	"github.com/philipp01105/ranklog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NotSetLevel   = core.NotSetLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "NOTSET":
		return NotSetLevel
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	case "CRITICAL":
		return CriticalLevel
	default:
		return NotSetLevel
	}
}
