package core

// Level represents the severity level of a log entry.
//
// Levels are spaced numerically so that arbitrary integer levels can
// pass through the logger unchanged: a message is emitted when its
// level is greater than or equal to the logger's threshold, whether or
// not the value is one of the named constants.
type Level int

const (
	// NotSetLevel marks a raw message: no timestamp, no metadata,
	// the message bytes pass through verbatim.
	NotSetLevel Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages
	InfoLevel Level = 20
	// WarningLevel for warning messages
	WarningLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// CriticalLevel for critical messages
	CriticalLevel Level = 50
)

// String returns the upper-case label of the level. Values outside the
// six recognized levels yield the empty string, which keeps the line
// structure intact when a caller logs with an arbitrary integer level.
func (l Level) String() string {
	switch l {
	case NotSetLevel:
		return "NOTSET"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return ""
	}
}
