package recfmt

import "strings"

// Level defines record severities, ordered from most to least verbose.
type Level uint8

const (
	// TraceLevel defines trace severity (below DebugLevel).
	TraceLevel Level = iota
	// DebugLevel defines debug severity.
	DebugLevel
	// InfoLevel defines info severity.
	InfoLevel
	// WarnLevel defines warn severity.
	WarnLevel
	// ErrorLevel defines error severity.
	ErrorLevel
	// CriticalLevel defines critical severity.
	CriticalLevel
	// OffLevel is the severity used to disable emission entirely. Records
	// carrying it are never expected to reach a formatter, but formatting one
	// still renders the name "off".
	OffLevel

	levelCount = int(OffLevel) + 1
)

// String returns the canonical lowercase name of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	case OffLevel:
		return "off"
	default:
		return "unknown"
	}
}

// ShortString returns the single-letter form of the level.
func (l Level) ShortString() string {
	switch l {
	case TraceLevel:
		return "T"
	case DebugLevel:
		return "D"
	case InfoLevel:
		return "I"
	case WarnLevel:
		return "W"
	case ErrorLevel:
		return "E"
	case CriticalLevel:
		return "C"
	case OffLevel:
		return "O"
	default:
		return "?"
	}
}

// ParseLevel converts a textual level into a Level value. It accepts values
// such as "trace", "debug", "info", "warn", "warning", "error", "critical",
// "fatal", and "off" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "critical", "fatal":
		return CriticalLevel, true
	case "off", "disabled", "none":
		return OffLevel, true
	default:
		return InfoLevel, false
	}
}
