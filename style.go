package recfmt

import (
	"io"

	"pkt.systems/recfmt/ansi"
	"pkt.systems/recfmt/internal/istty"
)

// StyleMode controls whether a sink decorates the style range a formatter
// reports. The zero value is StyleModeAuto.
type StyleMode uint8

const (
	// StyleModeAuto styles only when the sink's destination is a terminal.
	StyleModeAuto StyleMode = iota
	// StyleModeAlways styles unconditionally.
	StyleModeAlways
	// StyleModeNever never styles.
	StyleModeNever
)

// fdWriter matches *os.File and anything else exposing a file descriptor.
type fdWriter interface {
	Fd() uintptr
}

// StyleEnabled reports whether a sink writing to w should style its output
// under mode. In auto mode only writers backed by a terminal file descriptor
// qualify.
func StyleEnabled(w io.Writer, mode StyleMode) bool {
	switch mode {
	case StyleModeAlways:
		return true
	case StyleModeNever:
		return false
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return istty.IsTerminal(int(f.Fd()))
}

// LevelSequence returns the ANSI escape sequence the current palette assigns
// to level, or "" for levels that carry no style.
func LevelSequence(level Level) string {
	switch level {
	case TraceLevel:
		return ansi.Trace
	case DebugLevel:
		return ansi.Debug
	case InfoLevel:
		return ansi.Info
	case WarnLevel:
		return ansi.Warn
	case ErrorLevel:
		return ansi.Error
	case CriticalLevel:
		return ansi.Critical
	default:
		return ""
	}
}

// ApplyStyle returns line with seq wrapped around rng and a reset appended
// after it. Empty sequences and ranges that are empty or out of bounds return
// line unchanged. The input slice is never modified.
func ApplyStyle(line []byte, rng StyleRange, seq string) []byte {
	if seq == "" || rng.Begin < 0 || rng.End > len(line) || rng.Begin >= rng.End {
		return line
	}
	styled := make([]byte, 0, len(line)+len(seq)+len(ansi.Reset))
	styled = append(styled, line[:rng.Begin]...)
	styled = append(styled, seq...)
	styled = append(styled, line[rng.Begin:rng.End]...)
	styled = append(styled, ansi.Reset...)
	styled = append(styled, line[rng.End:]...)
	return styled
}
