// Package ansi provides the ANSI escape sequences and palette helpers used to
// decorate the style range formatters report. The exported level variables can
// be overridden or swapped as a set via SetPalette so callers can apply 16- or
// 256-colour schemes without touching formatter internals.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences used by the built-in
// palettes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Per-level sequences, read by sinks when decorating a line. Swap them as a
// set with SetPalette.
var (
	Trace    = Faint
	Debug    = Cyan
	Info     = Green
	Warn     = BrightYellow
	Error    = BrightRed
	Critical = Bold + Red
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette, one escape sequence per level. See
// the Palette* variables for examples.
type Palette struct {
	Trace    string
	Debug    string
	Info     string
	Warn     string
	Error    string
	Critical string
}

// SetPalette sets the package-level sequence variables. Empty fields keep
// their current value, so partial palettes override selectively.
//
//	ansi.SetPalette(ansi.PaletteSynthwave84)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	current := snapshotLocked()
	Trace = f(palette.Trace, current.Trace)
	Debug = f(palette.Debug, current.Debug)
	Info = f(palette.Info, current.Info)
	Warn = f(palette.Warn, current.Warn)
	Error = f(palette.Error, current.Error)
	Critical = f(palette.Critical, current.Critical)
}

// Snapshot returns the current palette values.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteSynthwave84)
//	// run assertions...
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		Trace:    Trace,
		Debug:    Debug,
		Info:     Info,
		Warn:     Warn,
		Error:    Error,
		Critical: Critical,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
