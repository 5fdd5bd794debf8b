package ansi

import (
	"sort"
	"strings"
)

// Built-in palettes. The default sticks to the 16-color sequences above; the
// themed palettes use 256-color codes approximating well-known editor
// schemes.
var (
	PaletteDefault = Palette{
		Trace:    Faint,
		Debug:    Cyan,
		Info:     Green,
		Warn:     BrightYellow,
		Error:    BrightRed,
		Critical: Bold + Red,
	}
	PaletteGruvbox = Palette{
		Trace:    "\x1b[38;5;245m",
		Debug:    "\x1b[38;5;109m",
		Info:     "\x1b[38;5;142m",
		Warn:     "\x1b[38;5;214m",
		Error:    "\x1b[38;5;167m",
		Critical: "\x1b[1;38;5;124m",
	}
	PaletteNord = Palette{
		Trace:    "\x1b[38;5;240m",
		Debug:    "\x1b[38;5;110m",
		Info:     "\x1b[38;5;108m",
		Warn:     "\x1b[38;5;222m",
		Error:    "\x1b[38;5;174m",
		Critical: "\x1b[1;38;5;131m",
	}
	PaletteDracula = Palette{
		Trace:    "\x1b[38;5;61m",
		Debug:    "\x1b[38;5;117m",
		Info:     "\x1b[38;5;84m",
		Warn:     "\x1b[38;5;228m",
		Error:    "\x1b[38;5;203m",
		Critical: "\x1b[1;38;5;212m",
	}
	PaletteTokyoNight = Palette{
		Trace:    "\x1b[38;5;60m",
		Debug:    "\x1b[38;5;111m",
		Info:     "\x1b[38;5;115m",
		Warn:     "\x1b[38;5;179m",
		Error:    "\x1b[38;5;210m",
		Critical: "\x1b[1;38;5;197m",
	}
	PaletteSolarizedDark = Palette{
		Trace:    "\x1b[38;5;240m",
		Debug:    "\x1b[38;5;37m",
		Info:     "\x1b[38;5;64m",
		Warn:     "\x1b[38;5;136m",
		Error:    "\x1b[38;5;160m",
		Critical: "\x1b[1;38;5;125m",
	}
	PaletteCatppuccinMocha = Palette{
		Trace:    "\x1b[38;5;103m",
		Debug:    "\x1b[38;5;117m",
		Info:     "\x1b[38;5;151m",
		Warn:     "\x1b[38;5;223m",
		Error:    "\x1b[38;5;211m",
		Critical: "\x1b[1;38;5;204m",
	}
	PaletteSynthwave84 = Palette{
		Trace:    "\x1b[38;5;97m",
		Debug:    "\x1b[38;5;81m",
		Info:     "\x1b[38;5;155m",
		Warn:     "\x1b[38;5;221m",
		Error:    "\x1b[38;5;205m",
		Critical: "\x1b[1;38;5;198m",
	}
)

var namedPalettes = map[string]*Palette{
	"default":          &PaletteDefault,
	"gruvbox":          &PaletteGruvbox,
	"nord":             &PaletteNord,
	"dracula":          &PaletteDracula,
	"tokyo-night":      &PaletteTokyoNight,
	"solarized-dark":   &PaletteSolarizedDark,
	"catppuccin-mocha": &PaletteCatppuccinMocha,
	"synthwave-84":     &PaletteSynthwave84,
}

var paletteAliases = map[string]string{
	"tokyonight":      "tokyo-night",
	"solarizeddark":   "solarized-dark",
	"catppuccinmocha": "catppuccin-mocha",
	"synthwave84":     "synthwave-84",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support compatibility aliases; unknown names
// resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette
	}
	return &PaletteDefault
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
