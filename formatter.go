package recfmt

// StyleRange marks the half-open byte span [Begin, End) of a formatted line
// that a sink may decorate, typically the level name.
type StyleRange struct {
	Begin int
	End   int
}

// Len returns the number of bytes the range covers.
func (r StyleRange) Len() int { return r.End - r.Begin }

// ExtraInfo carries metadata a formatter reports about the line it produced.
// The zero value reports nothing.
type ExtraInfo struct {
	style  StyleRange
	styled bool
}

// StyledExtraInfo returns an ExtraInfo reporting [begin, end) as the style
// range. Custom Formatter implementations use it; the built-in formatters and
// the pattern package report their ranges through it as well.
func StyledExtraInfo(begin, end int) ExtraInfo {
	return ExtraInfo{style: StyleRange{Begin: begin, End: end}, styled: true}
}

// StyleRange returns the reported style range and whether one was reported.
func (i ExtraInfo) StyleRange() (StyleRange, bool) {
	return i.style, i.styled
}

// Formatter renders records into text. Implementations append exactly one
// formatted line (terminator included, when the formatter ends lines) to dest
// and report per-line metadata. On failure the buffer may hold a partial
// line; callers discard it and nothing else about the formatter's state
// changes.
//
// A Formatter must be safe for concurrent Format calls once built. Clone
// returns an independent instance for sinks that want their own copy;
// implementations with no mutable state may share internals.
type Formatter interface {
	Format(r *Record, dest *Buffer) (ExtraInfo, error)
	Clone() Formatter
}
