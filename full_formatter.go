package recfmt

// FullFormatter is the default formatter: every field the record carries, in
// bracketed segments, milliseconds precision.
//
//	[2022-11-02 09:23:12.263] [logger-name] [warn] [pkg/path, file.go:12] some message
//
// Logger name and source segments appear only when the record carries them.
// The reported style range covers the level name.
type FullFormatter struct {
	cache *LocalTimeCache
	eol   string
}

// NewFullFormatter returns a FullFormatter using the process-wide time cache
// and terminating each line with EOL.
func NewFullFormatter() *FullFormatter {
	return &FullFormatter{cache: DefaultTimeCache(), eol: EOL}
}

// WithTimeCache returns a copy of the formatter using cache for calendar
// decomposition. Passing nil restores the process-wide cache.
func (f *FullFormatter) WithTimeCache(cache *LocalTimeCache) *FullFormatter {
	c := *f
	if cache == nil {
		cache = DefaultTimeCache()
	}
	c.cache = cache
	return &c
}

// WithoutEOL returns a copy of the formatter that does not terminate lines,
// for sinks that add their own terminator.
func (f *FullFormatter) WithoutEOL() *FullFormatter {
	c := *f
	c.eol = ""
	return &c
}

// Format renders r into dest and reports the style range spanning the level
// name.
func (f *FullFormatter) Format(r *Record, dest *Buffer) (ExtraInfo, error) {
	dest.Reserve(ReserveSize)
	d := f.cache.Get(r.Time())

	dest.WriteString("[")
	dest.WriteString(d.FullSecond)
	dest.WriteString(".")
	dest.WriteUintPad(uint64(d.Millisecond()), 3)
	dest.WriteString("] [")
	if name := r.LoggerName(); name != "" {
		dest.WriteString(name)
		dest.WriteString("] [")
	}
	begin := dest.Len()
	dest.WriteString(r.Level().String())
	end := dest.Len()
	if src := r.Source(); src != nil {
		dest.WriteString("] [")
		dest.WriteString(src.ModulePath())
		dest.WriteString(", ")
		dest.WriteString(src.File())
		dest.WriteString(":")
		dest.WriteInt(int64(src.Line()))
	}
	dest.WriteString("] ")
	dest.WriteString(r.Payload())
	dest.WriteString(f.eol)

	if err := dest.Err(); err != nil {
		return ExtraInfo{}, &FormatError{Err: err}
	}
	return StyledExtraInfo(begin, end), nil
}

// Clone returns an independent copy of the formatter.
func (f *FullFormatter) Clone() Formatter {
	c := *f
	return &c
}
