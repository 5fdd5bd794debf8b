package recfmt

// ISO8601Formatter renders a single-line layout led by an RFC 3339 timestamp
// with nanosecond precision and zone offset, trailed by the goroutine id.
//
//	[2022-11-02T09:23:12.263972000+01:00] warn: some message [file.go:12] 12345
//
// The source segment appears only when the record carries a location, and
// names just the file's base name. The reported style range covers the level
// name.
type ISO8601Formatter struct {
	cache *LocalTimeCache
	eol   string
}

// NewISO8601Formatter returns an ISO8601Formatter using the process-wide time
// cache and terminating each line with EOL.
func NewISO8601Formatter() *ISO8601Formatter {
	return &ISO8601Formatter{cache: DefaultTimeCache(), eol: EOL}
}

// WithTimeCache returns a copy of the formatter using cache for calendar
// decomposition. Passing nil restores the process-wide cache.
func (f *ISO8601Formatter) WithTimeCache(cache *LocalTimeCache) *ISO8601Formatter {
	c := *f
	if cache == nil {
		cache = DefaultTimeCache()
	}
	c.cache = cache
	return &c
}

// WithoutEOL returns a copy of the formatter that does not terminate lines.
func (f *ISO8601Formatter) WithoutEOL() *ISO8601Formatter {
	c := *f
	c.eol = ""
	return &c
}

// Format renders r into dest and reports the style range spanning the level
// name.
func (f *ISO8601Formatter) Format(r *Record, dest *Buffer) (ExtraInfo, error) {
	dest.Reserve(ReserveSize)
	d := f.cache.Get(r.Time())

	dest.WriteString("[")
	dest.WriteString(d.ISO8601Second)
	dest.WriteString(".")
	dest.WriteUintPad(uint64(d.Nanosecond()), 9)
	dest.WriteString(d.TzOffset)
	dest.WriteString("] ")
	begin := dest.Len()
	dest.WriteString(r.Level().String())
	end := dest.Len()
	dest.WriteString(": ")
	dest.WriteString(r.Payload())
	if src := r.Source(); src != nil {
		dest.WriteString(" [")
		dest.WriteString(src.FileName())
		dest.WriteString(":")
		dest.WriteInt(int64(src.Line()))
		dest.WriteString("]")
	}
	dest.WriteString(" ")
	dest.WriteUint(r.TID())
	dest.WriteString(f.eol)

	if err := dest.Err(); err != nil {
		return ExtraInfo{}, &FormatError{Err: err}
	}
	return StyledExtraInfo(begin, end), nil
}

// Clone returns an independent copy of the formatter.
func (f *ISO8601Formatter) Clone() Formatter {
	c := *f
	return &c
}
