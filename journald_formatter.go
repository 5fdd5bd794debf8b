package recfmt

// JournaldFormatter renders the minimal layout for sinks whose transport
// stamps time and origin itself, as systemd-journald does.
//
//	[logger-name] [warn] some message
//
// The logger-name segment appears only when the record is named. The line
// terminator is unconditional: journald treats the newline as the record
// delimiter, so there is no WithoutEOL variant. The reported style range
// covers the level name.
type JournaldFormatter struct{}

// NewJournaldFormatter returns a JournaldFormatter.
func NewJournaldFormatter() *JournaldFormatter {
	return &JournaldFormatter{}
}

// Format renders r into dest and reports the style range spanning the level
// name.
func (f *JournaldFormatter) Format(r *Record, dest *Buffer) (ExtraInfo, error) {
	dest.Reserve(ReserveSize)

	dest.WriteString("[")
	if name := r.LoggerName(); name != "" {
		dest.WriteString(name)
		dest.WriteString("] [")
	}
	begin := dest.Len()
	dest.WriteString(r.Level().String())
	end := dest.Len()
	dest.WriteString("] ")
	dest.WriteString(r.Payload())
	dest.WriteString(EOL)

	if err := dest.Err(); err != nil {
		return ExtraInfo{}, &FormatError{Err: err}
	}
	return StyledExtraInfo(begin, end), nil
}

// Clone returns an independent copy of the formatter.
func (f *JournaldFormatter) Clone() Formatter {
	c := *f
	return &c
}
