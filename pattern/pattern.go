// Package pattern compiles template strings into formatters.
//
// A template is literal text with embedded fields:
//
//	f, err := pattern.New("[{time}.{millisecond}] [{level}] {payload}{eol}")
//
// # Template syntax
//
//   - {name} renders one field of the record; the full set of names is
//     returned by FieldNames.
//   - {{ and }} render literal braces.
//   - {^...} marks a styled span: the enclosed sub-template renders normally
//     and the span it covered is reported as the line's style range. At most
//     one styled span may appear in a template.
//
// Unknown field names, unbalanced braces, and repeated styled spans are
// compile-time errors of type CompileError; a compiled formatter never fails
// on the shape of its template again. Rendering walks the compiled items in
// order and aborts on the first write failure.
//
// # Field reference
//
// Record fields: level, level_short, payload, logger, tid, eol, source,
// file_name, file, line, column, module_path. Source fields render as empty
// text when the record carries no location; logger renders as empty text for
// unnamed records.
//
// Calendar fields, rendered in the formatter's local time cache zone:
// weekday_name, weekday_name_full, month_name, month_name_full, datetime,
// year, year_short, date, date_short, month, day, hour, hour_12, minute,
// second, millisecond, microsecond, nanosecond, am_pm, time, time_12,
// time_short, tz_offset, unix_timestamp.
package pattern

import (
	"sync"

	"pkt.systems/recfmt"
)

// Formatter renders records according to a compiled template. Build one with
// New or Must; the zero value is not usable. A Formatter is immutable and
// safe for concurrent use.
type Formatter struct {
	items []item
	cache *recfmt.LocalTimeCache
}

// Option configures a Formatter during construction.
type Option func(*Formatter)

// WithTimeCache makes the formatter decompose record times through cache
// instead of the process-wide default.
func WithTimeCache(cache *recfmt.LocalTimeCache) Option {
	return func(f *Formatter) {
		if cache != nil {
			f.cache = cache
		}
	}
}

// New compiles template into a Formatter. Compilation failures are returned
// as *CompileError naming the offending token and its byte offset.
func New(template string, opts ...Option) (*Formatter, error) {
	items, err := parse(template)
	if err != nil {
		return nil, err
	}
	f := &Formatter{items: items, cache: recfmt.DefaultTimeCache()}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Must is like New but panics on compilation failure. It simplifies
// package-level template variables:
//
//	var access = pattern.Must("{date} {time} {payload}{eol}")
func Must(template string, opts ...Option) *Formatter {
	f, err := New(template, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// renderContext is the per-call state items render against: where calendar
// components come from and, once a styled span has rendered, the range it
// covered. Contexts are pooled; a Format call owns one from fetch to put.
type renderContext struct {
	cache      *recfmt.LocalTimeCache
	styleBegin int
	styleEnd   int
	styled     bool
}

var ctxPool = sync.Pool{
	New: func() any { return new(renderContext) },
}

// Format renders r into dest. When the template contains a styled span the
// returned ExtraInfo reports the byte range it produced.
func (f *Formatter) Format(r *recfmt.Record, dest *recfmt.Buffer) (recfmt.ExtraInfo, error) {
	dest.Reserve(recfmt.ReserveSize)

	ctx := ctxPool.Get().(*renderContext)
	ctx.cache = f.cache
	ctx.styled = false
	err := render(f.items, r, dest, ctx)
	var info recfmt.ExtraInfo
	if err == nil && ctx.styled {
		info = recfmt.StyledExtraInfo(ctx.styleBegin, ctx.styleEnd)
	}
	ctx.cache = nil
	ctxPool.Put(ctx)

	if err != nil {
		return recfmt.ExtraInfo{}, &recfmt.FormatError{Err: err}
	}
	return info, nil
}

// Clone returns a Formatter sharing the compiled template. The compiled items
// are immutable, so sinks can clone freely and format concurrently.
func (f *Formatter) Clone() recfmt.Formatter {
	c := *f
	return &c
}

func render(items []item, r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	for _, it := range items {
		if err := it.format(r, dest, ctx); err != nil {
			return err
		}
	}
	return nil
}
