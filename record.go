package recfmt

import (
	"strings"
	"time"
)

// SourceLocation identifies the code location that produced a record.
type SourceLocation struct {
	modulePath string
	file       string
	line       int
	column     int
}

// NewSourceLocation builds a SourceLocation from explicit components. Callers
// that capture the location themselves (code generators, bindings to other
// runtimes) use this; Go call sites usually prefer SourceFromCaller.
func NewSourceLocation(modulePath, file string, line, column int) SourceLocation {
	return SourceLocation{modulePath: modulePath, file: file, line: line, column: column}
}

// ModulePath returns the import path of the package containing the call site.
func (l *SourceLocation) ModulePath() string { return l.modulePath }

// File returns the source file as captured, usually a full path.
func (l *SourceLocation) File() string { return l.file }

// FileName returns the last element of File.
func (l *SourceLocation) FileName() string {
	if i := strings.LastIndexByte(l.file, '/'); i >= 0 {
		return l.file[i+1:]
	}
	return l.file
}

// Line returns the 1-based source line.
func (l *SourceLocation) Line() int { return l.line }

// Column returns the 1-based source column, or 0 when the producer could not
// capture one. runtime.Caller does not report columns, so locations built by
// SourceFromCaller always carry 0 here.
func (l *SourceLocation) Column() int { return l.column }

// Record is one captured log event: what to say, how severe it is, and the
// context (instant, logger name, call site, goroutine) it was said in. Records
// are immutable; the With* methods return modified copies and the receiver is
// never touched. Construction captures the wall clock and the calling
// goroutine's id, so records should be built on the goroutine that emits them.
type Record struct {
	payload string
	name    string
	src     *SourceLocation
	time    time.Time
	tid     uint64
	level   Level
}

// NewRecord captures a record for payload at the given level, stamped with
// time.Now and the current goroutine id.
func NewRecord(level Level, payload string) Record {
	return Record{
		payload: payload,
		time:    time.Now(),
		tid:     CurrentTID(),
		level:   level,
	}
}

// WithName returns a copy of the record carrying the logger name.
func (r Record) WithName(name string) Record {
	r.name = name
	return r
}

// WithSource returns a copy of the record carrying the source location.
// Passing nil clears it.
func (r Record) WithSource(src *SourceLocation) Record {
	r.src = src
	return r
}

// WithTime returns a copy of the record stamped with t instead of the captured
// instant. Intended for tests that need deterministic output.
func (r Record) WithTime(t time.Time) Record {
	r.time = t
	return r
}

// Level returns the record's severity.
func (r *Record) Level() Level { return r.level }

// Payload returns the record's message text.
func (r *Record) Payload() string { return r.payload }

// LoggerName returns the name of the logger that emitted the record, or ""
// when the logger is unnamed.
func (r *Record) LoggerName() string { return r.name }

// Source returns the call site that produced the record, or nil when none was
// captured.
func (r *Record) Source() *SourceLocation { return r.src }

// Time returns the instant the record was captured.
func (r *Record) Time() time.Time { return r.time }

// TID returns the id of the goroutine that constructed the record.
func (r *Record) TID() uint64 { return r.tid }
