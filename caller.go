package recfmt

import (
	"runtime"
	"strings"
)

// SourceFromCaller captures the source location skip frames above the caller.
// skip works like runtime.Caller: 0 names the caller of SourceFromCaller
// itself. It returns nil when the caller cannot be determined.
//
// Example:
//
//	r := recfmt.NewRecord(recfmt.ErrorLevel, "beeper unreachable").
//		WithSource(recfmt.SourceFromCaller(0))
func SourceFromCaller(skip int) *SourceLocation {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	return &SourceLocation{
		modulePath: packagePathForPC(pc),
		file:       file,
		line:       line,
	}
}

// packagePathForPC derives the import path of the package a program counter
// belongs to. runtime function names look like
// "pkt.systems/recfmt/pattern.(*Formatter).Format"; everything up to the first
// dot after the last slash is the package.
func packagePathForPC(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	name := fn.Name()
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}
