package recfmt

import "errors"

// ErrBufferFull reports a write into a Buffer whose limit is exhausted.
var ErrBufferFull = errors.New("recfmt: output buffer limit reached")

// FormatError wraps a failure while formatting a record. It is the only error
// type Format returns, so callers can tell formatting failures apart from the
// I/O errors their sinks raise. When Format fails the destination buffer may
// hold a partial line; callers discard it.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return "recfmt: format record"
	}
	return "recfmt: format record: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }
