package recfmt

import (
	"strconv"
	"unicode/utf8"
)

// ReserveSize is the capacity formatters reserve in the destination buffer
// before writing a line. One typical formatted line fits without regrowing.
const ReserveSize = 256

// Buffer accumulates one formatted line. It grows on demand and records the
// first write failure: once a write fails every later write is dropped and
// Err keeps returning the original cause, so formatters can write a whole
// line and check for failure once. Writes are whole or not at all, which
// keeps the content a valid text prefix even after a failed append.
//
// A Buffer is owned by a single Format call at a time; it is not safe for
// concurrent use. Callers that want reuse keep buffers in their own pools and
// Reset between records.
type Buffer struct {
	buf   []byte
	limit int
	err   error
}

// NewBuffer returns an empty buffer with no preallocated capacity.
func NewBuffer() *Buffer { return &Buffer{} }

// SetLimit caps the buffer at n bytes; writes that would exceed it fail with
// ErrBufferFull. A limit of 0 or less removes the cap. The limit survives
// Reset, standing in for a destination of fixed size in tests.
func (b *Buffer) SetLimit(n int) {
	if n <= 0 {
		n = 0
	}
	b.limit = n
}

// Reserve grows capacity so n more bytes fit without reallocation. It never
// fails; when a limit is set the reservation is clamped to it.
func (b *Buffer) Reserve(n int) {
	if b.err != nil || n <= 0 {
		return
	}
	need := len(b.buf) + n
	if b.limit > 0 && need > b.limit {
		need = b.limit
	}
	if need > cap(b.buf) {
		b.grow(need)
	}
}

func (b *Buffer) grow(need int) {
	newCap := max(cap(b.buf)*2, need)
	if b.limit > 0 && newCap > b.limit {
		newCap = b.limit
	}
	newBuf := make([]byte, len(b.buf), newCap)
	copy(newBuf, b.buf)
	b.buf = newBuf
}

// ensure reports whether n more bytes may be written, growing as needed and
// recording ErrBufferFull when the limit would be exceeded.
func (b *Buffer) ensure(n int) bool {
	if b.err != nil {
		return false
	}
	need := len(b.buf) + n
	if b.limit > 0 && need > b.limit {
		b.err = ErrBufferFull
		return false
	}
	if need > cap(b.buf) {
		b.grow(need)
	}
	return true
}

// WriteString appends s.
func (b *Buffer) WriteString(s string) {
	if len(s) == 0 {
		return
	}
	if !b.ensure(len(s)) {
		return
	}
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte. The returned error is the buffer's sticky
// error and is nil on success.
func (b *Buffer) WriteByte(c byte) error {
	if !b.ensure(1) {
		return b.err
	}
	b.buf = append(b.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r as one unit; a failed append
// leaves no partial encoding behind.
func (b *Buffer) WriteRune(r rune) {
	if r < utf8.RuneSelf {
		_ = b.WriteByte(byte(r))
		return
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	if !b.ensure(n) {
		return
	}
	b.buf = append(b.buf, tmp[:n]...)
}

// WriteInt appends the decimal representation of v.
func (b *Buffer) WriteInt(v int64) {
	u := uint64(v)
	width := 0
	if v < 0 {
		u = uint64(-v)
		width = 1
	}
	width += uintWidth(u)
	if !b.ensure(width) {
		return
	}
	b.buf = strconv.AppendInt(b.buf, v, 10)
}

// WriteUint appends the decimal representation of v.
func (b *Buffer) WriteUint(v uint64) {
	if !b.ensure(uintWidth(v)) {
		return
	}
	b.buf = strconv.AppendUint(b.buf, v, 10)
}

// WriteUintPad appends v in decimal, left-padded with zeros to at least width
// digits. Values wider than width are written in full.
func (b *Buffer) WriteUintPad(v uint64, width int) {
	digits := uintWidth(v)
	total := max(digits, width)
	if !b.ensure(total) {
		return
	}
	for i := digits; i < width; i++ {
		b.buf = append(b.buf, '0')
	}
	b.buf = strconv.AppendUint(b.buf, v, 10)
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Bytes returns the accumulated line. The slice aliases the buffer's storage
// and is valid until the next write or Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the accumulated line.
func (b *Buffer) String() string { return string(b.buf) }

// Err returns the first write failure, or nil.
func (b *Buffer) Err() error { return b.err }

// Reset empties the buffer and clears the sticky error, keeping capacity and
// limit for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.err = nil
}

func uintWidth(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
