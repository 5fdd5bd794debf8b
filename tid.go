package recfmt

import "runtime"

// CurrentTID returns the id of the calling goroutine, parsed from the
// runtime.Stack header ("goroutine 123 [running]:"). The id is stable for the
// lifetime of a goroutine and never reused while it lives, which is what
// record thread ids need; Go offers no portable OS thread id and goroutines
// migrate between threads anyway.
func CurrentTID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
