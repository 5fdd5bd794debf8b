// Package recfmt turns captured log records into text lines. It is the
// formatting half of a logging pipeline: upstream code builds a Record per
// event, a Formatter renders it into a reusable Buffer, and the sink that
// owns the destination writes the bytes out. Formatting runs on the emitting
// goroutine and the hot path is allocation-free once caches are warm.
//
// # Design overview
//
//   - Records are immutable value types carrying level, payload, instant,
//     optional logger name, optional source location, and the goroutine id
//     captured at construction.
//   - Buffers grow on demand, can pre-reserve capacity, and record the first
//     write failure stickily so a formatter writes a whole line and checks
//     once.
//   - Calendar decomposition is amortized by LocalTimeCache: one mutex, one
//     recomputation per calendar second, copies out. All formatters in a
//     process share the default cache unless given their own.
//   - Formatters report a style range alongside the line, so color belongs to
//     the sink: decorate the range with ApplyStyle when StyleEnabled says the
//     destination wants it, or ignore it entirely.
//
// # Usage
//
//	f := recfmt.NewFullFormatter()
//	buf := recfmt.NewBuffer()
//	r := recfmt.NewRecord(recfmt.InfoLevel, "ready")
//	info, err := f.Format(&r, buf)
//	if err != nil {
//		// the buffer may hold a partial line; discard it
//	}
//	os.Stdout.Write(buf.Bytes())
//
// Templated layouts come from the pattern subpackage:
//
//	f := pattern.Must("[{time}.{millisecond}] [{^{level}}] {payload}{eol}")
//
// # Integration notes
//
//   - Sinks own I/O and buffer reuse; Reset a Buffer between records and pool
//     buffers where throughput matters.
//   - Clone a formatter when a sink wants a private instance.
//   - The ansi subpackage exposes palette controls (ansi.SetPalette) for the
//     sequences LevelSequence hands to ApplyStyle.
//
// Benchmarks against other logging stacks live under benchmark/ and runnable
// demos under examples/.
package recfmt
