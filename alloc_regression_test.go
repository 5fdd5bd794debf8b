package recfmt_test

import (
	"testing"
	"time"

	"pkt.systems/recfmt"
	"pkt.systems/recfmt/pattern"
)

// Regression: steady-state formatting should allocate 0 bytes per record for
// every built-in formatter and for compiled pattern templates when the caller
// reuses its destination buffer.
func TestFormattersAllocateZero(t *testing.T) {
	tm := time.Date(2022, time.November, 2, 9, 23, 12, 263972000, formatterTestZone)
	src := recfmt.NewSourceLocation("pkt.systems/app/web", "/srv/app/web/handler.go", 42, 0)
	r := warnRecordAt(tm).WithName("app-core").WithSource(&src)
	cache := recfmt.NewLocalTimeCacheIn(formatterTestZone)

	cases := []struct {
		name string
		f    recfmt.Formatter
	}{
		{"full", recfmt.NewFullFormatter().WithTimeCache(cache)},
		{"iso8601", recfmt.NewISO8601Formatter().WithTimeCache(cache)},
		{"journald", recfmt.NewJournaldFormatter()},
		{"pattern", pattern.Must(
			"[{datetime}] [{logger}] [{^{level}}] {payload} ({file}:{line}){eol}",
			pattern.WithTimeCache(cache),
		)},
	}

	for _, tc := range cases {
		buf := recfmt.NewBuffer()

		// Warm the time cache, the render pool, and the buffer so the measured
		// run is steady-state.
		if _, err := tc.f.Format(&r, buf); err != nil {
			t.Fatalf("%s: warm format: %v", tc.name, err)
		}

		allocs := testing.AllocsPerRun(1000, func() {
			buf.Reset()
			if _, err := tc.f.Format(&r, buf); err != nil {
				t.Fatalf("%s: format: %v", tc.name, err)
			}
		})
		if allocs != 0 {
			t.Fatalf("%s: expected 0 allocs/record, got %.2f", tc.name, allocs)
		}
	}
}
