package pattern_test

import (
	"fmt"
	"time"

	"pkt.systems/recfmt"
	"pkt.systems/recfmt/pattern"
)

func ExampleMust() {
	zone := time.FixedZone("UTC+8", 8*3600)
	f := pattern.Must("[{date} {time}.{millisecond}] {^{level}}: {payload}",
		pattern.WithTimeCache(recfmt.NewLocalTimeCacheIn(zone)))

	r := recfmt.NewRecord(recfmt.InfoLevel, "route cache warmed").
		WithTime(time.Date(2012, time.March, 4, 5, 6, 7, 8000000, zone))

	buf := recfmt.NewBuffer()
	info, _ := f.Format(&r, buf)
	rng, _ := info.StyleRange()

	fmt.Println(buf.String())
	fmt.Println(buf.String()[rng.Begin:rng.End])
	// Output:
	// [2012-03-04 05:06:07.008] info: route cache warmed
	// info
}
