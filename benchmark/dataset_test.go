package benchmark_test

import (
	"time"

	"pkt.systems/recfmt"
)

const datasetSize = 256

var benchZone = time.FixedZone("UTC+1", 3600)

var benchPayloads = []string{
	"connection accepted",
	"request completed status=200 path=/v1/search latency_ms=12",
	"cache miss for key session:9f41c2 falling back to origin",
	"retrying broker handshake after transient dial timeout, attempt 3 of 5, backing off 250ms before the next round trip",
	"shutting down",
}

var benchLevels = []recfmt.Level{
	recfmt.TraceLevel,
	recfmt.DebugLevel,
	recfmt.InfoLevel,
	recfmt.InfoLevel,
	recfmt.WarnLevel,
	recfmt.ErrorLevel,
	recfmt.CriticalLevel,
}

// benchRecords is a deterministic mix of levels, payload lengths, and source
// captures, cycled by every benchmark so each library formats identical input.
// Record times advance 37ms per entry, so the shared time cache sees mostly
// repeated seconds with regular rollovers, as a busy service would.
var benchRecords = buildBenchRecords(datasetSize)

func buildBenchRecords(n int) []recfmt.Record {
	base := time.Date(2022, time.November, 2, 9, 23, 12, 0, benchZone)
	src := recfmt.NewSourceLocation("pkt.systems/app/web", "/srv/app/web/handler.go", 42, 0)

	records := make([]recfmt.Record, 0, n)
	for i := range n {
		r := recfmt.NewRecord(benchLevels[i%len(benchLevels)], benchPayloads[i%len(benchPayloads)]).
			WithTime(base.Add(time.Duration(i) * 37 * time.Millisecond)).
			WithName("bench")
		if i%3 == 0 {
			r = r.WithSource(&src)
		}
		records = append(records, r)
	}
	return records
}
