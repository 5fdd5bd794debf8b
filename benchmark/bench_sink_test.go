package benchmark_test

import (
	"sync"
	"testing"
)

// countingSink drops everything it receives while serialising writers the way
// a shared log destination would, and keeps a byte total so benchmarks can
// report bytes/op and prove output actually flowed.
type countingSink struct {
	mu  sync.Mutex
	sum int64
}

func (s *countingSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	s.sum += int64(len(p))
	s.mu.Unlock()
	return len(p), nil
}

func (s *countingSink) Sync() error { return nil }

func (s *countingSink) reset() {
	s.mu.Lock()
	s.sum = 0
	s.mu.Unlock()
}

func (s *countingSink) bytesWritten() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sum
}

func reportBytesPerOp(b *testing.B, sink *countingSink) {
	if b.N > 0 {
		b.ReportMetric(float64(sink.bytesWritten())/float64(b.N), "bytes/op")
	}
}
