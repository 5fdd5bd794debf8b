package recfmt

import (
	"testing"
	"time"
)

func BenchmarkLocalTimeCacheGet(b *testing.B) {
	zone := time.FixedZone("UTC+8", 8*3600)

	b.Run("same_second", func(b *testing.B) {
		cache := NewLocalTimeCacheIn(zone)
		tm := time.Date(2022, time.November, 2, 9, 23, 12, 263972000, zone)
		_ = cache.Get(tm)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cache.Get(tm)
		}
	})

	b.Run("rolling_second", func(b *testing.B) {
		cache := NewLocalTimeCacheIn(zone)
		tm := time.Date(2022, time.November, 2, 9, 23, 12, 0, zone)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cache.Get(tm.Add(time.Duration(i) * time.Second))
		}
	})

	b.Run("uncached_format", func(b *testing.B) {
		// Baseline the cache is competing against.
		tm := time.Date(2022, time.November, 2, 9, 23, 12, 263972000, zone)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = tm.Format("2006-01-02 15:04:05")
		}
	})

	b.Run("parallel", func(b *testing.B) {
		cache := NewLocalTimeCacheIn(zone)
		tm := time.Date(2022, time.November, 2, 9, 23, 12, 263972000, zone)
		_ = cache.Get(tm)
		b.ReportAllocs()
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = cache.Get(tm)
			}
		})
	})
}
