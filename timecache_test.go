package recfmt

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

var cacheTestZone = time.FixedZone("UTC+8", 8*3600)

func TestLocalTimeCacheDecomposition(t *testing.T) {
	c := NewLocalTimeCacheIn(cacheTestZone)
	tm := time.Date(2012, time.March, 4, 5, 6, 7, 8009010, cacheTestZone)
	d := c.Get(tm)

	cases := []struct {
		field string
		got   string
		want  string
	}{
		{"WeekdayShort", d.WeekdayShort, "Sun"},
		{"WeekdayFull", d.WeekdayFull, "Sunday"},
		{"MonthNameShort", d.MonthNameShort, "Mar"},
		{"MonthNameFull", d.MonthNameFull, "March"},
		{"Year", d.Year, "2012"},
		{"YearShort", d.YearShort, "12"},
		{"Month", d.Month, "03"},
		{"Day", d.Day, "04"},
		{"Hour", d.Hour, "05"},
		{"Hour12", d.Hour12, "05"},
		{"Minute", d.Minute, "06"},
		{"Second", d.Second, "07"},
		{"AmPm", d.AmPm, "AM"},
		{"TzOffset", d.TzOffset, "+08:00"},
		{"Unix", d.Unix, strconv.FormatInt(tm.Unix(), 10)},
		{"FullSecond", d.FullSecond, "2012-03-04 05:06:07"},
		{"ISO8601Second", d.ISO8601Second, "2012-03-04T05:06:07"},
		{"DateTime", d.DateTime, "Sun Mar 04 05:06:07 2012"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.field, tc.got, tc.want)
		}
	}

	if d.Nanosecond() != 8009010 {
		t.Fatalf("Nanosecond: got %d want %d", d.Nanosecond(), 8009010)
	}
	if d.Microsecond() != 8009 {
		t.Fatalf("Microsecond: got %d want %d", d.Microsecond(), 8009)
	}
	if d.Millisecond() != 8 {
		t.Fatalf("Millisecond: got %d want %d", d.Millisecond(), 8)
	}
}

func TestLocalTimeCacheSameSecondShared(t *testing.T) {
	c := NewLocalTimeCacheIn(cacheTestZone)
	tm := time.Date(2022, time.November, 2, 9, 23, 12, 100, cacheTestZone)

	first := c.Get(tm)
	second := c.Get(tm.Add(500 * time.Millisecond))

	if first.FullSecond != second.FullSecond || first.Unix != second.Unix {
		t.Fatalf("same second diverged: %q vs %q", first.FullSecond, second.FullSecond)
	}
	if second.Nanosecond() != 500000100 {
		t.Fatalf("nanos must follow the instant: got %d", second.Nanosecond())
	}
}

func TestLocalTimeCacheRollsOver(t *testing.T) {
	c := NewLocalTimeCacheIn(cacheTestZone)
	tm := time.Date(2022, time.November, 2, 9, 23, 12, 0, cacheTestZone)

	if got := c.Get(tm).Second; got != "12" {
		t.Fatalf("second: got %q want %q", got, "12")
	}
	if got := c.Get(tm.Add(time.Second)).Second; got != "13" {
		t.Fatalf("after rollover: got %q want %q", got, "13")
	}
}

func TestLocalTimeCacheBackwardJump(t *testing.T) {
	c := NewLocalTimeCacheIn(cacheTestZone)
	tm := time.Date(2022, time.November, 2, 9, 23, 12, 0, cacheTestZone)

	c.Get(tm)
	d := c.Get(tm.Add(-5 * time.Second))
	if d.Second != "07" {
		t.Fatalf("backward jump not recomputed: got %q want %q", d.Second, "07")
	}
	if d.FullSecond != "2022-11-02 09:23:07" {
		t.Fatalf("backward jump full second: got %q", d.FullSecond)
	}
}

func TestLocalTimeCacheSnapshotSurvivesRefresh(t *testing.T) {
	c := NewLocalTimeCacheIn(cacheTestZone)
	tm := time.Date(2022, time.November, 2, 9, 23, 12, 0, cacheTestZone)

	d := c.Get(tm)
	c.Get(tm.Add(time.Minute))

	if d.FullSecond != "2022-11-02 09:23:12" {
		t.Fatalf("copied-out snapshot changed under refresh: %q", d.FullSecond)
	}
}

func TestLocalTimeCacheHour12Boundaries(t *testing.T) {
	c := NewLocalTimeCacheIn(cacheTestZone)
	cases := []struct {
		hour   int
		hour12 string
		amPm   string
	}{
		{0, "12", "AM"},
		{1, "01", "AM"},
		{11, "11", "AM"},
		{12, "12", "PM"},
		{13, "01", "PM"},
		{23, "11", "PM"},
	}
	for _, tc := range cases {
		d := c.Get(time.Date(2022, time.November, 2, tc.hour, 0, 0, 0, cacheTestZone))
		if d.Hour12 != tc.hour12 || d.AmPm != tc.amPm {
			t.Fatalf("hour %d: got %s %s want %s %s", tc.hour, d.Hour12, d.AmPm, tc.hour12, tc.amPm)
		}
	}
}

func TestLocalTimeCacheNegativeOffset(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)
	c := NewLocalTimeCacheIn(zone)
	d := c.Get(time.Date(2022, time.November, 2, 9, 23, 12, 0, zone))
	if d.TzOffset != "-05:00" {
		t.Fatalf("tz offset: got %q want %q", d.TzOffset, "-05:00")
	}
}

func TestLocalTimeCacheOutOfRangeYear(t *testing.T) {
	c := NewLocalTimeCacheIn(time.UTC)
	tm := time.Date(12345, time.March, 4, 5, 6, 7, 0, time.UTC)
	d := c.Get(tm)

	if d.Year != "12345" {
		t.Fatalf("far-future year: got %q want %q", d.Year, "12345")
	}
	if d.Month != "03" || d.Day != "04" || d.Second != "07" {
		t.Fatalf("fallback components wrong: %q-%q %q", d.Month, d.Day, d.Second)
	}
	if d.WeekdayShort == "" || d.Unix == "" {
		t.Fatalf("fallback skipped fields: weekday %q unix %q", d.WeekdayShort, d.Unix)
	}
}

func TestLocalTimeCacheConcurrentGet(t *testing.T) {
	c := NewLocalTimeCacheIn(cacheTestZone)
	base := time.Date(2022, time.November, 2, 9, 23, 12, 0, cacheTestZone)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				tm := base.Add(time.Duration((g*i)%3) * time.Second)
				d := c.Get(tm)
				want := tm.Format("2006-01-02 15:04:05")
				if d.FullSecond != want {
					t.Errorf("FullSecond: got %q want %q", d.FullSecond, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDefaultTimeCacheIsShared(t *testing.T) {
	if DefaultTimeCache() != DefaultTimeCache() {
		t.Fatalf("expected one process-wide cache")
	}
}
