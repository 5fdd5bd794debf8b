package recfmt

import (
	"strconv"
	"sync"
	"time"
)

// Decomposition is the set of string-formatted calendar components for one
// calendar second, plus the sub-second part of the instant it was requested
// for. The strings are immutable copies; a Decomposition stays valid after
// the cache that produced it moves on to another second.
type Decomposition struct {
	// Per-second components, cached until the calendar second changes.
	WeekdayShort   string // "Sun"
	WeekdayFull    string // "Sunday"
	MonthNameShort string // "Mar"
	MonthNameFull  string // "March"
	Year           string // "2012"
	YearShort      string // "12"
	Month          string // "03"
	Day            string // "04"
	Hour           string // "05"
	Hour12         string // "05", 12-hour clock in 01..12
	Minute         string // "06"
	Second         string // "07"
	AmPm           string // "AM"
	TzOffset       string // "+08:00"
	Unix           string // "1330808767"
	FullSecond     string // "2012-03-04 05:06:07"
	ISO8601Second  string // "2012-03-04T05:06:07"
	DateTime       string // "Sun Mar 04 05:06:07 2012"

	nanos int
}

// Nanosecond returns the sub-second part of the requested instant in
// nanoseconds.
func (d *Decomposition) Nanosecond() int { return d.nanos }

// Microsecond returns the sub-second part truncated to microseconds.
func (d *Decomposition) Microsecond() int { return d.nanos / 1e3 }

// Millisecond returns the sub-second part truncated to milliseconds.
func (d *Decomposition) Millisecond() int { return d.nanos / 1e6 }

// LocalTimeCache amortizes calendar decomposition for formatters. Breaking an
// instant into formatted components costs far more than a mutex acquisition,
// and within one calendar second every record shares the same components, so
// the cache recomputes once per second and hands out copies. Any change of
// second triggers recomputation, so a wall clock jumping backward serves
// stale strings at most once.
//
// The zero value is not usable; construct with NewLocalTimeCache or
// NewLocalTimeCacheIn. Formatters hold the cache by reference and default to
// the process-wide DefaultTimeCache.
type LocalTimeCache struct {
	mu    sync.Mutex
	loc   *time.Location
	unix  int64
	valid bool
	dec   Decomposition
}

// NewLocalTimeCache returns a cache that decomposes instants in the system's
// local zone.
func NewLocalTimeCache() *LocalTimeCache {
	return NewLocalTimeCacheIn(time.Local)
}

// NewLocalTimeCacheIn returns a cache that decomposes instants in loc. Tests
// pin a fixed zone this way to make formatter output deterministic.
func NewLocalTimeCacheIn(loc *time.Location) *LocalTimeCache {
	if loc == nil {
		loc = time.Local
	}
	return &LocalTimeCache{loc: loc}
}

var defaultTimeCache = sync.OnceValue(NewLocalTimeCache)

// DefaultTimeCache returns the process-wide cache used by formatters that
// were not given one. It is created on first use.
func DefaultTimeCache() *LocalTimeCache {
	return defaultTimeCache()
}

// Get returns the calendar decomposition of t. The cached second is refreshed
// when t falls outside it; the returned value is a copy and remains valid
// indefinitely. Get is safe for concurrent use.
func (c *LocalTimeCache) Get(t time.Time) Decomposition {
	local := t.In(c.loc)
	unix := local.Unix()
	c.mu.Lock()
	if !c.valid || c.unix != unix {
		c.recompute(local, unix)
		c.unix = unix
		c.valid = true
	}
	d := c.dec
	c.mu.Unlock()
	d.nanos = local.Nanosecond()
	return d
}

func (c *LocalTimeCache) recompute(local time.Time, unix int64) {
	d := &c.dec
	d.WeekdayFull = local.Weekday().String()
	d.WeekdayShort = d.WeekdayFull[:3]
	d.MonthNameFull = local.Month().String()
	d.MonthNameShort = d.MonthNameFull[:3]
	d.Unix = strconv.FormatInt(unix, 10)

	year := local.Year()
	_, offset := local.Zone()
	if year < 0 || year > 9999 || offset < -maxZoneOffset || offset > maxZoneOffset {
		c.recomputeSlow(local)
		return
	}

	hour, minute, sec := local.Clock()
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	var scratch [32]byte
	d.Year = string(appendFourDigits(scratch[:0], year))
	d.YearShort = d.Year[2:]
	d.Month = string(appendTwoDigits(scratch[:0], int(local.Month())))
	d.Day = string(appendTwoDigits(scratch[:0], local.Day()))
	d.Hour = string(appendTwoDigits(scratch[:0], hour))
	d.Hour12 = string(appendTwoDigits(scratch[:0], hour12))
	d.Minute = string(appendTwoDigits(scratch[:0], minute))
	d.Second = string(appendTwoDigits(scratch[:0], sec))
	if hour < 12 {
		d.AmPm = "AM"
	} else {
		d.AmPm = "PM"
	}
	d.TzOffset = string(appendOffsetColon(scratch[:0], offset))

	buf := scratch[:0]
	buf = append(buf, d.Year...)
	buf = append(buf, '-')
	buf = append(buf, d.Month...)
	buf = append(buf, '-')
	buf = append(buf, d.Day...)
	buf = append(buf, ' ')
	buf = append(buf, d.Hour...)
	buf = append(buf, ':')
	buf = append(buf, d.Minute...)
	buf = append(buf, ':')
	buf = append(buf, d.Second...)
	d.FullSecond = string(buf)
	buf[10] = 'T'
	d.ISO8601Second = string(buf)

	buf = scratch[:0]
	buf = append(buf, d.WeekdayShort...)
	buf = append(buf, ' ')
	buf = append(buf, d.MonthNameShort...)
	buf = append(buf, ' ')
	buf = append(buf, d.Day...)
	buf = append(buf, ' ')
	buf = append(buf, d.Hour...)
	buf = append(buf, ':')
	buf = append(buf, d.Minute...)
	buf = append(buf, ':')
	buf = append(buf, d.Second...)
	buf = append(buf, ' ')
	buf = append(buf, d.Year...)
	d.DateTime = string(buf)
}

// recomputeSlow handles instants the digit appenders cannot: years outside
// 0..9999 and zone offsets beyond ±18h render through time.Format, wider or
// signed as the instant demands, instead of crashing.
func (c *LocalTimeCache) recomputeSlow(local time.Time) {
	d := &c.dec
	d.Year = local.Format("2006")
	d.YearShort = local.Format("06")
	d.Month = local.Format("01")
	d.Day = local.Format("02")
	d.Hour = local.Format("15")
	d.Hour12 = local.Format("03")
	d.Minute = local.Format("04")
	d.Second = local.Format("05")
	d.AmPm = local.Format("PM")
	d.TzOffset = local.Format("-07:00")
	d.FullSecond = local.Format("2006-01-02 15:04:05")
	d.ISO8601Second = local.Format("2006-01-02T15:04:05")
	d.DateTime = local.Format("Mon Jan 02 15:04:05 2006")
}
