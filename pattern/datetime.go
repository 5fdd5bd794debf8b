package pattern

import "pkt.systems/recfmt"

// Calendar items fetch one Decomposition per render. Multi-component items
// write from a single fetch, so their pieces always describe the same
// calendar second even if the cached second rolls over mid-line.

type weekdayNameItem struct{}

func (weekdayNameItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.WeekdayShort)
	return dest.Err()
}

type weekdayNameFullItem struct{}

func (weekdayNameFullItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.WeekdayFull)
	return dest.Err()
}

type monthNameItem struct{}

func (monthNameItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.MonthNameShort)
	return dest.Err()
}

type monthNameFullItem struct{}

func (monthNameFullItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.MonthNameFull)
	return dest.Err()
}

// datetimeItem renders the asctime-style composite, "Sun Mar 04 05:06:07 2012".
type datetimeItem struct{}

func (datetimeItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.DateTime)
	return dest.Err()
}

type yearItem struct{}

func (yearItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Year)
	return dest.Err()
}

type yearShortItem struct{}

func (yearShortItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.YearShort)
	return dest.Err()
}

// dateItem renders "2012-03-04".
type dateItem struct{}

func (dateItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Year)
	dest.WriteString("-")
	dest.WriteString(d.Month)
	dest.WriteString("-")
	dest.WriteString(d.Day)
	return dest.Err()
}

// dateShortItem renders "03/04/12".
type dateShortItem struct{}

func (dateShortItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Month)
	dest.WriteString("/")
	dest.WriteString(d.Day)
	dest.WriteString("/")
	dest.WriteString(d.YearShort)
	return dest.Err()
}

type monthItem struct{}

func (monthItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Month)
	return dest.Err()
}

type dayItem struct{}

func (dayItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Day)
	return dest.Err()
}

type hourItem struct{}

func (hourItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Hour)
	return dest.Err()
}

type hour12Item struct{}

func (hour12Item) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Hour12)
	return dest.Err()
}

type minuteItem struct{}

func (minuteItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Minute)
	return dest.Err()
}

type secondItem struct{}

func (secondItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Second)
	return dest.Err()
}

type millisecondItem struct{}

func (millisecondItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteUintPad(uint64(d.Millisecond()), 3)
	return dest.Err()
}

type microsecondItem struct{}

func (microsecondItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteUintPad(uint64(d.Microsecond()), 6)
	return dest.Err()
}

type nanosecondItem struct{}

func (nanosecondItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteUintPad(uint64(d.Nanosecond()), 9)
	return dest.Err()
}

type amPmItem struct{}

func (amPmItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.AmPm)
	return dest.Err()
}

// time12Item renders "05:06:07 AM".
type time12Item struct{}

func (time12Item) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Hour12)
	dest.WriteString(":")
	dest.WriteString(d.Minute)
	dest.WriteString(":")
	dest.WriteString(d.Second)
	dest.WriteString(" ")
	dest.WriteString(d.AmPm)
	return dest.Err()
}

// timeShortItem renders "05:06".
type timeShortItem struct{}

func (timeShortItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Hour)
	dest.WriteString(":")
	dest.WriteString(d.Minute)
	return dest.Err()
}

// timeItem renders "05:06:07".
type timeItem struct{}

func (timeItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Hour)
	dest.WriteString(":")
	dest.WriteString(d.Minute)
	dest.WriteString(":")
	dest.WriteString(d.Second)
	return dest.Err()
}

type tzOffsetItem struct{}

func (tzOffsetItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.TzOffset)
	return dest.Err()
}

type unixTimestampItem struct{}

func (unixTimestampItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	d := ctx.cache.Get(r.Time())
	dest.WriteString(d.Unix)
	return dest.Err()
}
