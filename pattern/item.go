package pattern

import (
	"sort"

	"pkt.systems/recfmt"
)

// item is one compiled template element. The set of implementations is
// closed: templates select items by name and new output shapes come from
// whole Formatter implementations, not new items.
type item interface {
	format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error
}

// fields maps template names to their singleton items. Every item here is
// stateless, so compiled templates share them.
var fields = map[string]item{
	"weekday_name":      weekdayNameItem{},
	"weekday_name_full": weekdayNameFullItem{},
	"month_name":        monthNameItem{},
	"month_name_full":   monthNameFullItem{},
	"datetime":          datetimeItem{},
	"year_short":        yearShortItem{},
	"year":              yearItem{},
	"date_short":        dateShortItem{},
	"date":              dateItem{},
	"month":             monthItem{},
	"day":               dayItem{},
	"hour":              hourItem{},
	"hour_12":           hour12Item{},
	"minute":            minuteItem{},
	"second":            secondItem{},
	"millisecond":       millisecondItem{},
	"microsecond":       microsecondItem{},
	"nanosecond":        nanosecondItem{},
	"am_pm":             amPmItem{},
	"time_12":           time12Item{},
	"time_short":        timeShortItem{},
	"time":              timeItem{},
	"tz_offset":         tzOffsetItem{},
	"unix_timestamp":    unixTimestampItem{},
	"level":             levelItem{},
	"level_short":       levelShortItem{},
	"source":            sourceItem{},
	"file_name":         fileNameItem{},
	"file":              fileItem{},
	"line":              lineItem{},
	"column":            columnItem{},
	"module_path":       modulePathItem{},
	"logger":            loggerItem{},
	"payload":           payloadItem{},
	"tid":               tidItem{},
	"eol":               eolItem{},
}

// FieldNames returns every template field name in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// literalItem is a run of template text between placeholders, escapes
// already folded.
type literalItem string

func (it literalItem) format(_ *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	dest.WriteString(string(it))
	return dest.Err()
}

type levelItem struct{}

func (levelItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	dest.WriteString(r.Level().String())
	return dest.Err()
}

type levelShortItem struct{}

func (levelShortItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	dest.WriteString(r.Level().ShortString())
	return dest.Err()
}

type payloadItem struct{}

func (payloadItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	dest.WriteString(r.Payload())
	return dest.Err()
}

// loggerItem renders the logger name, empty for unnamed records.
type loggerItem struct{}

func (loggerItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	dest.WriteString(r.LoggerName())
	return dest.Err()
}

type tidItem struct{}

func (tidItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	dest.WriteUint(r.TID())
	return dest.Err()
}

type eolItem struct{}

func (eolItem) format(_ *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	dest.WriteString(recfmt.EOL)
	return dest.Err()
}

// styledSpanItem renders its sub-template and records the byte range it
// covered in the context. The compiler guarantees at most one per template,
// so the range is the line's style range.
type styledSpanItem struct {
	items []item
}

func (it *styledSpanItem) format(r *recfmt.Record, dest *recfmt.Buffer, ctx *renderContext) error {
	begin := dest.Len()
	if err := render(it.items, r, dest, ctx); err != nil {
		return err
	}
	ctx.styleBegin = begin
	ctx.styleEnd = dest.Len()
	ctx.styled = true
	return nil
}
