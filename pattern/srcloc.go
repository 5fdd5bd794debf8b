package pattern

import "pkt.systems/recfmt"

// Source-location items render empty text when the record carries no
// location, so templates work unchanged whether call sites are captured or
// not.

// sourceItem renders "file:line".
type sourceItem struct{}

func (sourceItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	if src := r.Source(); src != nil {
		dest.WriteString(src.File())
		dest.WriteString(":")
		dest.WriteInt(int64(src.Line()))
	}
	return dest.Err()
}

type fileNameItem struct{}

func (fileNameItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	if src := r.Source(); src != nil {
		dest.WriteString(src.FileName())
	}
	return dest.Err()
}

type fileItem struct{}

func (fileItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	if src := r.Source(); src != nil {
		dest.WriteString(src.File())
	}
	return dest.Err()
}

type lineItem struct{}

func (lineItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	if src := r.Source(); src != nil {
		dest.WriteInt(int64(src.Line()))
	}
	return dest.Err()
}

type columnItem struct{}

func (columnItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	if src := r.Source(); src != nil {
		dest.WriteInt(int64(src.Column()))
	}
	return dest.Err()
}

type modulePathItem struct{}

func (modulePathItem) format(r *recfmt.Record, dest *recfmt.Buffer, _ *renderContext) error {
	if src := r.Source(); src != nil {
		dest.WriteString(src.ModulePath())
	}
	return dest.Err()
}
