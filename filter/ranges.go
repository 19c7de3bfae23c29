package filter

import (
	"bytes"
	"time"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"github.com/litetable/litetable-bigtable/internal/coerce"
)

// TimestampRange restricts cells to [Start, End). A zero Start or End leaves
// that side unbounded.
type TimestampRange struct {
	Start time.Time
	End   time.Time
}

// Proto lowers the range to its wire form. Bounds are truncated to
// millisecond granularity.
func (r TimestampRange) Proto() *bigtablepb.TimestampRange {
	pb := &bigtablepb.TimestampRange{}
	if !r.Start.IsZero() {
		pb.StartTimestampMicros = coerce.Micros(r.Start)
	}
	if !r.End.IsZero() {
		pb.EndTimestampMicros = coerce.Micros(r.End)
	}
	return pb
}

func (r TimestampRange) Equal(o TimestampRange) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

// ColumnRange restricts cells to a range of qualifiers within one family.
// A nil Start or End leaves that side unbounded; bounds are inclusive unless
// the matching Exclusive flag is set.
type ColumnRange struct {
	Family         string
	Start          []byte
	End            []byte
	ExclusiveStart bool
	ExclusiveEnd   bool
}

func (r ColumnRange) Proto() *bigtablepb.ColumnRange {
	pb := &bigtablepb.ColumnRange{FamilyName: r.Family}
	if r.Start != nil {
		if r.ExclusiveStart {
			pb.StartQualifier = &bigtablepb.ColumnRange_StartQualifierOpen{StartQualifierOpen: r.Start}
		} else {
			pb.StartQualifier = &bigtablepb.ColumnRange_StartQualifierClosed{StartQualifierClosed: r.Start}
		}
	}
	if r.End != nil {
		if r.ExclusiveEnd {
			pb.EndQualifier = &bigtablepb.ColumnRange_EndQualifierOpen{EndQualifierOpen: r.End}
		} else {
			pb.EndQualifier = &bigtablepb.ColumnRange_EndQualifierClosed{EndQualifierClosed: r.End}
		}
	}
	return pb
}

func (r ColumnRange) Equal(o ColumnRange) bool {
	return r.Family == o.Family &&
		sameBound(r.Start, o.Start) &&
		sameBound(r.End, o.End) &&
		r.ExclusiveStart == o.ExclusiveStart &&
		r.ExclusiveEnd == o.ExclusiveEnd
}

// ValueRange restricts cells to those whose value falls in the range. Bound
// rules match ColumnRange.
type ValueRange struct {
	Start          []byte
	End            []byte
	ExclusiveStart bool
	ExclusiveEnd   bool
}

func (r ValueRange) Proto() *bigtablepb.ValueRange {
	pb := &bigtablepb.ValueRange{}
	if r.Start != nil {
		if r.ExclusiveStart {
			pb.StartValue = &bigtablepb.ValueRange_StartValueOpen{StartValueOpen: r.Start}
		} else {
			pb.StartValue = &bigtablepb.ValueRange_StartValueClosed{StartValueClosed: r.Start}
		}
	}
	if r.End != nil {
		if r.ExclusiveEnd {
			pb.EndValue = &bigtablepb.ValueRange_EndValueOpen{EndValueOpen: r.End}
		} else {
			pb.EndValue = &bigtablepb.ValueRange_EndValueClosed{EndValueClosed: r.End}
		}
	}
	return pb
}

func (r ValueRange) Equal(o ValueRange) bool {
	return sameBound(r.Start, o.Start) &&
		sameBound(r.End, o.End) &&
		r.ExclusiveStart == o.ExclusiveStart &&
		r.ExclusiveEnd == o.ExclusiveEnd
}

// sameBound treats a nil bound (unbounded) as different from an empty one.
func sameBound(a, b []byte) bool {
	return (a == nil) == (b == nil) && bytes.Equal(a, b)
}
