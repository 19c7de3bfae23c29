package filter

import (
	"bytes"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
)

var (
	_ Filter = (*RowKeyRegexFilter)(nil)
	_ Filter = (*FamilyNameRegexFilter)(nil)
	_ Filter = (*ColumnQualifierRegexFilter)(nil)
	_ Filter = (*ValueRegexFilter)(nil)
	_ Filter = (*ColumnRangeFilter)(nil)
	_ Filter = (*TimestampRangeFilter)(nil)
	_ Filter = (*ValueRangeFilter)(nil)
	_ Filter = (*CellsPerRowOffsetFilter)(nil)
	_ Filter = (*CellsPerRowLimitFilter)(nil)
	_ Filter = (*CellsPerColumnLimitFilter)(nil)
	_ Filter = (*RowSampleFilter)(nil)
	_ Filter = (*StripValueFilter)(nil)
)

// RowKeyRegexFilter matches cells from rows whose key satisfies the pattern.
// It is redundant as the predicate of a conditional row, whose key is fixed.
type RowKeyRegexFilter struct{ pattern []byte }

// RowKeyRegex matches rows whose key satisfies the RE2 pattern.
func RowKeyRegex(pattern []byte) *RowKeyRegexFilter {
	return &RowKeyRegexFilter{pattern: pattern}
}

func (f *RowKeyRegexFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_RowKeyRegexFilter{RowKeyRegexFilter: f.pattern},
	}, nil
}

func (f *RowKeyRegexFilter) Equal(other Filter) bool {
	o, ok := other.(*RowKeyRegexFilter)
	return ok && o != nil && bytes.Equal(f.pattern, o.pattern)
}

func (*RowKeyRegexFilter) isFilter() {}

// FamilyNameRegexFilter matches cells from families whose name satisfies the
// pattern. The pattern must not contain ':'.
type FamilyNameRegexFilter struct{ pattern string }

// FamilyNameRegex matches cells in families whose name satisfies pattern.
func FamilyNameRegex(pattern string) *FamilyNameRegexFilter {
	return &FamilyNameRegexFilter{pattern: pattern}
}

func (f *FamilyNameRegexFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_FamilyNameRegexFilter{FamilyNameRegexFilter: f.pattern},
	}, nil
}

func (f *FamilyNameRegexFilter) Equal(other Filter) bool {
	o, ok := other.(*FamilyNameRegexFilter)
	return ok && o != nil && f.pattern == o.pattern
}

func (*FamilyNameRegexFilter) isFilter() {}

// ColumnQualifierRegexFilter matches cells whose qualifier satisfies the
// pattern, in any family.
type ColumnQualifierRegexFilter struct{ pattern []byte }

// ColumnQualifierRegex matches cells whose qualifier satisfies pattern.
func ColumnQualifierRegex(pattern []byte) *ColumnQualifierRegexFilter {
	return &ColumnQualifierRegexFilter{pattern: pattern}
}

func (f *ColumnQualifierRegexFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_ColumnQualifierRegexFilter{ColumnQualifierRegexFilter: f.pattern},
	}, nil
}

func (f *ColumnQualifierRegexFilter) Equal(other Filter) bool {
	o, ok := other.(*ColumnQualifierRegexFilter)
	return ok && o != nil && bytes.Equal(f.pattern, o.pattern)
}

func (*ColumnQualifierRegexFilter) isFilter() {}

// ValueRegexFilter matches cells whose value satisfies the pattern.
type ValueRegexFilter struct{ pattern []byte }

// ValueRegex matches cells whose value satisfies pattern.
func ValueRegex(pattern []byte) *ValueRegexFilter {
	return &ValueRegexFilter{pattern: pattern}
}

func (f *ValueRegexFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_ValueRegexFilter{ValueRegexFilter: f.pattern},
	}, nil
}

func (f *ValueRegexFilter) Equal(other Filter) bool {
	o, ok := other.(*ValueRegexFilter)
	return ok && o != nil && bytes.Equal(f.pattern, o.pattern)
}

func (*ValueRegexFilter) isFilter() {}

// ColumnRangeFilter matches cells within a qualifier range of one family.
type ColumnRangeFilter struct{ rng ColumnRange }

// Columns matches cells whose qualifier falls within r.
func Columns(r ColumnRange) *ColumnRangeFilter {
	return &ColumnRangeFilter{rng: r}
}

func (f *ColumnRangeFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_ColumnRangeFilter{ColumnRangeFilter: f.rng.Proto()},
	}, nil
}

func (f *ColumnRangeFilter) Equal(other Filter) bool {
	o, ok := other.(*ColumnRangeFilter)
	return ok && o != nil && f.rng.Equal(o.rng)
}

func (*ColumnRangeFilter) isFilter() {}

// TimestampRangeFilter matches cells whose timestamp falls in the range.
type TimestampRangeFilter struct{ rng TimestampRange }

// Timestamps matches cells whose timestamp falls within r.
func Timestamps(r TimestampRange) *TimestampRangeFilter {
	return &TimestampRangeFilter{rng: r}
}

func (f *TimestampRangeFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_TimestampRangeFilter{TimestampRangeFilter: f.rng.Proto()},
	}, nil
}

func (f *TimestampRangeFilter) Equal(other Filter) bool {
	o, ok := other.(*TimestampRangeFilter)
	return ok && o != nil && f.rng.Equal(o.rng)
}

func (*TimestampRangeFilter) isFilter() {}

// ValueRangeFilter matches cells whose value falls in the range.
type ValueRangeFilter struct{ rng ValueRange }

// Values matches cells whose value falls within r.
func Values(r ValueRange) *ValueRangeFilter {
	return &ValueRangeFilter{rng: r}
}

func (f *ValueRangeFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_ValueRangeFilter{ValueRangeFilter: f.rng.Proto()},
	}, nil
}

func (f *ValueRangeFilter) Equal(other Filter) bool {
	o, ok := other.(*ValueRangeFilter)
	return ok && o != nil && f.rng.Equal(o.rng)
}

func (*ValueRangeFilter) isFilter() {}

// CellsPerRowOffsetFilter skips the first n cells of each row.
type CellsPerRowOffsetFilter struct{ n int32 }

// CellsPerRowOffset skips the first n cells of each row.
func CellsPerRowOffset(n int32) *CellsPerRowOffsetFilter {
	return &CellsPerRowOffsetFilter{n: n}
}

func (f *CellsPerRowOffsetFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_CellsPerRowOffsetFilter{CellsPerRowOffsetFilter: f.n},
	}, nil
}

func (f *CellsPerRowOffsetFilter) Equal(other Filter) bool {
	o, ok := other.(*CellsPerRowOffsetFilter)
	return ok && o != nil && f.n == o.n
}

func (*CellsPerRowOffsetFilter) isFilter() {}

// CellsPerRowLimitFilter keeps the first n cells of each row.
type CellsPerRowLimitFilter struct{ n int32 }

// CellsPerRowLimit keeps the first n cells of each row.
func CellsPerRowLimit(n int32) *CellsPerRowLimitFilter {
	return &CellsPerRowLimitFilter{n: n}
}

func (f *CellsPerRowLimitFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_CellsPerRowLimitFilter{CellsPerRowLimitFilter: f.n},
	}, nil
}

func (f *CellsPerRowLimitFilter) Equal(other Filter) bool {
	o, ok := other.(*CellsPerRowLimitFilter)
	return ok && o != nil && f.n == o.n
}

func (*CellsPerRowLimitFilter) isFilter() {}

// CellsPerColumnLimitFilter keeps the n most recent cells of each column.
type CellsPerColumnLimitFilter struct{ n int32 }

// CellsPerColumnLimit keeps the n newest cells of each column.
func CellsPerColumnLimit(n int32) *CellsPerColumnLimitFilter {
	return &CellsPerColumnLimitFilter{n: n}
}

func (f *CellsPerColumnLimitFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_CellsPerColumnLimitFilter{CellsPerColumnLimitFilter: f.n},
	}, nil
}

func (f *CellsPerColumnLimitFilter) Equal(other Filter) bool {
	o, ok := other.(*CellsPerColumnLimitFilter)
	return ok && o != nil && f.n == o.n
}

func (*CellsPerColumnLimitFilter) isFilter() {}

// RowSampleFilter matches all cells of a row with probability p and none
// with probability 1-p.
type RowSampleFilter struct{ p float64 }

// RowSample keeps each row with probability p, which must be in (0, 1).
func RowSample(p float64) *RowSampleFilter {
	return &RowSampleFilter{p: p}
}

func (f *RowSampleFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_RowSampleFilter{RowSampleFilter: f.p},
	}, nil
}

func (f *RowSampleFilter) Equal(other Filter) bool {
	o, ok := other.(*RowSampleFilter)
	return ok && o != nil && f.p == o.p
}

func (*RowSampleFilter) isFilter() {}

// StripValueFilter replaces every cell value with the empty string. It is a
// transformer more than a predicate.
type StripValueFilter struct{ strip bool }

// StripValue replaces each cell value with the empty string when strip is set.
func StripValue(strip bool) *StripValueFilter {
	return &StripValueFilter{strip: strip}
}

func (f *StripValueFilter) Proto() (*bigtablepb.RowFilter, error) {
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_StripValueTransformer{StripValueTransformer: f.strip},
	}, nil
}

func (f *StripValueFilter) Equal(other Filter) bool {
	o, ok := other.(*StripValueFilter)
	return ok && o != nil && f.strip == o.strip
}

func (*StripValueFilter) isFilter() {}

// LeafOptions describes a leaf filter field by field, for callers that
// assemble filters from data rather than code. Exactly one field must be set.
type LeafOptions struct {
	RowKeyRegex          []byte
	FamilyNameRegex      *string
	ColumnQualifierRegex []byte
	ValueRegex           []byte
	ColumnRange          *ColumnRange
	TimestampRange       *TimestampRange
	ValueRange           *ValueRange
	CellsPerRowOffset    *int32
	CellsPerRowLimit     *int32
	CellsPerColumnLimit  *int32
	RowSample            *float64
	StripValue           *bool
}

// Leaf returns the leaf filter described by opts.
func Leaf(opts LeafOptions) (Filter, error) {
	var (
		set []Filter
		add = func(present bool, build func() Filter) {
			if present {
				set = append(set, build())
			}
		}
	)

	add(opts.RowKeyRegex != nil, func() Filter { return RowKeyRegex(opts.RowKeyRegex) })
	add(opts.FamilyNameRegex != nil, func() Filter { return FamilyNameRegex(*opts.FamilyNameRegex) })
	add(opts.ColumnQualifierRegex != nil, func() Filter { return ColumnQualifierRegex(opts.ColumnQualifierRegex) })
	add(opts.ValueRegex != nil, func() Filter { return ValueRegex(opts.ValueRegex) })
	add(opts.ColumnRange != nil, func() Filter { return Columns(*opts.ColumnRange) })
	add(opts.TimestampRange != nil, func() Filter { return Timestamps(*opts.TimestampRange) })
	add(opts.ValueRange != nil, func() Filter { return Values(*opts.ValueRange) })
	add(opts.CellsPerRowOffset != nil, func() Filter { return CellsPerRowOffset(*opts.CellsPerRowOffset) })
	add(opts.CellsPerRowLimit != nil, func() Filter { return CellsPerRowLimit(*opts.CellsPerRowLimit) })
	add(opts.CellsPerColumnLimit != nil, func() Filter { return CellsPerColumnLimit(*opts.CellsPerColumnLimit) })
	add(opts.RowSample != nil, func() Filter { return RowSample(*opts.RowSample) })
	add(opts.StripValue != nil, func() Filter { return StripValue(*opts.StripValue) })

	if len(set) != 1 {
		return nil, newError(ErrInvalidFilter, "exactly one value must be set in a row filter, got %d",
			len(set))
	}
	return set[0], nil
}
