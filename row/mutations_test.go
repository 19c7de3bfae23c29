package row

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"github.com/google/go-cmp/cmp"
	"github.com/litetable/litetable-bigtable/filter"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
)

func newRow(t *testing.T, conditional bool) *Row {
	t.Helper()
	if !conditional {
		return New([]byte("row-key"), nil)
	}
	r, err := NewConditional([]byte("row-key"), nil, filter.RowSample(0.5))
	require.NoError(t, err)
	return r
}

func TestNewConditional(t *testing.T) {
	req := require.New(t)

	r, err := NewConditional([]byte("k"), nil, nil)
	req.Nil(r)
	req.ErrorIs(err, ErrMissingFilter)

	var unbuilt *filter.ChainFilter
	r, err = NewConditional([]byte("k"), nil, unbuilt)
	req.Nil(r)
	req.ErrorIs(err, ErrMissingFilter)

	r, err = NewConditional([]byte("k"), nil, filter.StripValue(true))
	req.NoError(err)
	req.True(r.Conditional())
	req.True(r.Filter().Equal(filter.StripValue(true)))
	req.Equal([]byte("k"), r.Key())

	plain := New([]byte("k"), nil)
	req.False(plain.Conditional())
	req.Nil(plain.Filter())
}

func TestRow_BranchSelection(t *testing.T) {
	mutators := map[string]func(r *Row, opts ...MutationOption) error{
		"SetCell": func(r *Row, opts ...MutationOption) error {
			return r.SetCell("fam", "col", "v", opts...)
		},
		"Delete": func(r *Row, opts ...MutationOption) error {
			return r.Delete(opts...)
		},
		"DeleteCell": func(r *Row, opts ...MutationOption) error {
			return r.DeleteCell("fam", "col", opts...)
		},
		"DeleteCells": func(r *Row, opts ...MutationOption) error {
			return r.DeleteCells("fam", []any{"a", []byte("b")}, opts...)
		},
		"DeleteFamily": func(r *Row, opts ...MutationOption) error {
			return r.DeleteFamily("fam", opts...)
		},
	}

	for name, mutate := range mutators {
		t.Run(name+" without filter", func(t *testing.T) {
			req := require.New(t)
			r := newRow(t, false)

			err := mutate(r, OnMatch())
			req.ErrorIs(err, ErrBranchNotAllowed)
			got, err := r.Mutations()
			req.NoError(err)
			req.Empty(got)

			req.NoError(mutate(r))
			got, err = r.Mutations()
			req.NoError(err)
			req.NotEmpty(got)
		})

		t.Run(name+" with filter", func(t *testing.T) {
			req := require.New(t)
			r := newRow(t, true)

			err := mutate(r)
			req.ErrorIs(err, ErrBranchRequired)

			req.NoError(mutate(r, OnMatch()))
			req.NoError(mutate(r, OnMiss()))

			matched, err := r.Mutations(OnMatch())
			req.NoError(err)
			missed, err := r.Mutations(OnMiss())
			req.NoError(err)
			req.Equal(len(matched), len(missed))
			req.NotEmpty(matched)

			_, err = r.Mutations()
			req.ErrorIs(err, ErrBranchRequired)
		})
	}
}

func TestRow_SetCell(t *testing.T) {
	epoch := time.Unix(0, 0)

	tests := map[string]struct {
		column any
		value  any
		opts   []MutationOption
		want   *bigtablepb.Mutation_SetCell
		err    error
	}{
		"integer value without timestamp": {
			column: "col",
			value:  7,
			want: &bigtablepb.Mutation_SetCell{
				FamilyName:      "fam",
				ColumnQualifier: []byte("col"),
				TimestampMicros: -1,
				Value:           []byte{0, 0, 0, 0, 0, 0, 0, 7},
			},
		},
		"bytes value with timestamp": {
			column: []byte("col"),
			value:  []byte("value"),
			opts:   []MutationOption{WithTimestamp(epoch.Add(898294371 * time.Microsecond))},
			want: &bigtablepb.Mutation_SetCell{
				FamilyName:      "fam",
				ColumnQualifier: []byte("col"),
				TimestampMicros: 898294000,
				Value:           []byte("value"),
			},
		},
		"string value": {
			column: "col",
			value:  "value",
			want: &bigtablepb.Mutation_SetCell{
				FamilyName:      "fam",
				ColumnQualifier: []byte("col"),
				TimestampMicros: -1,
				Value:           []byte("value"),
			},
		},
		"unsupported value": {
			column: "col",
			value:  3.14,
			err:    ErrUnsupportedType,
		},
		"unsupported column": {
			column: 12,
			value:  "value",
			err:    ErrUnsupportedType,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			r := newRow(t, false)

			err := r.SetCell("fam", tc.column, tc.value, tc.opts...)
			got, mErr := r.Mutations()
			req.NoError(mErr)

			if tc.err != nil {
				req.True(errors.Is(err, tc.err))
				req.Empty(got)
				return
			}

			req.NoError(err)
			req.Len(got, 1)
			req.Empty(cmp.Diff(tc.want, got[0].GetSetCell(), protocmp.Transform()))
		})
	}
}

func TestRow_DeleteCells(t *testing.T) {
	t.Run("one mutation per column", func(t *testing.T) {
		req := require.New(t)
		r := newRow(t, false)

		rng := filter.TimestampRange{Start: time.UnixMilli(30871)}
		req.NoError(r.DeleteCells("fam", []any{"a", []byte("b")}, WithTimeRange(rng)))

		got, err := r.Mutations()
		req.NoError(err)

		want := []*bigtablepb.Mutation{
			{Mutation: &bigtablepb.Mutation_DeleteFromColumn_{DeleteFromColumn: &bigtablepb.Mutation_DeleteFromColumn{
				FamilyName:      "fam",
				ColumnQualifier: []byte("a"),
				TimeRange:       &bigtablepb.TimestampRange{StartTimestampMicros: 30871000},
			}}},
			{Mutation: &bigtablepb.Mutation_DeleteFromColumn_{DeleteFromColumn: &bigtablepb.Mutation_DeleteFromColumn{
				FamilyName:      "fam",
				ColumnQualifier: []byte("b"),
				TimeRange:       &bigtablepb.TimestampRange{StartTimestampMicros: 30871000},
			}}},
		}
		req.Empty(cmp.Diff(want, got, protocmp.Transform()))
	})

	t.Run("bad column appends nothing", func(t *testing.T) {
		req := require.New(t)
		r := newRow(t, false)

		err := r.DeleteCells("fam", []any{"valid", struct{}{}})
		req.ErrorIs(err, ErrUnsupportedType)

		got, err := r.Mutations()
		req.NoError(err)
		req.Empty(got)
	})

	t.Run("bad column keeps earlier mutations", func(t *testing.T) {
		req := require.New(t)
		r := newRow(t, true)

		req.NoError(r.Delete(OnMiss()))
		req.Error(r.DeleteCells("fam", []any{"valid", 1.5}, OnMiss()))

		got, err := r.Mutations(OnMiss())
		req.NoError(err)
		req.Len(got, 1)
		req.NotNil(got[0].GetDeleteFromRow())
	})

	t.Run("delete family", func(t *testing.T) {
		req := require.New(t)
		r := newRow(t, false)

		req.NoError(r.DeleteFamily("fam"))
		got, err := r.Mutations()
		req.NoError(err)
		req.Len(got, 1)
		req.Equal("fam", got[0].GetDeleteFromFamily().GetFamilyName())
	})

	t.Run("delete cell without range", func(t *testing.T) {
		req := require.New(t)
		r := newRow(t, false)

		req.NoError(r.DeleteCell("fam", "col"))
		got, err := r.Mutations()
		req.NoError(err)
		req.Len(got, 1)
		req.Nil(got[0].GetDeleteFromColumn().GetTimeRange())
	})
}

func TestRow_Rules(t *testing.T) {
	req := require.New(t)
	r := newRow(t, true)

	req.NoError(r.AppendCellValue("fam", "log", "entry"))
	req.NoError(r.IncrementCellValue("fam", []byte("count"), -2))
	req.ErrorIs(r.AppendCellValue("fam", "log", 5), ErrUnsupportedType)
	req.ErrorIs(r.IncrementCellValue("fam", nil, 1), ErrUnsupportedType)

	want := []*bigtablepb.ReadModifyWriteRule{
		{
			FamilyName:      "fam",
			ColumnQualifier: []byte("log"),
			Rule:            &bigtablepb.ReadModifyWriteRule_AppendValue{AppendValue: []byte("entry")},
		},
		{
			FamilyName:      "fam",
			ColumnQualifier: []byte("count"),
			Rule:            &bigtablepb.ReadModifyWriteRule_IncrementAmount{IncrementAmount: -2},
		},
	}
	req.Empty(cmp.Diff(want, r.Rules(), protocmp.Transform()))

	// rules never touch the mutation branches
	matched, err := r.Mutations(OnMatch())
	req.NoError(err)
	req.Empty(matched)

	r.ClearModificationRules()
	req.Empty(r.Rules())
}

func TestRow_PendingCopies(t *testing.T) {
	req := require.New(t)
	r := newRow(t, false)

	req.NoError(r.SetCell("fam", "col", "v"))
	req.NoError(r.IncrementCellValue("fam", "count", 1))

	got, err := r.Mutations()
	req.NoError(err)
	got[0].GetSetCell().Value = []byte("changed")
	got[0] = nil

	rules := r.Rules()
	rules[0].FamilyName = "other"

	pending, err := r.Mutations()
	req.NoError(err)
	req.Equal([]byte("v"), pending[0].GetSetCell().GetValue())
	req.Equal("fam", r.Rules()[0].GetFamilyName())
}

func TestRow_ClearMutations(t *testing.T) {
	req := require.New(t)
	r := newRow(t, true)

	req.NoError(r.SetCell("fam", "col", "v", OnMatch()))
	req.NoError(r.Delete(OnMiss()))
	req.NoError(r.AppendCellValue("fam", "col", "x"))

	r.ClearMutations()

	matched, err := r.Mutations(OnMatch())
	req.NoError(err)
	req.Empty(matched)
	missed, err := r.Mutations(OnMiss())
	req.NoError(err)
	req.Empty(missed)
	req.Len(r.Rules(), 1)
}
