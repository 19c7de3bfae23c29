package row

import (
	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"github.com/litetable/litetable-bigtable/internal/coerce"
)

// serverTime asks the server to stamp a cell with its current time.
const serverTime = -1

// SetCell buffers a write of value to family:column. The column is a string
// or []byte; the value is a string, []byte, int or int64, with integers
// stored as 8-byte big-endian so they can later be incremented.
//
// family must already exist in the table and match [_a-zA-Z0-9][-_.a-zA-Z0-9]*;
// the server validates it.
func (r *Row) SetCell(family string, column, value any, opts ...MutationOption) error {
	o := applyMutationOptions(opts)
	list, err := r.buf.branch(o.branch)
	if err != nil {
		return err
	}

	qualifier, err := coerce.Bytes(column)
	if err != nil {
		return err
	}
	val, err := coerce.Value(value)
	if err != nil {
		return err
	}

	ts := int64(serverTime)
	if o.timestamp != nil {
		ts = coerce.Micros(*o.timestamp)
	}

	*list = append(*list, &bigtablepb.Mutation{
		Mutation: &bigtablepb.Mutation_SetCell_{
			SetCell: &bigtablepb.Mutation_SetCell{
				FamilyName:      family,
				ColumnQualifier: qualifier,
				TimestampMicros: ts,
				Value:           val,
			},
		},
	})
	return nil
}

// Delete buffers the deletion of the entire row.
func (r *Row) Delete(opts ...MutationOption) error {
	o := applyMutationOptions(opts)
	list, err := r.buf.branch(o.branch)
	if err != nil {
		return err
	}

	*list = append(*list, &bigtablepb.Mutation{
		Mutation: &bigtablepb.Mutation_DeleteFromRow_{
			DeleteFromRow: &bigtablepb.Mutation_DeleteFromRow{},
		},
	})
	return nil
}

// DeleteFamily buffers the deletion of every column in family.
func (r *Row) DeleteFamily(family string, opts ...MutationOption) error {
	o := applyMutationOptions(opts)
	list, err := r.buf.branch(o.branch)
	if err != nil {
		return err
	}

	*list = append(*list, &bigtablepb.Mutation{
		Mutation: &bigtablepb.Mutation_DeleteFromFamily_{
			DeleteFromFamily: &bigtablepb.Mutation_DeleteFromFamily{FamilyName: family},
		},
	})
	return nil
}

// DeleteCell buffers the deletion of family:column, optionally limited by
// WithTimeRange.
func (r *Row) DeleteCell(family string, column any, opts ...MutationOption) error {
	return r.DeleteCells(family, []any{column}, opts...)
}

// DeleteCells buffers one deletion per column. If any column cannot be
// converted to bytes nothing is buffered.
func (r *Row) DeleteCells(family string, columns []any, opts ...MutationOption) error {
	o := applyMutationOptions(opts)
	list, err := r.buf.branch(o.branch)
	if err != nil {
		return err
	}

	pending := make([]*bigtablepb.Mutation, 0, len(columns))
	for _, column := range columns {
		qualifier, err := coerce.Bytes(column)
		if err != nil {
			return err
		}
		del := &bigtablepb.Mutation_DeleteFromColumn{
			FamilyName:      family,
			ColumnQualifier: qualifier,
		}
		if o.timeRange != nil {
			del.TimeRange = o.timeRange.Proto()
		}
		pending = append(pending, &bigtablepb.Mutation{
			Mutation: &bigtablepb.Mutation_DeleteFromColumn_{DeleteFromColumn: del},
		})
	}

	*list = append(*list, pending...)
	return nil
}

// AppendCellValue buffers a rule appending value to family:column. An unset
// cell is treated as empty. Rules ignore the row's filter and are sent by
// CommitModifications.
func (r *Row) AppendCellValue(family string, column, value any) error {
	qualifier, err := coerce.Bytes(column)
	if err != nil {
		return err
	}
	val, err := coerce.Bytes(value)
	if err != nil {
		return err
	}

	r.rules = append(r.rules, &bigtablepb.ReadModifyWriteRule{
		FamilyName:      family,
		ColumnQualifier: qualifier,
		Rule:            &bigtablepb.ReadModifyWriteRule_AppendValue{AppendValue: val},
	})
	return nil
}

// IncrementCellValue buffers a rule adding amount to family:column. An unset
// cell counts as zero; any other cell must hold an 8-byte big-endian integer
// or the whole request fails on the server.
func (r *Row) IncrementCellValue(family string, column any, amount int64) error {
	qualifier, err := coerce.Bytes(column)
	if err != nil {
		return err
	}

	r.rules = append(r.rules, &bigtablepb.ReadModifyWriteRule{
		FamilyName:      family,
		ColumnQualifier: qualifier,
		Rule:            &bigtablepb.ReadModifyWriteRule_IncrementAmount{IncrementAmount: amount},
	})
	return nil
}

// ClearMutations drops every pending mutation in every branch.
func (r *Row) ClearMutations() {
	r.buf.reset()
}

// ClearModificationRules drops every pending read-modify-write rule.
func (r *Row) ClearModificationRules() {
	r.rules = nil
}
