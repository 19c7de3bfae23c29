// Package row accumulates changes to a single row and commits them to the
// server in one request.
//
// Mutations (SetCell, Delete, DeleteCell, DeleteCells, DeleteFamily) are
// buffered locally and sent by Commit. Read-modify-write rules
// (AppendCellValue, IncrementCellValue) are buffered separately and sent by
// CommitModifications. Nothing reaches the network until one of the commit
// methods is called.
//
// A Row created with NewConditional carries a filter. Every mutation on it
// must name a branch with OnMatch or OnMiss; on commit the server applies the
// OnMatch mutations if the filter yields any cell in the row and the OnMiss
// mutations otherwise. A Row created with New rejects branch options.
//
// A Row is not safe for concurrent use.
package row

import (
	"context"
	"time"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"github.com/litetable/litetable-bigtable/filter"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

//go:generate mockgen -destination=row_mock.go -package=row -source=row.go

// MaxMutations is the most mutations a single commit may carry per branch.
const MaxMutations = 100000

// DataClient executes row requests against the server. It is satisfied by
// bigtablepb.BigtableClient.
type DataClient interface {
	MutateRow(ctx context.Context, in *bigtablepb.MutateRowRequest, opts ...grpc.CallOption) (*bigtablepb.MutateRowResponse, error)
	CheckAndMutateRow(ctx context.Context, in *bigtablepb.CheckAndMutateRowRequest, opts ...grpc.CallOption) (*bigtablepb.CheckAndMutateRowResponse, error)
	ReadModifyWriteRow(ctx context.Context, in *bigtablepb.ReadModifyWriteRowRequest, opts ...grpc.CallOption) (*bigtablepb.ReadModifyWriteRowResponse, error)
}

// Table is the table a Row belongs to.
type Table interface {
	// Name is the fully-qualified table name,
	// projects/{project}/instances/{instance}/tables/{table}.
	Name() string
	// Timeout is the default deadline for a commit.
	Timeout() time.Duration
	// DataClient returns the client used to send requests.
	DataClient() DataClient
}

// Row buffers mutations and read-modify-write rules for the row with key in
// table until they are committed.
type Row struct {
	key    []byte
	table  Table
	filter filter.Filter
	buf    mutationBuffer
	rules  []*bigtablepb.ReadModifyWriteRule
}

// New returns a Row whose mutations are applied unconditionally.
func New(key []byte, table Table) *Row {
	return &Row{
		key:   key,
		table: table,
		buf:   &unconditional{},
	}
}

// NewConditional returns a Row whose mutations are applied depending on
// whether f matches any cell of the row.
func NewConditional(key []byte, table Table, f filter.Filter) (*Row, error) {
	if filter.IsNil(f) {
		return nil, newError(ErrMissingFilter, "conditional row %q", key)
	}
	return &Row{
		key:    key,
		table:  table,
		filter: f,
		buf:    &conditional{},
	}, nil
}

// Key is the row key.
func (r *Row) Key() []byte { return r.key }

// Table is the table the row commits to.
func (r *Row) Table() Table { return r.table }

// Filter returns the predicate of a conditional row, or nil.
func (r *Row) Filter() filter.Filter { return r.filter }

// Conditional reports whether the row was created with a filter.
func (r *Row) Conditional() bool { return r.filter != nil }

// Mutations returns a deep copy of the pending mutations. Conditional rows
// must select a branch with OnMatch or OnMiss.
func (r *Row) Mutations(opts ...MutationOption) ([]*bigtablepb.Mutation, error) {
	o := applyMutationOptions(opts)
	list, err := r.buf.branch(o.branch)
	if err != nil {
		return nil, err
	}
	return cloneAll(*list), nil
}

// Rules returns a deep copy of the pending read-modify-write rules.
func (r *Row) Rules() []*bigtablepb.ReadModifyWriteRule {
	return cloneAll(r.rules)
}

func cloneAll[M proto.Message](msgs []M) []M {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]M, len(msgs))
	for i, m := range msgs {
		out[i] = proto.Clone(m).(M)
	}
	return out
}
