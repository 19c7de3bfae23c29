package row

import (
	"context"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"github.com/rs/zerolog/log"
)

// Commit sends the pending mutations in a single request. Mutations are
// applied atomically and in the order they were added, so later ones may mask
// earlier ones.
//
// With no pending mutations Commit makes no request. A conditional row sends
// both branches and reports which one the server applied. Pending mutations
// are cleared only after the server accepts them; on error they are kept so
// the same batch can be retried.
func (r *Row) Commit(ctx context.Context, opts ...CallOption) (CommitResult, error) {
	if err := r.buf.check(); err != nil {
		return CommitResult{}, err
	}
	if r.buf.size() == 0 {
		return CommitResult{}, nil
	}

	ctx, cancel := r.callContext(ctx, opts)
	defer cancel()

	var result CommitResult
	switch buf := r.buf.(type) {
	case *unconditional:
		if err := r.mutate(ctx, buf); err != nil {
			return CommitResult{}, err
		}
		result = CommitResult{Sent: true}
	case *conditional:
		matched, err := r.checkAndMutate(ctx, buf)
		if err != nil {
			return CommitResult{}, err
		}
		result = CommitResult{Sent: true, PredicateMatched: matched}
	}

	r.buf.reset()
	return result, nil
}

func (r *Row) mutate(ctx context.Context, buf *unconditional) error {
	log.Debug().
		Str("table", r.table.Name()).
		Int("mutations", len(buf.mutations)).
		Msg("MutateRow")

	_, err := r.table.DataClient().MutateRow(ctx, &bigtablepb.MutateRowRequest{
		TableName: r.table.Name(),
		RowKey:    r.key,
		Mutations: buf.mutations,
	})
	return err
}

func (r *Row) checkAndMutate(ctx context.Context, buf *conditional) (bool, error) {
	predicate, err := r.filter.Proto()
	if err != nil {
		return false, err
	}

	log.Debug().
		Str("table", r.table.Name()).
		Int("match_mutations", len(buf.onMatch)).
		Int("miss_mutations", len(buf.onMiss)).
		Msg("CheckAndMutateRow")

	resp, err := r.table.DataClient().CheckAndMutateRow(ctx, &bigtablepb.CheckAndMutateRowRequest{
		TableName:       r.table.Name(),
		RowKey:          r.key,
		PredicateFilter: predicate,
		TrueMutations:   buf.onMatch,
		FalseMutations:  buf.onMiss,
	})
	if err != nil {
		return false, err
	}
	return resp.GetPredicateMatched(), nil
}

// CommitModifications sends the pending read-modify-write rules in a single
// request and returns the cells the server wrote. The server reads the latest
// value of each targeted column, appends or increments it, and writes the new
// cell at its current time or the column's newest timestamp if that is later.
//
// With no pending rules it makes no request and returns an empty result. Rules
// are cleared only after the server accepts them.
func (r *Row) CommitModifications(ctx context.Context, opts ...CallOption) (Modified, error) {
	if len(r.rules) == 0 {
		return Modified{}, nil
	}

	ctx, cancel := r.callContext(ctx, opts)
	defer cancel()

	log.Debug().
		Str("table", r.table.Name()).
		Int("rules", len(r.rules)).
		Msg("ReadModifyWriteRow")

	resp, err := r.table.DataClient().ReadModifyWriteRow(ctx, &bigtablepb.ReadModifyWriteRowRequest{
		TableName: r.table.Name(),
		RowKey:    r.key,
		Rules:     r.rules,
	})
	if err != nil {
		return nil, err
	}

	r.rules = nil
	return convertFromProtoRow(resp.GetRow()), nil
}
