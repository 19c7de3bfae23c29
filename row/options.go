package row

import (
	"context"
	"time"

	"github.com/litetable/litetable-bigtable/filter"
)

// MutationOption adjusts a single mutation.
type MutationOption func(*mutationOptions)

type mutationOptions struct {
	branch    *bool
	timestamp *time.Time
	timeRange *filter.TimestampRange
}

func applyMutationOptions(opts []MutationOption) *mutationOptions {
	o := &mutationOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Branch places the mutation in the matched (true) or unmatched (false)
// branch of a conditional row.
func Branch(matched bool) MutationOption {
	return func(o *mutationOptions) {
		o.branch = &matched
	}
}

// OnMatch is Branch(true).
func OnMatch() MutationOption { return Branch(true) }

// OnMiss is Branch(false).
func OnMiss() MutationOption { return Branch(false) }

// WithTimestamp sets the timestamp of a SetCell mutation. Without it the
// server assigns its current time.
func WithTimestamp(t time.Time) MutationOption {
	return func(o *mutationOptions) {
		o.timestamp = &t
	}
}

// WithTimeRange limits DeleteCell and DeleteCells to cells in the range.
func WithTimeRange(r filter.TimestampRange) MutationOption {
	return func(o *mutationOptions) {
		o.timeRange = &r
	}
}

// CallOption adjusts a commit.
type CallOption func(*callOptions)

type callOptions struct {
	timeout time.Duration
}

// WithTimeout overrides the table's default timeout. A value <= 0 disables
// the deadline.
func WithTimeout(d time.Duration) CallOption {
	return func(o *callOptions) {
		o.timeout = d
	}
}

func (r *Row) callContext(ctx context.Context, opts []CallOption) (context.Context, context.CancelFunc) {
	o := &callOptions{timeout: r.table.Timeout()}
	for _, opt := range opts {
		opt(o)
	}
	if o.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.timeout)
}
