package row

import (
	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
)

// mutationBuffer holds pending mutations. Its shape is chosen once, when the
// Row is created, and never changes.
type mutationBuffer interface {
	// branch returns the list a mutation with the given selector goes to.
	branch(sel *bool) (*[]*bigtablepb.Mutation, error)
	// size is the number of pending mutations across all branches.
	size() int
	// check enforces MaxMutations on every branch.
	check() error
	reset()
}

type unconditional struct {
	mutations []*bigtablepb.Mutation
}

func (u *unconditional) branch(sel *bool) (*[]*bigtablepb.Mutation, error) {
	if sel != nil {
		return nil, newError(ErrBranchNotAllowed,
			"no filter was set on the row, but a branch was given for the mutation")
	}
	return &u.mutations, nil
}

func (u *unconditional) size() int { return len(u.mutations) }

func (u *unconditional) check() error {
	if n := len(u.mutations); n > MaxMutations {
		return newError(ErrTooManyMutations, "%d total mutations exceed the maximum allowable %d",
			n, MaxMutations)
	}
	return nil
}

func (u *unconditional) reset() { u.mutations = nil }

type conditional struct {
	onMatch []*bigtablepb.Mutation
	onMiss  []*bigtablepb.Mutation
}

func (c *conditional) branch(sel *bool) (*[]*bigtablepb.Mutation, error) {
	if sel == nil {
		return nil, newError(ErrBranchRequired,
			"a filter is set on the row, but no branch was given for the mutation")
	}
	if *sel {
		return &c.onMatch, nil
	}
	return &c.onMiss, nil
}

func (c *conditional) size() int { return len(c.onMatch) + len(c.onMiss) }

func (c *conditional) check() error {
	if len(c.onMatch) > MaxMutations || len(c.onMiss) > MaxMutations {
		return newError(ErrTooManyMutations,
			"exceed the maximum allowable mutations (%d): had %d match mutations and %d miss mutations",
			MaxMutations, len(c.onMatch), len(c.onMiss))
	}
	return nil
}

func (c *conditional) reset() {
	c.onMatch = nil
	c.onMiss = nil
}
