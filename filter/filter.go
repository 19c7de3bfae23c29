// Package filter builds predicate trees that the server evaluates against the
// cells of a row. Filters are used as the predicate of a conditional row and
// when scanning.
//
// A tree is made of leaf filters, each of which tests exactly one thing
// (a regex, a range, a limit, ...), combined with Chain, Union and Condition.
// Regex filters take RE2 patterns. Because keys, qualifiers and values are
// arbitrary bytes, use `\C` for a true wildcard: `.` does not match `\n`.
package filter

import (
	"reflect"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
)

// Filter is a node in a predicate tree.
type Filter interface {
	// Proto lowers the tree rooted at this node to its wire form.
	Proto() (*bigtablepb.RowFilter, error)
	// Equal reports whether other is structurally identical. Children are
	// compared in order.
	Equal(other Filter) bool

	isFilter()
}

// Ensure our types implement Filter correctly.
var (
	_ Filter = (*ChainFilter)(nil)
	_ Filter = (*UnionFilter)(nil)
	_ Filter = (*ConditionFilter)(nil)
)

// ChainFilter sends the row through each filter in turn; the output of one
// filter is the input of the next.
type ChainFilter struct {
	filters []Filter
}

// Chain returns a filter applying filters in sequence.
func Chain(filters ...Filter) *ChainFilter {
	return &ChainFilter{filters: filters}
}

// Filters returns the chained filters in order.
func (c *ChainFilter) Filters() []Filter {
	if c == nil {
		return nil
	}
	return append([]Filter(nil), c.filters...)
}

// Proto lowers the chain and its children. A nil child is ErrInvalidFilter.
func (c *ChainFilter) Proto() (*bigtablepb.RowFilter, error) {
	if c == nil {
		return nil, newError(ErrInvalidFilter, "nil chain")
	}
	children, err := protoList("chain", c.filters)
	if err != nil {
		return nil, err
	}
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_Chain_{
			Chain: &bigtablepb.RowFilter_Chain{Filters: children},
		},
	}, nil
}

func (c *ChainFilter) Equal(other Filter) bool {
	if c == nil {
		return IsNil(other)
	}
	o, ok := other.(*ChainFilter)
	return ok && o != nil && equalList(c.filters, o.filters)
}

func (*ChainFilter) isFilter() {}

// UnionFilter sends the row through every filter independently and
// interleaves the results. Cells sharing a column and timestamp appear in an
// order the server does not define.
type UnionFilter struct {
	filters []Filter
}

// Union returns a filter merging the output of filters.
func Union(filters ...Filter) *UnionFilter {
	return &UnionFilter{filters: filters}
}

// Filters returns the merged filters in order.
func (u *UnionFilter) Filters() []Filter {
	if u == nil {
		return nil
	}
	return append([]Filter(nil), u.filters...)
}

// Proto lowers the union to an interleave of its children.
func (u *UnionFilter) Proto() (*bigtablepb.RowFilter, error) {
	if u == nil {
		return nil, newError(ErrInvalidFilter, "nil union")
	}
	children, err := protoList("union", u.filters)
	if err != nil {
		return nil, err
	}
	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_Interleave_{
			Interleave: &bigtablepb.RowFilter_Interleave{Filters: children},
		},
	}, nil
}

func (u *UnionFilter) Equal(other Filter) bool {
	if u == nil {
		return IsNil(other)
	}
	o, ok := other.(*UnionFilter)
	return ok && o != nil && equalList(u.filters, o.filters)
}

func (*UnionFilter) isFilter() {}

// ConditionFilter applies onMatch when predicate yields any cell in the row
// and onMiss otherwise. A nil branch yields no cells for that outcome.
//
// The predicate is not evaluated atomically with the branches, and a
// condition with an onMiss branch is expensive for the server.
type ConditionFilter struct {
	predicate Filter
	onMatch   Filter
	onMiss    Filter
}

// Condition returns a filter choosing between onMatch and onMiss based on
// predicate. Either branch may be nil.
func Condition(predicate, onMatch, onMiss Filter) *ConditionFilter {
	return &ConditionFilter{
		predicate: predicate,
		onMatch:   onMatch,
		onMiss:    onMiss,
	}
}

// Proto lowers the condition. The predicate is required; nil branches are
// left out.
func (c *ConditionFilter) Proto() (*bigtablepb.RowFilter, error) {
	if c == nil {
		return nil, newError(ErrInvalidFilter, "nil condition")
	}
	if IsNil(c.predicate) {
		return nil, newError(ErrInvalidFilter, "condition requires a predicate")
	}

	predicate, err := c.predicate.Proto()
	if err != nil {
		return nil, err
	}
	cond := &bigtablepb.RowFilter_Condition{PredicateFilter: predicate}

	if !IsNil(c.onMatch) {
		if cond.TrueFilter, err = c.onMatch.Proto(); err != nil {
			return nil, err
		}
	}
	if !IsNil(c.onMiss) {
		if cond.FalseFilter, err = c.onMiss.Proto(); err != nil {
			return nil, err
		}
	}

	return &bigtablepb.RowFilter{
		Filter: &bigtablepb.RowFilter_Condition_{Condition: cond},
	}, nil
}

func (c *ConditionFilter) Equal(other Filter) bool {
	if c == nil {
		return IsNil(other)
	}
	o, ok := other.(*ConditionFilter)
	return ok && o != nil &&
		equal(c.predicate, o.predicate) &&
		equal(c.onMatch, o.onMatch) &&
		equal(c.onMiss, o.onMiss)
}

func (*ConditionFilter) isFilter() {}

func protoList(kind string, filters []Filter) ([]*bigtablepb.RowFilter, error) {
	out := make([]*bigtablepb.RowFilter, 0, len(filters))
	for i, f := range filters {
		if IsNil(f) {
			return nil, newError(ErrInvalidFilter, "%s child %d is nil", kind, i)
		}
		pb, err := f.Proto()
		if err != nil {
			return nil, err
		}
		out = append(out, pb)
	}
	return out, nil
}

func equalList(a, b []Filter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// equal compares two possibly nil filters.
func equal(a, b Filter) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return a.Equal(b)
}

// IsNil reports whether f is nil or holds a nil pointer, such as a
// *ChainFilter that was declared but never built.
func IsNil(f Filter) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
