package row

import (
	"errors"
	"fmt"

	"github.com/litetable/litetable-bigtable/internal/coerce"
)

var (
	// ErrBranchRequired is returned when a conditional row is mutated without
	// choosing the branch the mutation belongs to.
	ErrBranchRequired = errors.New("branch required")
	// ErrBranchNotAllowed is returned when a branch is chosen on a row that
	// has no filter.
	ErrBranchNotAllowed = errors.New("branch not allowed")
	// ErrTooManyMutations is returned by Commit when a branch holds more
	// mutations than a single request may carry.
	ErrTooManyMutations = errors.New("too many mutations")
	// ErrUnsupportedType is returned when a column or value cannot be
	// converted to bytes.
	ErrUnsupportedType = coerce.ErrUnsupportedType
	// ErrMissingFilter is returned when a conditional row is created without a filter.
	ErrMissingFilter = errors.New("missing filter")
)

// Error wraps a sentinel error with additional context
type Error struct {
	err     error  // The underlying sentinel error
	context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.err
}

func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}
