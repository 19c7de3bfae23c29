package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter is returned for filter trees that cannot be sent to the server.
var ErrInvalidFilter = errors.New("invalid filter")

// Error wraps a sentinel error with additional context
type Error struct {
	err     error
	context string
}

func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

// Unwrap allows errors.Is(err, ErrInvalidFilter).
func (e *Error) Unwrap() error {
	return e.err
}

func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}
