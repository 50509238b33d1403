package irrecoverable

import (
	"errors"
	"fmt"
)

// exception marks an error that the caller cannot handle as part of normal
// operations, e.g. a corrupted database value or a failed commit. Components
// return exceptions up the stack instead of handling them.
type exception struct {
	err error
}

func (e exception) Error() string {
	return e.err.Error()
}

func (e exception) Unwrap() error {
	return e.err
}

// NewException wraps the input error as an exception.
func NewException(err error) error {
	return exception{err: err}
}

// NewExceptionf constructs an exception from a format string, wrapping any
// %w argument.
func NewExceptionf(msg string, args ...interface{}) error {
	return NewException(fmt.Errorf(msg, args...))
}

// IsException returns true if any error in the chain is an exception.
func IsException(err error) bool {
	var e exception
	return errors.As(err, &e)
}
