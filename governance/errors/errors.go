package errors

import (
	stdErrors "errors"
	"fmt"
)

// CodedError is an error returned to the caller of a scheme operation. All
// coded errors are benign: the operation had no effect on persisted state.
type CodedError interface {
	Code() ErrorCode
	Unwrap() error

	error
}

type codedError struct {
	code ErrorCode

	err error
}

// NewCodedError constructs a CodedError with the given code and message.
func NewCodedError(code ErrorCode, format string, args ...interface{}) codedError {
	return codedError{
		code: code,
		err:  fmt.Errorf(format, args...),
	}
}

// WrapCodedError wraps err into a CodedError. The wrapped error stays
// reachable through errors.Is/As.
func WrapCodedError(code ErrorCode, err error, prefixMsgFormat string, formatArguments ...interface{}) codedError {
	if prefixMsgFormat != "" {
		msg := fmt.Sprintf(prefixMsgFormat, formatArguments...)
		err = fmt.Errorf("%s: %w", msg, err)
	}
	return codedError{
		code: code,
		err:  err,
	}
}

func (err codedError) Unwrap() error {
	return err.err
}

func (err codedError) Error() string {
	return fmt.Sprintf("%v %v", err.code, err.err)
}

func (err codedError) Code() ErrorCode {
	return err.code
}

// Find returns the first CodedError in err's chain with the given code, or
// nil if there is none.
func Find(originalErr error, code ErrorCode) CodedError {
	if originalErr == nil {
		return nil
	}

	var coded CodedError
	if !stdErrors.As(originalErr, &coded) {
		return nil
	}

	if coded.Code() == code {
		return coded
	}

	return Find(coded.Unwrap(), code)
}

// HasErrorCode returns true if err's chain contains a CodedError with the
// given code.
func HasErrorCode(err error, code ErrorCode) bool {
	return Find(err, code) != nil
}
