package errors

import "fmt"

type ErrorCode uint16

func (ec ErrorCode) String() string {
	return fmt.Sprintf("[Error Code: %d]", ec)
}

const (
	// initialization errors 100 - 109
	ErrCodeInitializationError ErrorCode = 100

	// proposal errors 110 - 129
	ErrCodeInvalidVoteRangeError ErrorCode = 110
	ErrCodeUnknownProposalError  ErrorCode = 111

	// execution errors 130 - 149
	ErrCodeUnauthorizedError    ErrorCode = 130
	ErrCodeRelayCallFailedError ErrorCode = 131
	ErrCodeReentrantCallError   ErrorCode = 132
)
