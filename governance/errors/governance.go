package errors

import (
	"github.com/ethereum/go-ethereum/common"
)

// NewInitializationErrorf constructs a new CodedError which indicates that the
// scheme was initialized twice, initialized with invalid arguments, or used
// before initialization.
func NewInitializationErrorf(msg string, args ...interface{}) CodedError {
	return NewCodedError(
		ErrCodeInitializationError,
		"initialization error: "+msg,
		args...)
}

func IsInitializationError(err error) bool {
	return HasErrorCode(err, ErrCodeInitializationError)
}

// NewInvalidVoteRangeError constructs a new CodedError which indicates that a
// chosen option lies outside the range the original voting machine accepts
// for the original proposal.
func NewInvalidVoteRangeError(option, min, max, numOfChoices uint64) CodedError {
	return NewCodedError(
		ErrCodeInvalidVoteRangeError,
		"option %d is not a valid vote (allowed range [%d, %d], proposal has %d choices)",
		option, min, max, numOfChoices)
}

func IsInvalidVoteRangeError(err error) bool {
	return HasErrorCode(err, ErrCodeInvalidVoteRangeError)
}

// NewUnknownProposalError constructs a new CodedError which indicates that no
// live vote proposal exists for the given id. This covers ids that were never
// created and ids that were already executed.
func NewUnknownProposalError(proposalID common.Hash) CodedError {
	return NewCodedError(
		ErrCodeUnknownProposalError,
		"unknown proposal %s",
		proposalID.Hex())
}

func IsUnknownProposalError(err error) bool {
	return HasErrorCode(err, ErrCodeUnknownProposalError)
}

// NewUnauthorizedError constructs a new CodedError which indicates that the
// caller is not the voting machine that created the proposal.
func NewUnauthorizedError(caller common.Address, proposalID common.Hash) CodedError {
	return NewCodedError(
		ErrCodeUnauthorizedError,
		"caller %s is not authorized to execute proposal %s",
		caller.Hex(), proposalID.Hex())
}

func IsUnauthorizedError(err error) bool {
	return HasErrorCode(err, ErrCodeUnauthorizedError)
}

// NewRelayCallFailedError constructs a new CodedError which indicates that the
// organization could not deliver the vote to the original voting machine.
// cause is nil when the call was attempted but rejected by the target.
func NewRelayCallFailedError(target common.Address, proposalID common.Hash, cause error) CodedError {
	if cause == nil {
		return NewCodedError(
			ErrCodeRelayCallFailedError,
			"relay of proposal %s to voting machine %s failed",
			proposalID.Hex(), target.Hex())
	}
	return WrapCodedError(
		ErrCodeRelayCallFailedError,
		cause,
		"relay of proposal %s to voting machine %s failed",
		proposalID.Hex(), target.Hex())
}

func IsRelayCallFailedError(err error) bool {
	return HasErrorCode(err, ErrCodeRelayCallFailedError)
}

// NewReentrantCallError constructs a new CodedError which indicates that a
// call reached the scheme while another call was in flight, without carrying
// the context of the in-flight call.
func NewReentrantCallError(scheme common.Address) CodedError {
	return NewCodedError(
		ErrCodeReentrantCallError,
		"scheme %s is executing another call",
		scheme.Hex())
}

func IsReentrantCallError(err error) bool {
	return HasErrorCode(err, ErrCodeReentrantCallError)
}

// Reason returns a short label for the kind of a coded error, suitable as a
// metrics label. Unknown errors are reported as "internal".
func Reason(err error) string {
	switch {
	case IsInitializationError(err):
		return "initialization"
	case IsInvalidVoteRangeError(err):
		return "invalid_vote_range"
	case IsUnknownProposalError(err):
		return "unknown_proposal"
	case IsUnauthorizedError(err):
		return "unauthorized"
	case IsRelayCallFailedError(err):
		return "relay_call_failed"
	case IsReentrantCallError(err):
		return "reentrant_call"
	default:
		return "internal"
	}
}
