package gov

import "errors"

var (
	// ErrNotInitialized indicates the engine was used before Construct.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrAlreadyInitialized indicates a second Construct attempt.
	ErrAlreadyInitialized = errors.New("engine already initialized")

	// ErrUnauthorized indicates the caller lacks the required role.
	ErrUnauthorized = errors.New("caller not authorized")

	// ErrAlreadyMember indicates the address is already in the membership set.
	ErrAlreadyMember = errors.New("address is already a member")

	// ErrNotAMember indicates the address is not in the membership set.
	ErrNotAMember = errors.New("address is not a member")

	// ErrUnknownProposal indicates the proposal id was never issued.
	ErrUnknownProposal = errors.New("unknown proposal")

	// ErrVotingClosed indicates the voting deadline has been reached.
	ErrVotingClosed = errors.New("voting closed")

	// ErrDuplicateVote indicates the caller already voted on the proposal.
	ErrDuplicateVote = errors.New("vote already cast")

	// ErrExecutionNotReady indicates an unmet execution precondition
	// (deadline, delay, quorum or majority); the wrapped message names it.
	ErrExecutionNotReady = errors.New("execution not ready")

	// ErrAlreadyExecuted indicates the proposal's transfer already went through.
	ErrAlreadyExecuted = errors.New("proposal already executed")

	// ErrTransferFailed indicates the host transfer reported failure; the
	// triggering request is rolled back in full.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrInsufficientBalance indicates the pool holds less than requested.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount indicates a zero or negative amount where a positive
	// one is required.
	ErrInvalidAmount = errors.New("invalid amount")
)
