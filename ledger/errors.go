package ledger

import "errors"

// Every failure in the ledger is a precondition violation surfaced
// synchronously to the caller. None are transient; retrying unchanged
// input will fail the same way. Match with errors.Is.
var (
	// ErrInvalidAmount means a requested amount was zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientSource means the presented funds hold less than the
	// amount the caller asked to deposit.
	ErrInsufficientSource = errors.New("insufficient source funds")

	// ErrInsufficientBalance means the pool cannot cover a withdrawal.
	ErrInsufficientBalance = errors.New("insufficient pool balance")

	// ErrInsufficientClaim means a partial redemption asked for more than
	// the claim currently holds.
	ErrInsufficientClaim = errors.New("insufficient claim amount")

	// ErrUnauthorized means the caller is not the claim's owner, or direct
	// withdrawals are disabled by pool policy.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidClaim means the operation targeted a closed claim.
	ErrInvalidClaim = errors.New("invalid claim")
)
