package game

import "errors"

// The engine reports four kinds of failures. Every error returned by Next
// and the effect hooks wraps exactly one of these sentinels so callers can
// classify with errors.Is while the message stays human-readable.
var (
	// ErrIllegalAction: a canPlay check failed — insufficient resources,
	// wrong season, occupancy full, event already claimed, missing
	// prerequisite cards.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInvalidInput: a malformed or mismatched GameInput — missing
	// clientOptions, a selection outside the offered options, a continuation
	// that doesn't match the pending queue.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverpay: payment exceeds the exact cost while overpay checking is
	// enabled. Strict on purpose: callers must compute exact payment.
	ErrOverpay = errors.New("cannot overpay for cards")

	// ErrInvariant: internal consistency checks that never trigger in a
	// correctly-driven game; seeing one indicates a caller bug.
	ErrInvariant = errors.New("invariant violation")
)
